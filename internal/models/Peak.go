package models

const (
	BandBase   = "base"
	BandMid    = "mid"
	BandSummit = "summit"
)

// ValidBand reports whether b is one of the three elevation band literals.
func ValidBand(b string) bool {
	return b == BandBase || b == BandMid || b == BandSummit
}

// BandLocation is the fetch/adjustment parameter triple for one elevation
// band of a peak.
type BandLocation struct {
	Lat   float64 `json:"lat" example:"42.6311"`
	Lon   float64 `json:"lon" example:"0.6577"`
	ElevM float64 `json:"elev_m" example:"3404"`
}

// Peak is one mountain in the catalog with its three elevation bands.
type Peak struct {
	ID          string                  `json:"id" example:"aneto"`
	Name        string                  `json:"name" example:"Aneto"`
	Massif      string                  `json:"massif" example:"Maladeta"`
	SummitElevM float64                 `json:"summit_elev_m" example:"3404"`
	Bands       map[string]BandLocation `json:"bands"`
}
