package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
)

//go:embed spanish_pyrenees.json
var rawCatalog []byte

var (
	ErrUnknownArea   = errors.New("unknown area")
	ErrUnknownMassif = errors.New("unknown massif")
	ErrUnknownPeak   = errors.New("unknown peak")
)

// Area is one top level catalog zone.
type Area struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Massifs []Massif `json:"massifs"`
}

// Massif groups peaks inside an area.
type Massif struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Peaks []models.Peak `json:"peaks"`
}

// Ref is an (id, name) pair used by the drill-down endpoints.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PeakSummary is the flat search result shape.
type PeakSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SummitElevM float64 `json:"summit_elev_m"`
	Massif      string  `json:"massif"`
}

// Catalog is the static hierarchical peak catalog. It is loaded once and read
// only afterwards.
type Catalog struct {
	areas    []Area
	peakByID map[string]models.Peak
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(rawCatalog)
}

// Parse builds a catalog from raw JSON. Duplicate peak ids are rejected so
// the flat lookup stays unambiguous.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Areas []Area `json:"areas"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		areas:    doc.Areas,
		peakByID: make(map[string]models.Peak),
	}
	for _, a := range doc.Areas {
		for _, m := range a.Massifs {
			for _, p := range m.Peaks {
				if _, exists := c.peakByID[p.ID]; exists {
					return nil, fmt.Errorf("duplicate peak id %q in catalog", p.ID)
				}
				for _, band := range []string{models.BandBase, models.BandMid, models.BandSummit} {
					if _, ok := p.Bands[band]; !ok {
						return nil, fmt.Errorf("peak %q is missing band %q", p.ID, band)
					}
				}
				c.peakByID[p.ID] = p
			}
		}
	}
	return c, nil
}

// Areas lists the top level zones.
func (c *Catalog) Areas() []Ref {
	out := make([]Ref, 0, len(c.areas))
	for _, a := range c.areas {
		out = append(out, Ref{ID: a.ID, Name: a.Name})
	}
	return out
}

// Massifs lists the massifs of one area.
func (c *Catalog) Massifs(areaID string) ([]Ref, error) {
	for _, a := range c.areas {
		if a.ID == areaID {
			out := make([]Ref, 0, len(a.Massifs))
			for _, m := range a.Massifs {
				out = append(out, Ref{ID: m.ID, Name: m.Name})
			}
			return out, nil
		}
	}
	return nil, ErrUnknownArea
}

// Peaks lists the peaks of one massif, optionally filtered by a
// case-insensitive name substring.
func (c *Catalog) Peaks(areaID, massifID, query string) ([]models.Peak, error) {
	for _, a := range c.areas {
		if a.ID != areaID {
			continue
		}
		for _, m := range a.Massifs {
			if m.ID != massifID {
				continue
			}
			if query == "" {
				return m.Peaks, nil
			}
			qn := strings.ToLower(query)
			var out []models.Peak
			for _, p := range m.Peaks {
				if strings.Contains(strings.ToLower(p.Name), qn) {
					out = append(out, p)
				}
			}
			return out, nil
		}
	}
	return nil, ErrUnknownMassif
}

// AllPeaks returns flat summaries of every peak, optionally filtered by a
// case-insensitive substring of the peak or massif name.
func (c *Catalog) AllPeaks(query string) []PeakSummary {
	qn := strings.ToLower(query)
	var out []PeakSummary
	for _, a := range c.areas {
		for _, m := range a.Massifs {
			for _, p := range m.Peaks {
				if qn != "" &&
					!strings.Contains(strings.ToLower(p.Name), qn) &&
					!strings.Contains(strings.ToLower(p.Massif), qn) {
					continue
				}
				out = append(out, PeakSummary{
					ID:          p.ID,
					Name:        p.Name,
					SummitElevM: p.SummitElevM,
					Massif:      p.Massif,
				})
			}
		}
	}
	return out
}

// PeakByID looks up one peak.
func (c *Catalog) PeakByID(id string) (models.Peak, error) {
	p, ok := c.peakByID[id]
	if !ok {
		return models.Peak{}, ErrUnknownPeak
	}
	return p, nil
}

// BandLocation resolves the coordinates and reference elevation of one
// elevation band of a peak.
func (c *Catalog) BandLocation(peakID, band string) (models.BandLocation, error) {
	p, err := c.PeakByID(peakID)
	if err != nil {
		return models.BandLocation{}, err
	}
	loc, ok := p.Bands[band]
	if !ok {
		return models.BandLocation{}, fmt.Errorf("peak %q has no band %q", peakID, band)
	}
	return loc, nil
}
