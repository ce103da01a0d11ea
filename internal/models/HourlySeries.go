package models

// HourlySeries holds the parallel per-hour arrays returned by the forecast
// provider, decoded once at the fetch boundary. Optional series are
// normalized there to the length of Time, with nils where the provider
// omitted a value or the whole series.
type HourlySeries struct {
	Time             []string
	Temperature2m    []float64
	Precipitation    []float64
	WindSpeed10m     []*float64
	WindGusts10m     []*float64
	WindDirection10m []*float64
	WeatherCode      []*int
	Humidity         []*int
	CloudCover       []*int
}
