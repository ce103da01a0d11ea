package models

// HourForecast is a single display-ready hour of forecast data for one
// elevation band. Nullable fields mirror series the upstream provider may
// omit and serialize as JSON null.
type HourForecast struct {
	Time               string   `json:"time" example:"2025-11-21T10:00"`
	TempC              float64  `json:"temp_c" example:"-3.5"`
	WindSpeedKmh       *float64 `json:"wind_speed_kmh" example:"14.2"`
	WindGustKmh        *float64 `json:"wind_gust_kmh" example:"32.8"`
	WindDirection      string   `json:"wind_direction" example:"NNW"`
	WindDirectionDeg   *float64 `json:"wind_direction_deg" example:"337.0"`
	PrecipMm           float64  `json:"precip_mm" example:"0.4"`
	SnowLikely         bool     `json:"snow_likely" example:"true"`
	WeatherCode        *int     `json:"weather_code" example:"71"`
	WeatherDescription string   `json:"weather_description" example:"Light snow"`
	Humidity           *int     `json:"humidity" example:"82"`
	CloudCover         *int     `json:"cloud_cover" example:"95"`
}
