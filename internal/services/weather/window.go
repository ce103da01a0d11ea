package weather

import (
	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
)

const maxForecastHours = 24

// SliceNext24h aligns the parallel upstream series into at most 24 ordered
// per-hour records, applying elevation adjustment and enrichment. The window
// length is bounded by the shortest required series; extra upstream hours are
// dropped and shorter series truncate the output silently. Optional series
// that are missing or short read as nulls, never as an error.
func SliceNext24h(series models.HourlySeries, elevTargetM float64) []models.HourForecast {
	n := minInt(
		len(series.Time),
		len(series.Temperature2m),
		len(series.WindSpeed10m),
		len(series.Precipitation),
		maxForecastHours,
	)

	out := make([]models.HourForecast, 0, n)
	for i := 0; i < n; i++ {
		tAdj := AdjustTemperature(series.Temperature2m[i], elevTargetM, nil)
		precip := series.Precipitation[i]
		windDir := floatAt(series.WindDirection10m, i)
		code := intAt(series.WeatherCode, i)

		out = append(out, models.HourForecast{
			Time:               series.Time[i],
			TempC:              tAdj,
			WindSpeedKmh:       roundPtr(series.WindSpeed10m[i]),
			WindGustKmh:        roundPtr(floatAt(series.WindGusts10m, i)),
			WindDirection:      WindDirectionLabel(windDir),
			WindDirectionDeg:   windDir,
			PrecipMm:           precip,
			SnowLikely:         SnowLikely(tAdj, precip),
			WeatherCode:        code,
			WeatherDescription: DescribeWeatherCode(code),
			Humidity:           intAt(series.Humidity, i),
			CloudCover:         intAt(series.CloudCover, i),
		})
	}
	return out
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := round1(*v)
	return &rounded
}

func floatAt(s []*float64, i int) *float64 {
	if i >= len(s) {
		return nil
	}
	return s[i]
}

func intAt(s []*int, i int) *int {
	if i >= len(s) {
		return nil
	}
	return s[i]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
