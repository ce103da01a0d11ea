package weather

import "math"

// LapseRatePerM is the standard atmosphere temperature lapse rate in °C per
// meter of elevation gain.
const LapseRatePerM = 0.0065

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

var weatherDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Foggy",
	51: "Light drizzle",
	53: "Drizzle",
	55: "Heavy drizzle",
	61: "Light rain",
	63: "Rain",
	65: "Heavy rain",
	71: "Light snow",
	73: "Snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Light showers",
	81: "Showers",
	82: "Heavy showers",
	85: "Light snow showers",
	86: "Snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with hail",
}

// AdjustTemperature corrects a model temperature for the elevation difference
// between the model grid cell and the target band. With a nil model elevation
// the temperature is returned as-is, only rounded; the deployment assumes the
// source data is already at target elevation in that case.
func AdjustTemperature(tempC, targetElevM float64, modelElevM *float64) float64 {
	if modelElevM == nil {
		return round1(tempC)
	}
	return round1(tempC + (*modelElevM-targetElevM)*LapseRatePerM)
}

// DescribeWeatherCode maps a WMO weather code to its display label.
// Unrecognized or absent codes read "Unknown".
func DescribeWeatherCode(code *int) string {
	if code == nil {
		return "Unknown"
	}
	if desc, ok := weatherDescriptions[*code]; ok {
		return desc
	}
	return "Unknown"
}

// WindDirectionLabel converts degrees to a 16-point compass label, handling
// wraparound (360° is "N"). Absent degrees read "N/A". Exact bin boundaries
// round half to even, so 11.25° is "N", not "NNE".
func WindDirectionLabel(degrees *float64) string {
	if degrees == nil {
		return "N/A"
	}
	index := int(math.RoundToEven(*degrees/22.5)) % 16
	if index < 0 {
		index += 16
	}
	return compassPoints[index]
}

// SnowLikely reports whether the adjusted temperature and precipitation
// suggest snowfall.
func SnowLikely(adjustedTempC, precipMm float64) bool {
	return adjustedTempC <= 0.0 && precipMm > 0
}

// round1 rounds to one decimal, half to even: 0.25 becomes 0.2, 0.75
// becomes 0.8.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
