package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestAdjustTemperature_NoModelElevation(t *testing.T) {
	assert.Equal(t, 15.0, AdjustTemperature(15.0, 2000, nil))
	assert.Equal(t, 15.1, AdjustTemperature(15.06, 2000, nil))
	assert.Equal(t, -3.5, AdjustTemperature(-3.47, 3300, nil))
}

func TestAdjustTemperature_WithElevationDifference(t *testing.T) {
	// 1000 m below the model grid cell: 6.5°C warmer model air.
	got := AdjustTemperature(10.0, 3000, floatPtr(2000))
	assert.Equal(t, 3.5, got)
}

func TestAdjustTemperature_HigherElevationIsColder(t *testing.T) {
	got := AdjustTemperature(20.0, 3000, floatPtr(1000))
	assert.Less(t, got, 20.0)
}

func TestDescribeWeatherCode_KnownCodes(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{1, "Mainly clear"},
		{2, "Partly cloudy"},
		{3, "Overcast"},
		{45, "Foggy"},
		{48, "Foggy"},
		{51, "Light drizzle"},
		{53, "Drizzle"},
		{55, "Heavy drizzle"},
		{61, "Light rain"},
		{63, "Rain"},
		{65, "Heavy rain"},
		{71, "Light snow"},
		{73, "Snow"},
		{75, "Heavy snow"},
		{77, "Snow grains"},
		{80, "Light showers"},
		{81, "Showers"},
		{82, "Heavy showers"},
		{85, "Light snow showers"},
		{86, "Snow showers"},
		{95, "Thunderstorm"},
		{96, "Thunderstorm with hail"},
		{99, "Thunderstorm with hail"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribeWeatherCode(intPtr(tt.code)), "code %d", tt.code)
	}
}

func TestDescribeWeatherCode_UnknownAndAbsent(t *testing.T) {
	assert.Equal(t, "Unknown", DescribeWeatherCode(intPtr(999)))
	assert.Equal(t, "Unknown", DescribeWeatherCode(intPtr(4)))
	assert.Equal(t, "Unknown", DescribeWeatherCode(nil))
}

func TestWindDirectionLabel_CardinalPoints(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{337.5, "NNW"},
		{360, "N"}, // wraparound
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WindDirectionLabel(floatPtr(tt.degrees)), "degrees %v", tt.degrees)
	}
}

func TestWindDirectionLabel_HalfBinBoundaries(t *testing.T) {
	// Boundaries sit exactly between two compass points and round half to
	// even: 11.25/22.5 = 0.5 rounds down to N, 33.75/22.5 = 1.5 up to NE.
	assert.Equal(t, "N", WindDirectionLabel(floatPtr(11.25)))
	assert.Equal(t, "NE", WindDirectionLabel(floatPtr(33.75)))
	assert.Equal(t, "E", WindDirectionLabel(floatPtr(78.75)))
}

func TestAdjustTemperature_RoundsHalfToEven(t *testing.T) {
	assert.Equal(t, 0.2, AdjustTemperature(0.25, 2000, nil))
	assert.Equal(t, 0.8, AdjustTemperature(0.75, 2000, nil))
	assert.Equal(t, -0.2, AdjustTemperature(-0.25, 2000, nil))
}

func TestWindDirectionLabel_AllDegreesMapToCompass(t *testing.T) {
	valid := make(map[string]bool, len(compassPoints))
	for _, p := range compassPoints {
		valid[p] = true
	}
	for deg := 0.0; deg < 360.0; deg += 0.5 {
		label := WindDirectionLabel(floatPtr(deg))
		assert.True(t, valid[label], "degrees %v produced %q", deg, label)
	}
}

func TestWindDirectionLabel_Absent(t *testing.T) {
	assert.Equal(t, "N/A", WindDirectionLabel(nil))
}

func TestSnowLikely(t *testing.T) {
	assert.True(t, SnowLikely(-2.0, 1.5))
	assert.True(t, SnowLikely(0.0, 0.1))
	assert.False(t, SnowLikely(15.0, 0.0))
	assert.False(t, SnowLikely(-5.0, 0.0))
	assert.False(t, SnowLikely(2.0, 3.0))
}
