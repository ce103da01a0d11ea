package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cnf, err := NewConfig("nonexistent.yaml")
	require.NoError(t, err)
	require.NotNil(t, cnf)

	assert.Equal(t, "pyrenees-forecast", cnf.AppName)
	assert.Equal(t, "8080", cnf.Port)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cnf.Weather.APIURL)
	assert.Equal(t, 20, cnf.Weather.TimeoutSeconds)
	assert.Equal(t, 3600, cnf.Weather.CacheTTLSeconds)
	assert.Equal(t, 4, cnf.Weather.MaxConcurrentFetches)
	assert.Equal(t, "Europe/Madrid", cnf.Weather.Timezone)
	assert.False(t, cnf.Prewarm.Enabled)
}

func TestNewConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WEATHER_API_TIMEOUT", "5")
	t.Setenv("WEATHER_CACHE_TTL", "120")
	t.Setenv("MAX_CONCURRENT_WEATHER_REQUESTS", "2")
	t.Setenv("PREWARM_ENABLED", "true")

	cnf, err := NewConfig("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "9090", cnf.Port)
	assert.Equal(t, 5*time.Second, cnf.Weather.Timeout())
	assert.Equal(t, 2*time.Minute, cnf.Weather.CacheTTL())
	assert.Equal(t, 2, cnf.Weather.MaxConcurrentFetches)
	assert.True(t, cnf.Prewarm.Enabled)
}

func TestNewConfigYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlData := []byte("port: \"9999\"\nweather:\n  cache_ttl_seconds: 7200\n")
	require.NoError(t, os.WriteFile(path, yamlData, 0o644))

	cnf, err := NewConfig(path)
	require.NoError(t, err)

	// Values from the file survive with no env vars set.
	assert.Equal(t, "9999", cnf.Port)
	assert.Equal(t, 7200, cnf.Weather.CacheTTLSeconds)

	// Keys the file does not mention keep their defaults.
	assert.Equal(t, "pyrenees-forecast", cnf.AppName)
	assert.Equal(t, 20, cnf.Weather.TimeoutSeconds)
}

func TestNewConfigEnvironmentOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlData := []byte("port: \"9999\"\nweather:\n  cache_ttl_seconds: 7200\n")
	require.NoError(t, os.WriteFile(path, yamlData, 0o644))

	t.Setenv("PORT", "9090")

	cnf, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cnf.Port)
	assert.Equal(t, 7200, cnf.Weather.CacheTTLSeconds)
}

func TestNewConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weather: ["), 0o644))

	_, err := NewConfig(path)
	assert.Error(t, err)
}
