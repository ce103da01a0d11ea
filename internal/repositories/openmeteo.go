package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/semaphore"

	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/logger"
)

const hourlyVariables = "temperature_2m,precipitation,wind_speed_10m,wind_gusts_10m,wind_direction_10m,weather_code,relative_humidity_2m,cloud_cover"

// OpenMeteoRepository fetches hourly forecasts from the Open-Meteo API. A
// counting semaphore bounds the number of in-flight requests system-wide and
// a circuit breaker fails fast while the upstream is known to be down.
type OpenMeteoRepository struct {
	baseURL    string
	timezone   string
	httpClient *http.Client
	gate       *semaphore.Weighted
	circuit    *gobreaker.CircuitBreaker
	l          *logger.Logger
}

func NewOpenMeteoRepository(baseURL, timezone string, timeout time.Duration, maxConcurrent int, l *logger.Logger) *OpenMeteoRepository {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoRepository{
		baseURL:    baseURL,
		timezone:   timezone,
		httpClient: &http.Client{Timeout: timeout},
		gate:       semaphore.NewWeighted(int64(maxConcurrent)),
		circuit:    cb,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

// hourlyResponse mirrors the upstream payload. Optional series decode to nil
// slices when absent; values inside a series may be null.
type hourlyResponse struct {
	Time               []string   `json:"time"`
	Temperature2m      []float64  `json:"temperature_2m"`
	Precipitation      []float64  `json:"precipitation"`
	WindSpeed10m       []*float64 `json:"wind_speed_10m"`
	WindGusts10m       []*float64 `json:"wind_gusts_10m"`
	WindDirection10m   []*float64 `json:"wind_direction_10m"`
	WeatherCode        []*int     `json:"weather_code"`
	RelativeHumidity2m []*int     `json:"relative_humidity_2m"`
	CloudCover         []*int     `json:"cloud_cover"`
}

// FetchHourly issues a single forecast request for the next 24 hours. There
// are no retries: one failed attempt propagates as an UpstreamError and the
// cache layer above shields callers from transient unavailability.
func (o *OpenMeteoRepository) FetchHourly(ctx context.Context, lat, lon float64) (models.HourlySeries, error) {
	if err := o.gate.Acquire(ctx, 1); err != nil {
		return models.HourlySeries{}, &UpstreamError{Err: fmt.Errorf("waiting for fetch slot: %w", err)}
	}
	defer o.gate.Release(1)

	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("hourly", hourlyVariables)
	values.Set("timezone", o.timezone)
	values.Set("past_hours", "0")
	values.Set("forecast_hours", "24")
	requestURL := fmt.Sprintf("%s?%s", o.baseURL, values.Encode())

	o.l.Info("making openmeteo API request", map[string]any{
		"lat": lat,
		"lon": lon,
	})

	result, err := o.circuit.Execute(func() (any, error) {
		return o.doRequest(ctx, requestURL)
	})
	if err != nil {
		o.l.Warning("openmeteo request failed", map[string]any{"err": err.Error()})
		return models.HourlySeries{}, &UpstreamError{Err: err}
	}

	hourly := result.(hourlyResponse)

	o.l.Info("parsed openmeteo API response", map[string]any{
		"hours": len(hourly.Time),
	})

	return normalizeSeries(hourly), nil
}

func (o *OpenMeteoRepository) doRequest(ctx context.Context, requestURL string) (hourlyResponse, error) {
	var hourly hourlyResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return hourly, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return hourly, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return hourly, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return hourly, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response struct {
		Hourly hourlyResponse `json:"hourly"`
	}
	if err = json.Unmarshal(body, &response); err != nil {
		return hourly, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return response.Hourly, nil
}

// normalizeSeries pads absent optional series to the length of the time
// axis so the windowing step never has to special-case missing arrays.
func normalizeSeries(h hourlyResponse) models.HourlySeries {
	n := len(h.Time)

	return models.HourlySeries{
		Time:             h.Time,
		Temperature2m:    h.Temperature2m,
		Precipitation:    h.Precipitation,
		WindSpeed10m:     h.WindSpeed10m,
		WindGusts10m:     padFloats(h.WindGusts10m, n),
		WindDirection10m: padFloats(h.WindDirection10m, n),
		WeatherCode:      padInts(h.WeatherCode, n),
		Humidity:         padInts(h.RelativeHumidity2m, n),
		CloudCover:       padInts(h.CloudCover, n),
	}
}

func padFloats(s []*float64, n int) []*float64 {
	if len(s) >= n {
		return s
	}
	return append(s, make([]*float64, n-len(s))...)
}

func padInts(s []*int, n int) []*int {
	if len(s) >= n {
		return s
	}
	return append(s, make([]*int, n-len(s))...)
}
