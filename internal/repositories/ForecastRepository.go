package repositories

import (
	"context"
	"fmt"

	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
)

// ForecastRepository fetches hourly forecast series for a coordinate pair.
type ForecastRepository interface {
	Name() string
	FetchHourly(ctx context.Context, lat, lon float64) (models.HourlySeries, error)
}

// UpstreamError wraps any failure of the upstream forecast call (transport
// error, timeout, non-2xx status, open circuit). Callers surface it as a
// gateway failure.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream forecast request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
