package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Wilyam390/Pyrenees-forecast/internal/catalog"
	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
	"github.com/Wilyam390/Pyrenees-forecast/internal/repositories"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Unknown peak"`
}

// OkResponse acknowledges a state-changing call
type OkResponse struct {
	Ok bool `json:"ok" example:"true"`
}

// GetWeather godoc
// @Summary Get 24-hour forecast for a mountain band
// @Description Returns the elevation-adjusted hourly forecast for one peak and elevation band, served from cache when fresh
// @Tags Weather
// @Produce json
// @Param mountainId path string true "Peak identifier" example(aneto)
// @Param band query string true "Elevation band" Enums(base, mid, summit)
// @Success 200 {array} models.HourForecast "Ordered per-hour records"
// @Failure 400 {object} ErrorResponse "Invalid band"
// @Failure 404 {object} ErrorResponse "Unknown peak"
// @Failure 502 {object} ErrorResponse "Upstream fetch failed"
// @Router /api/weather/{mountainId} [get]
func (r *routes) handleWeather(c *fiber.Ctx) error {
	mountainID := c.Params("mountainId")
	band := c.Query("band")

	if !models.ValidBand(band) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "band must be one of: base, mid, summit",
		})
	}

	peak, err := r.catalog.PeakByID(mountainID)
	if errors.Is(err, catalog.ErrUnknownPeak) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Unknown peak",
		})
	}

	payload, err := r.weather.HourlyForecast(c.Context(), peak.ID, band, peak.Bands[band])
	if err != nil {
		var upstreamErr *repositories.UpstreamError
		if errors.As(err, &upstreamErr) {
			r.l.Warning("upstream fetch failed", map[string]any{
				"mountain": mountainID,
				"band":     band,
				"err":      err.Error(),
			})
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Error: fmt.Sprintf("Weather data unavailable: %v", upstreamErr.Err),
			})
		}

		r.l.Error(err, map[string]any{"mountain": mountainID, "band": band})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}
