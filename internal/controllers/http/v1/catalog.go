package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Wilyam390/Pyrenees-forecast/internal/catalog"
)

// ListAreas godoc
// @Summary List catalog areas
// @Tags Catalog
// @Produce json
// @Success 200 {array} catalog.Ref
// @Router /api/catalog/areas [get]
func (r *routes) handleListAreas(c *fiber.Ctx) error {
	return c.JSON(r.catalog.Areas())
}

// ListMassifs godoc
// @Summary List massifs of an area
// @Tags Catalog
// @Produce json
// @Param area query string true "Area identifier" example(aragon)
// @Success 200 {array} catalog.Ref
// @Failure 404 {object} ErrorResponse "Unknown area"
// @Router /api/catalog/massifs [get]
func (r *routes) handleListMassifs(c *fiber.Ctx) error {
	massifs, err := r.catalog.Massifs(c.Query("area"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Unknown area"})
	}
	return c.JSON(massifs)
}

// ListPeaks godoc
// @Summary List peaks of a massif
// @Tags Catalog
// @Produce json
// @Param area query string true "Area identifier" example(aragon)
// @Param massif query string true "Massif identifier" example(maladeta)
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {array} models.Peak
// @Failure 404 {object} ErrorResponse "Unknown area/massif"
// @Router /api/catalog/peaks [get]
func (r *routes) handleListPeaks(c *fiber.Ctx) error {
	peaks, err := r.catalog.Peaks(c.Query("area"), c.Query("massif"), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Unknown area/massif"})
	}
	return c.JSON(peaks)
}

// ListPeaksAll godoc
// @Summary Search all peaks
// @Tags Catalog
// @Produce json
// @Param q query string false "Case-insensitive peak or massif name filter"
// @Success 200 {array} catalog.PeakSummary
// @Router /api/catalog/peaks_all [get]
func (r *routes) handleListPeaksAll(c *fiber.Ctx) error {
	peaks := r.catalog.AllPeaks(c.Query("q"))
	if peaks == nil {
		peaks = []catalog.PeakSummary{}
	}
	return c.JSON(peaks)
}

// PeakDetails godoc
// @Summary Get one peak with its elevation bands
// @Tags Catalog
// @Produce json
// @Param peakId path string true "Peak identifier" example(aneto)
// @Success 200 {object} models.Peak
// @Failure 404 {object} ErrorResponse "Unknown peak"
// @Router /api/catalog/peaks/{peakId} [get]
func (r *routes) handlePeakDetails(c *fiber.Ctx) error {
	peak, err := r.catalog.PeakByID(c.Params("peakId"))
	if errors.Is(err, catalog.ErrUnknownPeak) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Unknown peak"})
	}
	return c.JSON(peak)
}
