package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Wilyam390/Pyrenees-forecast/internal/catalog"
)

// ReorderRequest is the body of the reorder call
type ReorderRequest struct {
	Order []string `json:"order" example:"aneto,posets"`
}

// ListMyMountains godoc
// @Summary List saved mountains in display order
// @Tags MyMountains
// @Produce json
// @Success 200 {array} string
// @Router /api/my/mountains [get]
func (r *routes) handleListMyMountains(c *fiber.Ctx) error {
	ids, err := r.mylist.List(c.Context())
	if err != nil {
		r.l.Error(err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to load saved mountains",
		})
	}
	return c.JSON(ids)
}

// AddMyMountain godoc
// @Summary Save a mountain (idempotent)
// @Tags MyMountains
// @Produce json
// @Param peakId path string true "Peak identifier" example(aneto)
// @Success 200 {object} OkResponse
// @Failure 404 {object} ErrorResponse "Unknown peak"
// @Router /api/my/mountains/{peakId} [post]
func (r *routes) handleAddMyMountain(c *fiber.Ctx) error {
	peakID := c.Params("peakId")

	if _, err := r.catalog.PeakByID(peakID); errors.Is(err, catalog.ErrUnknownPeak) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Unknown peak"})
	}

	if err := r.mylist.Add(c.Context(), peakID); err != nil {
		r.l.Error(err, map[string]any{"mountain": peakID})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to save mountain",
		})
	}
	return c.JSON(OkResponse{Ok: true})
}

// RemoveMyMountain godoc
// @Summary Remove a saved mountain
// @Tags MyMountains
// @Produce json
// @Param peakId path string true "Peak identifier" example(aneto)
// @Success 200 {object} OkResponse
// @Router /api/my/mountains/{peakId} [delete]
func (r *routes) handleRemoveMyMountain(c *fiber.Ctx) error {
	peakID := c.Params("peakId")

	if err := r.mylist.Remove(c.Context(), peakID); err != nil {
		r.l.Error(err, map[string]any{"mountain": peakID})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to remove mountain",
		})
	}
	return c.JSON(OkResponse{Ok: true})
}

// ReorderMyMountains godoc
// @Summary Rewrite the display order of saved mountains
// @Tags MyMountains
// @Accept json
// @Produce json
// @Param request body ReorderRequest true "Desired id order"
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse "Malformed body"
// @Router /api/my/mountains/order [put]
func (r *routes) handleReorderMyMountains(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Malformed request body"})
	}

	if err := r.mylist.Reorder(c.Context(), req.Order); err != nil {
		r.l.Error(err, map[string]any{"order": req.Order})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to reorder mountains",
		})
	}
	return c.JSON(OkResponse{Ok: true})
}
