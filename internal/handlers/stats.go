package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sartorproj/tempstats/internal/models"
)

// Summary returns average, deviation, min and max with their text rendering
func (h *Handler) Summary(c *fiber.Ctx) error {
	summary, err := h.series.Summary()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(models.SummaryResponse{
		TempSummaryStatistics: summary,
		Text:                  summary.String(),
	})
}

// Statistic returns one statistic named by the :name route parameter
func (h *Handler) Statistic(c *fiber.Ctx) error {
	name := c.Params("name")
	v, err := h.series.Statistic(name)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(models.ValueResponse{Name: name, Value: v})
}
