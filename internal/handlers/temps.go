package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sartorproj/tempstats/internal/models"
)

// GetTemps returns every reading in insertion order
func (h *Handler) GetTemps(c *fiber.Ctx) error {
	temps, capacity := h.series.Snapshot()
	return c.JSON(models.SeriesResponse{
		Size:     len(temps),
		Capacity: capacity,
		Temps:    temps,
	})
}

// AddTemps appends readings; the batch is rejected whole if any reading is invalid
func (h *Handler) AddTemps(c *fiber.Ctx) error {
	var req models.AddTempsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	size, err := h.series.Add(req.Temps)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(models.SizeResponse{Size: size})
}

// ResetTemps discards every reading
func (h *Handler) ResetTemps(c *fiber.Ctx) error {
	h.series.Reset()
	return c.JSON(models.SizeResponse{Size: 0})
}

// SortedTemps returns the readings in ascending order
func (h *Handler) SortedTemps(c *fiber.Ctx) error {
	return tempsJSON(c, h.series.Sorted())
}

// LessThan returns readings strictly below ?threshold=
func (h *Handler) LessThan(c *fiber.Ctx) error {
	threshold, err := floatQuery(c, "threshold")
	if err != nil {
		return badRequest(c, err.Error())
	}
	return tempsJSON(c, h.series.LessThan(threshold))
}

// GreaterThan returns readings strictly above ?threshold=
func (h *Handler) GreaterThan(c *fiber.Ctx) error {
	threshold, err := floatQuery(c, "threshold")
	if err != nil {
		return badRequest(c, err.Error())
	}
	return tempsJSON(c, h.series.GreaterThan(threshold))
}

// InRange returns readings strictly between ?lower= and ?upper=
func (h *Handler) InRange(c *fiber.Ctx) error {
	lower, err := floatQuery(c, "lower")
	if err != nil {
		return badRequest(c, err.Error())
	}
	upper, err := floatQuery(c, "upper")
	if err != nil {
		return badRequest(c, err.Error())
	}
	return tempsJSON(c, h.series.InRange(lower, upper))
}

// Closest returns the reading nearest to ?target=, or to zero without a target
func (h *Handler) Closest(c *fiber.Ctx) error {
	var target *float64
	if c.Query("target") != "" {
		v, err := floatQuery(c, "target")
		if err != nil {
			return badRequest(c, err.Error())
		}
		target = &v
	}

	v, err := h.series.Closest(target)
	if err != nil {
		return h.respondError(c, err)
	}
	name := "closest_to_zero"
	if target != nil {
		name = "closest_to_value"
	}
	return c.JSON(models.ValueResponse{Name: name, Value: v})
}

func tempsJSON(c *fiber.Ctx, temps []float64) error {
	return c.JSON(models.TempsResponse{Count: len(temps), Temps: temps})
}
