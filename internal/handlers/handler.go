// Package handlers implements the HTTP endpoints of the temperature series API.
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sartorproj/tempstats/internal/logging"
	"github.com/sartorproj/tempstats/internal/models"
	"github.com/sartorproj/tempstats/internal/services"
)

// Version is reported by the health endpoint.
var Version = "dev"

// Handler contains all HTTP handlers
type Handler struct {
	logger *logging.Logger
	series *services.SeriesService
}

// New creates a new handler instance
func New(logger *logging.Logger, series *services.SeriesService) *Handler {
	return &Handler{
		logger: logger,
		series: series,
	}
}

// statusFor maps service error codes to HTTP statuses.
var statusFor = map[string]int{
	services.CodeInvalidInput: fiber.StatusBadRequest,
	services.CodeOutOfRange:   fiber.StatusUnprocessableEntity,
	services.CodeEmptySeries:  fiber.StatusConflict,
	services.CodeUnknownStat:  fiber.StatusNotFound,
}

// respondError writes err as an ErrorResponse.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var svcErr *services.ServiceError
	if !errors.As(err, &svcErr) {
		return err
	}

	status, ok := statusFor[svcErr.Code]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    svcErr.Code,
			Message: svcErr.Message,
			Path:    c.Path(),
			Details: svcErr.Details,
		},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    services.CodeInvalidInput,
			Message: message,
			Path:    c.Path(),
		},
	})
}

// floatQuery parses a required float query parameter.
func floatQuery(c *fiber.Ctx, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.New("query parameter '" + name + "' is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("query parameter '" + name + "' must be a number")
	}
	return v, nil
}
