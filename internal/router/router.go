// Package router wires handlers and middleware into a Fiber application.
package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sartorproj/tempstats/internal/handlers"
	"github.com/sartorproj/tempstats/internal/logging"
	"github.com/sartorproj/tempstats/internal/middleware"
	"github.com/sartorproj/tempstats/internal/services"
)

// New creates the Fiber application with every route registered
func New(logger *logging.Logger, series *services.SeriesService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "tempstats",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, series)
	return app
}

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, series *services.SeriesService) *handlers.Handler {
	h := handlers.New(logger, series)

	app.Use(recover.New())
	app.Use(logging.FiberMiddleware(logger))

	app.Get("/health", h.Health)

	v1 := app.Group("/api/v1")

	v1.Get("/temps", h.GetTemps)
	v1.Post("/temps", h.AddTemps)
	v1.Delete("/temps", h.ResetTemps)
	v1.Get("/temps/sorted", h.SortedTemps)
	v1.Get("/temps/less-than", h.LessThan)
	v1.Get("/temps/greater-than", h.GreaterThan)
	v1.Get("/temps/in-range", h.InRange)
	v1.Get("/temps/closest", h.Closest)

	v1.Get("/stats", h.Summary)
	v1.Get("/stats/:name", h.Statistic)

	app.Use(h.NotFound)

	return h
}
