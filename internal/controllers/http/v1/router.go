package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"temperature-map/internal/models"
	"temperature-map/internal/services/temperature"
	"temperature-map/pkg/observe"
)

// TemperatureService is what the routes need from temperature.TemperatureService.
type TemperatureService interface {
	Readings(ctx context.Context) (models.ReadingSet, error)
	Refresh()
	Ready() bool
	Progress() temperature.ProgressSnapshot
	Locations() []models.Location
}

type routes struct {
	service TemperatureService
	l       *observe.Logger
}

func NewRouter(
	app *fiber.App,
	service TemperatureService,
	l *observe.Logger,
) {
	r := &routes{
		service: service,
		l:       l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// Dashboard
	app.Get("/", r.handleDashboard)
	app.Post("/refresh", r.handleDashboardRefresh)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/readings", r.handleReadings)
	api.Post("/readings/refresh", r.handleReadingsRefresh)
	api.Get("/progress", r.handleProgress)
	api.Get("/locations", r.handleLocations)
}
