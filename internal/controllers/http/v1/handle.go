package http

import (
	"github.com/gofiber/fiber/v2"

	"temperature-map/internal/models"
)

// ReadingsResponse represents the current readings
type ReadingsResponse struct {
	Readings []models.Reading `json:"readings"`
}

// LocationsResponse represents the fixed location table
type LocationsResponse struct {
	Locations []models.Location `json:"locations"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch temperature data"`
}

func newReadingsResponse(set models.ReadingSet) ReadingsResponse {
	readings := make([]models.Reading, len(set))
	copy(readings, set)
	return ReadingsResponse{Readings: readings}
}

// GetReadings godoc
// @Summary Get current readings
// @Description Returns the current temperature of every location whose fetch succeeded, with the derived column elevation.
// @Description Results are memoized for the cache window; locations that failed are omitted.
// @Tags Readings
// @Produce json
// @Success 200 {object} ReadingsResponse "Successful response"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/readings [get]
func (r *routes) handleReadings(c *fiber.Ctx) error {
	set, err := r.service.Readings(c.UserContext())
	if err != nil {
		r.l.Error(err, map[string]any{"route": c.Path()})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch temperature data",
		})
	}

	return c.JSON(newReadingsResponse(set))
}

// RefreshReadings godoc
// @Summary Refresh readings
// @Description Drops the memoized readings and runs a new fetch cycle before answering.
// @Tags Readings
// @Produce json
// @Success 200 {object} ReadingsResponse "Successful response"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/readings/refresh [post]
func (r *routes) handleReadingsRefresh(c *fiber.Ctx) error {
	r.service.Refresh()

	return r.handleReadings(c)
}

// GetProgress godoc
// @Summary Get fetch progress
// @Description Reports how many locations the running (or last) fetch cycle has attempted.
// @Tags Readings
// @Produce json
// @Success 200 {object} temperature.ProgressSnapshot "Successful response"
// @Router /api/v1/progress [get]
func (r *routes) handleProgress(c *fiber.Ctx) error {
	return c.JSON(r.service.Progress())
}

// GetLocations godoc
// @Summary List locations
// @Description Returns the fixed table of named coordinates that every fetch cycle walks.
// @Tags Locations
// @Produce json
// @Success 200 {object} LocationsResponse "Successful response"
// @Router /api/v1/locations [get]
func (r *routes) handleLocations(c *fiber.Ctx) error {
	return c.JSON(LocationsResponse{Locations: r.service.Locations()})
}
