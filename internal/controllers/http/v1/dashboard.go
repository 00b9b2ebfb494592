package http

import (
	"bytes"
	"io"

	"github.com/gofiber/fiber/v2"

	"temperature-map/internal/views"
)

const (
	readingsPath = "/api/v1/readings"
	progressPath = "/api/v1/progress"
	// loadedPath is where the loading page sends the browser once the
	// cycle it waited on has finished.
	loadedPath = "/?loaded=1"
)

// handleDashboard renders the table and the map from the same ReadingSet.
// Without fresh readings it answers at once with a loading page that
// follows the fetch cycle on /api/v1/progress, unless the request comes
// back from that page, in which case it blocks until readings exist.
func (r *routes) handleDashboard(c *fiber.Ctx) error {
	if !r.service.Ready() && c.Query("loaded") == "" {
		return r.renderPage(c, func(w io.Writer) error {
			return views.RenderLoading(w, views.NewLoadingData(readingsPath, progressPath, loadedPath))
		})
	}

	set, err := r.service.Readings(c.UserContext())
	if err != nil {
		r.l.Error(err, map[string]any{"route": c.Path()})
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load readings")
	}

	return r.renderPage(c, func(w io.Writer) error {
		return views.RenderDashboard(w, views.NewDashboardData(set))
	})
}

// handleDashboardRefresh backs the refresh button: drop the memo, then let
// the browser reload the dashboard, which shows progress of the new cycle.
func (r *routes) handleDashboardRefresh(c *fiber.Ctx) error {
	r.service.Refresh()

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (r *routes) renderPage(c *fiber.Ctx, render func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		r.l.Error(err, map[string]any{"route": c.Path()})
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render page")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
