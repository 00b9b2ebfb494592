package views

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temperature-map/internal/models"
)

func sampleSet() models.ReadingSet {
	return models.ReadingSet{
		{Name: "Tokyo", Latitude: 35.6895, Longitude: 139.6917, Temperature: 20.0, Elevation: 60000.0},
		{Name: "Sapporo", Latitude: 43.0621, Longitude: 141.3544, Temperature: -2.5, Elevation: -7500.0},
	}
}

func TestNewDashboardData(t *testing.T) {
	data := NewDashboardData(sampleSet())

	assert.Equal(t, []TableRow{{Name: "Tokyo", Temperature: 20.0}, {Name: "Sapporo", Temperature: -2.5}}, data.Rows)
	assert.Equal(t, MapPoint{Name: "Tokyo", Latitude: 35.6895, Longitude: 139.6917, Temperature: 20.0, Elevation: 60000.0, Label: "20.0"}, data.Points[0])
	assert.Equal(t, MapView{Latitude: 36.0, Longitude: 138.0, Zoom: 4.5, Pitch: 45, Bearing: 0}, data.View)
	assert.Equal(t, ColumnStyle{Radius: 10000, FillColor: [4]int{255, 100, 0, 180}}, data.Column)
	assert.Equal(t, 600, data.TableHeight)
}

func TestRenderDashboard(t *testing.T) {
	require.NoError(t, LoadTemplates())

	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, NewDashboardData(sampleSet())))
	html := buf.String()

	assert.Contains(t, html, "<td>Tokyo</td>")
	assert.Contains(t, html, `<td class="num">20.0</td>`)
	assert.Contains(t, html, `<td class="num">-2.5</td>`)
	assert.Contains(t, html, `"name":"Tokyo"`)
	assert.Contains(t, html, `"elevation":60000`)
	assert.Contains(t, html, `"label":"20.0"`)
	assert.Contains(t, html, `"label":"-2.5"`)
	assert.Contains(t, html, `"fillColor":[255,100,0,180]`)
	assert.Contains(t, html, `"zoom":4.5`)
	assert.Contains(t, html, `action="/refresh"`)
	assert.Contains(t, html, "height: 600px")
	assert.Less(t, strings.Index(html, "Tokyo"), strings.Index(html, "Sapporo"), "table keeps ReadingSet order")
}

func TestRenderDashboard_Empty(t *testing.T) {
	require.NoError(t, LoadTemplates())

	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, NewDashboardData(nil)))
	html := buf.String()

	assert.Contains(t, html, "const readings = [];")
	assert.NotContains(t, html, "<td>")
	assert.NotContains(t, strings.ToLower(html), "no data")
}

func TestRenderDashboard_NotLoaded(t *testing.T) {
	saved := pages
	pages = nil
	t.Cleanup(func() { pages = saved })

	err := RenderDashboard(&bytes.Buffer{}, NewDashboardData(nil))
	assert.ErrorContains(t, err, "page templates not loaded")
}

func TestLoadTemplatesFromFS_Broken(t *testing.T) {
	saved := pages
	t.Cleanup(func() { pages = saved })

	fsys := fstest.MapFS{
		"templates/dashboard.html": &fstest.MapFile{Data: []byte("{{.Title")},
	}

	assert.Error(t, loadTemplatesFromFS(fsys, "templates"))
}

func TestFormatCelsius(t *testing.T) {
	assert.Equal(t, "20.0", formatCelsius(20))
	assert.Equal(t, "18.25", formatCelsius(18.25))
	assert.Equal(t, "-0.5", formatCelsius(-0.5))
}

func TestRenderLoading(t *testing.T) {
	require.NoError(t, LoadTemplates())

	var buf bytes.Buffer
	require.NoError(t, RenderLoading(&buf, NewLoadingData("/api/v1/readings", "/api/v1/progress", "/?loaded=1")))
	html := buf.String()

	assert.Contains(t, html, "Fetching current temperatures...")
	assert.Contains(t, html, `id="progress-bar"`)
	assert.Regexp(t, `const readingsPath = "\\?/api\\?/v1\\?/readings";`, html)
	assert.Regexp(t, `const progressPath = "\\?/api\\?/v1\\?/progress";`, html)
	assert.Contains(t, html, "p.fraction")
	assert.NotContains(t, html, "<table")
}
