package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"

	"temperature-map/internal/models"
)

//go:embed templates/*.html
var viewsFS embed.FS

var pages *template.Template

var funcs = template.FuncMap{
	"celsius": formatCelsius,
}

// loadTemplatesFromFS loads page templates from the given fs and dir.
// Tests use it to simulate broken template sets.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	pages = tmpl
	return nil
}

// LoadTemplates parses the embedded templates. Call it during startup; if
// it fails, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// MapView is the initial deck.gl camera.
type MapView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
}

// ColumnStyle is shared by every column of the ColumnLayer.
type ColumnStyle struct {
	Radius    float64 `json:"radius"`
	FillColor [4]int  `json:"fillColor"`
}

// MapPoint is one column; field names are what the page script reads.
type MapPoint struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	Temperature float64 `json:"temperature"`
	Elevation   float64 `json:"elevation"`
	// Label is the temperature as the table prints it.
	Label       string  `json:"label"`
}

type TableRow struct {
	Name        string
	Temperature float64
}

type DashboardData struct {
	Title       string
	TableTitle  string
	MapTitle    string
	TableHeight int
	Rows        []TableRow
	Points      []MapPoint
	View        MapView
	Column      ColumnStyle
	RefreshPath string
}

// LoadingData drives the page served while no fresh readings exist: it
// reports cycle progress and reloads ReadyPath once readings are in.
type LoadingData struct {
	Title          string
	Message        string
	FailureMessage string
	ReadingsPath   string
	ProgressPath   string
	ReadyPath      string
}

const dashboardTitle = "Current temperature across Japan: 3D column map"

// Japan fits the viewport at this camera.
var defaultView = MapView{
	Latitude:  36.0,
	Longitude: 138.0,
	Zoom:      4.5,
	Pitch:     45,
	Bearing:   0,
}

var defaultColumn = ColumnStyle{
	Radius:    10000,
	FillColor: [4]int{255, 100, 0, 180},
}

// NewDashboardData builds the table and the map from the same ReadingSet.
func NewDashboardData(set models.ReadingSet) *DashboardData {
	rows := make([]TableRow, 0, len(set))
	points := make([]MapPoint, 0, len(set))
	for _, r := range set {
		rows = append(rows, TableRow{Name: r.Name, Temperature: r.Temperature})
		points = append(points, MapPoint{
			Name:        r.Name,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			Temperature: r.Temperature,
			Elevation:   r.Elevation,
			Label:       formatCelsius(r.Temperature),
		})
	}

	return &DashboardData{
		Title:       dashboardTitle,
		TableTitle:  "Temperatures",
		MapTitle:    "3D column map",
		TableHeight: 600,
		Rows:        rows,
		Points:      points,
		View:        defaultView,
		Column:      defaultColumn,
		RefreshPath: "/refresh",
	}
}

func NewLoadingData(readingsPath, progressPath, readyPath string) *LoadingData {
	return &LoadingData{
		Title:          dashboardTitle,
		Message:        "Fetching current temperatures...",
		FailureMessage: "Fetching temperatures failed. Reload the page to try again.",
		ReadingsPath:   readingsPath,
		ProgressPath:   progressPath,
		ReadyPath:      readyPath,
	}
}

func RenderDashboard(w io.Writer, data *DashboardData) error {
	return render(w, "dashboard.html", data)
}

func RenderLoading(w io.Writer, data *LoadingData) error {
	return render(w, "loading.html", data)
}

func render(w io.Writer, name string, data any) error {
	if pages == nil {
		return errors.New("page templates not loaded: call views.LoadTemplates during startup")
	}
	return pages.ExecuteTemplate(w, name, data)
}
