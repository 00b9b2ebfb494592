package models

// ElevationScale converts degrees Celsius into column height for the 3D map.
const ElevationScale = 3000.0

type Reading struct {
	Name        string  `json:"name" example:"Tokyo"`
	Latitude    float64 `json:"latitude" example:"35.6895"`
	Longitude   float64 `json:"longitude" example:"139.6917"`
	Temperature float64 `json:"temperature" example:"20.0"`
	Elevation   float64 `json:"elevation" example:"60000.0"`
}

// ReadingSet holds the readings of one fetch cycle in location table order.
// Locations whose fetch failed are simply absent.
type ReadingSet []Reading

func NewReading(loc Location, temperature float64) Reading {
	return Reading{
		Name:        loc.Name,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		Temperature: temperature,
	}
}
