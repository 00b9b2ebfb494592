package temperature

import "temperature-map/internal/models"

// ApplyElevation returns a copy of set with every Elevation derived from its Temperature.
func ApplyElevation(set models.ReadingSet) models.ReadingSet {
	out := make(models.ReadingSet, len(set))
	for i, r := range set {
		r.Elevation = r.Temperature * models.ElevationScale
		out[i] = r
	}
	return out
}
