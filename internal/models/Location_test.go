package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefecturalCapitals(t *testing.T) {
	locations := PrefecturalCapitals()

	assert.Len(t, locations, 47)
	assert.Equal(t, Location{Name: "Sapporo", Latitude: 43.0621, Longitude: 141.3544}, locations[0])
	assert.Equal(t, Location{Name: "Naha", Latitude: 26.2124, Longitude: 127.6809}, locations[46])

	seen := make(map[string]bool, len(locations))
	for _, loc := range locations {
		assert.False(t, seen[loc.Name], "duplicate location %s", loc.Name)
		seen[loc.Name] = true
		assert.True(t, loc.Latitude > 20 && loc.Latitude < 46, "latitude of %s out of range", loc.Name)
		assert.True(t, loc.Longitude > 122 && loc.Longitude < 154, "longitude of %s out of range", loc.Name)
	}
}

func TestPrefecturalCapitals_ReturnsCopy(t *testing.T) {
	locations := PrefecturalCapitals()
	locations[0].Name = "Mutated"

	assert.Equal(t, "Sapporo", PrefecturalCapitals()[0].Name)
}
