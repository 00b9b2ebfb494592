package temperature

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temperature-map/internal/models"
	"temperature-map/pkg/observe"
)

type stubRepository struct {
	temps map[float64]float64 // keyed by latitude
}

func (s stubRepository) Name() string { return "stub" }

func (s stubRepository) FetchCurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	temp, ok := s.temps[lat]
	if !ok {
		return 0, errors.New("no data")
	}
	return temp, nil
}

func TestFetcher_FetchAll(t *testing.T) {
	locations := []models.Location{
		{Name: "Tokyo", Latitude: 35.6895, Longitude: 139.6917},
		{Name: "Osaka", Latitude: 34.6937, Longitude: 135.5023},
		{Name: "Naha", Latitude: 26.2124, Longitude: 127.6809},
	}
	repo := stubRepository{temps: map[float64]float64{35.6895: 20.0, 26.2124: 28.1}}
	f := NewFetcher(repo, locations, observe.NewZapLogger("test-app"))

	var progress [][2]int
	results := f.FetchAll(context.Background(), func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})

	require.Len(t, results, 3)
	assert.True(t, results[0].OK())
	assert.Equal(t, models.Reading{Name: "Tokyo", Latitude: 35.6895, Longitude: 139.6917, Temperature: 20.0}, results[0].Reading)

	assert.False(t, results[1].OK())
	assert.Equal(t, "Osaka", results[1].Err.Location.Name)
	assert.EqualError(t, results[1].Err, "fetch Osaka: no data")

	assert.True(t, results[2].OK())
	assert.Equal(t, 28.1, results[2].Reading.Temperature)

	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress)
}

func TestFetcher_FetchAll_NilProgress(t *testing.T) {
	locations := []models.Location{{Name: "Tokyo", Latitude: 35.6895, Longitude: 139.6917}}
	f := NewFetcher(stubRepository{}, locations, observe.NewZapLogger("test-app"))

	results := f.FetchAll(context.Background(), nil)

	require.Len(t, results, 1)
	assert.False(t, results[0].OK())
}

func TestProgressTracker_Fraction(t *testing.T) {
	var tracker progressTracker
	assert.Equal(t, 0.0, tracker.snapshot().Fraction)

	tracker.start("cycle", 4)
	tracker.advance(2, 4)
	p := tracker.snapshot()
	assert.True(t, p.Running)
	assert.Equal(t, 0.5, p.Fraction)

	tracker.finish()
	assert.False(t, tracker.snapshot().Running)
}
