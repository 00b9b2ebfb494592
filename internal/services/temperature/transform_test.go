package temperature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"temperature-map/internal/models"
)

func TestApplyElevation(t *testing.T) {
	tokyo := models.Location{Name: "Tokyo", Latitude: 35.6895, Longitude: 139.6917}
	sapporo := models.Location{Name: "Sapporo", Latitude: 43.0621, Longitude: 141.3544}
	in := models.ReadingSet{
		models.NewReading(tokyo, 20.0),
		models.NewReading(sapporo, -2.5),
	}

	out := ApplyElevation(in)

	assert.Equal(t, models.ReadingSet{
		{Name: "Tokyo", Latitude: 35.6895, Longitude: 139.6917, Temperature: 20.0, Elevation: 60000.0},
		{Name: "Sapporo", Latitude: 43.0621, Longitude: 141.3544, Temperature: -2.5, Elevation: -7500.0},
	}, out)
	assert.Zero(t, in[0].Elevation, "input must not be modified")
}

func TestApplyElevation_Empty(t *testing.T) {
	out := ApplyElevation(nil)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCollect(t *testing.T) {
	tokyo := models.Location{Name: "Tokyo"}
	osaka := models.Location{Name: "Osaka"}
	results := []Result{
		{Reading: models.NewReading(tokyo, 20)},
		{Err: &FetchError{Location: osaka, Err: assert.AnError}},
	}

	set := Collect(results)

	assert.Equal(t, models.ReadingSet{models.NewReading(tokyo, 20)}, set)
}

func TestFetchError(t *testing.T) {
	err := &FetchError{Location: models.Location{Name: "Osaka"}, Err: assert.AnError}

	assert.Equal(t, "fetch Osaka: "+assert.AnError.Error(), err.Error())
	assert.ErrorIs(t, err, assert.AnError)
}
