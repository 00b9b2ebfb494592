package temperature

import (
	"context"
	"fmt"

	"temperature-map/internal/models"
	"temperature-map/internal/repositories"
	"temperature-map/pkg/observe"
)

// FetchError is the single failure kind of a fetch cycle: whatever went
// wrong for one location (transport, status, body) wrapped with its name.
type FetchError struct {
	Location models.Location
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Location.Name, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result is the outcome for one location: either Reading or Err is set.
type Result struct {
	Reading models.Reading
	Err     *FetchError
}

func (r Result) OK() bool {
	return r.Err == nil
}

// ProgressFunc is called after every location with the number attempted so far.
type ProgressFunc func(done, total int)

// Fetcher walks the location table one request at a time.
type Fetcher struct {
	repo      repositories.TemperatureRepository
	locations []models.Location
	l         *observe.Logger
}

func NewFetcher(repo repositories.TemperatureRepository, locations []models.Location, l *observe.Logger) *Fetcher {
	return &Fetcher{
		repo:      repo,
		locations: locations,
		l:         l,
	}
}

func (f *Fetcher) Locations() []models.Location {
	return f.locations
}

// FetchAll tries every location in table order and returns one Result each.
// It never stops early and issues no retries.
func (f *Fetcher) FetchAll(ctx context.Context, progress ProgressFunc) []Result {
	total := len(f.locations)
	results := make([]Result, 0, total)

	for i, loc := range f.locations {
		temp, err := f.repo.FetchCurrentTemperature(ctx, loc.Latitude, loc.Longitude)
		if err != nil {
			fetchErr := &FetchError{Location: loc, Err: err}
			f.l.Warning("failed to fetch temperature", map[string]any{
				"repo":     f.repo.Name(),
				"location": loc.Name,
				"err":      err.Error(),
			})
			results = append(results, Result{Err: fetchErr})
		} else {
			results = append(results, Result{Reading: models.NewReading(loc, temp)})
		}

		if progress != nil {
			progress(i+1, total)
		}
	}

	return results
}

// Collect keeps the successful readings in order. Failures leave no trace in the set.
func Collect(results []Result) models.ReadingSet {
	set := make(models.ReadingSet, 0, len(results))
	for _, r := range results {
		if r.OK() {
			set = append(set, r.Reading)
		}
	}
	return set
}
