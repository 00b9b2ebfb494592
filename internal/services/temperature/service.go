package temperature

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"temperature-map/internal/models"
	"temperature-map/pkg/memo"
	"temperature-map/pkg/observe"
)

// DefaultCacheTTL is how long a fetched ReadingSet is served before refetching.
const DefaultCacheTTL = 10 * time.Minute

// TemperatureService serves the memoized ReadingSet and runs fetch cycles on a miss.
type TemperatureService struct {
	fetcher  *Fetcher
	cache    *memo.Memo[models.ReadingSet]
	progress progressTracker
	l        *observe.Logger
}

func NewTemperatureService(fetcher *Fetcher, cache *memo.Memo[models.ReadingSet], l *observe.Logger) *TemperatureService {
	if cache == nil {
		cache = memo.New[models.ReadingSet](DefaultCacheTTL, nil)
	}

	return &TemperatureService{
		fetcher: fetcher,
		cache:   cache,
		l:       l,
	}
}

// Readings returns the cached ReadingSet while it is inside the memo window,
// otherwise it runs a full fetch cycle and caches the result.
func (s *TemperatureService) Readings(ctx context.Context) (models.ReadingSet, error) {
	set, hit, err := s.cache.Get(ctx, s.fetchCycle)
	if err != nil {
		return nil, errors.Wrap(err, "load readings")
	}

	if hit {
		s.l.Debug("serving cached readings", map[string]any{"readings": len(set)})
	}

	return set, nil
}

// Refresh drops the cached ReadingSet; the next Readings call refetches.
func (s *TemperatureService) Refresh() {
	s.cache.Invalidate()
	s.l.Info("readings cache invalidated")
}

// Ready reports whether Readings would answer from the memo without a fetch cycle.
func (s *TemperatureService) Ready() bool {
	return s.cache.Fresh()
}

func (s *TemperatureService) Progress() ProgressSnapshot {
	return s.progress.snapshot()
}

func (s *TemperatureService) Locations() []models.Location {
	return s.fetcher.Locations()
}

// fetchCycle runs detached from the caller's cancellation: concurrent
// callers share the cycle, and a cycle always runs to completion.
func (s *TemperatureService) fetchCycle(ctx context.Context) (models.ReadingSet, error) {
	ctx = context.WithoutCancel(ctx)
	cycleID := uuid.NewString()
	total := len(s.fetcher.Locations())
	started := time.Now()

	s.progress.start(cycleID, total)
	defer s.progress.finish()

	s.l.Info("starting fetch cycle", map[string]any{
		"cycle_id":  cycleID,
		"repo":      s.fetcher.repo.Name(),
		"locations": total,
	})

	results := s.fetcher.FetchAll(ctx, func(done, total int) {
		s.progress.advance(done, total)
		s.l.Debug("fetch progress", map[string]any{
			"cycle_id": cycleID,
			"done":     done,
			"total":    total,
		})
	})

	set := ApplyElevation(Collect(results))

	s.l.Info("completed fetch cycle", map[string]any{
		"cycle_id": cycleID,
		"readings": len(set),
		"failed":   total - len(set),
		"duration": time.Since(started).String(),
	})

	return set, nil
}
