package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"temperature-map/internal/models"
	"temperature-map/pkg/observe"
)

// Refresher is the part of the temperature service the warm-up job drives.
type Refresher interface {
	Refresh()
	Readings(ctx context.Context) (models.ReadingSet, error)
}

// Warmer refetches readings on a cron schedule so page loads find a warm cache.
type Warmer struct {
	cron     *cron.Cron
	schedule string
	service  Refresher
	l        *observe.Logger
}

// NewWarmer returns nil when schedule is empty: warm-up is opt-in.
func NewWarmer(schedule string, service Refresher, l *observe.Logger) (*Warmer, error) {
	if schedule == "" {
		return nil, nil
	}

	w := &Warmer{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.PrintfLogger(l)),
		)),
		schedule: schedule,
		service:  service,
		l:        l,
	}

	if _, err := w.cron.AddFunc(schedule, w.Warm); err != nil {
		return nil, err
	}

	return w, nil
}

// Warm invalidates the cache and runs a fetch cycle right away.
func (w *Warmer) Warm() {
	w.service.Refresh()

	set, err := w.service.Readings(context.Background())
	if err != nil {
		w.l.Error(err, map[string]any{"job": "warmup"})
		return
	}

	w.l.Info("cache warmed", map[string]any{
		"job":      "warmup",
		"readings": len(set),
	})
}

func (w *Warmer) Start() {
	w.l.Info("warm-up scheduled", map[string]any{"schedule": w.schedule})
	w.cron.Start()
}

// Stop waits for a running job to finish.
func (w *Warmer) Stop() {
	<-w.cron.Stop().Done()
}
