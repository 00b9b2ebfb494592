package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temperature-map/internal/models"
	"temperature-map/pkg/observe"
)

type fakeRefresher struct {
	mu        sync.Mutex
	calls     []string
	err       error
	readingCh chan struct{}
}

func (f *fakeRefresher) Refresh() {
	f.mu.Lock()
	f.calls = append(f.calls, "refresh")
	f.mu.Unlock()
}

func (f *fakeRefresher) Readings(ctx context.Context) (models.ReadingSet, error) {
	f.mu.Lock()
	f.calls = append(f.calls, "readings")
	f.mu.Unlock()
	if f.readingCh != nil {
		select {
		case f.readingCh <- struct{}{}:
		default:
		}
	}
	return models.ReadingSet{{Name: "Tokyo", Temperature: 20, Elevation: 60000}}, f.err
}

func (f *fakeRefresher) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func TestNewWarmer_Disabled(t *testing.T) {
	w, err := NewWarmer("", &fakeRefresher{}, observe.NewZapLogger("test-app"))

	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestNewWarmer_InvalidSchedule(t *testing.T) {
	_, err := NewWarmer("whenever", &fakeRefresher{}, observe.NewZapLogger("test-app"))

	assert.Error(t, err)
}

func TestWarmer_Warm(t *testing.T) {
	var logs bytes.Buffer
	service := &fakeRefresher{}
	w, err := NewWarmer("@every 10m", service, observe.NewZapLogger("test-app", &logs))
	require.NoError(t, err)

	w.Warm()

	assert.Equal(t, []string{"refresh", "readings"}, service.snapshot())
	assert.Contains(t, logs.String(), "cache warmed")
}

func TestWarmer_WarmError(t *testing.T) {
	var logs bytes.Buffer
	service := &fakeRefresher{err: errors.New("upstream down")}
	w, err := NewWarmer("@every 10m", service, observe.NewZapLogger("test-app", &logs))
	require.NoError(t, err)

	w.Warm()

	assert.Contains(t, logs.String(), "upstream down")
	assert.NotContains(t, logs.String(), "cache warmed")
}

func TestWarmer_StartRunsJob(t *testing.T) {
	service := &fakeRefresher{readingCh: make(chan struct{}, 1)}
	w, err := NewWarmer("@every 1s", service, observe.NewZapLogger("test-app"))
	require.NoError(t, err)

	w.Start()
	defer w.Stop()

	select {
	case <-service.readingCh:
	case <-time.After(3 * time.Second):
		t.Fatal("warm-up job did not run")
	}
	assert.Equal(t, "refresh", service.snapshot()[0])
}
