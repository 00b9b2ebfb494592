// Package memo caches the result of a single argument-less computation for
// a fixed window, the way a dashboard memoizes its one expensive fetch.
package memo

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const flightKey = "value"

// Entry is a computed value and the moment it was stored.
type Entry[T any] struct {
	Value      T
	ComputedAt time.Time
}

// IsExpired reports whether the entry is older than ttl at now.
// A non-positive ttl expires every entry immediately.
func (e Entry[T]) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.ComputedAt) >= ttl
}

// Memo holds at most one Entry. Concurrent misses share one load, and
// loads never overlap: a load started after Invalidate waits for the one
// in flight to return first.
type Memo[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu         sync.Mutex
	entry      *Entry[T]
	generation uint64

	loading sync.Mutex
	group   singleflight.Group
}

type outcome[T any] struct {
	value T
	hit   bool
}

// New returns an empty Memo. A nil clock defaults to time.Now.
func New[T any](ttl time.Duration, clock func() time.Time) *Memo[T] {
	if clock == nil {
		clock = time.Now
	}
	return &Memo[T]{
		ttl: ttl,
		now: clock,
	}
}

// Peek returns the stored entry without loading, expired or not.
func (m *Memo[T]) Peek() (Entry[T], bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entry == nil {
		return Entry[T]{}, false
	}
	return *m.entry, true
}

// Fresh reports whether a Get right now would be served without loading.
func (m *Memo[T]) Fresh() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.freshLocked()
}

func (m *Memo[T]) freshLocked() bool {
	return m.entry != nil && !m.entry.IsExpired(m.now(), m.ttl)
}

// Get returns the cached value while it is fresh. Otherwise it runs load,
// stores the result and returns it. hit reports whether load was skipped.
// Failed loads are not stored.
func (m *Memo[T]) Get(ctx context.Context, load func(ctx context.Context) (T, error)) (value T, hit bool, err error) {
	m.mu.Lock()
	if m.freshLocked() {
		value = m.entry.Value
		m.mu.Unlock()
		return value, true, nil
	}
	m.mu.Unlock()

	v, err, _ := m.group.Do(flightKey, func() (any, error) {
		m.loading.Lock()
		defer m.loading.Unlock()

		// The load this one queued behind may have stored a usable entry.
		m.mu.Lock()
		if m.freshLocked() {
			cached := m.entry.Value
			m.mu.Unlock()
			return outcome[T]{value: cached, hit: true}, nil
		}
		generation := m.generation
		m.mu.Unlock()

		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		// An Invalidate during the load means this result is already stale.
		if m.generation == generation {
			m.entry = &Entry[T]{Value: loaded, ComputedAt: m.now()}
		}
		m.mu.Unlock()

		return outcome[T]{value: loaded}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	o := v.(outcome[T])
	return o.value, o.hit, nil
}

// Invalidate drops the stored entry so that the next Get reloads.
// A load already in flight still completes for its callers, but its
// result is not stored. Later callers do not join it; their load starts
// once it has returned.
func (m *Memo[T]) Invalidate() {
	m.mu.Lock()
	m.entry = nil
	m.generation++
	m.mu.Unlock()

	m.group.Forget(flightKey)
}
