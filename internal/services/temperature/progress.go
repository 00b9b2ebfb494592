package temperature

import "sync"

// ProgressSnapshot describes the fetch cycle that is running, or the last one.
type ProgressSnapshot struct {
	CycleID  string  `json:"cycle_id" example:"5f0c6d1e-8a43-4b0b-9a53-0a1f1f0c2b7e"`
	Running  bool    `json:"running" example:"true"`
	Done     int     `json:"done" example:"12"`
	Total    int     `json:"total" example:"47"`
	Fraction float64 `json:"fraction" example:"0.255"` // Done/Total, 0 when nothing is known
}

type progressTracker struct {
	mu      sync.RWMutex
	current ProgressSnapshot
}

func (t *progressTracker) start(cycleID string, total int) {
	t.mu.Lock()
	t.current = ProgressSnapshot{CycleID: cycleID, Running: true, Total: total}
	t.mu.Unlock()
}

func (t *progressTracker) advance(done, total int) {
	t.mu.Lock()
	t.current.Done = done
	t.current.Total = total
	t.mu.Unlock()
}

func (t *progressTracker) finish() {
	t.mu.Lock()
	t.current.Running = false
	t.mu.Unlock()
}

func (t *progressTracker) snapshot() ProgressSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p := t.current
	if p.Total > 0 {
		p.Fraction = float64(p.Done) / float64(p.Total)
	}
	return p
}
