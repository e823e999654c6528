// internal/status/tracker.go
package status

import (
	"sync"
	"time"
)

// Tracker folds operation outcomes into a Snapshot.
// Safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	snap Snapshot
	now  func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// Observe records the outcome of one link operation.
// It reports whether the health code changed.
func (t *Tracker) Observe(err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.snap.Health

	if err == nil {
		// Recovery / OK
		t.snap = Snapshot{Health: HealthOK}
		return prev != HealthOK
	}

	if t.snap.Health != HealthError {
		t.snap.Health = HealthError
		t.snap.ErrorSince = t.now()
	}
	t.snap.LastError = err.Error()
	t.snap.Failures++

	return prev != HealthError
}

// Streaming marks the link as owned by a reader.
// The next Observe replaces it.
func (t *Tracker) Streaming() {
	t.mu.Lock()
	t.snap = Snapshot{Health: HealthStreaming}
	t.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}
