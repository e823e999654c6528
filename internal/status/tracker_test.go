// internal/status/tracker_test.go
package status

import (
	"errors"
	"testing"
	"time"
)

func TestTracker_StartsUnknown(t *testing.T) {
	tr := NewTracker()

	if s := tr.Snapshot(); s.Health != HealthUnknown || s.String() != "unknown" {
		t.Fatalf("initial snapshot=%+v", s)
	}
}

func TestTracker_ErrorThenRecovery(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker()
	tr.now = func() time.Time { return base }

	if !tr.Observe(errors.New("no such device")) {
		t.Fatalf("first error should change health")
	}
	if tr.Observe(errors.New("still gone")) {
		t.Fatalf("repeated error should not change health")
	}

	s := tr.Snapshot()
	if s.Health != HealthError || s.Failures != 2 || s.LastError != "still gone" {
		t.Fatalf("snapshot=%+v", s)
	}
	if !s.ErrorSince.Equal(base) {
		t.Fatalf("error_since moved on repeated error: %v", s.ErrorSince)
	}
	if got := s.SecondsInError(base.Add(90 * time.Second)); got != 90 {
		t.Fatalf("SecondsInError=%d want=90", got)
	}

	if !tr.Observe(nil) {
		t.Fatalf("recovery should change health")
	}
	s = tr.Snapshot()
	if s.Health != HealthOK || s.Failures != 0 || s.LastError != "" || !s.ErrorSince.IsZero() {
		t.Fatalf("recovery did not reset error state: %+v", s)
	}
}

func TestSnapshot_SecondsInErrorSaturates(t *testing.T) {
	now := time.Now()
	s := Snapshot{Health: HealthError, ErrorSince: now.Add(-48 * time.Hour)}

	if got := s.SecondsInError(now); got != 65535 {
		t.Fatalf("SecondsInError=%d want=65535", got)
	}
}

func TestTracker_Streaming(t *testing.T) {
	tr := NewTracker()
	tr.Observe(errors.New("boom"))
	tr.Streaming()

	if s := tr.Snapshot(); s.Health != HealthStreaming || s.Failures != 0 {
		t.Fatalf("snapshot=%+v", s)
	}
}
