// internal/status/snapshot.go
package status

import (
	"fmt"
	"time"
)

// Snapshot is the link state at one instant.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health     uint16
	LastError  string    // empty when healthy
	ErrorSince time.Time // zero when healthy
	Failures   uint32    // consecutive failed operations
}

// SecondsInError is how long the link has been failing, as of now.
func (s Snapshot) SecondsInError(now time.Time) uint16 {
	if s.ErrorSince.IsZero() {
		return 0
	}
	secs := now.Sub(s.ErrorSince) / time.Second
	if secs > 65535 {
		return 65535
	}
	return uint16(secs)
}

func (s Snapshot) String() string {
	if s.LastError == "" {
		return HealthName(s.Health)
	}
	return fmt.Sprintf("%s (failures=%d): %s", HealthName(s.Health), s.Failures, s.LastError)
}
