// internal/status/constants.go
package status

// Link health codes.
// Values are stable; they are printed and logged as numbers.

// ---- HEALTH CODES ----

// HealthUnknown represents the state before the first link operation.
const HealthUnknown uint16 = 0

// HealthOK represents a link whose last operation succeeded.
const HealthOK uint16 = 1

// HealthError represents a link whose last operation failed.
const HealthError uint16 = 2

// HealthStreaming represents a link owned by a running egram reader.
const HealthStreaming uint16 = 3

// HealthName returns a short label for a health code.
func HealthName(h uint16) string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	case HealthStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}
