// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
//
// Zero numeric values are accepted; Normalize replaces them with defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	// ------------------------------------------------------------
	// DEVICE
	// ------------------------------------------------------------

	if strings.TrimSpace(cfg.Device.Address) == "" {
		return fmt.Errorf("device: address required")
	}
	if cfg.Device.BaudRate < 0 {
		return fmt.Errorf("device: baud_rate must be positive (got %d)", cfg.Device.BaudRate)
	}
	if cfg.Device.TimeoutMs < 0 {
		return fmt.Errorf("device: timeout_ms must be positive (got %d)", cfg.Device.TimeoutMs)
	}

	// ------------------------------------------------------------
	// EGRAM
	// ------------------------------------------------------------

	if cfg.Egram.BufferDepth < 0 {
		return fmt.Errorf("egram: buffer_depth must be positive (got %d)", cfg.Egram.BufferDepth)
	}
	if cfg.Egram.PollIntervalMs < 0 {
		return fmt.Errorf("egram: poll_interval_ms must be positive (got %d)", cfg.Egram.PollIntervalMs)
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log: rotation limits must not be negative")
	}

	// ------------------------------------------------------------
	// PARAMETERS
	// ------------------------------------------------------------

	// Names and values are checked against the registry when applied.
	// Normalize trims names, so two spellings of one name collide.
	seen := make(map[string]string, len(cfg.Parameters))
	for name, text := range cfg.Parameters {
		key := strings.TrimSpace(name)
		if key == "" {
			return fmt.Errorf("parameters: empty parameter name")
		}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("parameters: %q and %q name the same parameter", prev, name)
		}
		seen[key] = name
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("parameters: %q has an empty value", name)
		}
	}

	return nil
}
