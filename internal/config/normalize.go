// internal/config/normalize.go
package config

import (
	"strings"
	"time"
)

const (
	DefaultBaudRate       = 115200
	DefaultTimeoutMs      = 100
	DefaultBufferDepth    = 12
	DefaultPollIntervalMs = 10

	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Device.Address = strings.TrimSpace(cfg.Device.Address)
	setDefault(&cfg.Device.BaudRate, DefaultBaudRate)
	setDefault(&cfg.Device.TimeoutMs, DefaultTimeoutMs)

	setDefault(&cfg.Egram.BufferDepth, DefaultBufferDepth)
	setDefault(&cfg.Egram.PollIntervalMs, DefaultPollIntervalMs)

	// rotation limits only matter with a log file
	if cfg.Log.File != "" {
		setDefault(&cfg.Log.MaxSizeMB, DefaultLogMaxSizeMB)
		setDefault(&cfg.Log.MaxBackups, DefaultLogMaxBackups)
		setDefault(&cfg.Log.MaxAgeDays, DefaultLogMaxAgeDays)
	}

	if cfg.Parameters != nil {
		params := make(map[string]string, len(cfg.Parameters))
		for name, text := range cfg.Parameters {
			params[strings.TrimSpace(name)] = strings.TrimSpace(text)
		}
		cfg.Parameters = params
	}
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// Timeout is the per-read serial timeout.
func (d DeviceConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutMs) * time.Millisecond
}

// PollInterval is the consumer poll period.
func (e EgramConfig) PollInterval() time.Duration {
	return time.Duration(e.PollIntervalMs) * time.Millisecond
}
