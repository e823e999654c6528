// internal/config/validate_test.go
package config

import "testing"

// helper to build a valid config quickly
func valid() *Config {
	return &Config{
		Device: DeviceConfig{Address: "/dev/ttyACM0", BaudRate: 115200, TimeoutMs: 100},
		Egram:  EgramConfig{BufferDepth: 12, PollIntervalMs: 10},
		Parameters: map[string]string{
			"mode":             "VVI",
			"lower_rate_limit": "70",
		},
	}
}

// ---- tests ----

func TestValidate_Valid(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ZeroValuesAccepted(t *testing.T) {
	cfg := &Config{Device: DeviceConfig{Address: "COM3"}}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.Device.Address = "  " }},
		{"negative baud", func(c *Config) { c.Device.BaudRate = -9600 }},
		{"negative timeout", func(c *Config) { c.Device.TimeoutMs = -1 }},
		{"negative depth", func(c *Config) { c.Egram.BufferDepth = -1 }},
		{"negative poll", func(c *Config) { c.Egram.PollIntervalMs = -5 }},
		{"negative log size", func(c *Config) { c.Log.MaxSizeMB = -1 }},
		{"empty parameter name", func(c *Config) { c.Parameters[""] = "1" }},
		{"empty parameter value", func(c *Config) { c.Parameters["hysteresis"] = "" }},
		{"duplicate parameter after trim", func(c *Config) { c.Parameters[" mode"] = "AAI" }},
	}

	for _, tc := range cases {
		cfg := valid()
		tc.mutate(cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := &Config{Device: DeviceConfig{Address: " /dev/ttyUSB0 "}}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Device.Address != " /dev/ttyUSB0 " || cfg.Device.BaudRate != 0 {
		t.Fatalf("Validate mutated config: %+v", cfg.Device)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{
		Device:     DeviceConfig{Address: " /dev/ttyUSB0 "},
		Parameters: map[string]string{"mode": " AAI "},
	}

	Normalize(cfg)

	if cfg.Device.Address != "/dev/ttyUSB0" {
		t.Fatalf("address=%q", cfg.Device.Address)
	}
	if cfg.Device.BaudRate != DefaultBaudRate || cfg.Device.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("device defaults not applied: %+v", cfg.Device)
	}
	if cfg.Egram.BufferDepth != DefaultBufferDepth || cfg.Egram.PollIntervalMs != DefaultPollIntervalMs {
		t.Fatalf("egram defaults not applied: %+v", cfg.Egram)
	}
	if cfg.Log.MaxSizeMB != 0 {
		t.Fatalf("log rotation defaults applied without a log file: %+v", cfg.Log)
	}
	if cfg.Parameters["mode"] != "AAI" {
		t.Fatalf("parameter value not trimmed: %q", cfg.Parameters["mode"])
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := valid()
	cfg.Egram.BufferDepth = 3
	cfg.Log = LogConfig{File: "pacectl.log", MaxBackups: 7}

	Normalize(cfg)

	if cfg.Egram.BufferDepth != 3 {
		t.Fatalf("buffer_depth overwritten: %d", cfg.Egram.BufferDepth)
	}
	if cfg.Log.MaxBackups != 7 || cfg.Log.MaxSizeMB != DefaultLogMaxSizeMB {
		t.Fatalf("log=%+v", cfg.Log)
	}
	if cfg.Device.Timeout().Milliseconds() != 100 {
		t.Fatalf("Timeout()=%v", cfg.Device.Timeout())
	}
}

func TestNormalize_TrimsParameterNames(t *testing.T) {
	cfg := &Config{
		Device:     DeviceConfig{Address: "/dev/ttyACM0"},
		Parameters: map[string]string{" mode ": "VVI", "lower_rate_limit\t": " 70"},
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Normalize(cfg)

	if len(cfg.Parameters) != 2 || cfg.Parameters["mode"] != "VVI" || cfg.Parameters["lower_rate_limit"] != "70" {
		t.Fatalf("parameters=%q", cfg.Parameters)
	}
}
