// internal/config/config.go
package config

type Config struct {
	Device     DeviceConfig      `yaml:"device"`
	Egram      EgramConfig       `yaml:"egram"`
	Log        LogConfig         `yaml:"log"`
	Parameters map[string]string `yaml:"parameters"` // name -> text, applied over nominal values
}

// ---- DEVICE ----

type DeviceConfig struct {
	Address   string `yaml:"address"`
	BaudRate  int    `yaml:"baud_rate"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- EGRAM ----

type EgramConfig struct {
	BufferDepth    int `yaml:"buffer_depth"`     // reads per decoding pass
	PollIntervalMs int `yaml:"poll_interval_ms"` // consumer poll period
}

// ---- LOG ----

// LogConfig selects a rotating log file. An empty File logs to stderr.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}
