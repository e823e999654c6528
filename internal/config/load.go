// internal/config/load.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides. They win over the YAML file.
const (
	EnvPath    = "PACEMAKER_ENV_PATH"
	EnvPort    = "PACEMAKER_PORT"
	EnvBaud    = "PACEMAKER_BAUD"
	EnvLogFile = "PACEMAKER_LOG_FILE"
)

const defaultEnvFile = ".env"

// Load reads the YAML file at path, then applies overrides from the
// process environment and the optional .env file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := loadEnvFile(); err != nil {
		return nil, err
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadEnvFile populates the environment from the .env file.
// Variables already set in the process are not overwritten.
// A missing file is not an error.
func loadEnvFile() error {
	envPath := defaultEnvFile
	if p := os.Getenv(EnvPath); p != "" {
		envPath = p
	}

	err := godotenv.Load(envPath)
	if err == nil {
		log.Printf("config: loaded env file %s", envPath)
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: env file %s: %w", envPath, err)
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		cfg.Device.Address = v
		log.Printf("config: env override %s=%s", EnvPort, v)
	}

	if v := os.Getenv(EnvBaud); v != "" {
		baud, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvBaud, v, err)
		}
		cfg.Device.BaudRate = baud
		log.Printf("config: env override %s=%d", EnvBaud, baud)
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
		log.Printf("config: env override %s=%s", EnvLogFile, v)
	}

	return nil
}
