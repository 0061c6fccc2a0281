// Package config loads bot credentials and transport settings from a
// JSON file with a QGUILD_* environment overlay. Environment values win
// over file values.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything needed to construct an API client.
type Config struct {
	AppID          string `json:"app_id" env:"QGUILD_APP_ID"`
	Token          string `json:"token" env:"QGUILD_TOKEN"`
	Sandbox        bool   `json:"sandbox" env:"QGUILD_SANDBOX"`
	TimeoutSeconds int    `json:"timeout_seconds" env:"QGUILD_TIMEOUT_SECONDS"`
}

// DefaultConfig returns a config with defaults applied and no
// credentials.
func DefaultConfig() *Config {
	return &Config{TimeoutSeconds: 10}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".qguild", "config.json")
}

// Load reads the config file at path (an empty path skips the file),
// applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the credential pair is present.
func (c *Config) Validate() error {
	if c.AppID == "" {
		return errors.New("app_id is required (app_id field or QGUILD_APP_ID)")
	}
	if c.Token == "" {
		return errors.New("token is required (token field or QGUILD_TOKEN)")
	}
	return nil
}

// Timeout returns the per-request timeout, falling back to the default
// when unset or nonsensical.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
