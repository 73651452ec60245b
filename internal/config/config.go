// Package config loads the bot configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/Soskid107/Hikma-bot-sub000/core/config"
	coredatabase "github.com/Soskid107/Hikma-bot-sub000/core/database"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/format"
)

// QuotesConfig points at the external quote API. An empty URL keeps the
// built-in quote list only.
type QuotesConfig struct {
	BaseURL        string `yaml:"base_url" envconfig:"QUOTES_BASE_URL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"QUOTES_TIMEOUT_SECONDS"`
}

// Timeout returns the request timeout with a sane default.
func (q QuotesConfig) Timeout() time.Duration {
	if q.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(q.TimeoutSeconds) * time.Second
}

// RemindersConfig controls the daily nudge defaults.
type RemindersConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"REMINDERS_ENABLED"`
	// DefaultHour applies to fresh enrollments; nil means 09:00.
	DefaultHour *int `yaml:"default_hour" envconfig:"REMINDERS_DEFAULT_HOUR"`
}

// Hour resolves the default reminder hour.
func (r RemindersConfig) Hour() int {
	return format.DerefInt(r.DefaultHour, 9)
}

// Config aggregates core bot settings with the wellness-specific sections.
type Config struct {
	Core      coreconfig.Config   `yaml:",inline"`
	Database  coredatabase.Config `yaml:"database"`
	Quotes    QuotesConfig        `yaml:"quotes"`
	Reminders RemindersConfig     `yaml:"reminders"`
}

// Load reads the YAML file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if hour := cfg.Reminders.Hour(); hour < 0 || hour > 23 {
		return nil, fmt.Errorf("reminders.default_hour %d out of range", hour)
	}
	return &cfg, nil
}

// CoreConfig exposes the embedded core configuration for the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}
