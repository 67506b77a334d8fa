// Package config loads the server's YAML configuration file. The file maps
// onto the engine Config plus the wiring the binary needs (listen address,
// Postgres DSN, Redis, SMTP relay).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can be written either as Go
// duration strings ("24h", "90s") or as plain integer seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", text, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var seconds int64
	if err := value.Decode(&seconds); err == nil {
		*d = Duration(time.Duration(seconds) * time.Second)
		return nil
	}

	return fmt.Errorf("invalid duration value at line %d", value.Line)
}

// Config holds the mujairauthd configuration file contents.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Redis struct {
		Addr string `yaml:"addr"`
		DB   int    `yaml:"db"`
	} `yaml:"redis"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
	App struct {
		BaseURL string `yaml:"base_url"`
		Secret  string `yaml:"secret"`
		// SessionTTL bounds browser sessions; TokenTTL bounds emailed
		// verification and reset links.
		SessionTTL Duration `yaml:"session_ttl"`
		TokenTTL   Duration `yaml:"token_ttl"`
		// PendingPurgeInterval drives the optional background sweep of
		// expired pending registrations. Zero disables the sweep.
		PendingPurgeInterval Duration `yaml:"pending_purge_interval"`
	} `yaml:"app"`
	Metrics struct {
		Enabled           bool `yaml:"enabled"`
		LatencyHistograms bool `yaml:"latency_histograms"`
		Prometheus        bool `yaml:"prometheus"`
	} `yaml:"metrics"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Redis.Addr = "localhost:6379"
	cfg.SMTP.Port = 587
	cfg.App.BaseURL = "http://localhost:8080"
	cfg.App.SessionTTL = Duration(24 * time.Hour)
	cfg.App.TokenTTL = Duration(time.Hour)
	return cfg
}

// LoadConfig reads the YAML configuration at path, applies defaults for
// absent keys, and validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded file for the settings the binary cannot run
// without. SMTP is optional: with no smtp.host the binary falls back to the
// log mailer.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr required")
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn required")
	}
	if c.Redis.Addr == "" {
		return errors.New("redis.addr required")
	}
	if c.App.Secret == "" {
		return errors.New("app.secret required")
	}
	if len(c.App.Secret) < 32 {
		return errors.New("app.secret must be at least 32 bytes")
	}
	if c.App.BaseURL == "" {
		return errors.New("app.base_url required")
	}
	if c.App.SessionTTL <= 0 {
		return errors.New("app.session_ttl must be positive")
	}
	if c.App.TokenTTL <= 0 {
		return errors.New("app.token_ttl must be positive")
	}
	if c.App.PendingPurgeInterval < 0 {
		return errors.New("app.pending_purge_interval cannot be negative")
	}
	if c.SMTP.Host != "" && c.SMTP.From == "" {
		return errors.New("smtp.from required when smtp.host is set")
	}
	return nil
}
