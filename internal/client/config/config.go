package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - ServerBaseURL: root of the backend API, every endpoint path is joined to it.
//   - RequestTimeout: upper bound for one API call, 0 disables it.
//   - StateDBPath: SQLite file holding the persisted session.
//   - LogLevel, LogFormat: diagnostics written to stderr.
//   - MetricsAddr: when set, Prometheus metrics are served there on /metrics.
type Config struct {
	ServerBaseURL  string        `env:"SERVER_BASE_URL" validate:"required,url"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"min=0"`
	StateDBPath    string        `env:"STATE_DB_PATH" validate:"required"`
	LogLevel       string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat      string        `env:"LOG_FORMAT" validate:"oneof=text json"`
	MetricsAddr    string        `env:"METRICS_ADDR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.StateDBPath = "portal.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.MetricsAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), PORTAL_* environment variables and command-line flags.
// Later sources take precedence over earlier ones. The result is validated.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
