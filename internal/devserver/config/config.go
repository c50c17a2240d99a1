// Package config handles configuration for the dev backend.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "PORTAL_DEV_"

// Config holds runtime settings for the dev backend.
//
// Fields:
//   - Addr: HTTP listen address.
//   - BasePath: prefix every API route is mounted under.
//   - JWTSecret: HMAC secret for signing credentials (HS256). Do not use the default outside development.
//   - TokenTTL: credential lifetime.
type Config struct {
	Addr      string        `env:"ADDR" envDefault:":8080" validate:"required"`
	BasePath  string        `env:"BASE_PATH" envDefault:"/api" validate:"required,startswith=/"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"portal-dev-secret-do-not-use-in-prod" validate:"required,min=16"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h" validate:"gt=0"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string        `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

// Load reads PORTAL_DEV_* variables over the defaults and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
