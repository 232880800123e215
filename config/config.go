// Package config provides environment configuration for the workshop API.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment configuration for the application.
type Config struct {
	Port         int           `env:"PORT"          envDefault:"8080"`
	DatabaseURL  string        `env:"DATABASE_URL"  envDefault:"file:workshops.db?cache=shared&mode=rwc"`
	JWTKey       string        `env:"JWT_KEY"`
	JWTIssuer    string        `env:"JWT_ISSUER"    envDefault:"workshop-api"`
	JWTAudience  string        `env:"JWT_AUDIENCE"  envDefault:"workshop-api-clients"`
	TokenTTL     time.Duration `env:"TOKEN_TTL"     envDefault:"1h"`
	DemoPassword string        `env:"DEMO_PASSWORD"`
	LogLevel     string        `env:"LOG_LEVEL"     envDefault:"info"`
}

// Load parses environment variables into a Config and validates the
// required secrets. A missing signing key or connection string is fatal at
// startup.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTKey == "" {
		return nil, errors.New("JWT_KEY is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return cfg, nil
}
