package config

import (
	"fmt"

	"github.com/caarlos0/env/v7"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port  string `env:"PORT" envDefault:"8000"`
	Debug bool   `env:"DEBUG" envDefault:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses application configuration from environment variables.
// Configuration shapes the server only; response payloads never depend on it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config - Load - Parse: %w", err)
	}
	return cfg, nil
}
