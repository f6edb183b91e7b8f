// Package config reads modelgen settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven defaults for the CLI. Flags override
// these values.
type Config struct {
	LogLevel    string        `env:"MODELGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"MODELGEN_LOG_FORMAT" envDefault:"text"`
	AllowHTTP   bool          `env:"MODELGEN_ALLOW_HTTP" envDefault:"false"`
	HTTPTimeout time.Duration `env:"MODELGEN_HTTP_TIMEOUT" envDefault:"10s"`
	Lenient     bool          `env:"MODELGEN_LENIENT" envDefault:"false"`
	Renderer    string        `env:"MODELGEN_RENDERER" envDefault:"cpp"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config for the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
