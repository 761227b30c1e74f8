// Package config loads the process configuration from the environment.
//
// The configuration is read exactly once at startup and passed explicitly
// to the components that need it.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the process wide configuration.
type Config struct {
	// Path of the SQLite database file.
	DBPath string `env:"DB_PATH" envDefault:"data/finance-control.db"`

	// Origins allowed for cross-origin requests, comma separated.
	// CORS headers are only sent when at least one origin is configured.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS"`

	// Serve pprof profiles under /debug/pprof.
	EnablePprof bool `env:"ENABLE_PPROF"`

	// Mode the gin framework runs in. We use release as the default for
	// security reasons.
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// Log format, "human" for a console writer, everything else is JSON.
	LogFormat string `env:"LOG_FORMAT"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config

	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
