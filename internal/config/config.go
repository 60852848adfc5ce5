package config

import (
	"github.com/caarlos0/env/v11"

	"trendlink/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment. Anything other than
	// "prod" enables development error reporting.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Rate configures the per-IP request rate limit.
	Rate configs.RateLimit `envPrefix:"RATE_"`
}

// Dev reports whether development error reporting should be enabled.
func (c Config) Dev() bool {
	return c.Env != "prod"
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
