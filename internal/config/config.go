// Package config loads the process configuration from environment variables,
// optionally seeded from a .env file in the working directory.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-driven setting of the helius command line tool.
type Config struct {
	APIKey           string        `envconfig:"HELIUS_API_KEY" required:"true"`
	Cluster          string        `envconfig:"HELIUS_CLUSTER" default:"mainnet-beta"`
	HTTPTimeout      time.Duration `envconfig:"HELIUS_HTTP_TIMEOUT" default:"5s"`
	HTTPRetryMax     int           `envconfig:"HELIUS_HTTP_RETRY_MAX" default:"2"`
	MaxMintlistPages int           `envconfig:"HELIUS_MAX_MINTLIST_PAGES" default:"0"`
	LogLevel         string        `envconfig:"HELIUS_LOG_LEVEL" default:"info"`
	TelemetryEnabled bool          `envconfig:"HELIUS_TELEMETRY_ENABLED" default:"false"`
	ServiceName      string        `envconfig:"HELIUS_SERVICE_NAME" default:"helius-cli"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment take precedence over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
