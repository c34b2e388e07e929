package config

import (
	"os"
	"time"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port     string
	Provider string
	PokeAPI  PokeAPIConfig
	Preload  PreloadConfig
	Metrics  MetricsConfig
	Log      LogConfig

	// AdminToken guards the refresh endpoint when non-empty.
	AdminToken string
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// PreloadConfig controls the background detail fan-out after the list load.
type PreloadConfig struct {
	Enabled     bool
	Concurrency int

	// RetryInterval spaces list attempts until the first one succeeds.
	RetryInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		PokeAPI:  loadPokeAPI(),
		Preload: PreloadConfig{
			Enabled:       boolEnvOrDefault(envPreload, defaultPreload),
			Concurrency:   intEnvOrDefault(envPreloadConcurrency, defaultPreloadConcurrency),
			RetryInterval: durationEnvOrDefault(envListRetry, defaultListRetry),
		},
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		AdminToken: os.Getenv(envAdminToken),
	}
}
