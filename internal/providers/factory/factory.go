package factory

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/pokedex-service/internal/config"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
	"github.com/preston-bernstein/pokedex-service/internal/providers/fixture"
	"github.com/preston-bernstein/pokedex-service/internal/providers/pokeapi"
)

const (
	ProviderPokeAPI = "pokeapi"
	ProviderFixture = "fixture"
)

// Factory assembles the configured provider with the shared wrappers
// (retry, then in-flight coalescing on top).
type Factory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New returns a Factory that logs and records through the given sinks.
func New(logger *slog.Logger, recorder *metrics.Recorder) Factory {
	return Factory{logger: logger, metrics: recorder}
}

// Build selects the base provider from cfg and wraps it.
func (f Factory) Build(cfg config.Config) providers.Provider {
	return f.Wrap(cfg.Provider, Select(cfg, f.logger))
}

// Wrap decorates an already constructed provider.
func (f Factory) Wrap(name string, base providers.Provider) providers.Provider {
	retrying := providers.NewRetryingProvider(base, f.logger, f.metrics, NormalizeName(name, base), 0, 0)
	return providers.NewCoalescingProvider(retrying, f.logger)
}

// Select returns the unwrapped provider named by cfg.Provider. Unknown names fall back to the fixture.
func Select(cfg config.Config, logger *slog.Logger) providers.Provider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderPokeAPI, "":
		return pokeapi.NewClient(pokeapi.Config{
			BaseURL: cfg.PokeAPI.BaseURL,
			Timeout: cfg.PokeAPI.Timeout,
		})
	case ProviderFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// NormalizeName returns a lower-cased provider name, deriving it from the
// instance when not explicitly configured. Keeps naming consistent in metrics and logs.
func NormalizeName(raw string, provider providers.Provider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
