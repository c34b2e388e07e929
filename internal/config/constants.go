package config

import "time"

const (
	envPort               = "PORT"
	envProvider           = "PROVIDER"
	envPreload            = "PRELOAD_ENABLED"
	envPreloadConcurrency = "PRELOAD_CONCURRENCY"
	envListRetry          = "LIST_RETRY_INTERVAL"
	envAdminToken         = "ADMIN_TOKEN"
	envLogLevel           = "LOG_LEVEL"
	envLogFormat          = "LOG_FORMAT"
	envMetricsPort        = "METRICS_PORT"
	envMetricsOn          = "METRICS_ENABLED"
	envOtelEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService        = "OTEL_SERVICE_NAME"
	envOtelInsecure       = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "pokeapi"
	defaultPreload  = true
	// Detail fan-out width; PokeAPI asks clients to be gentle.
	defaultPreloadConcurrency = 8
	defaultListRetry          = 30 * time.Second
	defaultLogLevel           = "info"
	defaultLogFormat          = "json"
	defaultMetricsPort        = "9090"
	defaultServiceName        = "pokedex-service"
)
