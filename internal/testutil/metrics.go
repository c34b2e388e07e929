package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/preston-bernstein/pokedex-service/internal/metrics"
)

// NewRecorderWithShutdown returns an in-memory recorder and a no-op shutdown.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}

// NewScrapedRecorder returns an otel-backed recorder plus a scrape func that
// returns the Prometheus exposition text. The meter provider is shut down on cleanup.
func NewScrapedRecorder(t *testing.T) (*metrics.Recorder, func() string) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "pokedex-test",
	})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	scrape := func() string {
		rr := Serve(handler, http.MethodGet, "/metrics", nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("scrape returned %d", rr.Code)
		}
		return rr.Body.String()
	}
	return rec, scrape
}

