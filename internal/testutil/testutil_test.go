package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
}

func TestFixtureHelpers(t *testing.T) {
	if got := DetailsURL(25); got != "https://pokeapi.co/api/v2/pokemon/25/" {
		t.Fatalf("unexpected details url %q", got)
	}

	s := SampleSummary("pikachu", 25)
	if s.Name != "pikachu" || s.DetailsURL != DetailsURL(25) {
		t.Fatalf("unexpected summary %+v", s)
	}

	d := SampleDetails(4)
	if d.ID != 4 || len(d.Types) != 1 || d.Types[0] != "normal" {
		t.Fatalf("expected default type, got %+v", d)
	}

	p := LoadedPokemon("bulbasaur", 1, "grass", "poison")
	got, ok := p.Details()
	if !ok || !p.Loaded() {
		t.Fatalf("expected loaded entity")
	}
	if got.ID != 1 || len(got.Types) != 2 {
		t.Fatalf("unexpected details %+v", got)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	AssertStatus(t, ServeRequest(handler, req), http.StatusCreated)

	auth := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t0k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	AssertStatus(t, ServeWithBearer(auth, http.MethodPost, "/admin", "t0k"), http.StatusNoContent)
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	if err := sh.ListenAndServe(); err == nil || err.Error() != "boom" {
		t.Fatalf("expected configured listen error, got %v", err)
	}
	if err := sh.Shutdown(context.Background()); err == nil {
		t.Fatalf("expected configured shutdown error")
	}
	if sh.Handler() == nil {
		t.Fatalf("expected not-found handler when none configured")
	}
	if sh.ListenCalls() != 1 || sh.ShutdownCalls() != 1 {
		t.Fatalf("expected one listen and one shutdown, got %d/%d", sh.ListenCalls(), sh.ShutdownCalls())
	}

	unblock := make(chan struct{})
	b := BlockingHTTPServer(unblock)
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := BlockingHTTPServer(make(chan struct{})).Shutdown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled shutdown, got %v", err)
	}

	if err := FailingHTTPServer().ListenAndServe(); !errors.Is(err, ErrListen) {
		t.Fatalf("expected ErrListen, got %v", err)
	}
	if err := ClosedHTTPServer().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchList(ctx, 1); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected list error passthrough")
	}
	if _, err := errProv.FetchDetail(ctx, "u"); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected detail error passthrough")
	}

	empty := EmptyProvider{}
	if got, err := empty.FetchList(ctx, 10); err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v err %v", got, err)
	}

	unavail := UnavailableProvider{}
	if _, err := unavail.FetchList(ctx, 10); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}
	if _, err := unavail.FetchDetail(ctx, "u"); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}
}
