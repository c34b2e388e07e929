package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("pokeapi", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("pokeapi", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("pokeapi"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("pokeapi"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("pokeapi"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("pokeapi")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if other := rec.Snapshot("fixture"); other != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for unknown provider, got %+v", other)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("pokeapi", 5*time.Second)
	rec.RecordRateLimit("pokeapi", 0)

	if got := rec.RateLimitHits("pokeapi"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("pokeapi"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksDetailLoadsConcurrently(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				rec.RecordDetailLoad(errors.New("boom"))
				return
			}
			rec.RecordDetailLoad(nil)
		}(i)
	}
	wg.Wait()

	loaded, failed := rec.DetailLoads()
	if loaded != 15 || failed != 5 {
		t.Fatalf("expected 15 loaded / 5 failed, got %d / %d", loaded, failed)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("pokeapi", time.Millisecond, nil)
	rec.RecordRateLimit("pokeapi", time.Second)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordLoadCycle("list", time.Millisecond, nil)
	rec.RecordDetailLoad(nil)
	rec.RecordStoreSize(3)

	if rec.ProviderCalls("pokeapi") != 0 {
		t.Fatalf("expected zero calls from nil recorder")
	}
	if loaded, failed := rec.DetailLoads(); loaded != 0 || failed != 0 {
		t.Fatalf("expected zero detail loads from nil recorder")
	}
}
