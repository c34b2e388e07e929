package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

// ErrNoDetails is returned by StubProvider for URLs it has no details for.
var ErrNoDetails = errors.New("stub: no details for url")

// StubProvider is a test double for providers.Provider.
type StubProvider struct {
	List    []pokemon.Summary
	ListErr error

	// Details and DetailErrs are keyed by details URL.
	Details    map[string]pokemon.Details
	DetailErrs map[string]error

	// Block, when set, holds every FetchDetail until it is closed or ctx ends.
	Block chan struct{}
	// Notify is closed on the first call of either kind.
	Notify chan struct{}

	ListCalls   atomic.Int32
	DetailCalls atomic.Int32

	mu        sync.Mutex
	requested []string
	notified  sync.Once
}

// FetchList returns the configured list and error while tracking calls.
func (s *StubProvider) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	_ = ctx
	s.notify()
	s.ListCalls.Add(1)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	list := s.List
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return append([]pokemon.Summary(nil), list...), nil
}

// FetchDetail returns the configured details for url, or its configured error.
func (s *StubProvider) FetchDetail(ctx context.Context, url string) (pokemon.Details, error) {
	s.notify()
	s.DetailCalls.Add(1)
	s.mu.Lock()
	s.requested = append(s.requested, url)
	s.mu.Unlock()

	if s.Block != nil {
		select {
		case <-s.Block:
		case <-ctx.Done():
			return pokemon.Details{}, ctx.Err()
		}
	}
	if err, ok := s.DetailErrs[url]; ok {
		return pokemon.Details{}, err
	}
	d, ok := s.Details[url]
	if !ok {
		return pokemon.Details{}, ErrNoDetails
	}
	return d, nil
}

// Requested returns the details URLs fetched so far, in call order.
func (s *StubProvider) Requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requested...)
}

func (s *StubProvider) notify() {
	if s.Notify == nil {
		return
	}
	s.notified.Do(func() { close(s.Notify) })
}
