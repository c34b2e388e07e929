package pokedex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

const defaultConcurrency = 8

// Store defines the repository contract the pipeline writes into and reads from.
type Store interface {
	Add(p *pokemon.Pokemon) error
	GetAll() []*pokemon.Pokemon
	Find(name string) []*pokemon.Pokemon
}

// Options tunes the pipeline. Zero values fall back to defaults.
type Options struct {
	ListLimit   int
	Concurrency int
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// Service runs the two-phase fetch pipeline against a Store.
type Service struct {
	store       Store
	provider    providers.Provider
	listLimit   int
	concurrency int
	logger      *slog.Logger
	metrics     *metrics.Recorder
}

// PreloadResult summarises a Preload run.
type PreloadResult struct {
	Loaded int
	Failed int
}

// NewService constructs a Service backed by store and provider.
func NewService(store Store, provider providers.Provider, opts Options) *Service {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Service{
		store:       store,
		provider:    provider,
		listLimit:   opts.ListLimit,
		concurrency: concurrency,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
	}
}

// LoadList fetches the list once and adds one entity per element, in order.
// It returns how many entities were accepted. Elements the store rejects are
// skipped; entities already added stay in place when the fetch fails.
func (s *Service) LoadList(ctx context.Context) (int, error) {
	if s.provider == nil {
		return 0, providers.ErrProviderUnavailable
	}
	logger := logging.FromContext(ctx, s.logger)

	start := time.Now()
	summaries, err := s.provider.FetchList(ctx, s.listLimit)
	if err != nil {
		s.metrics.RecordLoadCycle("list", time.Since(start), err)
		logging.Error(logger, "pokemon list load failed", err)
		return 0, fmt.Errorf("load list: %w", err)
	}

	added := 0
	for i, summary := range summaries {
		if err := s.store.Add(pokemon.FromSummary(summary)); err != nil {
			logging.Warn(logger, "skipping list element", "index", i, "error", err)
			continue
		}
		added++
	}

	s.metrics.RecordLoadCycle("list", time.Since(start), nil)
	s.metrics.RecordStoreSize(len(s.store.GetAll()))
	logging.Info(logger, "pokemon list loaded", slog.Int(logging.FieldCount, added), "received", len(summaries))
	return added, nil
}

// LoadDetail fetches p's details and overwrites its phase-2 fields on success.
// On failure p is left as it was.
func (s *Service) LoadDetail(ctx context.Context, p *pokemon.Pokemon) error {
	if p == nil {
		return &pokemon.ValidationError{Field: "pokemon"}
	}
	if s.provider == nil {
		return providers.ErrProviderUnavailable
	}

	d, err := s.provider.FetchDetail(ctx, p.DetailsURL)
	s.metrics.RecordDetailLoad(err)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "pokemon detail load failed",
			slog.String(logging.FieldName, p.Name),
			slog.String(logging.FieldURL, p.DetailsURL),
			"error", err,
		)
		return fmt.Errorf("load details for %s: %w", p.Name, err)
	}

	p.SetDetails(d)
	return nil
}

// EnsureDetail loads p's details only if they are not present yet.
func (s *Service) EnsureDetail(ctx context.Context, p *pokemon.Pokemon) error {
	if p != nil && p.Loaded() {
		return nil
	}
	return s.LoadDetail(ctx, p)
}

// Preload loads details for every stored entity with bounded concurrency.
// Individual failures are counted in the result and never stop the remaining
// loads; the returned error is non-nil only when ctx ends early.
func (s *Service) Preload(ctx context.Context) (PreloadResult, error) {
	all := s.store.GetAll()
	start := time.Now()

	var loaded, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, p := range all {
		if ctx.Err() != nil {
			break
		}
		p := p
		g.Go(func() error {
			if err := s.LoadDetail(ctx, p); err != nil {
				failed.Add(1)
				return nil
			}
			loaded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	res := PreloadResult{Loaded: int(loaded.Load()), Failed: int(failed.Load())}
	err := ctx.Err()
	cycleErr := err
	if cycleErr == nil && res.Failed > 0 {
		cycleErr = fmt.Errorf("preload: %d of %d detail loads failed", res.Failed, len(all))
	}
	s.metrics.RecordLoadCycle("preload", time.Since(start), cycleErr)
	logging.Info(logging.FromContext(ctx, s.logger), "pokemon details preloaded",
		slog.Int(logging.FieldCount, res.Loaded),
		slog.Int(logging.FieldFailures, res.Failed),
	)
	return res, err
}

// All returns every stored entity in insertion order.
func (s *Service) All() []*pokemon.Pokemon {
	return s.store.GetAll()
}

// Find returns the entities whose name matches exactly.
func (s *Service) Find(name string) []*pokemon.Pokemon {
	return s.store.Find(name)
}

// Lookup returns the first entity named name.
func (s *Service) Lookup(name string) (*pokemon.Pokemon, bool) {
	matches := s.store.Find(name)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// Filter returns the entities whose name contains query, ignoring case.
// An empty query returns everything.
func (s *Service) Filter(query string) []*pokemon.Pokemon {
	all := s.store.GetAll()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}

	out := make([]*pokemon.Pokemon, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}
