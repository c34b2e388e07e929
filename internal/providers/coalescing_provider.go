package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
)

// defaultFlightTimeout bounds one shared detail fetch, retries included.
const defaultFlightTimeout = 30 * time.Second

// coalescingProvider shares one upstream detail request between concurrent
// callers asking for the same details URL. Sequential calls still fetch fresh values.
type coalescingProvider struct {
	inner         Provider
	logger        *slog.Logger
	group         singleflight.Group
	flightTimeout time.Duration

	mu      sync.Mutex
	flights map[string]*flight
}

// flight is the context shared by every caller waiting on one details URL.
// It is cancelled when the last waiter leaves.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewCoalescingProvider wraps inner so identical in-flight detail fetches are merged.
func NewCoalescingProvider(inner Provider, logger *slog.Logger) Provider {
	return &coalescingProvider{
		inner:         inner,
		logger:        logger,
		flightTimeout: defaultFlightTimeout,
		flights:       make(map[string]*flight),
	}
}

func (c *coalescingProvider) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	if c.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return c.inner.FetchList(ctx, limit)
}

func (c *coalescingProvider) FetchDetail(ctx context.Context, detailsURL string) (pokemon.Details, error) {
	if c.inner == nil {
		return pokemon.Details{}, ErrProviderUnavailable
	}

	f := c.join(ctx, detailsURL)
	ch := c.group.DoChan(detailsURL, func() (any, error) {
		return c.inner.FetchDetail(f.ctx, detailsURL)
	})

	select {
	case <-ctx.Done():
		c.leave(detailsURL, f, true)
		return pokemon.Details{}, ctx.Err()
	case res := <-ch:
		c.leave(detailsURL, f, false)
		if res.Err != nil {
			return pokemon.Details{}, res.Err
		}
		if res.Shared {
			logging.Debug(logging.FromContext(ctx, c.logger), "detail fetch coalesced", slog.String(logging.FieldURL, detailsURL))
		}
		return res.Val.(pokemon.Details), nil
	}
}

// join registers the caller on the current flight for detailsURL, creating one
// detached from ctx's cancellation but bounded by flightTimeout.
func (c *coalescingProvider) join(ctx context.Context, detailsURL string) *flight {
	c.mu.Lock()
	defer c.mu.Unlock()
	f := c.flights[detailsURL]
	if f == nil {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightTimeout)
		f = &flight{ctx: fctx, cancel: cancel}
		c.flights[detailsURL] = f
	}
	f.waiters++
	return f
}

// leave drops the caller from f. When an abandoned flight has no waiters left
// its fetch is cancelled and forgotten so the next caller starts a new one.
func (c *coalescingProvider) leave(detailsURL string, f *flight, abandoned bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if c.flights[detailsURL] == f {
		delete(c.flights, detailsURL)
	}
	if abandoned {
		c.group.Forget(detailsURL)
	}
}
