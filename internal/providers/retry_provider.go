package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

type backoffFactory func() backoff.BackOff

// retryingProvider wraps a Provider with retry/backoff behavior and provider metrics.
type retryingProvider struct {
	inner        Provider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   backoffFactory
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
// Malformed payloads and 4xx responses are not retried. A Retry-After on 429 overrides the backoff delay,
// and one longer than the max backoff returns the *RateLimitError instead of sleeping.
func NewRetryingProvider(inner Provider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) Provider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = initial
			exp.MaxInterval = maxBackoff
			exp.MaxElapsedTime = 0
			return backoff.WithMaxRetries(exp, uint64(maxAttempts-1))
		},
	}
}

func (r *retryingProvider) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	return withRetry(ctx, r, "list", func(ctx context.Context) ([]pokemon.Summary, error) {
		return r.inner.FetchList(ctx, limit)
	})
}

func (r *retryingProvider) FetchDetail(ctx context.Context, detailsURL string) (pokemon.Details, error) {
	return withRetry(ctx, r, "detail", func(ctx context.Context) (pokemon.Details, error) {
		return r.inner.FetchDetail(ctx, detailsURL)
	})
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	b := r.newBackOff()
	b.Reset()

	for attempt := 1; ; attempt++ {
		start := time.Now()
		result, err := call(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return zero, err
		}
		if IsPermanent(err) {
			r.log(ctx, "provider fetch not retryable", "op", op, "attempt", attempt, "error", err)
			return zero, err
		}

		delay := b.NextBackOff()
		if delay == backoff.Stop {
			r.log(ctx, "provider fetch failed", "op", op, "attempts", attempt, "error", err)
			return zero, err
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rl.RetryAfter)
			if rl.RetryAfter > maxBackoff {
				r.log(ctx, "provider rate limited beyond retry window", "op", op, "attempt", attempt, "retry_after_ms", rl.RetryAfter.Milliseconds())
				return zero, err
			}
			if rl.RetryAfter > 0 {
				delay = rl.RetryAfter
			}
		}

		r.log(ctx, "provider fetch retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "delay_ms", delay.Milliseconds(), "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *retryingProvider) log(ctx context.Context, msg string, args ...any) {
	logProvider(ctx, r.logger, slog.LevelWarn, r.providerName, msg, args...)
}
