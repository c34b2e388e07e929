package testutil

import (
	"context"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchDetail(ctx context.Context, url string) (pokemon.Details, error) {
	return pokemon.Details{}, p.Err
}

// EmptyProvider returns an empty list and no details.
type EmptyProvider struct{}

func (EmptyProvider) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	return []pokemon.Summary{}, nil
}

func (EmptyProvider) FetchDetail(ctx context.Context, url string) (pokemon.Details, error) {
	return pokemon.Details{}, providers.ErrProviderUnavailable
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchDetail(ctx context.Context, url string) (pokemon.Details, error) {
	return pokemon.Details{}, providers.ErrProviderUnavailable
}
