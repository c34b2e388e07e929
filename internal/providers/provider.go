package providers

import (
	"context"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

// ListProvider fetches the phase-1 list. limit bounds the page size; there is no pagination.
type ListProvider interface {
	FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error)
}

// DetailProvider fetches the phase-2 fields from an entity's details URL.
type DetailProvider interface {
	FetchDetail(ctx context.Context, detailsURL string) (pokemon.Details, error)
}

// Provider combines both fetch phases.
type Provider interface {
	ListProvider
	DetailProvider
}
