package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

type testProvider struct{}

func (t *testProvider) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	_ = ctx
	_ = limit
	return nil, nil
}

func (t *testProvider) FetchDetail(ctx context.Context, detailsURL string) (pokemon.Details, error) {
	_ = ctx
	_ = detailsURL
	return pokemon.Details{}, nil
}

func TestProviderInterfaceImplemented(t *testing.T) {
	var _ Provider = (*testProvider)(nil)
}
