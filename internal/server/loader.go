package server

import (
	"context"

	"github.com/preston-bernstein/pokedex-service/internal/loader"
)

// Loader defines the minimal pipeline runner behavior needed by the server.
type Loader interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() loader.Status
}
