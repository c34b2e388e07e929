package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/pokedex-service/internal/http/handlers"
	"github.com/preston-bernstein/pokedex-service/internal/http/middleware"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
)

// NewRouter registers the HTTP routes on a chi router behind logging and panic recovery.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/pokemon", handler.ListPokemon)
	r.Get("/pokemon/{name}", handler.PokemonByName)
	if admin != nil {
		r.Post("/pokemon/{name}/refresh", admin.RefreshPokemon)
	}
	return r
}
