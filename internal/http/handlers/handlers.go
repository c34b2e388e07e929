package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/pokedex-service/internal/app/pokedex"
	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/loader"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
)

// Pokedex is the slice of the pipeline service the handlers need.
type Pokedex interface {
	Filter(query string) []*pokemon.Pokemon
	Lookup(name string) (*pokemon.Pokemon, bool)
	EnsureDetail(ctx context.Context, p *pokemon.Pokemon) error
	LoadDetail(ctx context.Context, p *pokemon.Pokemon) error
}

// Handler wires HTTP routes to the pokedex service.
type Handler struct {
	svc      Pokedex
	logger   *slog.Logger
	statusFn func() loader.Status
}

// NewHandler constructs a Handler. A nil statusFn reports ready unconditionally.
func NewHandler(svc Pokedex, logger *slog.Logger, statusFn func() loader.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// ListResponse is the body of GET /pokemon.
type ListResponse struct {
	Count   int                `json:"count"`
	Results []pokedex.ListItem `json:"results"`
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the list has been loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":         "ready",
			"count":          status.Count,
			"detailsLoaded":  status.DetailsLoaded,
			"detailFailures": status.DetailFailures,
			"preloading":     status.Preloading,
		}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// ListPokemon returns every stored entity in store order, optionally filtered by ?q=.
func (h *Handler) ListPokemon(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	items := pokedex.Items(h.svc.Filter(query))

	logging.Info(loggerFromContext(r, h.logger), "served pokemon list",
		slog.Int(logging.FieldCount, len(items)),
		slog.String("q", query),
	)
	writeJSON(w, http.StatusOK, ListResponse{Count: len(items), Results: items}, h.logger)
}

// PokemonByName loads details on first view and returns the formatted card.
func (h *Handler) PokemonByName(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := h.svc.EnsureDetail(r.Context(), p); err != nil {
		writeError(w, r, http.StatusBadGateway, "failed to load pokemon details", h.logger)
		return
	}
	h.writeCard(w, r, p)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*pokemon.Pokemon, bool) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" || strings.ContainsAny(name, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid pokemon name", h.logger)
		return nil, false
	}

	p, ok := h.svc.Lookup(name)
	if !ok {
		// Upstream names are lowercase; accept any casing from clients.
		p, ok = h.svc.Lookup(strings.ToLower(name))
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "pokemon not found", h.logger)
		return nil, false
	}
	return p, true
}

func (h *Handler) writeCard(w http.ResponseWriter, r *http.Request, p *pokemon.Pokemon) {
	card, err := pokedex.NewCard(p)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pokedex.ErrNotLoaded) {
			status = http.StatusBadGateway
		}
		logging.Warn(loggerFromContext(r, h.logger), "pokemon card unavailable",
			slog.String(logging.FieldName, p.Name),
			"error", err,
		)
		writeError(w, r, status, "pokemon details unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, card, h.logger)
}
