package store

import (
	"log/slog"
	"sync"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
)

// MemoryStore keeps the fetched entities in insertion order.
// Entities are shared pointers: callers see in-place detail updates.
type MemoryStore struct {
	mu     sync.RWMutex
	items  []*pokemon.Pokemon
	logger *slog.Logger
}

// NewMemoryStore constructs an empty MemoryStore. A nil logger disables logging.
func NewMemoryStore(logger *slog.Logger) *MemoryStore {
	return &MemoryStore{logger: logger}
}

// Add appends p when it carries a name and details URL. Invalid entities are
// logged and dropped; the validation error is returned.
func (s *MemoryStore) Add(p *pokemon.Pokemon) error {
	if err := p.Validate(); err != nil {
		logging.Warn(s.logger, "pokemon rejected by store", "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, p)
	return nil
}

// GetAll returns the ordered collection. The slice is new; the entities are not.
func (s *MemoryStore) GetAll() []*pokemon.Pokemon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*pokemon.Pokemon, len(s.items))
	copy(result, s.items)
	return result
}

// Find returns every entity whose name matches exactly, in insertion order.
func (s *MemoryStore) Find(name string) []*pokemon.Pokemon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*pokemon.Pokemon, 0)
	for _, p := range s.items {
		if p.Name == name {
			result = append(result, p)
		}
	}
	return result
}

// Len reports how many entities are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
