package pokedex

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/format"
)

// ErrNotLoaded is returned when a detail view is requested before phase-2 fields exist.
var ErrNotLoaded = errors.New("pokemon details not loaded")

// bigHeight is the height in decimetres above which a pokemon is flagged as big.
const bigHeight = 6

// ListItem is the phase-1 view rendered once per entity.
type ListItem struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	DetailsURL  string `json:"detailsUrl" yaml:"detailsUrl"`
	Loaded      bool   `json:"loaded" yaml:"loaded"`
}

// Card is the formatted detail view of a loaded entity.
type Card struct {
	Name        string   `json:"name" yaml:"name"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	ID          int      `json:"id" yaml:"id"`
	Height      string   `json:"height" yaml:"height"`
	Weight      string   `json:"weight" yaml:"weight"`
	Types       string   `json:"types" yaml:"types"`
	TypeList    []string `json:"typeList" yaml:"typeList"`
	SpriteURL   string   `json:"spriteUrl,omitempty" yaml:"spriteUrl,omitempty"`
	ArtURL      string   `json:"artUrl,omitempty" yaml:"artUrl,omitempty"`
	Big         bool     `json:"big" yaml:"big"`
}

// Item builds the list view of p.
func Item(p *pokemon.Pokemon) ListItem {
	return ListItem{
		Name:        p.Name,
		DisplayName: format.Capitalize(p.Name),
		DetailsURL:  p.DetailsURL,
		Loaded:      p.Loaded(),
	}
}

// Items builds list views for ps, preserving order.
func Items(ps []*pokemon.Pokemon) []ListItem {
	out := make([]ListItem, 0, len(ps))
	for _, p := range ps {
		out = append(out, Item(p))
	}
	return out
}

// NewCard formats p's phase-2 fields. It returns ErrNotLoaded when they are absent.
func NewCard(p *pokemon.Pokemon) (Card, error) {
	d, ok := p.Details()
	if !ok {
		return Card{}, ErrNotLoaded
	}

	height, err := format.ConvertHeight(d.Height)
	if err != nil {
		return Card{}, fmt.Errorf("card %s: height: %w", p.Name, err)
	}
	weight, err := format.ConvertWeight(d.Weight)
	if err != nil {
		return Card{}, fmt.Errorf("card %s: weight: %w", p.Name, err)
	}
	types, err := format.TypeNames(d.Types)
	if err != nil {
		return Card{}, fmt.Errorf("card %s: types: %w", p.Name, err)
	}

	return Card{
		Name:        p.Name,
		DisplayName: format.Capitalize(p.Name),
		ID:          d.ID,
		Height:      height,
		Weight:      weight + " lbs",
		Types:       types,
		TypeList:    d.Types,
		SpriteURL:   d.SpriteURL,
		ArtURL:      d.ArtURL,
		Big:         d.Height > bigHeight,
	}, nil
}

// Card is NewCard bound to the service for callers that only hold a Service.
func (s *Service) Card(p *pokemon.Pokemon) (Card, error) {
	return NewCard(p)
}
