package fixture

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

const baseURL = "https://pokeapi.co/api/v2/pokemon/"

type entry struct {
	name    string
	details pokemon.Details
}

// Provider returns a static set of pokemon useful for local testing and offline runs.
type Provider struct {
	entries []entry
}

// New creates a fixture provider seeded with a handful of starters.
func New() *Provider {
	return &Provider{
		entries: []entry{
			{name: "bulbasaur", details: detailsFor(1, 7, 69, "grass", "poison")},
			{name: "charmander", details: detailsFor(4, 6, 85, "fire")},
			{name: "squirtle", details: detailsFor(7, 5, 90, "water")},
			{name: "pikachu", details: detailsFor(25, 4, 60, "electric")},
		},
	}
}

// FetchList returns up to limit summaries in a fixed order. limit <= 0 returns all of them.
func (p *Provider) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := len(p.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]pokemon.Summary, 0, n)
	for _, e := range p.entries[:n] {
		out = append(out, pokemon.Summary{Name: e.name, DetailsURL: detailsURL(e.details.ID)})
	}
	return out, nil
}

// FetchDetail resolves a fixture details URL.
func (p *Provider) FetchDetail(ctx context.Context, url string) (pokemon.Details, error) {
	if err := ctx.Err(); err != nil {
		return pokemon.Details{}, err
	}
	for _, e := range p.entries {
		if detailsURL(e.details.ID) == url {
			d := e.details
			d.Types = append([]string(nil), e.details.Types...)
			return d, nil
		}
	}
	return pokemon.Details{}, fmt.Errorf("fixture: no pokemon at %q", url)
}

func detailsURL(id int) string {
	return fmt.Sprintf("%s%d/", baseURL, id)
}

func detailsFor(id, height, weight int, types ...string) pokemon.Details {
	return pokemon.Details{
		ID:        id,
		Height:    height,
		Weight:    weight,
		Types:     types,
		SpriteURL: fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png", id),
		ArtURL:    fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png", id),
	}
}
