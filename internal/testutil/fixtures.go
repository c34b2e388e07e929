package testutil

import (
	"fmt"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

// DetailsURL returns a PokeAPI-shaped details URL for id.
func DetailsURL(id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", id)
}

// SampleSummary returns a list element for name with a URL derived from id.
func SampleSummary(name string, id int) pokemon.Summary {
	return pokemon.Summary{Name: name, DetailsURL: DetailsURL(id)}
}

// SampleDetails returns phase-2 fields for id with the given types.
func SampleDetails(id int, types ...string) pokemon.Details {
	if len(types) == 0 {
		types = []string{"normal"}
	}
	return pokemon.Details{
		ID:        id,
		Height:    7,
		Weight:    69,
		Types:     types,
		SpriteURL: fmt.Sprintf("https://img.example/%d.png", id),
		ArtURL:    fmt.Sprintf("https://img.example/art/%d.png", id),
	}
}

// LoadedPokemon builds an entity with phase-2 fields already attached.
func LoadedPokemon(name string, id int, types ...string) *pokemon.Pokemon {
	p := pokemon.FromSummary(SampleSummary(name, id))
	p.SetDetails(SampleDetails(id, types...))
	return p
}
