package pokedex

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/format"
	"github.com/preston-bernstein/pokedex-service/internal/testutil"
)

func TestNewCardFormatsDetails(t *testing.T) {
	p := pokemon.New("bulbasaur", testutil.DetailsURL(1))
	p.SetDetails(pokemon.Details{ID: 1, Height: 7, Weight: 69, Types: []string{"grass", "poison"}, SpriteURL: "s", ArtURL: "a"})

	card, err := NewCard(p)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := Card{
		Name:        "bulbasaur",
		DisplayName: "Bulbasaur",
		ID:          1,
		Height:      `2' 03"`,
		Weight:      "15.2 lbs",
		Types:       "grass, poison",
		TypeList:    []string{"grass", "poison"},
		SpriteURL:   "s",
		ArtURL:      "a",
		Big:         true,
	}
	if card.DisplayName != want.DisplayName || card.Height != want.Height || card.Weight != want.Weight ||
		card.Types != want.Types || card.ID != want.ID || card.Big != want.Big || card.ArtURL != want.ArtURL {
		t.Fatalf("unexpected card %+v", card)
	}
}

func TestNewCardFlagsOnlyTallPokemon(t *testing.T) {
	p := pokemon.New("charmander", testutil.DetailsURL(4))
	p.SetDetails(testutil.SampleDetails(4, "fire"))
	d, _ := p.Details()
	d.Height = 6
	p.SetDetails(d)

	card, err := NewCard(p)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if card.Big {
		t.Fatalf("expected 0.6m not to be flagged big")
	}
}

func TestNewCardRequiresDetails(t *testing.T) {
	p := pokemon.New("pikachu", "U")
	if _, err := NewCard(p); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	svc := NewService(nil, nil, Options{})
	if _, err := svc.Card(p); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded from service, got %v", err)
	}
}

func TestNewCardPropagatesFormatErrors(t *testing.T) {
	p := pokemon.New("missingno", "U")
	p.SetDetails(pokemon.Details{ID: 0, Height: 1, Weight: 1})
	if _, err := NewCard(p); !errors.Is(err, format.ErrNoTypes) {
		t.Fatalf("expected ErrNoTypes, got %v", err)
	}

	p.SetDetails(pokemon.Details{ID: 0, Height: -1, Weight: 1, Types: []string{"bird"}})
	if _, err := NewCard(p); !errors.Is(err, format.ErrNegativeMeasure) {
		t.Fatalf("expected ErrNegativeMeasure, got %v", err)
	}
}

func TestItemsReflectLoadState(t *testing.T) {
	loaded := testutil.LoadedPokemon("pikachu", 25, "electric")
	bare := pokemon.New("mew", "U")

	items := Items([]*pokemon.Pokemon{bare, loaded})
	if len(items) != 2 || items[0].Name != "mew" || items[0].Loaded {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if !items[1].Loaded || items[1].DisplayName != "Pikachu" {
		t.Fatalf("unexpected second item %+v", items[1])
	}
}
