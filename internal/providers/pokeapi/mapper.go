package pokeapi

import (
	"fmt"
	"sort"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

func mapList(resp listResponse) ([]pokemon.Summary, error) {
	if resp.Results == nil {
		return nil, &providers.ValidationError{Kind: providers.KindList, Field: "results"}
	}
	// Elements missing a name or url are passed through; the store rejects them individually.
	out := make([]pokemon.Summary, 0, len(*resp.Results))
	for _, entry := range *resp.Results {
		out = append(out, pokemon.Summary{Name: entry.Name, DetailsURL: entry.URL})
	}
	return out, nil
}

func mapDetail(resp detailResponse) (pokemon.Details, error) {
	switch {
	case resp.ID == nil:
		return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: "id"}
	case *resp.ID <= 0:
		return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: "id", Reason: "not positive"}
	case resp.Height == nil:
		return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: "height"}
	case *resp.Height < 0:
		return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: "height", Reason: "negative"}
	case resp.Weight == nil:
		return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: "weight"}
	case *resp.Weight < 0:
		return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: "weight", Reason: "negative"}
	case len(resp.Types) == 0:
		return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: "types", Reason: "empty"}
	}

	slots := append([]typeSlot(nil), resp.Types...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	types := make([]string, 0, len(slots))
	for i, slot := range slots {
		if slot.Type.Name == "" {
			return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: fmt.Sprintf("types[%d].type.name", i)}
		}
		types = append(types, slot.Type.Name)
	}

	return pokemon.Details{
		ID:        *resp.ID,
		Height:    *resp.Height,
		Weight:    *resp.Weight,
		Types:     types,
		SpriteURL: deref(resp.Sprites.FrontDefault),
		ArtURL:    deref(resp.Sprites.Other[officialArtworkKey].FrontDefault),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
