package fixture

import (
	"context"
	"testing"
)

func TestFetchListReturnsDeterministicSummaries(t *testing.T) {
	p := New()

	list, err := p.FetchList(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 summaries, got %d", len(list))
	}
	if list[0].Name != "bulbasaur" || list[0].DetailsURL != "https://pokeapi.co/api/v2/pokemon/1/" {
		t.Fatalf("unexpected first summary %+v", list[0])
	}
	if list[3].Name != "pikachu" {
		t.Fatalf("unexpected order %+v", list)
	}
}

func TestFetchListHonoursLimit(t *testing.T) {
	list, err := New().FetchList(context.Background(), 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 2 || list[1].Name != "charmander" {
		t.Fatalf("unexpected limited list %+v", list)
	}
}

func TestFetchDetailResolvesListURLs(t *testing.T) {
	p := New()
	list, _ := p.FetchList(context.Background(), 0)

	for _, s := range list {
		d, err := p.FetchDetail(context.Background(), s.DetailsURL)
		if err != nil {
			t.Fatalf("expected details for %s, got %v", s.Name, err)
		}
		if d.ID <= 0 || len(d.Types) == 0 {
			t.Fatalf("unexpected details for %s: %+v", s.Name, d)
		}
	}

	d, _ := p.FetchDetail(context.Background(), "https://pokeapi.co/api/v2/pokemon/1/")
	d.Types[0] = "mutated"
	again, _ := p.FetchDetail(context.Background(), "https://pokeapi.co/api/v2/pokemon/1/")
	if again.Types[0] != "grass" {
		t.Fatalf("expected fixture types to be copied, got %v", again.Types)
	}
}

func TestFetchDetailUnknownURL(t *testing.T) {
	if _, err := New().FetchDetail(context.Background(), "https://example.com/0/"); err == nil {
		t.Fatal("expected error for unknown url")
	}
}

func TestFetchRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchList(ctx, 0); err == nil {
		t.Fatal("expected context error")
	}
}
