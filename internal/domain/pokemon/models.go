package pokemon

import (
	"fmt"
	"sync"
)

// Summary is one element of the upstream list payload (phase-1 fields).
type Summary struct {
	Name       string `json:"name"`
	DetailsURL string `json:"detailsUrl"`
}

// Details holds the phase-2 fields attached after a detail fetch.
type Details struct {
	ID        int      `json:"id"`
	Height    int      `json:"height"` // decimetres
	Weight    int      `json:"weight"` // hectograms
	Types     []string `json:"types"`
	SpriteURL string   `json:"spriteUrl"`
	ArtURL    string   `json:"artUrl"`
}

// Pokemon is a store entity built across two fetch phases.
// Phase-1 fields are immutable after construction; phase-2 fields are
// attached in place and may be overwritten by later detail loads.
type Pokemon struct {
	Name       string
	DetailsURL string

	mu      sync.RWMutex
	details *Details
}

// New builds a phase-1 entity.
func New(name, detailsURL string) *Pokemon {
	return &Pokemon{Name: name, DetailsURL: detailsURL}
}

// FromSummary builds a phase-1 entity from a list element.
func FromSummary(s Summary) *Pokemon {
	return New(s.Name, s.DetailsURL)
}

// Validate reports whether the phase-1 fields required for listing are present.
func (p *Pokemon) Validate() error {
	if p == nil {
		return &ValidationError{Field: "pokemon"}
	}
	if p.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if p.DetailsURL == "" {
		return &ValidationError{Field: "detailsUrl"}
	}
	return nil
}

// SetDetails overwrites the phase-2 fields. Last write wins.
func (p *Pokemon) SetDetails(d Details) {
	d.Types = append([]string(nil), d.Types...)
	p.mu.Lock()
	p.details = &d
	p.mu.Unlock()
}

// Details returns a copy of the phase-2 fields and whether they have been loaded.
func (p *Pokemon) Details() (Details, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.details == nil {
		return Details{}, false
	}
	d := *p.details
	d.Types = append([]string(nil), p.details.Types...)
	return d, true
}

// Loaded reports whether phase-2 fields are present.
func (p *Pokemon) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.details != nil
}

// Summary returns the phase-1 view of the entity.
func (p *Pokemon) Summary() Summary {
	return Summary{Name: p.Name, DetailsURL: p.DetailsURL}
}

// ValidationError names the required field an entity is missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pokemon: missing required field %q", e.Field)
}
