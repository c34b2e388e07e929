package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestValidationErrorString(t *testing.T) {
	err := &ValidationError{Kind: KindDetail, Field: "id"}
	if got := err.Error(); got != "invalid detail payload: id missing" {
		t.Fatalf("unexpected message %q", got)
	}
	if _, ok := AsValidationError(fmt.Errorf("wrap: %w", err)); !ok {
		t.Fatalf("expected to unwrap validation error")
	}
}

func TestIsPermanent(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"generic", errors.New("boom"), false},
		{"validation", &ValidationError{Kind: KindList, Field: "results"}, true},
		{"not found", &StatusError{Provider: "pokeapi", StatusCode: 404}, true},
		{"server error", &StatusError{Provider: "pokeapi", StatusCode: 503}, false},
		{"rate limit", &RateLimitError{StatusCode: 429}, false},
		{"unavailable", ErrProviderUnavailable, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPermanent(tc.err); got != tc.want {
				t.Fatalf("IsPermanent(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
