package config

import "time"

const (
	envPokeAPIBaseURL = "POKEAPI_BASE_URL"
	envPokeAPILimit   = "POKEAPI_LIST_LIMIT"
	envPokeAPITimeout = "POKEAPI_TIMEOUT"

	defaultPokeAPIBaseURL = "https://pokeapi.co/api/v2/pokemon/"
	defaultPokeAPILimit   = 150
	defaultPokeAPITimeout = 10 * time.Second
)

// PokeAPIConfig controls how we talk to PokeAPI.
type PokeAPIConfig struct {
	BaseURL   string
	ListLimit int
	Timeout   time.Duration
}

func loadPokeAPI() PokeAPIConfig {
	return PokeAPIConfig{
		BaseURL:   envOrDefault(envPokeAPIBaseURL, defaultPokeAPIBaseURL),
		ListLimit: intEnvOrDefault(envPokeAPILimit, defaultPokeAPILimit),
		Timeout:   durationEnvOrDefault(envPokeAPITimeout, defaultPokeAPITimeout),
	}
}
