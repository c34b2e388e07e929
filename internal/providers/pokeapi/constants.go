package pokeapi

import "time"

const (
	providerName       = "pokeapi"
	defaultBaseURL     = "https://pokeapi.co/api/v2/pokemon/"
	defaultListLimit   = 150
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
	officialArtworkKey = "official-artwork"
)
