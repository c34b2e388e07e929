package pokeapi

type listResponse struct {
	Count   int          `json:"count"`
	Next    *string      `json:"next"`
	Results *[]listEntry `json:"results"`
}

type listEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type detailResponse struct {
	ID      *int            `json:"id"`
	Name    string          `json:"name"`
	Height  *int            `json:"height"`
	Weight  *int            `json:"weight"`
	Types   []typeSlot      `json:"types"`
	Sprites spritesResponse `json:"sprites"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type spritesResponse struct {
	FrontDefault *string              `json:"front_default"`
	Other        map[string]spriteSet `json:"other"`
}

type spriteSet struct {
	FrontDefault *string `json:"front_default"`
}
