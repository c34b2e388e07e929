package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

// Config controls how the PokeAPI client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the pokemon list and per-pokemon details from PokeAPI.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a PokeAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchList issues GET <base>?limit=<N> and maps the results to phase-1 summaries.
func (c *Client) FetchList(ctx context.Context, limit int) ([]pokemon.Summary, error) {
	listURL, err := c.listURL(resolveListLimit(limit))
	if err != nil {
		return nil, err
	}

	var payload listResponse
	if err := c.getJSON(ctx, providers.KindList, listURL, &payload); err != nil {
		return nil, err
	}
	return mapList(payload)
}

// FetchDetail issues GET <detailsURL> and maps the response to phase-2 fields.
func (c *Client) FetchDetail(ctx context.Context, detailsURL string) (pokemon.Details, error) {
	if strings.TrimSpace(detailsURL) == "" {
		return pokemon.Details{}, &providers.ValidationError{Kind: providers.KindDetail, Field: "url"}
	}

	var payload detailResponse
	if err := c.getJSON(ctx, providers.KindDetail, detailsURL, &payload); err != nil {
		return pokemon.Details{}, err
	}
	return mapDetail(payload)
}

func (c *Client) listURL(limit int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("pokeapi: invalid base url %q: %w", c.baseURL, err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// getJSON decodes a 200 response into dest. A body that is not the expected JSON
// is reported as a *providers.ValidationError of the given kind.
func (c *Client) getJSON(ctx context.Context, kind, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pokeapi: get %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if isMalformed(err) {
			return &providers.ValidationError{Kind: kind, Field: "body", Reason: "malformed"}
		}
		return fmt.Errorf("pokeapi: decode %s: %w", rawURL, err)
	}
	return nil
}

func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
