package pokeapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

const pikachuDetail = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"types": [ { "slot": 1, "type": { "name": "electric", "url": "https://pokeapi.co/api/v2/type/13/" } } ],
	"sprites": {
		"front_default": "https://img/25.png",
		"other": { "official-artwork": { "front_default": "https://img/art/25.png" } }
	}
}`

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchListHitsAPIAndMapsResponse(t *testing.T) {
	var capturedURL string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		if req.Header.Get("Accept") != "application/json" {
			t.Fatalf("expected json accept header")
		}
		return jsonResponse(http.StatusOK, `{"count": 1, "results": [ { "name": "pikachu", "url": "U" } ]}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/api/v2/pokemon/",
		HTTPClient: &http.Client{Transport: rt},
	})

	list, err := client.FetchList(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedURL != "http://example.com/api/v2/pokemon/?limit=10" {
		t.Fatalf("unexpected request url %s", capturedURL)
	}
	if len(list) != 1 || list[0].Name != "pikachu" || list[0].DetailsURL != "U" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestFetchListDefaultsLimit(t *testing.T) {
	var limit string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		limit = req.URL.Query().Get("limit")
		return jsonResponse(http.StatusOK, `{"results": []}`), nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})
	list, err := client.FetchList(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if limit != "150" {
		t.Fatalf("expected default limit 150, got %s", limit)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %+v", list)
	}
}

func TestFetchListRejectsMissingResults(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"count": 0}`), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchList(context.Background(), 1)
	vErr, ok := providers.AsValidationError(err)
	if !ok || vErr.Kind != providers.KindList || vErr.Field != "results" {
		t.Fatalf("expected list validation error, got %v", err)
	}
}

func TestFetchDetailMapsNestedFields(t *testing.T) {
	var capturedURL string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, pikachuDetail), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	d, err := client.FetchDetail(context.Background(), "https://pokeapi.co/api/v2/pokemon/25/")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedURL != "https://pokeapi.co/api/v2/pokemon/25/" {
		t.Fatalf("expected details url to be requested, got %s", capturedURL)
	}
	if d.ID != 25 || d.Height != 4 || d.Weight != 60 {
		t.Fatalf("unexpected numeric fields %+v", d)
	}
	if len(d.Types) != 1 || d.Types[0] != "electric" {
		t.Fatalf("unexpected types %v", d.Types)
	}
	if d.SpriteURL != "https://img/25.png" || d.ArtURL != "https://img/art/25.png" {
		t.Fatalf("unexpected image urls %+v", d)
	}
}

func TestFetchDetailRejectsEmptyURL(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.FetchDetail(context.Background(), " ")
	if _, ok := providers.AsValidationError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFetchHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, "Not Found"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchDetail(context.Background(), "http://example.com/missing")
	var sErr *providers.StatusError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if sErr.StatusCode != http.StatusNotFound || sErr.Body != "Not Found" {
		t.Fatalf("unexpected status error %+v", sErr)
	}
}

func TestFetchHandlesRateLimit(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "2")
		resp.Header.Set("X-RateLimit-Remaining", "0")
		return resp, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchList(context.Background(), 1)
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 2*time.Second || rl.Remaining != "0" || rl.Provider != providerName {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestFetchHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchDetail(context.Background(), "http://example.com/1")
	vErr, ok := providers.AsValidationError(err)
	if !ok || vErr.Kind != providers.KindDetail || vErr.Field != "body" || vErr.Reason != "malformed" {
		t.Fatalf("expected malformed detail body, got %v", err)
	}
}

func TestMalformedBodyIsNotRetried(t *testing.T) {
	cases := map[string]string{
		"syntax":    "{bad json",
		"type":      `{"results": "not-a-list"}`,
		"truncated": `{"results": [`,
		"empty":     "",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			calls := 0
			rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				calls++
				return jsonResponse(http.StatusOK, body), nil
			})
			client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})
			rp := providers.NewRetryingProvider(client, nil, nil, "pokeapi", 3, time.Millisecond)

			_, err := rp.FetchList(context.Background(), 1)
			vErr, ok := providers.AsValidationError(err)
			if !ok || vErr.Kind != providers.KindList {
				t.Fatalf("expected list validation error, got %v", err)
			}
			if calls != 1 {
				t.Fatalf("expected one upstream call, got %d", calls)
			}
		})
	}
}

func TestFetchHandlesTransportError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchList(context.Background(), 1); err == nil || !strings.Contains(err.Error(), "dial failed") {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", httpClient.Timeout)
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
