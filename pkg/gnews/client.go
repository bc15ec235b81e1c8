package gnews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultBaseURL is the GNews search endpoint.
	DefaultBaseURL = "https://gnews.io/api/v4/search"

	// DefaultMax caps how many articles one search returns.
	DefaultMax = 5
)

// Client is the GNews API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a new GNews client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gnews: API key is required")
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search fetches articles matching the given options. One-shot call:
// no retries, no caching. Failures are classified as *NetworkError
// (transport or malformed body), *UpstreamError (non-success response)
// or ErrNoArticles (success with zero articles).
func (c *Client) Search(ctx context.Context, opts SearchOptions) ([]Article, error) {
	if opts.Query == "" {
		return nil, fmt.Errorf("gnews: query is required")
	}
	max := opts.Max
	if max <= 0 {
		max = DefaultMax
	}

	params := url.Values{}
	params.Set("q", opts.Query)
	params.Set("max", strconv.Itoa(max))
	params.Set("apikey", c.apiKey)
	if opts.Lang != "" {
		params.Set("lang", opts.Lang)
	}
	if opts.Country != "" {
		params.Set("country", opts.Country)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("gnews: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("malformed response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Code: resp.StatusCode, Message: raw.errorMessage()}
	}

	if len(raw.Articles) == 0 {
		return nil, ErrNoArticles
	}

	return raw.Articles, nil
}
