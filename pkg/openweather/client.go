package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const (
	// DefaultBaseURL is the OpenWeatherMap current weather endpoint.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	// DefaultUnits requests metric readings (°C, m/s).
	DefaultUnits = "metric"

	statusOK = 200
)

// Client is the OpenWeatherMap current weather API client.
type Client struct {
	apiKey     string
	baseURL    string
	units      string
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

// WithUnits overrides the unit system (metric, imperial, standard).
func WithUnits(units string) Option {
	return func(c *Client) {
		if units != "" {
			c.units = units
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

// New creates a new OpenWeatherMap client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openweather: API key is required")
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		units:      DefaultUnits,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CurrentWeather fetches the current weather for the given city.
// One-shot call: no retries, no caching. Failures are classified as
// *NetworkError (transport or malformed body) or *UpstreamError (the API
// responded with a non-success status code in its body).
func (c *Client) CurrentWeather(ctx context.Context, city string) (*Reading, error) {
	if city == "" {
		return nil, fmt.Errorf("openweather: city is required")
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openweather: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	// The API reports its status in the body ("cod"), for errors too,
	// so the body is decoded regardless of the HTTP status code.
	var raw currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("malformed response body: %w", err)}
	}

	if int(raw.Cod) != statusOK {
		msg := raw.Message
		if msg == "" {
			msg = "Unknown error fetching weather."
		}
		return nil, &UpstreamError{Code: int(raw.Cod), Message: msg}
	}

	reading := &Reading{City: city}
	if raw.Main != nil {
		reading.Temp = raw.Main.Temp
		reading.FeelsLike = raw.Main.FeelsLike
		reading.Humidity = raw.Main.Humidity
	}
	if len(raw.Weather) > 0 && raw.Weather[0].Description != "" {
		desc := raw.Weather[0].Description
		reading.Description = &desc
	}
	if raw.Wind != nil {
		reading.WindSpeed = raw.Wind.Speed
	}

	return reading, nil
}
