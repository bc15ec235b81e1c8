package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"roa-expert-system/pkg/log"
	"roa-expert-system/pkg/openweather"
)

// WeatherHandler answers weather queries. It optionally extracts the
// city from the raw query with a secondary generation call, then fetches
// a live reading. Adapter failures are contained: they become a
// descriptive sentence, never an error past the handler boundary.
type WeatherHandler struct {
	l           log.Logger
	llm         TextGenerator
	weather     WeatherProvider
	defaultCity string
	extractCity bool
	temperature float64
}

// WeatherHandlerConfig configures a WeatherHandler.
type WeatherHandlerConfig struct {
	DefaultCity string
	ExtractCity bool
	Temperature float64
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(l log.Logger, llm TextGenerator, weather WeatherProvider, cfg WeatherHandlerConfig) *WeatherHandler {
	city := cfg.DefaultCity
	if city == "" {
		city = DefaultCity
	}
	return &WeatherHandler{
		l:           l,
		llm:         llm,
		weather:     weather,
		defaultCity: city,
		extractCity: cfg.ExtractCity,
		temperature: cfg.Temperature,
	}
}

// Handle implements Handler.
func (h *WeatherHandler) Handle(ctx context.Context, st *State) error {
	city := h.defaultCity
	if h.extractCity {
		city = h.resolveCity(ctx, st.Query)
	}
	st.Response = h.Fetch(ctx, city)
	return nil
}

// resolveCity asks the generation service for the city named in the
// query. The first non-empty line of the reply wins; empty replies and
// adapter failures fall back to the default city.
func (h *WeatherHandler) resolveCity(ctx context.Context, query string) string {
	reply, err := h.llm.GenerateText(ctx, fmt.Sprintf(ExtractCityPromptTemplate, h.defaultCity, query), h.temperature)
	if err != nil {
		h.l.Warnf(ctx, "weather: city extraction failed, using default %q: %v", h.defaultCity, err)
		return h.defaultCity
	}

	for _, line := range strings.Split(reply, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return h.defaultCity
}

// Fetch retrieves the current weather for a city and formats it as a
// sentence. Also called directly by the GET convenience route.
func (h *WeatherHandler) Fetch(ctx context.Context, city string) string {
	reading, err := h.weather.CurrentWeather(ctx, city)
	if err != nil {
		var netErr *openweather.NetworkError
		var upstream *openweather.UpstreamError
		switch {
		case errors.As(err, &netErr):
			h.l.Warnf(ctx, "weather: network error for %q: %v", city, err)
			return fmt.Sprintf(MsgWeatherNetworkError, netErr.Err)
		case errors.As(err, &upstream):
			h.l.Warnf(ctx, "weather: upstream error for %q: %v", city, err)
			return fmt.Sprintf(MsgWeatherUpstreamError, city, upstream.Message)
		default:
			h.l.Warnf(ctx, "weather: fetch failed for %q: %v", city, err)
			return fmt.Sprintf(MsgWeatherUpstreamError, city, err)
		}
	}

	description := "not available"
	if reading.Description != nil {
		description = *reading.Description
	}

	return fmt.Sprintf(MsgWeatherReport,
		reading.City,
		description,
		fmtFloat(reading.Temp),
		fmtFloat(reading.FeelsLike),
		fmtInt(reading.Humidity),
		fmtFloat(reading.WindSpeed),
	)
}

// fmtFloat renders an optional reading value without trailing zeros.
func fmtFloat(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtInt(v *int) string {
	if v == nil {
		return "n/a"
	}
	return strconv.Itoa(*v)
}
