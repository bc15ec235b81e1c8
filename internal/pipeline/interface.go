package pipeline

import (
	"context"

	"roa-expert-system/pkg/gnews"
	"roa-expert-system/pkg/openweather"
)

// TextGenerator is the text-generation adapter used by the classifier,
// the safety gate and the generation-backed handlers.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float64) (string, error)
}

// WeatherProvider is the weather adapter boundary.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (*openweather.Reading, error)
}

// NewsProvider is the news adapter boundary.
type NewsProvider interface {
	Search(ctx context.Context, opts gnews.SearchOptions) ([]gnews.Article, error)
}

// Handler produces the response for one category. Implementations set
// st.Response (and optionally st.Headlines) exactly once. A returned
// error is fatal and aborts the run.
type Handler interface {
	Handle(ctx context.Context, st *State) error
}
