package pipeline_test

import (
	"context"

	"roa-expert-system/pkg/gnews"
	"roa-expert-system/pkg/openweather"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// Mock text generator with a func field per call
type mockGenerator struct {
	generateFunc func(prompt string, temperature float64) (string, error)
	calls        int
}

func (m *mockGenerator) GenerateText(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(prompt, temperature)
	}
	return "", nil
}

// Mock weather provider
type mockWeatherProvider struct {
	currentFunc func(city string) (*openweather.Reading, error)
}

func (m *mockWeatherProvider) CurrentWeather(ctx context.Context, city string) (*openweather.Reading, error) {
	if m.currentFunc != nil {
		return m.currentFunc(city)
	}
	return &openweather.Reading{City: city}, nil
}

// Mock news provider
type mockNewsProvider struct {
	searchFunc func(opts gnews.SearchOptions) ([]gnews.Article, error)
}

func (m *mockNewsProvider) Search(ctx context.Context, opts gnews.SearchOptions) ([]gnews.Article, error) {
	if m.searchFunc != nil {
		return m.searchFunc(opts)
	}
	return nil, gnews.ErrNoArticles
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
