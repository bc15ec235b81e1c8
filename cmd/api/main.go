package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"roa-expert-system/config"
	_ "roa-expert-system/docs" // Swagger docs
	"roa-expert-system/internal/httpserver"
	"roa-expert-system/internal/model"
	"roa-expert-system/internal/pipeline"
	"roa-expert-system/pkg/gemini"
	"roa-expert-system/pkg/gnews"
	"roa-expert-system/pkg/log"
	"roa-expert-system/pkg/openweather"
)

// @title       Roa Expert System API
// @description Query classification and routing service backed by Gemini, OpenWeatherMap, and GNews.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Roa Expert System...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Gemini model: %s", cfg.Gemini.Model)

	// 3. Outbound HTTP client, shared by all external adapters
	httpClient := &http.Client{Timeout: cfg.HTTPClient.Timeout}

	// 4. External service clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey,
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithHTTPClient(httpClient),
	)

	weatherOpts := []openweather.Option{openweather.WithHTTPClient(httpClient)}
	if cfg.Weather.BaseURL != "" {
		weatherOpts = append(weatherOpts, openweather.WithBaseURL(cfg.Weather.BaseURL))
	}
	if cfg.Weather.Units != "" {
		weatherOpts = append(weatherOpts, openweather.WithUnits(cfg.Weather.Units))
	}
	weatherClient, err := openweather.New(cfg.Weather.APIKey, weatherOpts...)
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenWeatherMap client: ", err)
		return
	}

	newsOpts := []gnews.Option{gnews.WithHTTPClient(httpClient)}
	if cfg.News.BaseURL != "" {
		newsOpts = append(newsOpts, gnews.WithBaseURL(cfg.News.BaseURL))
	}
	newsClient, err := gnews.New(cfg.News.APIKey, newsOpts...)
	if err != nil {
		logger.Error(ctx, "Failed to initialize GNews client: ", err)
		return
	}

	// 5. Pipeline
	weatherHandler := pipeline.NewWeatherHandler(logger, geminiClient, weatherClient, pipeline.WeatherHandlerConfig{
		DefaultCity: cfg.Weather.DefaultCity,
		ExtractCity: cfg.Pipeline.ExtractCity,
		Temperature: cfg.Gemini.Temperature,
	})
	newsHandler := pipeline.NewNewsHandler(logger, newsClient, pipeline.NewsHandlerConfig{
		Topic:           cfg.News.Topic,
		Lang:            cfg.News.Lang,
		Country:         cfg.News.Country,
		MaxArticles:     cfg.News.MaxArticles,
		IncludeArticles: cfg.News.IncludeArticles,
	})

	orchestrator, err := pipeline.New(pipeline.Config{
		Logger:     logger,
		Classifier: pipeline.NewClassifier(logger, geminiClient, cfg.Gemini.Temperature),
		SafetyGate: pipeline.NewSafetyGate(logger, geminiClient),
		Handlers: map[model.Category]pipeline.Handler{
			model.CategoryWeather: weatherHandler,
			model.CategoryNews:    newsHandler,
			model.CategoryJoke:    pipeline.NewJokeHandler(logger, geminiClient, cfg.Gemini.Temperature),
			model.CategoryOthers:  pipeline.NewOthersHandler(logger, geminiClient, cfg.Gemini.Temperature),
		},
		RecentRuns: cfg.Pipeline.RecentRuns,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize pipeline: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Pipeline:       orchestrator,
		WeatherFetcher: weatherHandler,
		NewsFetcher:    newsHandler,
		DefaultCity:    cfg.Weather.DefaultCity,
		NewsTopic:      cfg.News.Topic,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
