package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"roa-expert-system/internal/model"
	"roa-expert-system/internal/pipeline"
	"roa-expert-system/pkg/log"
)

// Pipeline is the expert-system boundary the server dispatches to.
type Pipeline interface {
	Run(ctx context.Context, query string) (pipeline.Outcome, error)
	Recent() []pipeline.RunRecord
}

// WeatherFetcher is the direct weather route boundary.
type WeatherFetcher interface {
	Fetch(ctx context.Context, city string) string
}

// NewsFetcher is the direct news route boundary.
type NewsFetcher interface {
	Fetch(ctx context.Context, topic string) (string, []model.Headline)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Expert system
	pipeline       Pipeline
	weatherFetcher WeatherFetcher
	newsFetcher    NewsFetcher
	defaultCity    string
	newsTopic      string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Pipeline       Pipeline
	WeatherFetcher WeatherFetcher
	NewsFetcher    NewsFetcher
	DefaultCity    string
	NewsTopic      string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		pipeline:       cfg.Pipeline,
		weatherFetcher: cfg.WeatherFetcher,
		newsFetcher:    cfg.NewsFetcher,
		defaultCity:    cfg.DefaultCity,
		newsTopic:      cfg.NewsTopic,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.pipeline == nil {
		return errors.New("pipeline is required")
	}
	if srv.weatherFetcher == nil {
		return errors.New("weather fetcher is required")
	}
	if srv.newsFetcher == nil {
		return errors.New("news fetcher is required")
	}
	return nil
}
