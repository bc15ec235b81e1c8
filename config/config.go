package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Outbound HTTP
	HTTPClient HTTPClientConfig

	// External services
	Gemini  GeminiConfig
	Weather WeatherConfig
	News    NewsConfig

	// Pipeline behavior
	Pipeline PipelineConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// HTTPClientConfig controls the shared outbound HTTP client. A zero
// timeout means no limit (the original service behavior).
type HTTPClientConfig struct {
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

type WeatherConfig struct {
	APIKey      string
	BaseURL     string
	Units       string
	DefaultCity string
}

type NewsConfig struct {
	APIKey          string
	BaseURL         string
	Topic           string
	Lang            string
	Country         string // empty means worldwide
	MaxArticles     int
	IncludeArticles bool
}

type PipelineConfig struct {
	ExtractCity bool
	RecentRuns  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.HTTPClient.Timeout = viper.GetDuration("http_client.timeout")

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	if geminiKey := viper.GetString("google_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// OpenWeatherMap
	cfg.Weather.APIKey = expandEnvVar(viper.GetString("weather.api_key"))
	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	cfg.Weather.Units = viper.GetString("weather.units")
	cfg.Weather.DefaultCity = viper.GetString("weather.default_city")
	if weatherKey := viper.GetString("openweathermap_api_key"); weatherKey != "" {
		cfg.Weather.APIKey = weatherKey
	}

	// GNews
	cfg.News.APIKey = expandEnvVar(viper.GetString("news.api_key"))
	cfg.News.BaseURL = viper.GetString("news.base_url")
	cfg.News.Topic = viper.GetString("news.topic")
	cfg.News.Lang = viper.GetString("news.lang")
	cfg.News.Country = viper.GetString("news.country")
	cfg.News.MaxArticles = viper.GetInt("news.max_articles")
	cfg.News.IncludeArticles = viper.GetBool("news.include_articles")
	if newsKey := viper.GetString("gnews_api_key"); newsKey != "" {
		cfg.News.APIKey = newsKey
	}

	// Pipeline
	cfg.Pipeline.ExtractCity = viper.GetBool("pipeline.extract_city")
	cfg.Pipeline.RecentRuns = viper.GetInt("pipeline.recent_runs")

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required - set gemini.api_key in config.yaml or GOOGLE_API_KEY")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("http_client.timeout", "30s")

	viper.SetDefault("gemini.model", "gemini-1.5-flash-latest")
	viper.SetDefault("gemini.temperature", 0.7)

	viper.SetDefault("weather.units", "metric")
	viper.SetDefault("weather.default_city", "Bengaluru")

	viper.SetDefault("news.topic", "latest headlines")
	viper.SetDefault("news.lang", "en")
	viper.SetDefault("news.country", "in")
	viper.SetDefault("news.max_articles", 5)
	viper.SetDefault("news.include_articles", true)

	viper.SetDefault("pipeline.extract_city", true)
	viper.SetDefault("pipeline.recent_runs", 128)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
