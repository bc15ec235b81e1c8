package model

import "strings"

// Environment represents the deployment environment
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Category is the fixed intent assigned to a query. The set is closed:
// anything the classifier cannot match exactly becomes CategoryOthers.
type Category string

const (
	CategoryWeather Category = "weather"
	CategoryNews    Category = "news"
	CategoryJoke    Category = "joke"
	CategoryOthers  Category = "others"
)

// Categories lists every member of the closed set.
func Categories() []Category {
	return []Category{CategoryWeather, CategoryNews, CategoryJoke, CategoryOthers}
}

// ParseCategory normalizes a raw classifier reply (trim, lowercase) and
// maps it through an exact-match table. Multi-word or malformed replies
// fall through to CategoryOthers.
func ParseCategory(raw string) Category {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "weather":
		return CategoryWeather
	case "news":
		return CategoryNews
	case "joke":
		return CategoryJoke
	default:
		return CategoryOthers
	}
}

// Headline is one news item surfaced to the caller.
type Headline struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}
