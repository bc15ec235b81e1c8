package gnews

import "strings"

// SearchOptions are the query parameters for one article search.
type SearchOptions struct {
	Query   string
	Lang    string
	Country string // empty means worldwide
	Max     int
}

// Article is a single search hit.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      Source `json:"source"`
}

// Source identifies the publisher of an article.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// searchResponse is the raw API body. Error responses carry either an
// "errors" list or a "message" field depending on the failure.
type searchResponse struct {
	TotalArticles int       `json:"totalArticles"`
	Articles      []Article `json:"articles"`
	Errors        []string  `json:"errors"`
	Message       string    `json:"message"`
}

func (r *searchResponse) errorMessage() string {
	if len(r.Errors) > 0 {
		return strings.Join(r.Errors, "; ")
	}
	if r.Message != "" {
		return r.Message
	}
	return "No articles found or an unknown error occurred."
}
