package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roa-expert-system/internal/model"
	"roa-expert-system/pkg/gnews"
	"roa-expert-system/pkg/log"
)

// NewsHandler answers news queries with live headlines for a configured
// topic. Adapter failures are contained: network errors, upstream errors
// and empty results each become a descriptive sentence, never an error
// past the handler boundary.
type NewsHandler struct {
	l               log.Logger
	news            NewsProvider
	topic           string
	lang            string
	country         string
	maxArticles     int
	includeArticles bool
}

// NewsHandlerConfig configures a NewsHandler. An empty Country means
// worldwide headlines.
type NewsHandlerConfig struct {
	Topic           string
	Lang            string
	Country         string
	MaxArticles     int
	IncludeArticles bool
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(l log.Logger, news NewsProvider, cfg NewsHandlerConfig) *NewsHandler {
	topic := cfg.Topic
	if topic == "" {
		topic = DefaultNewsTopic
	}
	maxArticles := cfg.MaxArticles
	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}
	return &NewsHandler{
		l:               l,
		news:            news,
		topic:           topic,
		lang:            cfg.Lang,
		country:         cfg.Country,
		maxArticles:     maxArticles,
		includeArticles: cfg.IncludeArticles,
	}
}

// Handle implements Handler. The topic is fixed configuration, not
// extracted per query.
func (h *NewsHandler) Handle(ctx context.Context, st *State) error {
	text, headlines := h.Fetch(ctx, h.topic)
	st.Response = text
	if h.includeArticles {
		st.Headlines = headlines
	}
	return nil
}

// Fetch retrieves headlines for a topic and formats them as a numbered
// list. Also called directly by the GET convenience route. The returned
// list is empty (not nil) on an empty result and nil on failure.
func (h *NewsHandler) Fetch(ctx context.Context, topic string) (string, []model.Headline) {
	articles, err := h.news.Search(ctx, gnews.SearchOptions{
		Query:   topic,
		Lang:    h.lang,
		Country: h.country,
		Max:     h.maxArticles,
	})
	if err != nil {
		var netErr *gnews.NetworkError
		var upstream *gnews.UpstreamError
		switch {
		case errors.Is(err, gnews.ErrNoArticles):
			h.l.Infof(ctx, "news: no headlines for topic %q", topic)
			return MsgNewsNoHeadlines, []model.Headline{}
		case errors.As(err, &netErr):
			h.l.Warnf(ctx, "news: network error: %v", err)
			return fmt.Sprintf(MsgNewsNetworkError, netErr.Err), nil
		case errors.As(err, &upstream):
			h.l.Warnf(ctx, "news: upstream error: %v", err)
			return fmt.Sprintf(MsgNewsUpstreamError, upstream.Message), nil
		default:
			h.l.Warnf(ctx, "news: fetch failed: %v", err)
			return fmt.Sprintf(MsgNewsUpstreamError, err), nil
		}
	}

	if len(articles) > h.maxArticles {
		articles = articles[:h.maxArticles]
	}

	var b strings.Builder
	b.WriteString(MsgNewsHeader)
	headlines := make([]model.Headline, 0, len(articles))
	for i, a := range articles {
		fmt.Fprintf(&b, "%d. %s ([Source: %s](%s))\n", i+1, a.Title, a.Source.Name, a.URL)
		headlines = append(headlines, model.Headline{
			Title:  a.Title,
			Source: a.Source.Name,
			URL:    a.URL,
		})
	}

	return b.String(), headlines
}
