package pipeline

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"roa-expert-system/internal/model"
	"roa-expert-system/pkg/log"
)

// Orchestrator sequences one pipeline run: classify, safety-check,
// route, respond. It is the only component allowed to inspect category
// and blocked together, and the only one holding cross-request state
// (the recent-runs cache).
type Orchestrator struct {
	l          log.Logger
	classifier *Classifier
	gate       *SafetyGate
	handlers   map[model.Category]Handler
	recent     *lru.Cache[string, RunRecord]
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger     log.Logger
	Classifier *Classifier
	SafetyGate *SafetyGate
	Handlers   map[model.Category]Handler
	RecentRuns int
}

// New creates a new Orchestrator.
func New(cfg Config) (*Orchestrator, error) {
	o := &Orchestrator{
		l:          cfg.Logger,
		classifier: cfg.Classifier,
		gate:       cfg.SafetyGate,
		handlers:   cfg.Handlers,
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	recentRuns := cfg.RecentRuns
	if recentRuns <= 0 {
		recentRuns = DefaultRecentRuns
	}
	recent, err := lru.New[string, RunRecord](recentRuns)
	if err != nil {
		return nil, fmt.Errorf("failed to create recent-runs cache: %w", err)
	}
	o.recent = recent

	return o, nil
}

func (o *Orchestrator) validate() error {
	if o.l == nil {
		return errors.New("logger is required")
	}
	if o.classifier == nil {
		return errors.New("classifier is required")
	}
	if o.gate == nil {
		return errors.New("safety gate is required")
	}
	// The category enum is closed: every member must be routable.
	for _, category := range model.Categories() {
		if _, ok := o.handlers[category]; !ok {
			return fmt.Errorf("no handler registered for category %q", category)
		}
	}
	return nil
}
