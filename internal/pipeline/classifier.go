package pipeline

import (
	"context"
	"fmt"

	"roa-expert-system/internal/model"
	"roa-expert-system/pkg/log"
)

// Classifier maps raw query text to one of the fixed categories using
// the text-generation adapter.
type Classifier struct {
	l           log.Logger
	llm         TextGenerator
	temperature float64
}

// NewClassifier creates a new Classifier.
func NewClassifier(l log.Logger, llm TextGenerator, temperature float64) *Classifier {
	return &Classifier{
		l:           l,
		llm:         llm,
		temperature: temperature,
	}
}

// Classify sends the categorization prompt and maps the normalized reply
// through the exact-match table. An adapter failure is not recovered
// here: it propagates to the orchestrator as a fatal pipeline failure.
func (c *Classifier) Classify(ctx context.Context, text string) (model.Category, error) {
	reply, err := c.llm.GenerateText(ctx, fmt.Sprintf(CategorizePromptTemplate, text), c.temperature)
	if err != nil {
		return "", fmt.Errorf("classifier: %w", err)
	}

	category := model.ParseCategory(reply)
	c.l.Infof(ctx, "classifier: categorized as %s", category)
	return category, nil
}
