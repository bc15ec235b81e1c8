package pipeline

import (
	"context"
	"fmt"

	"roa-expert-system/pkg/log"
)

// JokeHandler answers joke queries with a single generation call.
// Unlike the weather and news handlers, a generation failure here is
// not contained: it propagates as a fatal pipeline failure.
type JokeHandler struct {
	l           log.Logger
	llm         TextGenerator
	temperature float64
}

// NewJokeHandler creates a new JokeHandler.
func NewJokeHandler(l log.Logger, llm TextGenerator, temperature float64) *JokeHandler {
	return &JokeHandler{l: l, llm: llm, temperature: temperature}
}

// Handle implements Handler.
func (h *JokeHandler) Handle(ctx context.Context, st *State) error {
	reply, err := h.llm.GenerateText(ctx, fmt.Sprintf(JokePromptTemplate, st.Query), h.temperature)
	if err != nil {
		return fmt.Errorf("joke handler: %w", err)
	}
	st.Response = reply
	return nil
}

// OthersHandler is the catch-all for queries outside the other
// categories. It answers with the Roa persona. Same failure policy as
// JokeHandler: generation errors are fatal.
type OthersHandler struct {
	l           log.Logger
	llm         TextGenerator
	temperature float64
}

// NewOthersHandler creates a new OthersHandler.
func NewOthersHandler(l log.Logger, llm TextGenerator, temperature float64) *OthersHandler {
	return &OthersHandler{l: l, llm: llm, temperature: temperature}
}

// Handle implements Handler.
func (h *OthersHandler) Handle(ctx context.Context, st *State) error {
	reply, err := h.llm.GenerateText(ctx, fmt.Sprintf(PersonaPromptTemplate, st.Query), h.temperature)
	if err != nil {
		return fmt.Errorf("others handler: %w", err)
	}
	st.Response = reply
	return nil
}
