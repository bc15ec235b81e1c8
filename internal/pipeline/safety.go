package pipeline

import (
	"context"
	"fmt"
	"strings"

	"roa-expert-system/pkg/log"
)

// SafetyGate screens raw input for prompt-injection attempts before
// routing.
type SafetyGate struct {
	l   log.Logger
	llm TextGenerator
}

// NewSafetyGate creates a new SafetyGate.
func NewSafetyGate(l log.Logger, llm TextGenerator) *SafetyGate {
	return &SafetyGate{l: l, llm: llm}
}

// Verdict is the outcome of one safety check.
type Verdict struct {
	Blocked bool
	Refusal string
}

// Check asks the generation service to assess the query and blocks iff
// the reply contains the injection token. On any adapter failure the
// gate fails open (not blocked), so detector outages never block
// legitimate traffic.
func (g *SafetyGate) Check(ctx context.Context, text string) Verdict {
	reply, err := g.llm.GenerateText(ctx, fmt.Sprintf(InjectionPromptTemplate, text), InjectionTemperature)
	if err != nil {
		g.l.Warnf(ctx, "safety gate: detection failed, defaulting to safe: %v", err)
		return Verdict{}
	}

	if strings.Contains(strings.ToUpper(reply), InjectionToken) {
		g.l.Warnf(ctx, "safety gate: prompt injection detected")
		return Verdict{Blocked: true, Refusal: RefusalText}
	}

	return Verdict{}
}
