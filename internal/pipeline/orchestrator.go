package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run executes one pipeline run for the given query. Stage order is
// fixed and total, with no loops or re-entry:
//
//	Start → Classified → SafetyChecked → {Blocked | Routed} → Responded
//
// A classifier or handler failure aborts the run with no response
// synthesized; the safety gate fails open and weather/news adapter
// failures are contained inside their handlers.
func (o *Orchestrator) Run(ctx context.Context, query string) (Outcome, error) {
	if strings.TrimSpace(query) == "" {
		return Outcome{}, ErrEmptyQuery
	}

	runID := uuid.NewString()
	start := time.Now()
	st := &State{Query: query}

	o.l.Infof(ctx, "pipeline run %s: processing query %q", runID, query)

	// Classified
	category, err := o.classifier.Classify(ctx, query)
	if err != nil {
		return Outcome{}, err
	}
	st.Category = category

	// SafetyChecked
	verdict := o.gate.Check(ctx, query)
	if verdict.Blocked {
		// Blocked: short-circuit, handlers never run.
		st.Blocked = true
		st.Response = verdict.Refusal
	} else {
		// Routed: exactly one handler, keyed by category.
		if err := o.handlers[st.Category].Handle(ctx, st); err != nil {
			return Outcome{}, err
		}
	}

	// Responded
	elapsed := time.Since(start)
	o.l.Infof(ctx, "pipeline run %s: responded (category=%s blocked=%t elapsed=%s)",
		runID, st.Category, st.Blocked, elapsed)

	o.recent.Add(runID, RunRecord{
		RunID:     runID,
		Query:     query,
		Category:  st.Category,
		Blocked:   st.Blocked,
		ElapsedMS: elapsed.Milliseconds(),
		At:        start,
	})

	return Outcome{
		RunID:     runID,
		Response:  st.Response,
		Category:  st.Category,
		Blocked:   st.Blocked,
		Headlines: st.Headlines,
	}, nil
}

// Recent returns the retained run records, newest first.
func (o *Orchestrator) Recent() []RunRecord {
	keys := o.recent.Keys()
	records := make([]RunRecord, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		if rec, ok := o.recent.Peek(keys[i]); ok {
			records = append(records, rec)
		}
	}
	return records
}
