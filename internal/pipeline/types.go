package pipeline

import (
	"time"

	"roa-expert-system/internal/model"
)

// State is the per-run record threaded through the pipeline. It is owned
// by exactly one in-flight run and never shared across runs. Response is
// set exactly once: by the safety gate on block, or by the selected
// handler otherwise.
type State struct {
	Query     string
	Category  model.Category
	Blocked   bool
	Response  string
	Headlines []model.Headline
}

// Outcome is the packaged result of one completed run.
type Outcome struct {
	RunID     string
	Response  string
	Category  model.Category
	Blocked   bool
	Headlines []model.Headline
}

// RunRecord is the retained trace of one run, kept by the orchestrator
// for operational visibility.
type RunRecord struct {
	RunID     string         `json:"run_id"`
	Query     string         `json:"query"`
	Category  model.Category `json:"category"`
	Blocked   bool           `json:"blocked"`
	ElapsedMS int64          `json:"elapsed_ms"`
	At        time.Time      `json:"at"`
}
