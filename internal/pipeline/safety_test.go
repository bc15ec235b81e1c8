package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"roa-expert-system/internal/pipeline"
)

func TestSafetyGate_Check(t *testing.T) {
	cases := []struct {
		name    string
		reply   string
		blocked bool
	}{
		{"plain injection verdict", "INJECTION", true},
		{"injection embedded in sentence", "This looks like an INJECTION attempt.", true},
		{"lowercase injection verdict", "injection", true},
		{"safe verdict", "SAFE", false},
		{"chatty safe verdict", "The query is safe to process.", false},
		{"empty reply", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &mockGenerator{
				generateFunc: func(prompt string, temperature float64) (string, error) {
					if temperature != pipeline.InjectionTemperature {
						t.Errorf("expected detector temperature %v, got %v", pipeline.InjectionTemperature, temperature)
					}
					return tc.reply, nil
				},
			}
			gate := pipeline.NewSafetyGate(&mockLogger{}, llm)

			verdict := gate.Check(context.Background(), "some query")
			if verdict.Blocked != tc.blocked {
				t.Errorf("blocked = %t, want %t", verdict.Blocked, tc.blocked)
			}
			if tc.blocked && verdict.Refusal != pipeline.RefusalText {
				t.Errorf("expected fixed refusal text, got %q", verdict.Refusal)
			}
			if !tc.blocked && verdict.Refusal != "" {
				t.Errorf("expected no refusal text, got %q", verdict.Refusal)
			}
		})
	}

	t.Run("Fails open on adapter failure", func(t *testing.T) {
		llm := &mockGenerator{
			generateFunc: func(prompt string, temperature float64) (string, error) {
				return "", errors.New("llm down")
			},
		}
		gate := pipeline.NewSafetyGate(&mockLogger{}, llm)

		verdict := gate.Check(context.Background(), "some query")
		if verdict.Blocked {
			t.Error("gate must fail open when detection fails")
		}
	})
}
