package oraleval

import "github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/llm"

// EvaluationSchema constrains the qualitative evaluator's JSON output to
// the same contract the fallback heuristic produces.
var EvaluationSchema = &llm.Schema{
	Name:        "oral-answer-evaluation",
	Description: "Verdict on whether a spoken answer to a comprehension question is correct",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggested_result": map[string]any{
				"type":        "string",
				"enum":        []any{ResultCorrect, ResultIncorrect, ResultUnclear},
				"description": "The verdict on the student's answer",
			},
			"confidence": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "How confident the verdict is",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One-sentence explanation of the verdict",
			},
		},
		"required":             []any{"suggested_result", "confidence", "rationale"},
		"additionalProperties": false,
	},
}
