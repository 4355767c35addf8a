package planner

import "github.com/abhisek/catprep/internal/llm"

// PlanSchema constrains the LLM to the minimal planning response: an
// ordered list of exactly 12 question IDs plus a one-line rationale.
// Keeping the response this small bounds both latency and token cost.
var PlanSchema = &llm.Schema{
	Name:        "session-pack",
	Description: "Ordered selection of 12 question IDs for the learner's next practice session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"selected_ids": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    12,
				"maxItems":    12,
				"description": "Question IDs from the candidate pool, in serving order",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"maxLength":   200,
				"description": "One-line rationale for the selection",
			},
		},
		"required":             []any{"selected_ids", "reasoning"},
		"additionalProperties": false,
	},
}

// planResponse mirrors PlanSchema.
type planResponse struct {
	SelectedIDs []string `json:"selected_ids"`
	Reasoning   string   `json:"reasoning"`
}
