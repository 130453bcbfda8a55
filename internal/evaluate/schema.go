package evaluate

import "github.com/abhisek/studiz/internal/llm"

// EvaluationSchema defines the JSON schema for LLM grading responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Grading of a learner's free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer is fully correct",
			},
			"is_partially_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer covers some but not all of the expected material. Must be false when is_correct is true.",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Concise feedback addressing the learner directly",
			},
		},
		"required":             []any{"is_correct", "is_partially_correct", "feedback"},
		"additionalProperties": false,
	},
}
