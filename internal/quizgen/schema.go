package quizgen

import "github.com/abhisek/studiz/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "review-question",
	Description: "A single review question with answer and supporting material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner",
			},
			"question_type": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple-choice", "free-text"},
				"description": "How the learner answers: pick an option or write a short answer",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple-choice. Empty array for free-text.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "For multiple-choice: the letter A-D of the correct option. For free-text: a model answer in full sentences.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct option is correct. Multiple-choice only; empty for free-text.",
			},
			"key_points": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "2-5 facts a good free-text answer should cover. Empty array for multiple-choice.",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "The topic this question covers, taken from the source passages",
			},
		},
		"required":             []any{"question_text", "question_type", "options", "answer", "explanation", "key_points", "topic"},
		"additionalProperties": false,
	},
}
