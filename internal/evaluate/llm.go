package evaluate

import (
	"context"
	"encoding/json"

	"github.com/abhisek/studiz/internal/llm"
	"github.com/abhisek/studiz/internal/quizgen"
)

// Config controls the behavior of the LLMEvaluator.
type Config struct {
	// MaxTokens is the token budget for the grading response.
	MaxTokens int

	// Temperature controls grading randomness. Keep it low for
	// consistent grades.
	Temperature float64
}

// DefaultConfig returns recommended grading defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.1,
	}
}

// LLMEvaluator grades answers. Multiple-choice answers are graded
// locally; free-text answers go to the LLM provider, falling back to
// deterministic word overlap when the provider fails.
type LLMEvaluator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMEvaluator. The provider may be nil, in which case
// free-text grading always uses the overlap fallback.
func New(provider llm.Provider, cfg Config) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, config: cfg}
}

// evaluationOutput is the raw LLM grading response.
type evaluationOutput struct {
	IsCorrect          bool   `json:"is_correct"`
	IsPartiallyCorrect bool   `json:"is_partially_correct"`
	Feedback           string `json:"feedback"`
}

// Evaluate grades the answer.
func (e *LLMEvaluator) Evaluate(ctx context.Context, q *quizgen.Question, answer string) (*Evaluation, error) {
	if q.Type == quizgen.TypeMultipleChoice {
		return EvaluateMultipleChoice(q, answer), nil
	}

	if e.provider == nil {
		return GradeByOverlap(q, answer), nil
	}

	ctx = llm.WithPurpose(ctx, "answer-eval")

	req := llm.Request{
		System: evalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvalMessage(q, answer)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		// Grading should not block the session on provider trouble.
		return GradeByOverlap(q, answer), nil
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return GradeByOverlap(q, answer), nil
	}

	ev := &Evaluation{
		IsCorrect:          raw.IsCorrect,
		IsPartiallyCorrect: raw.IsPartiallyCorrect,
		Feedback:           raw.Feedback,
	}
	if ev.IsCorrect {
		ev.IsPartiallyCorrect = false
	}
	return ev, nil
}
