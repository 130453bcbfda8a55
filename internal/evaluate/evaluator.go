package evaluate

import (
	"context"

	"github.com/abhisek/studiz/internal/quizgen"
)

// Evaluation is the outcome of grading one answer.
type Evaluation struct {
	// IsCorrect reports whether the answer is fully correct.
	IsCorrect bool

	// IsPartiallyCorrect reports whether the answer covers some but not
	// all of the expected material. Never true when IsCorrect is true.
	IsPartiallyCorrect bool

	// Feedback addresses the learner directly and explains the grade.
	Feedback string
}

// Evaluator grades a learner's answer against a question.
type Evaluator interface {
	// Evaluate grades the answer. Multiple-choice questions are graded
	// deterministically; free-text grading may consult an LLM.
	Evaluate(ctx context.Context, q *quizgen.Question, answer string) (*Evaluation, error)
}
