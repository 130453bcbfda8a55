package evaluate

import (
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/quizgen"
)

const evalSystemPrompt = `You are an educational evaluator grading a student's answer with care and fairness.

Rules:
- Grade strictly against the reference answer and key points, not your own knowledge.
- "is_correct" means the answer covers the substance of the reference answer; wording may differ.
- "is_partially_correct" means some but not all key points are covered. It must be false when is_correct is true.
- Address the student directly in the feedback and keep it concise.
- When the answer is wrong or partial, name the key points it missed.`

// buildEvalMessage formats the question and the learner's answer for grading.
func buildEvalMessage(q *quizgen.Question, answer string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", q.Text)
	fmt.Fprintf(&b, "\nReference answer: %s\n", q.Answer)

	b.WriteString("\nKey points a good answer should cover:\n")
	if len(q.KeyPoints) == 0 {
		b.WriteString("None listed\n")
	}
	for _, point := range q.KeyPoints {
		fmt.Fprintf(&b, "- %s\n", point)
	}

	fmt.Fprintf(&b, "\nStudent's answer: %s\n", answer)
	return b.String()
}
