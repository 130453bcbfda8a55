package evaluate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/studiz/internal/quizgen"
)

// letterFormRe matches the ways learners type an option letter:
// "a", "A.", "b)", "option c", "answer d".
var letterFormRe = regexp.MustCompile(`^(?:option\s+|answer\s+)?([a-d])[).:]?$`)

// EvaluateMultipleChoice grades a multiple-choice answer locally.
// The learner may give the option letter in several forms or type out
// the option text; both are matched case-insensitively.
func EvaluateMultipleChoice(q *quizgen.Question, answer string) *Evaluation {
	letter := normalizeChoice(q, answer)
	correct := strings.ToUpper(strings.TrimSpace(q.Answer))

	if letter != "" && letter == correct {
		return &Evaluation{
			IsCorrect: true,
			Feedback:  fmt.Sprintf("Correct! %s is the right answer.", optionForLetter(q, correct)),
		}
	}

	feedback := fmt.Sprintf("That's not quite right. The correct answer is %s: %s.", correct, optionForLetter(q, correct))
	if q.Explanation != "" {
		feedback += " " + q.Explanation
	}
	return &Evaluation{Feedback: feedback}
}

// normalizeChoice reduces the learner's input to an option letter,
// or "" if no option could be identified.
func normalizeChoice(q *quizgen.Question, answer string) string {
	s := strings.ToLower(strings.TrimSpace(answer))
	if s == "" {
		return ""
	}

	if m := letterFormRe.FindStringSubmatch(s); m != nil {
		return strings.ToUpper(m[1])
	}

	// The learner may have typed out the option text.
	for i, opt := range q.Options {
		if strings.Contains(strings.ToLower(opt), s) {
			return string(rune('A' + i))
		}
	}
	return ""
}

// optionForLetter returns the option text for a letter A-D, or the
// letter itself when it is out of range for the question.
func optionForLetter(q *quizgen.Question, letter string) string {
	if len(letter) != 1 {
		return letter
	}
	idx := int(letter[0] - 'A')
	if idx < 0 || idx >= len(q.Options) {
		return letter
	}
	return q.Options[idx]
}
