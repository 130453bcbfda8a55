package evaluate

import (
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/quizgen"
)

// Thresholds for the word-overlap fallback grader.
const (
	coverageCorrect  = 0.8
	coveragePartial  = 0.4
	referenceCorrect = 0.75
	referencePartial = 0.5
	keyPointHitRatio = 0.5
)

var fallbackStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "it": true, "its": true, "of": true,
	"in": true, "on": true, "to": true, "for": true, "and": true, "or": true,
	"that": true, "this": true, "with": true, "as": true, "by": true, "at": true,
	"from": true, "which": true, "when": true, "not": true, "but": true,
}

// GradeByOverlap grades a free-text answer deterministically by word
// overlap with the model answer and key points. It is the fallback when
// no LLM provider is available or the provider fails.
func GradeByOverlap(q *quizgen.Question, answer string) *Evaluation {
	answerWords := contentWords(answer)
	if len(answerWords) == 0 {
		return &Evaluation{
			Feedback: "I couldn't find an answer in your reply. Try answering in a full sentence.",
		}
	}

	refOverlap := overlapRatio(contentWords(q.Answer), answerWords)

	var covered int
	var missing []string
	for _, point := range q.KeyPoints {
		if overlapRatio(contentWords(point), answerWords) >= keyPointHitRatio {
			covered++
		} else {
			missing = append(missing, point)
		}
	}
	coverage := 0.0
	if len(q.KeyPoints) > 0 {
		coverage = float64(covered) / float64(len(q.KeyPoints))
	}

	switch {
	case coverage >= coverageCorrect || refOverlap >= referenceCorrect:
		return &Evaluation{
			IsCorrect: true,
			Feedback:  "Correct! Your answer covers the key points in the reference answer.",
		}

	case coverage >= coveragePartial || refOverlap >= referencePartial:
		feedback := "Partially correct. Your answer has some of the expected material, but is missing some key points."
		if len(missing) > 0 {
			feedback += fmt.Sprintf(" You could also mention: %s.", strings.Join(missing, "; "))
		}
		return &Evaluation{IsPartiallyCorrect: true, Feedback: feedback}

	default:
		feedback := "That doesn't match the reference answer."
		if q.Answer != "" {
			feedback += fmt.Sprintf(" A good answer would be: %s", q.Answer)
		}
		return &Evaluation{Feedback: feedback}
	}
}

// contentWords lowercases s, strips punctuation, and drops stopwords.
func contentWords(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()[]")
		if f == "" || fallbackStopwords[f] {
			continue
		}
		words = append(words, f)
	}
	return words
}

// overlapRatio returns the fraction of want words that appear in got.
func overlapRatio(want, got []string) float64 {
	if len(want) == 0 {
		return 0
	}
	set := make(map[string]bool, len(got))
	for _, w := range got {
		set[w] = true
	}
	var hits int
	for _, w := range want {
		if set[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(want))
}
