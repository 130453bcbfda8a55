package review

import (
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/intent"
	"github.com/abhisek/studiz/internal/quizgen"
)

// Response is one reply from the dialogue machine, ready for the
// presentation layer.
type Response struct {
	// Text is the reply shown (or spoken) to the learner.
	Text string

	// Question is the question being asked, when this reply asks one.
	Question *quizgen.Question

	// Summary is the session score, when this reply ends or reports on
	// a session.
	Summary *Summary

	// Intent tags which intent produced this reply.
	Intent intent.Kind
}

// Combine merges the primary response with the responses of all
// additional intents into one coherent reply. Texts are joined with
// single spaces; the first question and first summary payloads win.
// A start_review question is re-surfaced even when start_review was
// not primary, since settings are conventionally applied before the
// review begins.
func Combine(responses []Response) Response {
	if len(responses) == 0 {
		return Response{Text: "I'm not sure how to respond.", Intent: intent.KindUnknown}
	}
	if len(responses) == 1 {
		return responses[0]
	}

	combined := Response{Intent: responses[0].Intent}

	texts := make([]string, 0, len(responses))
	for _, r := range responses {
		if r.Text != "" {
			texts = append(texts, r.Text)
		}
		if combined.Question == nil && r.Question != nil {
			combined.Question = r.Question
		}
		if combined.Summary == nil && r.Summary != nil {
			combined.Summary = r.Summary
		}
	}
	combined.Text = strings.Join(texts, " ")

	// A review started mid-utterance must still surface its question.
	for _, r := range responses {
		if r.Intent == intent.KindStartReview && r.Question != nil {
			combined.Question = r.Question
			break
		}
	}

	return combined
}

// FormatQuestion renders a question for a text reply. Multiple-choice
// options are lettered A-D on their own lines.
func FormatQuestion(q *quizgen.Question) string {
	if q == nil {
		return ""
	}
	if q.Type != quizgen.TypeMultipleChoice || len(q.Options) == 0 {
		return q.Text
	}

	var b strings.Builder
	b.WriteString(q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "\n%c. %s", 'A'+i, opt)
	}
	return b.String()
}
