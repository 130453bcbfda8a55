package review

import (
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/intent"
	"github.com/abhisek/studiz/internal/quizgen"
)

func TestCombine_JoinsTextsKeepsFirstPayloads(t *testing.T) {
	q1 := &quizgen.Question{Text: "First?"}
	q2 := &quizgen.Question{Text: "Second?"}
	sum := &Summary{Correct: 1, Total: 2, Accuracy: 50}

	combined := Combine([]Response{
		{Text: "One.", Intent: intent.KindSetDifficulty},
		{Text: "Two.", Question: q1, Summary: sum, Intent: intent.KindReviewStatus},
		{Text: "Three.", Question: q2, Intent: intent.KindContinue},
	})

	if combined.Text != "One. Two. Three." {
		t.Errorf("Text = %q", combined.Text)
	}
	if combined.Question != q1 {
		t.Error("expected the first question payload to win")
	}
	if combined.Summary != sum {
		t.Error("expected the first summary payload to win")
	}
	if combined.Intent != intent.KindSetDifficulty {
		t.Errorf("combined intent should be the primary's, got %s", combined.Intent)
	}
}

func TestCombine_ResurfacesStartReviewQuestion(t *testing.T) {
	statusQ := &quizgen.Question{Text: "Status question?"}
	startQ := &quizgen.Question{Text: "Fresh question?"}

	combined := Combine([]Response{
		{Text: "Settings applied.", Question: statusQ, Intent: intent.KindSetNumQuestions},
		{Text: "Let's start.", Question: startQ, Intent: intent.KindStartReview},
	})

	if combined.Question != startQ {
		t.Error("a start_review question must win even when not primary")
	}
}

func TestCombine_Empty(t *testing.T) {
	combined := Combine(nil)
	if combined.Text == "" {
		t.Error("expected a fallback reply")
	}
}

func TestFormatQuestion(t *testing.T) {
	q := &quizgen.Question{
		Type:    quizgen.TypeMultipleChoice,
		Text:    "Which one?",
		Options: []string{"alpha", "beta", "gamma", "delta"},
	}
	got := FormatQuestion(q)
	if !strings.Contains(got, "Which one?") || !strings.Contains(got, "B. beta") || !strings.Contains(got, "D. delta") {
		t.Errorf("unexpected rendering:\n%s", got)
	}

	free := &quizgen.Question{Type: quizgen.TypeFreeText, Text: "Explain X."}
	if FormatQuestion(free) != "Explain X." {
		t.Errorf("free-text questions render as plain text, got %q", FormatQuestion(free))
	}
	if FormatQuestion(nil) != "" {
		t.Error("nil question renders empty")
	}
}
