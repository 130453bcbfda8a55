package evaluate

import (
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/quizgen"
)

func freeTextQuestion() *quizgen.Question {
	return &quizgen.Question{
		Type:   quizgen.TypeFreeText,
		Text:   "Explain what overfitting is and how to detect it.",
		Answer: "Overfitting happens when a model memorizes the training data instead of generalizing to new data.",
		KeyPoints: []string{
			"model memorizes training data",
			"fails to generalize",
		},
	}
}

func TestGradeByOverlap_Correct(t *testing.T) {
	ev := GradeByOverlap(freeTextQuestion(),
		"Overfitting is when the model memorizes the training data and fails to generalize to new data.")
	if !ev.IsCorrect {
		t.Fatalf("expected correct, got %+v", ev)
	}
	if ev.IsPartiallyCorrect {
		t.Error("IsPartiallyCorrect must be false when IsCorrect is true")
	}
}

func TestGradeByOverlap_Partial(t *testing.T) {
	ev := GradeByOverlap(freeTextQuestion(),
		"The model memorizes training data.")
	if ev.IsCorrect {
		t.Fatalf("expected not fully correct, got %+v", ev)
	}
	if !ev.IsPartiallyCorrect {
		t.Fatalf("expected partially correct, got %+v", ev)
	}
	if !strings.Contains(ev.Feedback, "fails to generalize") {
		t.Errorf("feedback should name the missing key point: %q", ev.Feedback)
	}
}

func TestGradeByOverlap_Wrong(t *testing.T) {
	ev := GradeByOverlap(freeTextQuestion(), "Bananas are yellow.")
	if ev.IsCorrect || ev.IsPartiallyCorrect {
		t.Fatalf("expected wrong, got %+v", ev)
	}
	if !strings.Contains(ev.Feedback, "A good answer would be") {
		t.Errorf("feedback should show the reference answer: %q", ev.Feedback)
	}
}

func TestGradeByOverlap_EmptyAnswer(t *testing.T) {
	ev := GradeByOverlap(freeTextQuestion(), "  ")
	if ev.IsCorrect || ev.IsPartiallyCorrect {
		t.Fatalf("expected wrong for empty answer, got %+v", ev)
	}
}
