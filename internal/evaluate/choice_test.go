package evaluate

import (
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/quizgen"
)

func mcQuestion() *quizgen.Question {
	return &quizgen.Question{
		Type:        quizgen.TypeMultipleChoice,
		Text:        "Which layer produces the final prediction?",
		Options:     []string{"The input layer", "The output layer", "The hidden layer", "The dropout layer"},
		Answer:      "B",
		Explanation: "The output layer maps features to the prediction.",
	}
}

func TestEvaluateMultipleChoice_LetterForms(t *testing.T) {
	correct := []string{"B", "b", " b ", "B.", "b)", "option b", "answer B"}
	for _, in := range correct {
		ev := EvaluateMultipleChoice(mcQuestion(), in)
		if !ev.IsCorrect {
			t.Errorf("EvaluateMultipleChoice(%q).IsCorrect = false, want true", in)
		}
	}
}

func TestEvaluateMultipleChoice_OptionText(t *testing.T) {
	ev := EvaluateMultipleChoice(mcQuestion(), "the output layer")
	if !ev.IsCorrect {
		t.Fatal("typing the option text should count as correct")
	}
	if !strings.Contains(ev.Feedback, "Correct!") {
		t.Errorf("unexpected feedback: %q", ev.Feedback)
	}
}

func TestEvaluateMultipleChoice_Wrong(t *testing.T) {
	ev := EvaluateMultipleChoice(mcQuestion(), "A")
	if ev.IsCorrect {
		t.Fatal("A should be wrong")
	}
	if ev.IsPartiallyCorrect {
		t.Error("multiple choice is never partially correct")
	}
	if !strings.Contains(ev.Feedback, "The correct answer is B") {
		t.Errorf("feedback should name the correct letter: %q", ev.Feedback)
	}
	if !strings.Contains(ev.Feedback, "The output layer maps features") {
		t.Errorf("feedback should include the explanation: %q", ev.Feedback)
	}
}

func TestEvaluateMultipleChoice_Unrecognized(t *testing.T) {
	for _, in := range []string{"", "   ", "E", "the quantum layer"} {
		ev := EvaluateMultipleChoice(mcQuestion(), in)
		if ev.IsCorrect {
			t.Errorf("EvaluateMultipleChoice(%q).IsCorrect = true, want false", in)
		}
	}
}
