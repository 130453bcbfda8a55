package quizgen

import (
	"strings"
	"testing"
)

func validMCQuestion() *Question {
	return &Question{
		Type:        TypeMultipleChoice,
		Text:        "Which layer produces the final prediction?",
		Options:     []string{"Input", "Output", "Hidden", "Dropout"},
		Answer:      "B",
		Explanation: "The output layer maps features to the prediction.",
		Topic:       "neural networks",
	}
}

func validFreeTextQuestion() *Question {
	return &Question{
		Type:      TypeFreeText,
		Text:      "Explain overfitting.",
		Answer:    "Overfitting is when a model memorizes training data instead of generalizing.",
		KeyPoints: []string{"memorizes training data", "fails to generalize"},
		Topic:     "model evaluation",
	}
}

func TestStructural_ValidQuestions(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validMCQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil for valid MC question, got %v", err)
	}
	if err := v.Validate(validFreeTextQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil for valid free-text question, got %v", err)
	}
}

func TestStructural_EmptyText(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Text = ""
	err := v.Validate(q, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty question_text")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_TextTooLong(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Text = strings.Repeat("a", 501)
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for long question_text")
	}
}

func TestStructural_WrongOptionCount(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Options = []string{"Input", "Output"}
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for 2 options")
	}
}

func TestStructural_AnswerNotALetter(t *testing.T) {
	v := &StructuralValidator{}
	for _, bad := range []string{"", "E", "BB", "The output layer"} {
		q := validMCQuestion()
		q.Answer = bad
		if err := v.Validate(q, GenerateInput{}); err == nil {
			t.Errorf("expected error for answer %q", bad)
		}
	}
	q := validMCQuestion()
	q.Answer = "d"
	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Errorf("lowercase letters are acceptable, got %v", err)
	}
}

func TestStructural_MissingExplanation(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Explanation = ""
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for missing explanation")
	}
}

func TestStructural_FreeTextMissingModelAnswer(t *testing.T) {
	v := &StructuralValidator{}
	q := validFreeTextQuestion()
	q.Answer = ""
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for missing model answer")
	}
}

func TestStructural_FreeTextKeyPoints(t *testing.T) {
	v := &StructuralValidator{}

	q := validFreeTextQuestion()
	q.KeyPoints = nil
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for missing key points")
	}

	q = validFreeTextQuestion()
	q.KeyPoints = []string{"a", "b", "c", "d", "e", "f"}
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for 6 key points")
	}
}

func TestStructural_UnknownType(t *testing.T) {
	v := &StructuralValidator{}
	q := validMCQuestion()
	q.Type = "essay"
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for unknown question type")
	}
}

func TestTypeMatch(t *testing.T) {
	v := &TypeMatchValidator{}

	if err := v.Validate(validMCQuestion(), GenerateInput{Type: TypeMultipleChoice}); err != nil {
		t.Fatalf("expected nil for matching type, got %v", err)
	}
	if err := v.Validate(validMCQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil when no type was requested, got %v", err)
	}
	if err := v.Validate(validMCQuestion(), GenerateInput{Type: TypeFreeText}); err == nil {
		t.Fatal("expected error for mismatched type")
	}
}
