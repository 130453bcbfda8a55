package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/llm"
)

func mcQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "Which layer of a neural network produces the final prediction?",
		"question_type": "multiple-choice",
		"options": ["The input layer", "The output layer", "The hidden layer", "The dropout layer"],
		"answer": "B",
		"explanation": "The output layer maps the last hidden representation to the prediction.",
		"key_points": [],
		"topic": "neural networks"
	}`)
}

func freeTextQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "Explain what overfitting is and how to detect it.",
		"question_type": "free-text",
		"options": [],
		"answer": "Overfitting is when a model memorizes training data instead of generalizing. It is detected by a gap between training and validation accuracy.",
		"explanation": "",
		"key_points": ["memorizes training data", "fails to generalize", "training vs validation gap"],
		"topic": "model evaluation"
	}`)
}

func TestGenerate_MultipleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcQuestionJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Type:       TypeMultipleChoice,
		Difficulty: DifficultyMedium,
		Passages:   []string{"A neural network has input, hidden, and output layers."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != TypeMultipleChoice {
		t.Errorf("expected multiple-choice type, got %q", q.Type)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.Answer != "B" {
		t.Errorf("expected answer B, got %q", q.Answer)
	}
	if q.Topic != "neural networks" {
		t.Errorf("unexpected topic: %q", q.Topic)
	}
}

func TestGenerate_FreeText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: freeTextQuestionJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Type:       TypeFreeText,
		Difficulty: DifficultyHard,
		Passages:   []string{"Overfitting happens when a model memorizes noise."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != TypeFreeText {
		t.Errorf("expected free-text type, got %q", q.Type)
	}
	if len(q.KeyPoints) != 3 {
		t.Errorf("expected 3 key points, got %d", len(q.KeyPoints))
	}
	if !strings.HasPrefix(q.Answer, "Overfitting is") {
		t.Errorf("model answer should not be upper-cased as a letter: %q", q.Answer)
	}
}

func TestGenerate_NormalizesAnswerLetter(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "Which option is correct?",
		"question_type": "multiple-choice",
		"options": ["one", "two", "three", "four"],
		"answer": " c ",
		"explanation": "Because it is.",
		"key_points": [],
		"topic": "misc"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{Type: TypeMultipleChoice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "C" {
		t.Errorf("expected normalized answer C, got %q", q.Answer)
	}
}

func TestGenerate_ValidationFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "Which option is correct?",
		"question_type": "multiple-choice",
		"options": ["one", "two"],
		"answer": "A",
		"explanation": "Because.",
		"key_points": [],
		"topic": "misc"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Type: TypeMultipleChoice})
	if err == nil {
		t.Fatal("expected validation error for 2-option question")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", verr.Validator)
	}
}

func TestGenerate_TypeMismatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Type: TypeFreeText})
	if err == nil {
		t.Fatal("expected type-match validation error")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Type: TypeMultipleChoice})
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
}

func TestGenerate_PromptIncludesPassagesAndDedup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Type:           TypeMultipleChoice,
		Topics:         []string{"neural networks"},
		Passages:       []string{"Backpropagation computes gradients layer by layer."},
		PriorQuestions: []string{"What is a gradient?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Backpropagation computes gradients") {
		t.Error("prompt is missing the retrieved passage")
	}
	if !strings.Contains(msg, "What is a gradient?") {
		t.Error("prompt is missing the prior question")
	}
	if !strings.Contains(msg, "neural networks") {
		t.Error("prompt is missing the topic restriction")
	}
}
