package evaluate

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/llm"
)

func TestLLMEvaluator_MultipleChoiceNeverCallsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	ev := New(mock, DefaultConfig())

	result, err := ev.Evaluate(context.Background(), mcQuestion(), "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected correct")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected 0 provider calls, got %d", mock.CallCount())
	}
}

func TestLLMEvaluator_FreeText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"is_correct": false,
			"is_partially_correct": true,
			"feedback": "You named the memorization but not the detection method."
		}`),
	})
	ev := New(mock, DefaultConfig())

	result, err := ev.Evaluate(context.Background(), freeTextQuestion(), "The model memorizes training data.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsCorrect || !result.IsPartiallyCorrect {
		t.Fatalf("unexpected grade: %+v", result)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema != EvaluationSchema {
		t.Error("request should carry the evaluation schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Student's answer: The model memorizes training data.") {
		t.Errorf("prompt is missing the student's answer: %q", req.Messages[0].Content)
	}
}

func TestLLMEvaluator_CorrectForcesPartialFalse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": true, "is_partially_correct": true, "feedback": "Well done."}`),
	})
	ev := New(mock, DefaultConfig())

	result, err := ev.Evaluate(context.Background(), freeTextQuestion(), "whatever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsCorrect || result.IsPartiallyCorrect {
		t.Fatalf("expected correct with partial cleared, got %+v", result)
	}
}

func TestLLMEvaluator_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	ev := New(mock, DefaultConfig())

	result, err := ev.Evaluate(context.Background(), freeTextQuestion(),
		"Overfitting is when the model memorizes the training data and fails to generalize to new data.")
	if err != nil {
		t.Fatalf("fallback should not return an error, got %v", err)
	}
	if !result.IsCorrect {
		t.Fatalf("overlap fallback should grade this correct, got %+v", result)
	}
}

func TestLLMEvaluator_GarbledResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	ev := New(mock, DefaultConfig())

	result, err := ev.Evaluate(context.Background(), freeTextQuestion(), "Bananas are yellow.")
	if err != nil {
		t.Fatalf("fallback should not return an error, got %v", err)
	}
	if result.IsCorrect {
		t.Fatalf("expected wrong from fallback, got %+v", result)
	}
}

func TestLLMEvaluator_NilProviderUsesFallback(t *testing.T) {
	ev := New(nil, DefaultConfig())

	result, err := ev.Evaluate(context.Background(), freeTextQuestion(), "The model memorizes training data.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsPartiallyCorrect {
		t.Fatalf("expected partial from fallback, got %+v", result)
	}
}
