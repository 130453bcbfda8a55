package app

import (
	"context"
	"testing"

	"github.com/abhisek/studiz/internal/evaluate"
	"github.com/abhisek/studiz/internal/quizgen"
	"github.com/abhisek/studiz/internal/review"
	"github.com/abhisek/studiz/internal/store"
)

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	starts  []store.ReviewStartData
	ends    []store.ReviewEndData
	answers []store.AnswerEventData
}

func (f *fakeEventRepo) AppendReviewStart(_ context.Context, d store.ReviewStartData) error {
	f.starts = append(f.starts, d)
	return nil
}

func (f *fakeEventRepo) AppendReviewEnd(_ context.Context, d store.ReviewEndData) error {
	f.ends = append(f.ends, d)
	return nil
}

func (f *fakeEventRepo) AppendAnswer(_ context.Context, d store.AnswerEventData) error {
	f.answers = append(f.answers, d)
	return nil
}

func (f *fakeEventRepo) AppendDocument(context.Context, store.DocumentEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestSummary, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestDetail, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) ReviewStats(context.Context) (store.ReviewStats, error) {
	return store.ReviewStats{
		SessionsStarted:   len(f.starts),
		SessionsCompleted: len(f.ends),
		QuestionsAnswered: len(f.answers),
	}, nil
}

func (f *fakeEventRepo) RecentAnswers(context.Context, int) ([]store.AnswerSummary, error) {
	return nil, nil
}

func TestRecorderSessionLifecycle(t *testing.T) {
	repo := &fakeEventRepo{}
	rec := NewRecorder(repo, nil)
	ctx := context.Background()

	state := review.NewSessionState()
	state.NumQuestions = 3
	state.Topics = []string{"gradients"}

	if err := rec.SessionStarted(ctx, state); err != nil {
		t.Fatalf("session started: %v", err)
	}
	if len(repo.starts) != 1 {
		t.Fatalf("starts = %d, want 1", len(repo.starts))
	}
	start := repo.starts[0]
	if start.SessionID == "" {
		t.Error("expected non-empty session ID")
	}
	if start.NumQuestions != 3 {
		t.Errorf("num questions = %d, want 3", start.NumQuestions)
	}
	if start.QuestionType != "multiple-choice" {
		t.Errorf("question type = %q, want multiple-choice", start.QuestionType)
	}

	q := &quizgen.Question{
		Type:   quizgen.TypeMultipleChoice,
		Text:   "What is backpropagation?",
		Answer: "A",
		Topic:  "gradients",
	}
	ev := &evaluate.Evaluation{IsCorrect: true, Feedback: "Correct!"}
	if err := rec.AnswerRecorded(ctx, q, "a", ev); err != nil {
		t.Fatalf("answer recorded: %v", err)
	}
	if len(repo.answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(repo.answers))
	}
	ans := repo.answers[0]
	if ans.SessionID != start.SessionID {
		t.Error("answer should carry the session ID from start")
	}
	if !ans.Correct {
		t.Error("expected correct answer recorded")
	}

	if err := rec.SessionEnded(ctx, review.Summary{Correct: 1, Total: 1, Accuracy: 100}); err != nil {
		t.Fatalf("session ended: %v", err)
	}
	if len(repo.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(repo.ends))
	}
	if repo.ends[0].SessionID != start.SessionID {
		t.Error("end should carry the session ID from start")
	}
	if repo.ends[0].Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", repo.ends[0].Accuracy)
	}
}

func TestRecorderNewSessionGetsNewID(t *testing.T) {
	repo := &fakeEventRepo{}
	rec := NewRecorder(repo, nil)
	ctx := context.Background()

	state := review.NewSessionState()
	_ = rec.SessionStarted(ctx, state)
	_ = rec.SessionStarted(ctx, state)

	if len(repo.starts) != 2 {
		t.Fatalf("starts = %d, want 2", len(repo.starts))
	}
	if repo.starts[0].SessionID == repo.starts[1].SessionID {
		t.Error("expected a fresh session ID per started session")
	}
}
