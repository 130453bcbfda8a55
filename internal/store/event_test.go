package store

import (
	"context"
	"testing"
)

func TestReviewStartAndEndRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendReviewStart(ctx, ReviewStartData{
		SessionID:    "sess-1",
		QuestionType: "multiple-choice",
		Difficulty:   "medium",
		NumQuestions: 5,
		Topics:       []string{"neural networks"},
	})
	if err != nil {
		t.Fatalf("append review start: %v", err)
	}

	err = repo.AppendReviewEnd(ctx, ReviewEndData{
		SessionID:      "sess-1",
		TotalAnswered:  5,
		CorrectAnswers: 4,
		Accuracy:       80,
	})
	if err != nil {
		t.Fatalf("append review end: %v", err)
	}

	stats, err := repo.ReviewStats(ctx)
	if err != nil {
		t.Fatalf("review stats: %v", err)
	}
	if stats.SessionsStarted != 1 {
		t.Errorf("sessions started = %d, want 1", stats.SessionsStarted)
	}
	if stats.SessionsCompleted != 1 {
		t.Errorf("sessions completed = %d, want 1", stats.SessionsCompleted)
	}
}

func TestAnswerEventsAndRecentAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "sess-1", QuestionType: "multiple-choice", Topic: "gradients", QuestionText: "Q1", CorrectAnswer: "A", LearnerAnswer: "A", Correct: true},
		{SessionID: "sess-1", QuestionType: "multiple-choice", Topic: "gradients", QuestionText: "Q2", CorrectAnswer: "B", LearnerAnswer: "C", Correct: false},
		{SessionID: "sess-1", QuestionType: "free-text", Topic: "overfitting", QuestionText: "Q3", CorrectAnswer: "ref", LearnerAnswer: "close enough", Correct: false, PartiallyCorrect: true, Feedback: "missed a point"},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	stats, err := repo.ReviewStats(ctx)
	if err != nil {
		t.Fatalf("review stats: %v", err)
	}
	if stats.QuestionsAnswered != 3 {
		t.Errorf("questions answered = %d, want 3", stats.QuestionsAnswered)
	}
	if stats.CorrectAnswers != 1 {
		t.Errorf("correct answers = %d, want 1", stats.CorrectAnswers)
	}

	recent, err := repo.RecentAnswers(ctx, 2)
	if err != nil {
		t.Fatalf("recent answers: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent answers = %d, want 2", len(recent))
	}
	// Newest first.
	if recent[0].QuestionText != "Q3" {
		t.Errorf("recent[0] = %q, want Q3", recent[0].QuestionText)
	}
	if recent[1].QuestionText != "Q2" {
		t.Errorf("recent[1] = %q, want Q2", recent[1].QuestionText)
	}
}

func TestDocumentEventCountsInStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendDocument(ctx, DocumentEventData{
		Source:   "notes.md",
		Passages: 12,
		Topics:   []string{"Neural Networks", "Overfitting"},
	})
	if err != nil {
		t.Fatalf("append document: %v", err)
	}

	stats, err := repo.ReviewStats(ctx)
	if err != nil {
		t.Fatalf("review stats: %v", err)
	}
	if stats.DocumentsIngested != 1 {
		t.Errorf("documents ingested = %d, want 1", stats.DocumentsIngested)
	}
}

func TestLLMEventQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "answer-eval", InputTokens: 80, OutputTokens: 30, LatencyMs: 500, Success: false, ErrorMessage: "rate limited"},
	}
	for i, r := range requests {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append LLM request %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first: the answer-eval call was last.
	if events[0].Purpose != "answer-eval" {
		t.Errorf("events[0].Purpose = %q, want answer-eval", events[0].Purpose)
	}
	if events[0].Success {
		t.Error("events[0].Success = true, want false")
	}
	if events[0].ErrorMessage != "rate limited" {
		t.Errorf("events[0].ErrorMessage = %q, want 'rate limited'", events[0].ErrorMessage)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage entries = %d, want 2", len(usage))
	}
	// Sorted by key: answer-eval before question-gen.
	if usage[0].Key != "answer-eval" || usage[0].Requests != 1 {
		t.Errorf("usage[0] = %+v, want answer-eval with 1 request", usage[0])
	}
	if usage[1].Key != "question-gen" || usage[1].Requests != 2 {
		t.Errorf("usage[1] = %+v, want question-gen with 2 requests", usage[1])
	}
	if usage[1].InputTokens != 220 || usage[1].OutputTokens != 110 {
		t.Errorf("usage[1] tokens = %d/%d, want 220/110", usage[1].InputTokens, usage[1].OutputTokens)
	}
}

func TestQueryLLMEventsSequenceFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("all events = %d, want 4", len(all))
	}

	// Events after the second-oldest sequence.
	cutoff := all[len(all)-2].Sequence
	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: cutoff})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("events after seq %d = %d, want 2", cutoff, len(after))
	}
	for _, e := range after {
		if e.Sequence <= cutoff {
			t.Errorf("event seq %d <= cutoff %d", e.Sequence, cutoff)
		}
	}
}
