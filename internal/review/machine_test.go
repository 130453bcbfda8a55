package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/evaluate"
	"github.com/abhisek/studiz/internal/intent"
	"github.com/abhisek/studiz/internal/quizgen"
	"github.com/abhisek/studiz/internal/speech"
)

type stubGenerator struct {
	calls int
	err   error
}

func (g *stubGenerator) Generate(_ context.Context, in quizgen.GenerateInput) (*quizgen.Question, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &quizgen.Question{
		Type:        quizgen.TypeMultipleChoice,
		Text:        fmt.Sprintf("Question %d?", g.calls),
		Options:     []string{"one", "two", "three", "four"},
		Answer:      "B",
		Explanation: "Because.",
	}, nil
}

type stubEvaluator struct {
	correct bool
	err     error
}

func (e *stubEvaluator) Evaluate(_ context.Context, _ *quizgen.Question, _ string) (*evaluate.Evaluation, error) {
	if e.err != nil {
		return nil, e.err
	}
	return &evaluate.Evaluation{IsCorrect: e.correct, Feedback: "Noted."}, nil
}

type stubLibrary struct {
	loaded   bool
	topics   []string
	passages []string
}

func (l *stubLibrary) Loaded() bool     { return l.loaded }
func (l *stubLibrary) Topics() []string { return l.topics }
func (l *stubLibrary) Search(_ []string, _ int) []string {
	return l.passages
}

func testMachine() *Machine {
	return NewMachine(Config{
		Generator: &stubGenerator{},
		Evaluator: &stubEvaluator{correct: true},
		Library:   &stubLibrary{loaded: true, passages: []string{"Some passage."}},
		Speaker:   speech.Noop{},
	})
}

func handle(t *testing.T, m *Machine, in intent.Intent) Response {
	t.Helper()
	return m.Handle(context.Background(), in)
}

func TestStartReview_NoDocuments(t *testing.T) {
	m := NewMachine(Config{
		Generator: &stubGenerator{},
		Library:   &stubLibrary{loaded: false},
	})

	resp := m.Respond(context.Background(), "start the review")
	if !strings.Contains(resp.Text, "upload some documents first") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
	if m.Session().IsReviewing {
		t.Error("session must stay idle without documents")
	}
	if m.Session().CurrentQuestion != nil {
		t.Error("no question may be generated without documents")
	}
}

func TestStartReview_GeneratorFailure(t *testing.T) {
	m := NewMachine(Config{
		Generator: &stubGenerator{err: errors.New("provider down")},
		Library:   &stubLibrary{loaded: true},
	})

	resp := handle(t, m, intent.Intent{Kind: intent.KindStartReview})
	if !strings.Contains(resp.Text, "couldn't generate a question") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
	if m.Session().IsReviewing {
		t.Error("session must stay idle when generation fails")
	}
}

func TestStartReview_NilGenerator(t *testing.T) {
	m := NewMachine(Config{Library: &stubLibrary{loaded: true}})

	resp := handle(t, m, intent.Intent{Kind: intent.KindStartReview})
	if !strings.Contains(resp.Text, "not available") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
}

func TestHandle_RefreshesDocumentFlag(t *testing.T) {
	lib := &stubLibrary{loaded: false}
	m := NewMachine(Config{
		Generator: &stubGenerator{},
		Evaluator: &stubEvaluator{correct: true},
		Library:   lib,
	})

	resp := handle(t, m, intent.Intent{Kind: intent.KindStartReview})
	if !strings.Contains(resp.Text, "upload some documents first") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}

	lib.loaded = true
	handle(t, m, intent.Intent{Kind: intent.KindStartReview})
	if !m.Session().IsReviewing {
		t.Error("Handle must pick up newly loaded documents")
	}
}

func TestQuizLoop_SingleQuestionRoundTrip(t *testing.T) {
	m := testMachine()
	m.Session().NumQuestions = 1

	resp := handle(t, m, intent.Intent{Kind: intent.KindStartReview})
	if !m.Session().IsReviewing {
		t.Fatal("expected Reviewing after start_review")
	}
	if m.Session().CurrentQuestion == nil {
		t.Fatal("expected a current question")
	}
	if resp.Question == nil {
		t.Error("start reply should carry the question payload")
	}

	resp = handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "B"})
	if m.Session().IsReviewing {
		t.Error("single-question session must end after the answer")
	}
	if m.Session().AwaitingFeedback {
		t.Error("no AwaitingFeedback for the last question")
	}
	if m.Session().CurrentQuestion != nil {
		t.Error("current question must be cleared at session end")
	}
	if resp.Summary == nil {
		t.Fatal("expected a session summary")
	}
	if resp.Summary.Total != 1 || resp.Summary.Correct != 1 {
		t.Errorf("summary = %+v, want 1/1", resp.Summary)
	}
}

func TestQuizLoop_AwaitingFeedback(t *testing.T) {
	m := testMachine()
	m.Session().NumQuestions = 2

	handle(t, m, intent.Intent{Kind: intent.KindStartReview})
	first := m.Session().CurrentQuestion

	resp := handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "B"})
	s := m.Session()
	if !s.AwaitingFeedback {
		t.Fatal("expected AwaitingFeedback after a non-final answer")
	}
	if s.NextQuestion == nil {
		t.Fatal("next question must be pre-generated")
	}
	if s.CurrentQuestion != first {
		t.Error("current question must stay the answered one until continue")
	}
	if resp.Question != nil {
		t.Error("feedback reply must withhold the next question")
	}
	if strings.Contains(resp.Text, s.NextQuestion.Text) {
		t.Error("feedback reply must not leak the next question text")
	}

	next := s.NextQuestion
	resp = handle(t, m, intent.Intent{Kind: intent.KindContinue})
	if s.CurrentQuestion != next {
		t.Error("continue must promote the prepared question")
	}
	if s.NextQuestion != nil {
		t.Error("next question slot must be cleared")
	}
	if s.AwaitingFeedback {
		t.Error("awaiting_feedback must be cleared")
	}
	if resp.Question != next {
		t.Error("continue reply should carry the new question")
	}
}

func TestContinue_WithoutPendingFeedback(t *testing.T) {
	m := testMachine()
	handle(t, m, intent.Intent{Kind: intent.KindStartReview})

	before := *m.Session()
	resp := handle(t, m, intent.Intent{Kind: intent.KindContinue})
	if !strings.Contains(resp.Text, "answer the current question first") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
	if m.Session().AwaitingFeedback != before.AwaitingFeedback || m.Session().CurrentQuestion != before.CurrentQuestion {
		t.Error("guidance reply must not change state")
	}
}

func TestContinue_Idle(t *testing.T) {
	m := testMachine()
	resp := handle(t, m, intent.Intent{Kind: intent.KindContinue})
	if !strings.Contains(resp.Text, "not currently in a review session") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
}

func TestAnswer_Idle(t *testing.T) {
	m := testMachine()
	resp := handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "B"})
	if !strings.Contains(resp.Text, "not currently in a review session") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
	if m.Session().TotalAnswered != 0 {
		t.Error("no answer may be counted while idle")
	}
}

func TestAnswer_WhileAwaitingFeedback(t *testing.T) {
	m := testMachine()
	m.Session().NumQuestions = 2
	handle(t, m, intent.Intent{Kind: intent.KindStartReview})
	handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "B"})

	resp := handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "C"})
	if m.Session().TotalAnswered != 1 {
		t.Error("an answer while awaiting feedback must not be graded")
	}
	if !strings.Contains(resp.Text, "next") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
}

func TestAnswer_EvaluatorFailure(t *testing.T) {
	m := NewMachine(Config{
		Generator: &stubGenerator{},
		Evaluator: &stubEvaluator{err: errors.New("provider down")},
		Library:   &stubLibrary{loaded: true},
	})
	handle(t, m, intent.Intent{Kind: intent.KindStartReview})

	resp := handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "B"})
	if !strings.Contains(resp.Text, "couldn't evaluate") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
	if m.Session().TotalAnswered != 0 {
		t.Error("a failed evaluation must not count")
	}
	if !m.Session().IsReviewing {
		t.Error("session must survive an evaluator failure")
	}
}

func TestAnswer_NextQuestionFailureEndsSession(t *testing.T) {
	gen := &stubGenerator{}
	m := NewMachine(Config{
		Generator: gen,
		Evaluator: &stubEvaluator{correct: true},
		Library:   &stubLibrary{loaded: true},
	})
	m.Session().NumQuestions = 3
	handle(t, m, intent.Intent{Kind: intent.KindStartReview})

	gen.err = errors.New("provider down")
	resp := handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "B"})
	if m.Session().IsReviewing {
		t.Error("session must end when the next question cannot be prepared")
	}
	if resp.Summary == nil || resp.Summary.Total != 1 {
		t.Errorf("expected a summary for the answered question, got %+v", resp.Summary)
	}
}

func TestStopReview(t *testing.T) {
	m := testMachine()
	handle(t, m, intent.Intent{Kind: intent.KindStartReview})

	resp := handle(t, m, intent.Intent{Kind: intent.KindStopReview})
	if m.Session().IsReviewing {
		t.Error("expected Idle after stop_review")
	}
	if m.Session().CurrentQuestion != nil {
		t.Error("current question must be cleared")
	}
	if resp.Summary == nil {
		t.Error("stop reply should carry a summary")
	}

	resp = handle(t, m, intent.Intent{Kind: intent.KindStopReview})
	if !strings.Contains(resp.Text, "not currently in a review session") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
}

func TestSetNumQuestions_Range(t *testing.T) {
	m := testMachine()

	resp := handle(t, m, intent.Intent{Kind: intent.KindSetNumQuestions, NumQuestions: 10})
	if m.Session().NumQuestions != 10 {
		t.Errorf("NumQuestions = %d, want 10", m.Session().NumQuestions)
	}
	if !strings.Contains(resp.Text, "10 questions") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}

	resp = handle(t, m, intent.Intent{Kind: intent.KindSetNumQuestions, NumQuestions: 100})
	if m.Session().NumQuestions != 10 {
		t.Errorf("out-of-range value must leave the setting at 10, got %d", m.Session().NumQuestions)
	}
	if !strings.Contains(resp.Text, "between 1 and 50") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}

	resp = handle(t, m, intent.Intent{Kind: intent.KindSetNumQuestions})
	if !strings.Contains(resp.Text, "couldn't understand how many") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
}

func TestSetNumQuestions_MidSessionClamp(t *testing.T) {
	m := testMachine()
	m.Session().NumQuestions = 5
	handle(t, m, intent.Intent{Kind: intent.KindStartReview})

	for i := 0; i < 3; i++ {
		handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "B"})
		handle(t, m, intent.Intent{Kind: intent.KindContinue})
	}
	if m.Session().TotalAnswered != 3 {
		t.Fatalf("TotalAnswered = %d, want 3", m.Session().TotalAnswered)
	}

	resp := handle(t, m, intent.Intent{Kind: intent.KindSetNumQuestions, NumQuestions: 2})
	if m.Session().NumQuestions != 3 {
		t.Errorf("NumQuestions = %d, want clamp to 3", m.Session().NumQuestions)
	}
	if m.Session().TotalAnswered > m.Session().NumQuestions {
		t.Error("answered count must never exceed the question target mid-session")
	}
	if !strings.Contains(resp.Text, "already answered 3") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}

	resp = handle(t, m, intent.Intent{Kind: intent.KindReviewStatus})
	if !strings.Contains(resp.Text, "0 questions remaining") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
}

func TestSetTopic(t *testing.T) {
	m := testMachine()

	handle(t, m, intent.Intent{Kind: intent.KindSetTopic, Topics: []string{"neural networks", "data science"}})
	if len(m.Session().Topics) != 2 {
		t.Fatalf("Topics = %v, want 2 entries", m.Session().Topics)
	}

	resp := handle(t, m, intent.Intent{Kind: intent.KindSetTopic, TopicExtractionFailed: true})
	if !strings.Contains(resp.Text, "couldn't clearly identify") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
	if len(m.Session().Topics) != 2 {
		t.Error("a failed extraction must not clobber the topics")
	}

	handle(t, m, intent.Intent{Kind: intent.KindSetTopic})
	if len(m.Session().Topics) != 0 {
		t.Error("an empty topic set clears the restriction")
	}
}

func TestSetDifficultyAndType(t *testing.T) {
	m := testMachine()

	handle(t, m, intent.Intent{Kind: intent.KindSetDifficulty, Difficulty: quizgen.DifficultyHard})
	if m.Session().Difficulty != quizgen.DifficultyHard {
		t.Errorf("Difficulty = %q, want hard", m.Session().Difficulty)
	}

	resp := handle(t, m, intent.Intent{Kind: intent.KindSetDifficulty})
	if !strings.Contains(resp.Text, "didn't understand that difficulty") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}

	handle(t, m, intent.Intent{Kind: intent.KindSetQuestionType, QuestionType: quizgen.TypeFreeText})
	if m.Session().QuestionType != quizgen.TypeFreeText {
		t.Errorf("QuestionType = %q, want free-text", m.Session().QuestionType)
	}
}

func TestSpeechToggles(t *testing.T) {
	m := testMachine()

	handle(t, m, intent.Intent{Kind: intent.KindEnableSpeech})
	if !m.Session().SpeechEnabled {
		t.Error("expected speech enabled")
	}
	handle(t, m, intent.Intent{Kind: intent.KindDisableSpeech})
	if m.Session().SpeechEnabled {
		t.Error("expected speech disabled")
	}

	noSpeaker := NewMachine(Config{})
	resp := handle(t, noSpeaker, intent.Intent{Kind: intent.KindEnableSpeech})
	if noSpeaker.Session().SpeechEnabled {
		t.Error("speech must stay off without a speaker")
	}
	if !strings.Contains(resp.Text, "not available") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
}

func TestReviewStatus(t *testing.T) {
	m := testMachine()

	resp := handle(t, m, intent.Intent{Kind: intent.KindReviewStatus})
	if !strings.Contains(resp.Text, "haven't started") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}

	m.Session().NumQuestions = 3
	handle(t, m, intent.Intent{Kind: intent.KindStartReview})
	handle(t, m, intent.Intent{Kind: intent.KindAnswer, Answer: "B"})

	resp = handle(t, m, intent.Intent{Kind: intent.KindReviewStatus})
	if !strings.Contains(resp.Text, "1 out of 1") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
	if !strings.Contains(resp.Text, "2 questions remaining") {
		t.Errorf("unexpected reply: %q", resp.Text)
	}
}

func TestRespond_CompoundSettingsUtterance(t *testing.T) {
	m := testMachine()

	resp := m.Respond(context.Background(), "set difficulty to hard and question type to free text")
	if m.Session().Difficulty != quizgen.DifficultyHard {
		t.Errorf("Difficulty = %q, want hard", m.Session().Difficulty)
	}
	if m.Session().QuestionType != quizgen.TypeFreeText {
		t.Errorf("QuestionType = %q, want free-text", m.Session().QuestionType)
	}
	if !strings.Contains(resp.Text, "difficulty to hard") || !strings.Contains(resp.Text, "free-text questions") {
		t.Errorf("combined reply should confirm both settings: %q", resp.Text)
	}
}

func TestRespond_SettingsThenStartSurfacesQuestion(t *testing.T) {
	m := testMachine()

	resp := m.Respond(context.Background(), "set 3 questions and start the quiz")
	if m.Session().NumQuestions != 3 {
		t.Errorf("NumQuestions = %d, want 3", m.Session().NumQuestions)
	}
	if !m.Session().IsReviewing {
		t.Fatal("expected the review to start")
	}
	if resp.Question == nil {
		t.Error("combined reply must surface the start_review question")
	}
}

func TestHandle_NeverPanics(t *testing.T) {
	kinds := []intent.Kind{
		intent.KindDocumentUpload, intent.KindStartReview, intent.KindStopReview,
		intent.KindAnswer, intent.KindReviewStatus, intent.KindReviewSettings,
		intent.KindSetQuestionType, intent.KindSetNumQuestions, intent.KindSetTopic,
		intent.KindSetDifficulty, intent.KindEnableSpeech, intent.KindDisableSpeech,
		intent.KindContinue, intent.KindOutOfScope, intent.KindUnknown, intent.Kind("bogus"),
	}

	m := NewMachine(Config{}) // every collaborator nil
	for _, k := range kinds {
		resp := handle(t, m, intent.Intent{Kind: k})
		if resp.Text == "" {
			t.Errorf("Handle(%s) produced an empty reply", k)
		}
	}
}
