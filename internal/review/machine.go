package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/evaluate"
	"github.com/abhisek/studiz/internal/intent"
	"github.com/abhisek/studiz/internal/quizgen"
	"github.com/abhisek/studiz/internal/speech"
)

// Library is the document pipeline as seen by the dialogue machine:
// whether material is loaded, which topics it covers, and passage
// retrieval for question grounding.
type Library interface {
	Loaded() bool
	Topics() []string
	Search(topics []string, limit int) []string
}

// Recorder persists review events. All calls are best-effort; the
// machine never fails a reply over a recording error.
type Recorder interface {
	SessionStarted(ctx context.Context, s *SessionState) error
	AnswerRecorded(ctx context.Context, q *quizgen.Question, answer string, ev *evaluate.Evaluation) error
	SessionEnded(ctx context.Context, sum Summary) error
}

// Config wires the machine's collaborators. Any of them may be nil;
// the affected intents then reply that the feature is unavailable.
type Config struct {
	Generator quizgen.Generator
	Evaluator evaluate.Evaluator
	Library   Library
	Speaker   speech.Speaker
	Recorder  Recorder

	// SearchLimit caps how many passages are retrieved per question.
	// Zero means the default of 6.
	SearchLimit int
}

// Machine is the session state machine: it consumes classified intents
// and mutates one conversation's SessionState. Not safe for concurrent
// use; one Machine per conversation.
type Machine struct {
	classifier *intent.Classifier
	session    *SessionState
	cfg        Config
}

// NewMachine creates a Machine with a fresh session.
func NewMachine(cfg Config) *Machine {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 6
	}
	return &Machine{
		classifier: intent.New(),
		session:    NewSessionState(),
		cfg:        cfg,
	}
}

// Session exposes the session state for status displays and tests.
func (m *Machine) Session() *SessionState {
	return m.session
}

// Respond classifies one utterance and produces the combined reply.
func (m *Machine) Respond(ctx context.Context, utterance string) Response {
	return m.HandleResult(ctx, m.classifier.Classify(utterance))
}

// HandleResult runs the primary intent and every additional intent
// through the state machine, in priority order, against the same
// session, then combines the replies.
func (m *Machine) HandleResult(ctx context.Context, res intent.Result) Response {
	responses := make([]Response, 0, 1+len(res.Additional))
	responses = append(responses, m.Handle(ctx, res.Primary))
	for _, in := range res.Additional {
		responses = append(responses, m.Handle(ctx, in))
	}

	combined := Combine(responses)

	if m.session.SpeechEnabled && m.cfg.Speaker != nil && combined.Text != "" {
		// Best-effort. A failed speaker never blocks the text reply.
		_ = m.cfg.Speaker.Speak(ctx, combined.Text)
	}

	return combined
}

// Handle applies one intent to the session and returns its reply.
// Every intent kind yields a textual response; nothing here panics or
// propagates collaborator errors to the caller.
func (m *Machine) Handle(ctx context.Context, in intent.Intent) Response {
	m.syncDocuments()

	switch in.Kind {
	case intent.KindDocumentUpload:
		return m.handleDocumentUpload()
	case intent.KindStartReview:
		return m.handleStartReview(ctx)
	case intent.KindStopReview:
		return m.handleStopReview(ctx)
	case intent.KindAnswer:
		return m.handleAnswer(ctx, in)
	case intent.KindContinue:
		return m.handleContinue()
	case intent.KindReviewStatus:
		return m.handleReviewStatus()
	case intent.KindReviewSettings:
		return m.handleReviewSettings()
	case intent.KindSetQuestionType:
		return m.handleSetQuestionType(in)
	case intent.KindSetNumQuestions:
		return m.handleSetNumQuestions(in)
	case intent.KindSetTopic:
		return m.handleSetTopic(in)
	case intent.KindSetDifficulty:
		return m.handleSetDifficulty(in)
	case intent.KindEnableSpeech:
		return m.handleEnableSpeech()
	case intent.KindDisableSpeech:
		return m.handleDisableSpeech()
	case intent.KindOutOfScope:
		return m.handleOutOfScope()
	case intent.KindUnknown:
		return m.handleUnknown()
	default:
		return m.handleUnknown()
	}
}

// syncDocuments refreshes the documents-loaded flag from the pipeline.
func (m *Machine) syncDocuments() {
	if m.cfg.Library != nil {
		m.session.DocumentsLoaded = m.cfg.Library.Loaded()
	}
}

func (m *Machine) handleDocumentUpload() Response {
	if m.cfg.Library == nil {
		return Response{
			Text:   "Document processing is not available.",
			Intent: intent.KindDocumentUpload,
		}
	}
	return Response{
		Text:   "To upload documents, pass them to the ingest command or drop them into the chat. I'll index them and we can review their contents.",
		Intent: intent.KindDocumentUpload,
	}
}

func (m *Machine) handleStartReview(ctx context.Context) Response {
	if !m.session.DocumentsLoaded {
		return Response{
			Text:   "Please upload some documents first so I have material to review with you.",
			Intent: intent.KindStartReview,
		}
	}
	if m.cfg.Generator == nil {
		return Response{
			Text:   "Question generation is not available.",
			Intent: intent.KindStartReview,
		}
	}

	// Starting (or restarting) always begins a fresh round.
	m.session.resetProgress()

	q, err := m.generateQuestion(ctx)
	if err != nil {
		return Response{
			Text:   "I couldn't generate a question right now. Let's try again in a moment.",
			Intent: intent.KindStartReview,
		}
	}

	m.session.IsReviewing = true
	m.session.CurrentQuestion = q

	if m.cfg.Recorder != nil {
		_ = m.cfg.Recorder.SessionStarted(ctx, m.session)
	}

	return Response{
		Text:     fmt.Sprintf("Let's start the review session.\n\n%s", FormatQuestion(q)),
		Question: q,
		Intent:   intent.KindStartReview,
	}
}

func (m *Machine) handleStopReview(ctx context.Context) Response {
	if !m.session.IsReviewing {
		return Response{
			Text:   "We're not currently in a review session.",
			Intent: intent.KindStopReview,
		}
	}

	sum := m.session.Summary()
	m.session.endSession()

	if m.cfg.Recorder != nil {
		_ = m.cfg.Recorder.SessionEnded(ctx, sum)
	}

	return Response{
		Text: fmt.Sprintf("Review session ended. You answered %d out of %d questions correctly (%.1f%%).",
			sum.Correct, sum.Total, sum.Accuracy),
		Summary: &sum,
		Intent:  intent.KindStopReview,
	}
}

func (m *Machine) handleAnswer(ctx context.Context, in intent.Intent) Response {
	if !m.session.IsReviewing {
		return Response{
			Text:   "We're not currently in a review session. Would you like to start one?",
			Intent: intent.KindAnswer,
		}
	}
	if m.session.AwaitingFeedback {
		return Response{
			Text:   "Say \"next\" when you're ready for the next question.",
			Intent: intent.KindAnswer,
		}
	}
	if m.session.CurrentQuestion == nil {
		return Response{
			Text:   "I don't have an active question for you to answer.",
			Intent: intent.KindAnswer,
		}
	}
	if m.cfg.Evaluator == nil {
		return Response{
			Text:   "Answer evaluation is not available.",
			Intent: intent.KindAnswer,
		}
	}

	answer := in.Answer
	if answer == "" {
		answer = in.Text
	}

	ev, err := m.cfg.Evaluator.Evaluate(ctx, m.session.CurrentQuestion, answer)
	if err != nil {
		return Response{
			Text:   "I couldn't evaluate that answer right now. Let's try again in a moment.",
			Intent: intent.KindAnswer,
		}
	}

	m.session.TotalAnswered++
	if ev.IsCorrect {
		m.session.CorrectAnswers++
	}
	m.session.History = append(m.session.History, QuestionRecord{
		Question:   m.session.CurrentQuestion,
		UserAnswer: answer,
		Evaluation: ev,
	})

	if m.cfg.Recorder != nil {
		_ = m.cfg.Recorder.AnswerRecorded(ctx, m.session.CurrentQuestion, answer, ev)
	}

	if m.session.TotalAnswered < m.session.NumQuestions {
		// Feedback now, next question withheld until the learner is ready.
		next, err := m.generateQuestion(ctx)
		if err != nil {
			return m.finishSession(ctx, ev.Feedback+" I couldn't prepare the next question, so let's end the session here.")
		}
		m.session.NextQuestion = next
		m.session.AwaitingFeedback = true
		return Response{
			Text:   fmt.Sprintf("%s\n\nWould you like to continue to the next question?", ev.Feedback),
			Intent: intent.KindAnswer,
		}
	}

	return m.finishSession(ctx, ev.Feedback+" That completes our review session.")
}

// finishSession ends the quiz after the last answer and builds the
// feedback-plus-summary reply.
func (m *Machine) finishSession(ctx context.Context, lead string) Response {
	sum := m.session.Summary()
	m.session.endSession()

	if m.cfg.Recorder != nil {
		_ = m.cfg.Recorder.SessionEnded(ctx, sum)
	}

	return Response{
		Text: fmt.Sprintf("%s You answered %d out of %d questions correctly (%.1f%%).",
			lead, sum.Correct, sum.Total, sum.Accuracy),
		Summary: &sum,
		Intent:  intent.KindAnswer,
	}
}

func (m *Machine) handleContinue() Response {
	if !m.session.IsReviewing {
		return Response{
			Text:   "We're not currently in a review session. Would you like to start one?",
			Intent: intent.KindContinue,
		}
	}
	if !m.session.AwaitingFeedback {
		return Response{
			Text:   "Please answer the current question first.",
			Intent: intent.KindContinue,
		}
	}
	if m.session.NextQuestion == nil {
		// Unreachable while the awaiting-feedback invariant holds.
		m.session.AwaitingFeedback = false
		return Response{
			Text:   "I don't have a next question prepared.",
			Intent: intent.KindContinue,
		}
	}

	q := m.session.NextQuestion
	m.session.CurrentQuestion = q
	m.session.NextQuestion = nil
	m.session.AwaitingFeedback = false

	return Response{
		Text:     fmt.Sprintf("Next question: %s", FormatQuestion(q)),
		Question: q,
		Intent:   intent.KindContinue,
	}
}

func (m *Machine) handleReviewStatus() Response {
	s := m.session
	if !s.IsReviewing && s.TotalAnswered == 0 {
		return Response{
			Text:   "You haven't started any review sessions yet.",
			Intent: intent.KindReviewStatus,
		}
	}

	sum := s.Summary()
	text := fmt.Sprintf("You've answered %d out of %d questions correctly (%.1f%%).",
		sum.Correct, sum.Total, sum.Accuracy)
	if s.IsReviewing {
		remaining := s.NumQuestions - s.TotalAnswered
		if remaining < 0 {
			remaining = 0
		}
		text += fmt.Sprintf(" There are %d questions remaining in this session.", remaining)
	}

	return Response{
		Text:    text,
		Summary: &sum,
		Intent:  intent.KindReviewStatus,
	}
}

func (m *Machine) handleReviewSettings() Response {
	s := m.session
	topics := "all available topics"
	if len(s.Topics) > 0 {
		topics = strings.Join(s.Topics, ", ")
	}
	speechState := "disabled"
	if s.SpeechEnabled {
		speechState = "enabled"
	}

	text := fmt.Sprintf("Current review settings:\n"+
		"- Question type: %s\n"+
		"- Number of questions: %d\n"+
		"- Difficulty: %s\n"+
		"- Topics: %s\n"+
		"- Speech: %s",
		s.QuestionType, s.NumQuestions, s.Difficulty, topics, speechState)

	return Response{Text: text, Intent: intent.KindReviewSettings}
}

func (m *Machine) handleSetQuestionType(in intent.Intent) Response {
	switch in.QuestionType {
	case quizgen.TypeMultipleChoice:
		m.session.QuestionType = quizgen.TypeMultipleChoice
		return Response{
			Text:   "I'll use multiple-choice questions for our review.",
			Intent: intent.KindSetQuestionType,
		}
	case quizgen.TypeFreeText:
		m.session.QuestionType = quizgen.TypeFreeText
		return Response{
			Text:   "I'll use free-text questions for our review.",
			Intent: intent.KindSetQuestionType,
		}
	default:
		return Response{
			Text:   "I didn't understand that question type. I support multiple-choice or free-text questions.",
			Intent: intent.KindSetQuestionType,
		}
	}
}

func (m *Machine) handleSetNumQuestions(in intent.Intent) Response {
	n := in.NumQuestions
	if n == 0 {
		return Response{
			Text:   "I couldn't understand how many questions you want. Please specify a number.",
			Intent: intent.KindSetNumQuestions,
		}
	}
	if n < MinQuestions || n > MaxQuestions {
		return Response{
			Text:   fmt.Sprintf("Please choose a number of questions between %d and %d.", MinQuestions, MaxQuestions),
			Intent: intent.KindSetNumQuestions,
		}
	}

	// Mid-session, the target can never drop below what has already been
	// answered.
	if m.session.IsReviewing && n < m.session.TotalAnswered {
		m.session.NumQuestions = m.session.TotalAnswered
		return Response{
			Text: fmt.Sprintf("You've already answered %d questions, so we'll wrap up after the current one.",
				m.session.TotalAnswered),
			Intent: intent.KindSetNumQuestions,
		}
	}

	m.session.NumQuestions = n
	return Response{
		Text:   fmt.Sprintf("I'll prepare %d questions for our review session.", n),
		Intent: intent.KindSetNumQuestions,
	}
}

func (m *Machine) handleSetTopic(in intent.Intent) Response {
	if in.TopicExtractionFailed {
		return Response{
			Text: "I couldn't clearly identify the topics you want to focus on. Please specify them using one of these formats:\n" +
				"- Set topic to: machine learning, python\n" +
				"- Change topic to neural networks\n" +
				"- Focus on the topic of data science\n" +
				"- Set the subject to: history and geography",
			Intent: intent.KindSetTopic,
		}
	}

	if len(in.Topics) == 0 {
		m.session.Topics = nil
		return Response{
			Text:   "I'll cover all available topics in the documents during our review.",
			Intent: intent.KindSetTopic,
		}
	}

	m.session.Topics = in.Topics
	return Response{
		Text:   fmt.Sprintf("I'll focus our review on: %s.", strings.Join(in.Topics, ", ")),
		Intent: intent.KindSetTopic,
	}
}

func (m *Machine) handleSetDifficulty(in intent.Intent) Response {
	switch in.Difficulty {
	case quizgen.DifficultyEasy, quizgen.DifficultyMedium, quizgen.DifficultyHard:
		m.session.Difficulty = in.Difficulty
		return Response{
			Text:   fmt.Sprintf("I'll set the difficulty to %s for our review.", in.Difficulty),
			Intent: intent.KindSetDifficulty,
		}
	default:
		return Response{
			Text:   "I didn't understand that difficulty level. I support easy, medium, or hard difficulty.",
			Intent: intent.KindSetDifficulty,
		}
	}
}

func (m *Machine) handleEnableSpeech() Response {
	if m.cfg.Speaker == nil {
		return Response{
			Text:   "Speech output is not available.",
			Intent: intent.KindEnableSpeech,
		}
	}
	m.session.SpeechEnabled = true
	return Response{
		Text:   "Speech is now enabled. I'll read my replies out loud.",
		Intent: intent.KindEnableSpeech,
	}
}

func (m *Machine) handleDisableSpeech() Response {
	m.session.SpeechEnabled = false
	return Response{
		Text:   "Speech is now disabled. We'll continue with text only.",
		Intent: intent.KindDisableSpeech,
	}
}

func (m *Machine) handleOutOfScope() Response {
	return Response{
		Text: "I'm a study assistant focused on helping you review your documents. I can help you with:\n" +
			"- Uploading documents\n" +
			"- Generating review questions\n" +
			"- Testing your knowledge\n" +
			"- Adjusting review settings\n" +
			"What documents would you like to review?",
		Intent: intent.KindOutOfScope,
	}
}

func (m *Machine) handleUnknown() Response {
	return Response{
		Text: "I'm not sure what you want to do. You can upload documents, start or stop a review, " +
			"answer questions, check your status, or adjust the review settings.",
		Intent: intent.KindUnknown,
	}
}

// generateQuestion asks the generator for one question using the
// session's settings and whatever passages the library retrieves.
func (m *Machine) generateQuestion(ctx context.Context) (*quizgen.Question, error) {
	var passages []string
	if m.cfg.Library != nil {
		passages = m.cfg.Library.Search(m.session.Topics, m.cfg.SearchLimit)
	}

	return m.cfg.Generator.Generate(ctx, quizgen.GenerateInput{
		Topics:         m.session.Topics,
		Type:           m.session.QuestionType,
		Difficulty:     m.session.Difficulty,
		Passages:       passages,
		PriorQuestions: m.session.priorQuestionTexts(),
	})
}
