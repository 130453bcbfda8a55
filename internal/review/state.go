package review

import (
	"github.com/abhisek/studiz/internal/evaluate"
	"github.com/abhisek/studiz/internal/quizgen"
)

// Bounds for the number of questions in one review session.
const (
	MinQuestions = 1
	MaxQuestions = 50
)

// QuestionRecord is one asked-and-answered question in the history.
type QuestionRecord struct {
	Question   *quizgen.Question
	UserAnswer string
	Evaluation *evaluate.Evaluation
}

// Summary reports the outcome of a review session.
type Summary struct {
	Correct  int
	Total    int
	Accuracy float64 // percentage, 0-100
}

// SessionState holds everything the dialogue machine remembers about
// one conversation. It is owned exclusively by one Machine; no two
// conversations share an instance.
type SessionState struct {
	// Quiz configuration. Mutable at any time via set_* intents.
	QuestionType quizgen.QuestionType
	NumQuestions int
	Topics       []string
	Difficulty   quizgen.Difficulty

	// Quiz progress.
	IsReviewing      bool
	AwaitingFeedback bool
	CurrentQuestion  *quizgen.Question
	NextQuestion     *quizgen.Question
	History          []QuestionRecord
	CorrectAnswers   int
	TotalAnswered    int

	// Environment flags.
	DocumentsLoaded bool
	SpeechEnabled   bool
}

// NewSessionState returns a fresh session with default settings:
// 5 multiple-choice questions at medium difficulty over all topics.
func NewSessionState() *SessionState {
	return &SessionState{
		QuestionType: quizgen.TypeMultipleChoice,
		NumQuestions: 5,
		Difficulty:   quizgen.DifficultyMedium,
	}
}

// Summary computes the score summary for the session so far.
func (s *SessionState) Summary() Summary {
	sum := Summary{
		Correct: s.CorrectAnswers,
		Total:   s.TotalAnswered,
	}
	if s.TotalAnswered > 0 {
		sum.Accuracy = float64(s.CorrectAnswers) / float64(s.TotalAnswered) * 100
	}
	return sum
}

// resetProgress clears quiz progress for a fresh round. Configuration
// and environment flags are untouched.
func (s *SessionState) resetProgress() {
	s.AwaitingFeedback = false
	s.CurrentQuestion = nil
	s.NextQuestion = nil
	s.History = nil
	s.CorrectAnswers = 0
	s.TotalAnswered = 0
}

// endSession returns to Idle, clearing the question slots.
func (s *SessionState) endSession() {
	s.IsReviewing = false
	s.AwaitingFeedback = false
	s.CurrentQuestion = nil
	s.NextQuestion = nil
}

// priorQuestionTexts lists the text of every question asked this
// session, for prompt deduplication.
func (s *SessionState) priorQuestionTexts() []string {
	texts := make([]string, 0, len(s.History)+1)
	for _, rec := range s.History {
		texts = append(texts, rec.Question.Text)
	}
	if s.CurrentQuestion != nil {
		texts = append(texts, s.CurrentQuestion.Text)
	}
	return texts
}
