package quizgen

// QuestionType describes how the learner answers a question.
type QuestionType string

const (
	// TypeMultipleChoice means the learner picks one of 4 options (A-D).
	TypeMultipleChoice QuestionType = "multiple-choice"

	// TypeFreeText means the learner writes a short answer in their own words.
	TypeFreeText QuestionType = "free-text"
)

// Difficulty is the requested question difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a generated review question ready to ask.
type Question struct {
	// Type indicates the answer format.
	Type QuestionType

	// Text is the question prompt shown to the learner.
	Text string

	// Options holds exactly 4 choices when Type is multiple-choice.
	Options []string

	// Answer is the canonical correct answer.
	// For multiple choice: the letter "A".."D".
	// For free text: a model answer in full sentences.
	Answer string

	// Explanation is a short justification of the correct option.
	// Multiple choice only.
	Explanation string

	// KeyPoints are the facts a free-text answer should cover.
	// Free text only.
	KeyPoints []string

	// Topic is the topic the question was generated for, when the
	// session restricts topics. Empty means whole-material.
	Topic string
}

// GenerateInput holds all context needed to generate one question.
type GenerateInput struct {
	// Topics restricts generation to these subjects. Empty means the
	// whole loaded material is fair game.
	Topics []string

	// Type is the requested answer format.
	Type QuestionType

	// Difficulty is the requested difficulty.
	Difficulty Difficulty

	// Passages are retrieved document excerpts to ground the question in.
	Passages []string

	// PriorQuestions contains the Text of questions already asked this
	// session, for deduplication in the prompt.
	PriorQuestions []string
}
