package intent

import "github.com/abhisek/studiz/internal/quizgen"

// Kind identifies the purpose of one clause of user input.
// The set is closed: the dialogue machine switches exhaustively over it.
type Kind string

const (
	KindDocumentUpload  Kind = "document_upload"
	KindStartReview     Kind = "start_review"
	KindStopReview      Kind = "stop_review"
	KindAnswer          Kind = "answer"
	KindReviewStatus    Kind = "review_status"
	KindReviewSettings  Kind = "review_settings"
	KindSetQuestionType Kind = "set_question_type"
	KindSetNumQuestions Kind = "set_num_questions"
	KindSetTopic        Kind = "set_topic"
	KindSetDifficulty   Kind = "set_difficulty"
	KindEnableSpeech    Kind = "enable_speech"
	KindDisableSpeech   Kind = "disable_speech"
	KindContinue        Kind = "continue"
	KindOutOfScope      Kind = "out_of_scope"
	KindUnknown         Kind = "unknown"
)

// Intent is one classified clause plus its extracted payload.
// Payload fields are zero-valued unless the Kind calls for them.
type Intent struct {
	// Kind is the classified intent type.
	Kind Kind

	// Text is the source clause this intent was classified from.
	Text string

	// Answer carries the user's answer text (KindAnswer only).
	Answer string

	// NumQuestions is the requested question count (KindSetNumQuestions).
	// Zero means no number could be extracted.
	NumQuestions int

	// QuestionType is the requested format (KindSetQuestionType).
	// Empty means the phrasing was not recognized.
	QuestionType quizgen.QuestionType

	// Difficulty is the requested difficulty (KindSetDifficulty).
	// Empty means the phrasing was not recognized.
	Difficulty quizgen.Difficulty

	// Topics is the ordered, case-insensitively deduplicated topic list
	// (KindSetTopic). Empty with TopicExtractionFailed set means no topic
	// was recoverable by any strategy.
	Topics []string

	// TopicExtractionFailed is set instead of guessing when a topic clause
	// matched but no topic value could be parsed out of it.
	TopicExtractionFailed bool
}

// Result is the outcome of classifying one utterance.
type Result struct {
	// Primary is the intent that drives the main reply. Always set:
	// classification falls back to KindAnswer when nothing else matches.
	Primary Intent

	// Additional holds further intents detected in the same utterance,
	// in priority order.
	Additional []Intent

	// RawText is the original utterance.
	RawText string
}

// kindPriority orders intents when several are detected in one utterance.
// Lower rank wins primacy; Additional is sorted by the same table.
// Settings share the top rank so that compound setting commands apply
// before anything that depends on them (notably start_review).
var kindPriority = map[Kind]int{
	KindSetDifficulty:   1,
	KindSetQuestionType: 1,
	KindSetNumQuestions: 1,
	KindSetTopic:        1,
	KindEnableSpeech:    2,
	KindDisableSpeech:   2,
	KindStartReview:     3,
	KindStopReview:      3,
	KindDocumentUpload:  3,
	KindContinue:        3,
	KindReviewStatus:    4,
	KindReviewSettings:  4,
	KindAnswer:          5,
	KindUnknown:         6,
	KindOutOfScope:      7,
}

// Priority returns the routing rank for k (lower is higher priority).
// Unlisted kinds rank below everything.
func Priority(k Kind) int {
	if p, ok := kindPriority[k]; ok {
		return p
	}
	return len(kindPriority) + 1
}
