// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studiz/ent/answerevent"
	"github.com/abhisek/studiz/ent/documentevent"
	"github.com/abhisek/studiz/ent/llmrequestevent"
	"github.com/abhisek/studiz/ent/reviewevent"
	"github.com/abhisek/studiz/ent/schema"
	"github.com/abhisek/studiz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[1].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.DefaultTopic holds the default value on creation for the topic field.
	answerevent.DefaultTopic = answereventDescTopic.Default.(string)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[4].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescPartiallyCorrect is the schema descriptor for partially_correct field.
	answereventDescPartiallyCorrect := answereventFields[7].Descriptor()
	// answerevent.DefaultPartiallyCorrect holds the default value on creation for the partially_correct field.
	answerevent.DefaultPartiallyCorrect = answereventDescPartiallyCorrect.Default.(bool)
	// answereventDescFeedback is the schema descriptor for feedback field.
	answereventDescFeedback := answereventFields[8].Descriptor()
	// answerevent.DefaultFeedback holds the default value on creation for the feedback field.
	answerevent.DefaultFeedback = answereventDescFeedback.Default.(string)
	documenteventMixin := schema.DocumentEvent{}.Mixin()
	documenteventMixinFields0 := documenteventMixin[0].Fields()
	_ = documenteventMixinFields0
	documenteventFields := schema.DocumentEvent{}.Fields()
	_ = documenteventFields
	// documenteventDescTimestamp is the schema descriptor for timestamp field.
	documenteventDescTimestamp := documenteventMixinFields0[1].Descriptor()
	// documentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	documentevent.DefaultTimestamp = documenteventDescTimestamp.Default.(func() time.Time)
	// documenteventDescSource is the schema descriptor for source field.
	documenteventDescSource := documenteventFields[0].Descriptor()
	// documentevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	documentevent.SourceValidator = documenteventDescSource.Validators[0].(func(string) error)
	// documenteventDescPassages is the schema descriptor for passages field.
	documenteventDescPassages := documenteventFields[1].Descriptor()
	// documentevent.DefaultPassages holds the default value on creation for the passages field.
	documentevent.DefaultPassages = documenteventDescPassages.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescAction is the schema descriptor for action field.
	revieweventDescAction := revieweventFields[1].Descriptor()
	// reviewevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	reviewevent.ActionValidator = revieweventDescAction.Validators[0].(func(string) error)
	// revieweventDescQuestionType is the schema descriptor for question_type field.
	revieweventDescQuestionType := revieweventFields[2].Descriptor()
	// reviewevent.DefaultQuestionType holds the default value on creation for the question_type field.
	reviewevent.DefaultQuestionType = revieweventDescQuestionType.Default.(string)
	// revieweventDescDifficulty is the schema descriptor for difficulty field.
	revieweventDescDifficulty := revieweventFields[3].Descriptor()
	// reviewevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	reviewevent.DefaultDifficulty = revieweventDescDifficulty.Default.(string)
	// revieweventDescNumQuestions is the schema descriptor for num_questions field.
	revieweventDescNumQuestions := revieweventFields[4].Descriptor()
	// reviewevent.DefaultNumQuestions holds the default value on creation for the num_questions field.
	reviewevent.DefaultNumQuestions = revieweventDescNumQuestions.Default.(int)
	// revieweventDescTotalAnswered is the schema descriptor for total_answered field.
	revieweventDescTotalAnswered := revieweventFields[6].Descriptor()
	// reviewevent.DefaultTotalAnswered holds the default value on creation for the total_answered field.
	reviewevent.DefaultTotalAnswered = revieweventDescTotalAnswered.Default.(int)
	// revieweventDescCorrectAnswers is the schema descriptor for correct_answers field.
	revieweventDescCorrectAnswers := revieweventFields[7].Descriptor()
	// reviewevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	reviewevent.DefaultCorrectAnswers = revieweventDescCorrectAnswers.Default.(int)
	// revieweventDescAccuracy is the schema descriptor for accuracy field.
	revieweventDescAccuracy := revieweventFields[8].Descriptor()
	// reviewevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	reviewevent.DefaultAccuracy = revieweventDescAccuracy.Default.(float64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
