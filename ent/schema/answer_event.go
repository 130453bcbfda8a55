package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded answer within a review session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to ReviewEvent"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple-choice or free-text"),
		field.String("topic").
			Default("").
			Comment("Topic the question was generated for"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			NotEmpty().
			Comment("Option letter for multiple choice, model answer for free text"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner said"),
		field.Bool("correct").
			Comment("Whether the answer was graded correct"),
		field.Bool("partially_correct").
			Default(false).
			Comment("Free-text partial credit"),
		field.String("feedback").
			Default("").
			Comment("Feedback shown to the learner"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}
