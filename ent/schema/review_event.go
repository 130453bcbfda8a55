package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records review session lifecycle events (start/end).
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("question_type").
			Default("").
			Comment("multiple-choice or free-text (on start only)"),
		field.String("difficulty").
			Default("").
			Comment("easy, medium, or hard (on start only)"),
		field.Int("num_questions").
			Default(0).
			Comment("Configured question count (on start only)"),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Topic restriction; empty means all topics (on start only)"),
		field.Int("total_answered").
			Default(0).
			Comment("Questions answered (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Float("accuracy").
			Default(0).
			Comment("Percentage correct, 0-100 (on end only)"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
