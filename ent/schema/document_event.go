package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentEvent records one document ingestion.
type DocumentEvent struct {
	ent.Schema
}

func (DocumentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DocumentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("source").
			NotEmpty().
			Comment("Document name, without extension"),
		field.Int("passages").
			Default(0).
			Comment("Passages the document was split into"),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Topics derived from the document headings"),
	}
}

func (DocumentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
	}
}
