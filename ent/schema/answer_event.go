package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one committed answer selection within a quiz
// session. The latest event per question index is the answer of record,
// which is what makes an interrupted attempt recoverable.
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
			Comment("Links to SessionEvent"),
		field.String("quiz_id").
			NotEmpty().
			Comment("Server-issued quiz identifier"),
		field.Int("question_index").
			NonNegative().
			Comment("Zero-based question position"),
		field.Int("option_index").
			NonNegative().
			Comment("Selected option position"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz_id"),
	}
}
