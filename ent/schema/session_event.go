package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz session lifecycle transitions
// (start/expire/submit/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("quiz_id").
			NotEmpty().
			Comment("Server-issued quiz identifier"),
		field.String("action").
			NotEmpty().
			Comment("start, expire, submit, or abandon"),
		field.Int("question_count").
			Default(0).
			Comment("Questions in the quiz (on start only)"),
		field.Int("questions_answered").
			Default(0).
			Comment("Answered count (on submit/abandon)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed seconds (on submit/abandon)"),
		field.String("attempt_id").
			Optional().
			Comment("Remote attempt id (on submit only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
