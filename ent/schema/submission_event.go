package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records every submission attempt the coordinator makes,
// successful or not.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("quiz, lesson, enrollment, or discussion"),
		field.String("target").
			NotEmpty().
			Comment("Quiz/lesson/course id the submission was for"),
		field.Bool("success").
			Comment("Whether the remote call succeeded"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Round-trip time in milliseconds"),
		field.String("remote_id").
			Optional().
			Comment("Remote identifier returned on success"),
		field.String("error_message").
			Optional().
			Comment("Failure description (on failure only)"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("success"),
	}
}
