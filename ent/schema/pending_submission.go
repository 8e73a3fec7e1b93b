package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingSubmission is a completion report that failed over the network
// and is queued for a later `campus sync`. Not an event: rows are deleted
// once the submission lands.
type PendingSubmission struct {
	ent.Schema
}

func (PendingSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("lesson, enrollment, or discussion"),
		field.String("target").
			NotEmpty().
			Comment("Lesson/course id the submission is for"),
		field.JSON("payload", map[string]any{}).
			Comment("Endpoint-specific request fields"),
		field.Int("attempts").
			Default(0).
			Comment("Delivery attempts made so far"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PendingSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
