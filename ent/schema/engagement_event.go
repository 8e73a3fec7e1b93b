package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngagementEvent records watch-time activity for a lesson
// (resume/pause/complete).
type EngagementEvent struct {
	ent.Schema
}

func (EngagementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EngagementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson the activity belongs to"),
		field.String("action").
			NotEmpty().
			Comment("resume, pause, or complete"),
		field.Int("watch_secs").
			Default(0).
			Comment("Accumulated watch time at the event"),
	}
}

func (EngagementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
	}
}
