// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "option_index", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
		},
	}
	// EngagementEventsColumns holds the columns for the "engagement_events" table.
	EngagementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "watch_secs", Type: field.TypeInt, Default: 0},
	}
	// EngagementEventsTable holds the schema information for the "engagement_events" table.
	EngagementEventsTable = &schema.Table{
		Name:       "engagement_events",
		Columns:    EngagementEventsColumns,
		PrimaryKey: []*schema.Column{EngagementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "engagementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EngagementEventsColumns[1]},
			},
			{
				Name:    "engagementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EngagementEventsColumns[2]},
			},
			{
				Name:    "engagementevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{EngagementEventsColumns[3]},
			},
		},
	}
	// PendingSubmissionsColumns holds the columns for the "pending_submissions" table.
	PendingSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "target", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PendingSubmissionsTable holds the schema information for the "pending_submissions" table.
	PendingSubmissionsTable = &schema.Table{
		Name:       "pending_submissions",
		Columns:    PendingSubmissionsColumns,
		PrimaryKey: []*schema.Column{PendingSubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendingsubmission_created_at",
				Unique:  false,
				Columns: []*schema.Column{PendingSubmissionsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "attempt_id", Type: field.TypeString, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "target", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "remote_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_kind",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3]},
			},
			{
				Name:    "submissionevent_success",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		EngagementEventsTable,
		PendingSubmissionsTable,
		SessionEventsTable,
		SubmissionEventsTable,
	}
)

func init() {
}
