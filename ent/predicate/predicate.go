// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// EngagementEvent is the predicate function for engagementevent builders.
type EngagementEvent func(*sql.Selector)

// PendingSubmission is the predicate function for pendingsubmission builders.
type PendingSubmission func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// SubmissionEvent is the predicate function for submissionevent builders.
type SubmissionEvent func(*sql.Selector)
