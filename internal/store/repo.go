package store

import (
	"context"
	"time"
)

// AnswerEventData is one committed answer selection.
type AnswerEventData struct {
	SessionID     string
	QuizID        string
	QuestionIndex int
	OptionIndex   int
}

// SessionEventData is one quiz session lifecycle transition.
type SessionEventData struct {
	SessionID         string
	QuizID            string
	Action            string // start, expire, submit, abandon
	QuestionCount     int
	QuestionsAnswered int
	DurationSecs      int
	AttemptID         string
}

// SubmissionEventData is one submission attempt made by the coordinator.
type SubmissionEventData struct {
	Kind         string
	Target       string
	Success      bool
	LatencyMs    int64
	RemoteID     string
	ErrorMessage string
}

// EngagementEventData is one watch-time activity record.
type EngagementEventData struct {
	LessonID  string
	Action    string // resume, pause, complete
	WatchSecs int
}

// SessionRecord is a SessionEventData with its log position, as returned
// by history queries.
type SessionRecord struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// SubmissionRecord is a SubmissionEventData with its log position.
type SubmissionRecord struct {
	SubmissionEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the local event log.
// Append failures must never fail the user action they describe.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendSubmission(ctx context.Context, data SubmissionEventData) error
	AppendEngagement(ctx context.Context, data EngagementEventData) error

	// QuizAnswers reconstructs the answer map for a quiz from its answer
	// events across all sessions; the latest commit per question index wins.
	QuizAnswers(ctx context.Context, quizID string) (map[int]int, error)

	// RecentSessions returns up to limit session events, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// RecentSubmissions returns up to limit submission events, newest first.
	RecentSubmissions(ctx context.Context, limit int) ([]SubmissionRecord, error)
}

// PendingSubmission is a queued completion report awaiting `campus sync`.
type PendingSubmission struct {
	ID        int
	Kind      string
	Target    string
	Payload   map[string]any
	Attempts  int
	CreatedAt time.Time
}

// PendingRepo manages the offline submission queue.
type PendingRepo interface {
	Enqueue(ctx context.Context, p PendingSubmission) error

	// List returns all queued submissions, oldest first.
	List(ctx context.Context) ([]PendingSubmission, error)

	// MarkAttempt increments the delivery attempt counter.
	MarkAttempt(ctx context.Context, id int) error

	// Delete removes a delivered submission from the queue.
	Delete(ctx context.Context, id int) error
}
