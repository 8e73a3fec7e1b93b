// Package submit coordinates the transactions that turn a local terminal
// state — a finalized quiz attempt, an accumulated watch time — into a
// durable remote record. It guarantees at most one in-flight submission per
// target and performs no automatic retry: a duplicate quiz submission would
// be a duplicate graded attempt, so retry decisions stay with the caller.
package submit

import (
	"context"
	"errors"
	"fmt"
)

// Kind identifies which platform operation a submission is for.
type Kind int

const (
	KindQuiz Kind = iota
	KindLesson
	KindEnrollment
	KindDiscussion
)

func (k Kind) String() string {
	switch k {
	case KindQuiz:
		return "quiz"
	case KindLesson:
		return "lesson"
	case KindEnrollment:
		return "enrollment"
	case KindDiscussion:
		return "discussion"
	}
	return "unknown"
}

// ErrInProgress indicates a submission for the same target is already in
// flight. The caller should wait for it to resolve, not retry.
var ErrInProgress = errors.New("submission already in progress")

// SubmissionError wraps a failed remote call with the operation kind.
// Local state is preserved by the caller, so the operation is retriable.
type SubmissionError struct {
	Kind Kind
	Err  error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s submission failed: %v", e.Kind, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Notification is the user-visible outcome of a submission attempt,
// emitted independently of the returned result so UI and non-UI callers
// can both consume it.
type Notification struct {
	Kind    Kind
	Target  string
	Success bool
	Message string
}

// Notifier receives submission notifications.
type Notifier func(Notification)

// Client is the slice of the platform API the coordinator drives.
type Client interface {
	SubmitQuiz(ctx context.Context, quizID string, answers map[int]int) (string, error)
	CompleteLesson(ctx context.Context, lessonID string, minutes int) error
	Enroll(ctx context.Context, courseID string) error
	PostDiscussion(ctx context.Context, courseID, title, content string) error
}
