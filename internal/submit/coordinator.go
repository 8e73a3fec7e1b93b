package submit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/campusterm/campus/internal/assessment"
	"github.com/campusterm/campus/internal/store"
)

// Coordinator serializes submissions per target. The event loop is single
// threaded, but submissions run off it as commands, so the in-flight set is
// mutex-guarded. events, pending, and notify may each be nil; recording and
// notification failures never fail the submission they describe.
type Coordinator struct {
	client  Client
	events  store.EventRepo
	pending store.PendingRepo
	notify  Notifier

	mu       sync.Mutex
	inflight map[string]bool
}

// New creates a Coordinator over client.
func New(client Client, events store.EventRepo, pending store.PendingRepo, notify Notifier) *Coordinator {
	return &Coordinator{
		client:   client,
		events:   events,
		pending:  pending,
		notify:   notify,
		inflight: make(map[string]bool),
	}
}

// SubmitQuiz sends a finalized attempt snapshot and returns the remote
// attempt id. Quiz submissions are never queued for later delivery: the
// session keeps its answers on failure and the learner retries explicitly.
func (c *Coordinator) SubmitQuiz(ctx context.Context, quizID string, sub *assessment.Submission) (string, error) {
	key := "quiz:" + quizID
	if !c.acquire(key) {
		return "", ErrInProgress
	}
	defer c.release(key)

	start := time.Now()
	attemptID, err := c.client.SubmitQuiz(ctx, quizID, sub.Answers)
	c.record(ctx, KindQuiz, quizID, start, attemptID, err)

	if err != nil {
		return "", &SubmissionError{Kind: KindQuiz, Err: err}
	}
	return attemptID, nil
}

// CompleteLesson reports watch time for a lesson. On failure the report is
// queued for `campus sync` so the measured time is not lost.
func (c *Coordinator) CompleteLesson(ctx context.Context, lessonID string, minutes int) error {
	key := "lesson:" + lessonID
	if !c.acquire(key) {
		return ErrInProgress
	}
	defer c.release(key)

	start := time.Now()
	err := c.client.CompleteLesson(ctx, lessonID, minutes)
	c.record(ctx, KindLesson, lessonID, start, "", err)

	if err != nil {
		c.enqueue(ctx, KindLesson, lessonID, map[string]any{"time_spent_minutes": minutes})
		return &SubmissionError{Kind: KindLesson, Err: err}
	}
	return nil
}

// Enroll requests enrollment in a course, queueing the request on failure.
func (c *Coordinator) Enroll(ctx context.Context, courseID string) error {
	key := "enroll:" + courseID
	if !c.acquire(key) {
		return ErrInProgress
	}
	defer c.release(key)

	start := time.Now()
	err := c.client.Enroll(ctx, courseID)
	c.record(ctx, KindEnrollment, courseID, start, "", err)

	if err != nil {
		c.enqueue(ctx, KindEnrollment, courseID, map[string]any{})
		return &SubmissionError{Kind: KindEnrollment, Err: err}
	}
	return nil
}

// PostDiscussion creates a discussion thread, queueing it on failure.
func (c *Coordinator) PostDiscussion(ctx context.Context, courseID, title, content string) error {
	key := "discussion:" + courseID
	if !c.acquire(key) {
		return ErrInProgress
	}
	defer c.release(key)

	start := time.Now()
	err := c.client.PostDiscussion(ctx, courseID, title, content)
	c.record(ctx, KindDiscussion, courseID, start, "", err)

	if err != nil {
		c.enqueue(ctx, KindDiscussion, courseID, map[string]any{
			"title":   title,
			"content": content,
		})
		return &SubmissionError{Kind: KindDiscussion, Err: err}
	}
	return nil
}

// Sync drains the pending queue, oldest first. Items are deleted only
// after the remote call succeeds; failure moves on to the next item so one
// dead entry cannot block the rest.
func (c *Coordinator) Sync(ctx context.Context) (delivered, failed int, err error) {
	if c.pending == nil {
		return 0, 0, nil
	}

	queued, err := c.pending.List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list pending submissions: %w", err)
	}

	for _, item := range queued {
		if err := c.pending.MarkAttempt(ctx, item.ID); err != nil {
			return delivered, failed, fmt.Errorf("mark attempt: %w", err)
		}

		start := time.Now()
		kind, callErr := c.deliver(ctx, item)
		c.record(ctx, kind, item.Target, start, "", callErr)

		if callErr != nil {
			failed++
			continue
		}
		if err := c.pending.Delete(ctx, item.ID); err != nil {
			return delivered, failed, fmt.Errorf("delete delivered submission: %w", err)
		}
		delivered++
	}
	return delivered, failed, nil
}

// deliver replays one queued submission against the platform.
func (c *Coordinator) deliver(ctx context.Context, item store.PendingSubmission) (Kind, error) {
	switch item.Kind {
	case KindLesson.String():
		minutes := intField(item.Payload, "time_spent_minutes")
		return KindLesson, c.client.CompleteLesson(ctx, item.Target, minutes)
	case KindEnrollment.String():
		return KindEnrollment, c.client.Enroll(ctx, item.Target)
	case KindDiscussion.String():
		title, _ := item.Payload["title"].(string)
		content, _ := item.Payload["content"].(string)
		return KindDiscussion, c.client.PostDiscussion(ctx, item.Target, title, content)
	}
	return KindLesson, fmt.Errorf("unknown pending kind %q", item.Kind)
}

func (c *Coordinator) acquire(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight[key] {
		return false
	}
	c.inflight[key] = true
	return true
}

func (c *Coordinator) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, key)
}

// record appends a submission event and emits the notification.
func (c *Coordinator) record(ctx context.Context, kind Kind, target string, start time.Time, remoteID string, callErr error) {
	data := store.SubmissionEventData{
		Kind:      kind.String(),
		Target:    target,
		Success:   callErr == nil,
		LatencyMs: time.Since(start).Milliseconds(),
		RemoteID:  remoteID,
	}
	if callErr != nil {
		data.ErrorMessage = callErr.Error()
	}
	if c.events != nil {
		// Recording is best effort; the submission outcome stands either way.
		_ = c.events.AppendSubmission(ctx, data)
	}

	if c.notify != nil {
		n := Notification{Kind: kind, Target: target, Success: callErr == nil}
		if callErr == nil {
			n.Message = fmt.Sprintf("%s %s submitted", kind, target)
		} else {
			n.Message = fmt.Sprintf("%s %s failed: %v", kind, target, callErr)
		}
		c.notify(n)
	}
}

func (c *Coordinator) enqueue(ctx context.Context, kind Kind, target string, payload map[string]any) {
	if c.pending == nil {
		return
	}
	_ = c.pending.Enqueue(ctx, store.PendingSubmission{
		Kind:    kind.String(),
		Target:  target,
		Payload: payload,
	})
}

// intField reads an integer payload field, tolerating the float64 that
// JSON round-tripping produces.
func intField(payload map[string]any, key string) int {
	switch v := payload[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
