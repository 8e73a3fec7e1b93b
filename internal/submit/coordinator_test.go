package submit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusterm/campus/internal/assessment"
	"github.com/campusterm/campus/internal/store"
)

// stubClient implements Client with injectable results and an optional gate
// to hold a call open.
type stubClient struct {
	mu        sync.Mutex
	quizCalls int
	lessons   map[string]int
	enrolls   []string
	posts     []string

	err   error
	gate  chan struct{} // when non-nil, calls block until closed
	delay time.Duration
}

func newStubClient() *stubClient {
	return &stubClient{lessons: make(map[string]int)}
}

func (s *stubClient) wait() {
	if s.gate != nil {
		<-s.gate
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

func (s *stubClient) SubmitQuiz(_ context.Context, quizID string, answers map[int]int) (string, error) {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizCalls++
	if s.err != nil {
		return "", s.err
	}
	return "attempt-1", nil
}

func (s *stubClient) CompleteLesson(_ context.Context, lessonID string, minutes int) error {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.lessons[lessonID] = minutes
	return nil
}

func (s *stubClient) Enroll(_ context.Context, courseID string) error {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.enrolls = append(s.enrolls, courseID)
	return nil
}

func (s *stubClient) PostDiscussion(_ context.Context, courseID, title, content string) error {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.posts = append(s.posts, courseID+"/"+title)
	return nil
}

// memEvents records appended submission events.
type memEvents struct {
	store.EventRepo
	submissions []store.SubmissionEventData
}

func (m *memEvents) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	m.submissions = append(m.submissions, data)
	return nil
}

// memPending is an in-memory PendingRepo.
type memPending struct {
	nextID int
	items  []store.PendingSubmission
}

func (m *memPending) Enqueue(_ context.Context, p store.PendingSubmission) error {
	m.nextID++
	p.ID = m.nextID
	m.items = append(m.items, p)
	return nil
}

func (m *memPending) List(_ context.Context) ([]store.PendingSubmission, error) {
	out := make([]store.PendingSubmission, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memPending) MarkAttempt(_ context.Context, id int) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Attempts++
		}
	}
	return nil
}

func (m *memPending) Delete(_ context.Context, id int) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestSubmitQuiz_Success(t *testing.T) {
	client := newStubClient()
	events := &memEvents{}
	var notes []Notification
	c := New(client, events, nil, func(n Notification) { notes = append(notes, n) })

	sub := &assessment.Submission{SessionID: "quiz-7", Answers: map[int]int{0: 1}}
	attemptID, err := c.SubmitQuiz(context.Background(), "quiz-7", sub)
	require.NoError(t, err)
	assert.Equal(t, "attempt-1", attemptID)

	require.Len(t, events.submissions, 1)
	assert.True(t, events.submissions[0].Success)
	assert.Equal(t, "quiz", events.submissions[0].Kind)
	assert.Equal(t, "attempt-1", events.submissions[0].RemoteID)

	require.Len(t, notes, 1)
	assert.True(t, notes[0].Success)
}

func TestSubmitQuiz_FailureIsTypedAndNotQueued(t *testing.T) {
	client := newStubClient()
	client.err = errors.New("server returned 503")
	pending := &memPending{}
	var notes []Notification
	c := New(client, nil, pending, func(n Notification) { notes = append(notes, n) })

	_, err := c.SubmitQuiz(context.Background(), "q", &assessment.Submission{SessionID: "s1"})
	require.Error(t, err)

	var se *SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindQuiz, se.Kind)

	// Failed graded attempts must never be queued behind the user's back.
	assert.Empty(t, pending.items)
	require.Len(t, notes, 1)
	assert.False(t, notes[0].Success)
}

func TestInFlight_FailsFastWithoutSecondCall(t *testing.T) {
	client := newStubClient()
	client.gate = make(chan struct{})
	c := New(client, nil, nil, nil)

	sub := &assessment.Submission{SessionID: "quiz-7", Answers: map[int]int{}}

	done := make(chan struct{})
	go func() {
		_, _ = c.SubmitQuiz(context.Background(), "quiz-7", sub)
		close(done)
	}()

	// Wait until the first submission holds the in-flight key.
	for {
		c.mu.Lock()
		held := c.inflight["quiz:quiz-7"]
		c.mu.Unlock()
		if held {
			break
		}
	}

	_, err := c.SubmitQuiz(context.Background(), "quiz-7", sub)
	assert.ErrorIs(t, err, ErrInProgress)

	close(client.gate)
	<-done

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, 1, client.quizCalls, "second attempt must not reach the network")
}

func TestSubmitQuiz_RetryAfterResolutionAccepted(t *testing.T) {
	client := newStubClient()
	client.err = errors.New("timeout")
	c := New(client, nil, nil, nil)

	sub := &assessment.Submission{SessionID: "s1"}
	_, err := c.SubmitQuiz(context.Background(), "q", sub)
	require.Error(t, err)

	client.err = nil
	attemptID, err := c.SubmitQuiz(context.Background(), "q", sub)
	require.NoError(t, err)
	assert.Equal(t, "attempt-1", attemptID)
	assert.Equal(t, 2, client.quizCalls)
}

func TestCompleteLesson_FailureQueuesForSync(t *testing.T) {
	client := newStubClient()
	client.err = errors.New("connection refused")
	pending := &memPending{}
	c := New(client, nil, pending, nil)

	err := c.CompleteLesson(context.Background(), "lesson-3", 12)
	require.Error(t, err)

	var se *SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindLesson, se.Kind)

	require.Len(t, pending.items, 1)
	assert.Equal(t, "lesson", pending.items[0].Kind)
	assert.Equal(t, "lesson-3", pending.items[0].Target)
	assert.Equal(t, 12, intField(pending.items[0].Payload, "time_spent_minutes"))
}

func TestSync_DrainsQueueOldestFirst(t *testing.T) {
	client := newStubClient()
	pending := &memPending{}
	require.NoError(t, pending.Enqueue(context.Background(), store.PendingSubmission{
		Kind: "lesson", Target: "lesson-1", Payload: map[string]any{"time_spent_minutes": float64(5)},
	}))
	require.NoError(t, pending.Enqueue(context.Background(), store.PendingSubmission{
		Kind: "enrollment", Target: "course-2", Payload: map[string]any{},
	}))
	require.NoError(t, pending.Enqueue(context.Background(), store.PendingSubmission{
		Kind: "discussion", Target: "course-2", Payload: map[string]any{"title": "T", "content": "C"},
	}))

	c := New(client, &memEvents{}, pending, nil)
	delivered, failed, err := c.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, delivered)
	assert.Equal(t, 0, failed)
	assert.Empty(t, pending.items)

	assert.Equal(t, 5, client.lessons["lesson-1"])
	assert.Equal(t, []string{"course-2"}, client.enrolls)
	assert.Equal(t, []string{"course-2/T"}, client.posts)
}

func TestSync_RecordsDeliveryLatency(t *testing.T) {
	client := newStubClient()
	client.delay = 20 * time.Millisecond
	pending := &memPending{}
	require.NoError(t, pending.Enqueue(context.Background(), store.PendingSubmission{
		Kind: "lesson", Target: "lesson-1", Payload: map[string]any{"time_spent_minutes": float64(5)},
	}))

	events := &memEvents{}
	c := New(client, events, pending, nil)
	_, _, err := c.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, events.submissions, 1)
	assert.GreaterOrEqual(t, events.submissions[0].LatencyMs, int64(10),
		"latency must span the remote call")
}

func TestSync_FailureKeepsItemQueued(t *testing.T) {
	client := newStubClient()
	client.err = errors.New("still down")
	pending := &memPending{}
	require.NoError(t, pending.Enqueue(context.Background(), store.PendingSubmission{
		Kind: "lesson", Target: "lesson-1", Payload: map[string]any{"time_spent_minutes": 5},
	}))

	c := New(client, nil, pending, nil)
	delivered, failed, err := c.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
	assert.Equal(t, 1, failed)

	require.Len(t, pending.items, 1)
	assert.Equal(t, 1, pending.items[0].Attempts)
}
