package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestQuizAnswers_LatestCommitWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []AnswerEventData{
		{SessionID: "s1", QuizID: "q1", QuestionIndex: 0, OptionIndex: 1},
		{SessionID: "s1", QuizID: "q1", QuestionIndex: 1, OptionIndex: 0},
		{SessionID: "s2", QuizID: "q1", QuestionIndex: 0, OptionIndex: 2}, // later session overwrites
		{SessionID: "s3", QuizID: "q2", QuestionIndex: 0, OptionIndex: 3}, // other quiz
	}
	for i, a := range appends {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	answers, err := repo.QuizAnswers(ctx, "q1")
	if err != nil {
		t.Fatalf("quiz answers: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("answers = %v, want 2 entries", answers)
	}
	if answers[0] != 2 {
		t.Errorf("answers[0] = %d, want 2 (latest commit)", answers[0])
	}
	if answers[1] != 0 {
		t.Errorf("answers[1] = %d, want 0", answers[1])
	}
}

func TestRecentSessions_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, action := range []string{"start", "expire", "submit"} {
		err := repo.AppendSession(ctx, SessionEventData{
			SessionID: "s1",
			QuizID:    "q1",
			Action:    action,
		})
		if err != nil {
			t.Fatalf("append %s: %v", action, err)
		}
	}

	records, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Action != "submit" {
		t.Errorf("first record action = %q, want submit", records[0].Action)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Error("expected descending sequence order")
	}
}

func TestAppendSubmission_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSubmission(ctx, SubmissionEventData{
		Kind:      "quiz",
		Target:    "quiz-7",
		Success:   true,
		LatencyMs: 120,
		RemoteID:  "attempt-42",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendSubmission(ctx, SubmissionEventData{
		Kind:         "lesson",
		Target:       "lesson-3",
		Success:      false,
		ErrorMessage: "server returned 503",
	})
	if err != nil {
		t.Fatalf("append failure event: %v", err)
	}

	records, err := repo.RecentSubmissions(ctx, 0)
	if err != nil {
		t.Fatalf("recent submissions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Kind != "lesson" || records[0].Success {
		t.Errorf("newest record = %+v, want failed lesson", records[0])
	}
	if records[1].RemoteID != "attempt-42" {
		t.Errorf("remote id = %q, want attempt-42", records[1].RemoteID)
	}
}

func TestPendingQueue_FIFO(t *testing.T) {
	s := openTestStore(t)
	repo := s.PendingRepo()
	ctx := context.Background()

	for _, target := range []string{"lesson-1", "lesson-2"} {
		err := repo.Enqueue(ctx, PendingSubmission{
			Kind:    "lesson",
			Target:  target,
			Payload: map[string]any{"time_spent_minutes": 5},
		})
		if err != nil {
			t.Fatalf("enqueue %s: %v", target, err)
		}
	}

	queued, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(queued) != 2 {
		t.Fatalf("queued = %d, want 2", len(queued))
	}
	if queued[0].Target != "lesson-1" {
		t.Errorf("first queued = %q, want lesson-1 (oldest first)", queued[0].Target)
	}

	if err := repo.MarkAttempt(ctx, queued[0].ID); err != nil {
		t.Fatalf("mark attempt: %v", err)
	}
	if err := repo.Delete(ctx, queued[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	queued, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(queued) != 1 || queued[0].Target != "lesson-2" {
		t.Errorf("queue after delete = %+v, want only lesson-2", queued)
	}
}

func TestEngagementAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, action := range []string{"resume", "pause", "complete"} {
		err := repo.AppendEngagement(ctx, EngagementEventData{
			LessonID:  "lesson-3",
			Action:    action,
			WatchSecs: 90,
		})
		if err != nil {
			t.Fatalf("append %s: %v", action, err)
		}
	}

	count, err := s.Client().EngagementEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("engagement events = %d, want 3", count)
	}
}
