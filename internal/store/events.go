package store

import (
	"context"
	"fmt"

	"github.com/campusterm/campus/ent"
	"github.com/campusterm/campus/ent/answerevent"
	"github.com/campusterm/campus/ent/sessionevent"
	"github.com/campusterm/campus/ent/submissionevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizID(data.QuizID).
		SetQuestionIndex(data.QuestionIndex).
		SetOptionIndex(data.OptionIndex).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizID(data.QuizID).
		SetAction(data.Action).
		SetQuestionCount(data.QuestionCount).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetDurationSecs(data.DurationSecs)

	if data.AttemptID != "" {
		builder = builder.SetAttemptID(data.AttemptID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetTarget(data.Target).
		SetSuccess(data.Success).
		SetLatencyMs(data.LatencyMs)

	if data.RemoteID != "" {
		builder = builder.SetRemoteID(data.RemoteID)
	}
	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendEngagement(ctx context.Context, data EngagementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EngagementEvent.Create().
		SetSequence(seqNum).
		SetLessonID(data.LessonID).
		SetAction(data.Action).
		SetWatchSecs(data.WatchSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save engagement event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizAnswers(ctx context.Context, quizID string) (map[int]int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.QuizID(quizID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz answers: %w", err)
	}

	answers := make(map[int]int, len(events))
	for _, e := range events {
		answers[e.QuestionIndex] = e.OptionIndex
	}
	return answers, nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionEventData: SessionEventData{
				SessionID:         e.SessionID,
				QuizID:            e.QuizID,
				Action:            e.Action,
				QuestionCount:     e.QuestionCount,
				QuestionsAnswered: e.QuestionsAnswered,
				DurationSecs:      e.DurationSecs,
				AttemptID:         e.AttemptID,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}

func (r *eventRepo) RecentSubmissions(ctx context.Context, limit int) ([]SubmissionRecord, error) {
	q := r.client.SubmissionEvent.Query().
		Order(ent.Desc(submissionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent submissions: %w", err)
	}

	records := make([]SubmissionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SubmissionRecord{
			SubmissionEventData: SubmissionEventData{
				Kind:         e.Kind,
				Target:       e.Target,
				Success:      e.Success,
				LatencyMs:    e.LatencyMs,
				RemoteID:     e.RemoteID,
				ErrorMessage: e.ErrorMessage,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}
