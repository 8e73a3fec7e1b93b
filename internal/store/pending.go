package store

import (
	"context"
	"fmt"

	"github.com/campusterm/campus/ent"
	"github.com/campusterm/campus/ent/pendingsubmission"
)

// pendingRepo implements PendingRepo using the ent client.
type pendingRepo struct {
	client *ent.Client
}

func (r *pendingRepo) Enqueue(ctx context.Context, p PendingSubmission) error {
	_, err := r.client.PendingSubmission.Create().
		SetKind(p.Kind).
		SetTarget(p.Target).
		SetPayload(p.Payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("enqueue pending submission: %w", err)
	}
	return nil
}

func (r *pendingRepo) List(ctx context.Context) ([]PendingSubmission, error) {
	rows, err := r.client.PendingSubmission.Query().
		Order(ent.Asc(pendingsubmission.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending submissions: %w", err)
	}

	out := make([]PendingSubmission, 0, len(rows))
	for _, row := range rows {
		out = append(out, PendingSubmission{
			ID:        row.ID,
			Kind:      row.Kind,
			Target:    row.Target,
			Payload:   row.Payload,
			Attempts:  row.Attempts,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *pendingRepo) MarkAttempt(ctx context.Context, id int) error {
	err := r.client.PendingSubmission.UpdateOneID(id).
		AddAttempts(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark pending attempt: %w", err)
	}
	return nil
}

func (r *pendingRepo) Delete(ctx context.Context, id int) error {
	err := r.client.PendingSubmission.DeleteOneID(id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete pending submission: %w", err)
	}
	return nil
}
