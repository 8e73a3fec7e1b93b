// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campusterm/campus/ent/pendingsubmission"
	"github.com/campusterm/campus/ent/predicate"
)

// PendingSubmissionDelete is the builder for deleting a PendingSubmission entity.
type PendingSubmissionDelete struct {
	config
	hooks    []Hook
	mutation *PendingSubmissionMutation
}

// Where appends a list predicates to the PendingSubmissionDelete builder.
func (_d *PendingSubmissionDelete) Where(ps ...predicate.PendingSubmission) *PendingSubmissionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PendingSubmissionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PendingSubmissionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PendingSubmissionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pendingsubmission.Table, sqlgraph.NewFieldSpec(pendingsubmission.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PendingSubmissionDeleteOne is the builder for deleting a single PendingSubmission entity.
type PendingSubmissionDeleteOne struct {
	_d *PendingSubmissionDelete
}

// Where appends a list predicates to the PendingSubmissionDelete builder.
func (_d *PendingSubmissionDeleteOne) Where(ps ...predicate.PendingSubmission) *PendingSubmissionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PendingSubmissionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pendingsubmission.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PendingSubmissionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
