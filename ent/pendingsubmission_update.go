// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campusterm/campus/ent/pendingsubmission"
	"github.com/campusterm/campus/ent/predicate"
)

// PendingSubmissionUpdate is the builder for updating PendingSubmission entities.
type PendingSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *PendingSubmissionMutation
}

// Where appends a list predicates to the PendingSubmissionUpdate builder.
func (_u *PendingSubmissionUpdate) Where(ps ...predicate.PendingSubmission) *PendingSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *PendingSubmissionUpdate) SetKind(v string) *PendingSubmissionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PendingSubmissionUpdate) SetNillableKind(v *string) *PendingSubmissionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *PendingSubmissionUpdate) SetTarget(v string) *PendingSubmissionUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *PendingSubmissionUpdate) SetNillableTarget(v *string) *PendingSubmissionUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PendingSubmissionUpdate) SetPayload(v map[string]interface{}) *PendingSubmissionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *PendingSubmissionUpdate) SetAttempts(v int) *PendingSubmissionUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *PendingSubmissionUpdate) SetNillableAttempts(v *int) *PendingSubmissionUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *PendingSubmissionUpdate) AddAttempts(v int) *PendingSubmissionUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the PendingSubmissionMutation object of the builder.
func (_u *PendingSubmissionUpdate) Mutation() *PendingSubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingSubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingSubmissionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := pendingsubmission.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PendingSubmission.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Target(); ok {
		if err := pendingsubmission.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "PendingSubmission.target": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingsubmission.Table, pendingsubmission.Columns, sqlgraph.NewFieldSpec(pendingsubmission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(pendingsubmission.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(pendingsubmission.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(pendingsubmission.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(pendingsubmission.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(pendingsubmission.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingSubmissionUpdateOne is the builder for updating a single PendingSubmission entity.
type PendingSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingSubmissionMutation
}

// SetKind sets the "kind" field.
func (_u *PendingSubmissionUpdateOne) SetKind(v string) *PendingSubmissionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PendingSubmissionUpdateOne) SetNillableKind(v *string) *PendingSubmissionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *PendingSubmissionUpdateOne) SetTarget(v string) *PendingSubmissionUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *PendingSubmissionUpdateOne) SetNillableTarget(v *string) *PendingSubmissionUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PendingSubmissionUpdateOne) SetPayload(v map[string]interface{}) *PendingSubmissionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *PendingSubmissionUpdateOne) SetAttempts(v int) *PendingSubmissionUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *PendingSubmissionUpdateOne) SetNillableAttempts(v *int) *PendingSubmissionUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *PendingSubmissionUpdateOne) AddAttempts(v int) *PendingSubmissionUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the PendingSubmissionMutation object of the builder.
func (_u *PendingSubmissionUpdateOne) Mutation() *PendingSubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingSubmissionUpdate builder.
func (_u *PendingSubmissionUpdateOne) Where(ps ...predicate.PendingSubmission) *PendingSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingSubmissionUpdateOne) Select(field string, fields ...string) *PendingSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingSubmission entity.
func (_u *PendingSubmissionUpdateOne) Save(ctx context.Context) (*PendingSubmission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingSubmissionUpdateOne) SaveX(ctx context.Context) *PendingSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingSubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := pendingsubmission.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PendingSubmission.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Target(); ok {
		if err := pendingsubmission.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "PendingSubmission.target": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *PendingSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingsubmission.Table, pendingsubmission.Columns, sqlgraph.NewFieldSpec(pendingsubmission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingsubmission.FieldID)
		for _, f := range fields {
			if !pendingsubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingsubmission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(pendingsubmission.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(pendingsubmission.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(pendingsubmission.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(pendingsubmission.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(pendingsubmission.FieldAttempts, field.TypeInt, value)
	}
	_node = &PendingSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
