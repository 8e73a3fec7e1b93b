// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campusterm/campus/ent/predicate"
	"github.com/campusterm/campus/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *SubmissionEventUpdate) SetKind(v string) *SubmissionEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableKind(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *SubmissionEventUpdate) SetTarget(v string) *SubmissionEventUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableTarget(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *SubmissionEventUpdate) SetSuccess(v bool) *SubmissionEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSuccess(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SubmissionEventUpdate) SetLatencyMs(v int64) *SubmissionEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableLatencyMs(v *int64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SubmissionEventUpdate) AddLatencyMs(v int64) *SubmissionEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetRemoteID sets the "remote_id" field.
func (_u *SubmissionEventUpdate) SetRemoteID(v string) *SubmissionEventUpdate {
	_u.mutation.SetRemoteID(v)
	return _u
}

// SetNillableRemoteID sets the "remote_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableRemoteID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetRemoteID(*v)
	}
	return _u
}

// ClearRemoteID clears the value of the "remote_id" field.
func (_u *SubmissionEventUpdate) ClearRemoteID() *SubmissionEventUpdate {
	_u.mutation.ClearRemoteID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionEventUpdate) SetErrorMessage(v string) *SubmissionEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableErrorMessage(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubmissionEventUpdate) ClearErrorMessage() *SubmissionEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := submissionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Target(); ok {
		if err := submissionevent.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.target": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(submissionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(submissionevent.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(submissionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RemoteID(); ok {
		_spec.SetField(submissionevent.FieldRemoteID, field.TypeString, value)
	}
	if _u.mutation.RemoteIDCleared() {
		_spec.ClearField(submissionevent.FieldRemoteID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(submissionevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetKind sets the "kind" field.
func (_u *SubmissionEventUpdateOne) SetKind(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableKind(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *SubmissionEventUpdateOne) SetTarget(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableTarget(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *SubmissionEventUpdateOne) SetSuccess(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSuccess(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SubmissionEventUpdateOne) SetLatencyMs(v int64) *SubmissionEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableLatencyMs(v *int64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SubmissionEventUpdateOne) AddLatencyMs(v int64) *SubmissionEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetRemoteID sets the "remote_id" field.
func (_u *SubmissionEventUpdateOne) SetRemoteID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetRemoteID(v)
	return _u
}

// SetNillableRemoteID sets the "remote_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableRemoteID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetRemoteID(*v)
	}
	return _u
}

// ClearRemoteID clears the value of the "remote_id" field.
func (_u *SubmissionEventUpdateOne) ClearRemoteID() *SubmissionEventUpdateOne {
	_u.mutation.ClearRemoteID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionEventUpdateOne) SetErrorMessage(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableErrorMessage(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubmissionEventUpdateOne) ClearErrorMessage() *SubmissionEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := submissionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Target(); ok {
		if err := submissionevent.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.target": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
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
		_spec.SetField(submissionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(submissionevent.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(submissionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RemoteID(); ok {
		_spec.SetField(submissionevent.FieldRemoteID, field.TypeString, value)
	}
	if _u.mutation.RemoteIDCleared() {
		_spec.ClearField(submissionevent.FieldRemoteID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(submissionevent.FieldErrorMessage, field.TypeString)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
