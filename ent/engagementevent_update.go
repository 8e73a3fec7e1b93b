// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campusterm/campus/ent/engagementevent"
	"github.com/campusterm/campus/ent/predicate"
)

// EngagementEventUpdate is the builder for updating EngagementEvent entities.
type EngagementEventUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementEventMutation
}

// Where appends a list predicates to the EngagementEventUpdate builder.
func (_u *EngagementEventUpdate) Where(ps ...predicate.EngagementEvent) *EngagementEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *EngagementEventUpdate) SetLessonID(v string) *EngagementEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *EngagementEventUpdate) SetNillableLessonID(v *string) *EngagementEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *EngagementEventUpdate) SetAction(v string) *EngagementEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *EngagementEventUpdate) SetNillableAction(v *string) *EngagementEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWatchSecs sets the "watch_secs" field.
func (_u *EngagementEventUpdate) SetWatchSecs(v int) *EngagementEventUpdate {
	_u.mutation.ResetWatchSecs()
	_u.mutation.SetWatchSecs(v)
	return _u
}

// SetNillableWatchSecs sets the "watch_secs" field if the given value is not nil.
func (_u *EngagementEventUpdate) SetNillableWatchSecs(v *int) *EngagementEventUpdate {
	if v != nil {
		_u.SetWatchSecs(*v)
	}
	return _u
}

// AddWatchSecs adds value to the "watch_secs" field.
func (_u *EngagementEventUpdate) AddWatchSecs(v int) *EngagementEventUpdate {
	_u.mutation.AddWatchSecs(v)
	return _u
}

// Mutation returns the EngagementEventMutation object of the builder.
func (_u *EngagementEventUpdate) Mutation() *EngagementEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementEventUpdate) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := engagementevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "EngagementEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := engagementevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "EngagementEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementevent.Table, engagementevent.Columns, sqlgraph.NewFieldSpec(engagementevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(engagementevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(engagementevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.WatchSecs(); ok {
		_spec.SetField(engagementevent.FieldWatchSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWatchSecs(); ok {
		_spec.AddField(engagementevent.FieldWatchSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementEventUpdateOne is the builder for updating a single EngagementEvent entity.
type EngagementEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementEventMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *EngagementEventUpdateOne) SetLessonID(v string) *EngagementEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *EngagementEventUpdateOne) SetNillableLessonID(v *string) *EngagementEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *EngagementEventUpdateOne) SetAction(v string) *EngagementEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *EngagementEventUpdateOne) SetNillableAction(v *string) *EngagementEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWatchSecs sets the "watch_secs" field.
func (_u *EngagementEventUpdateOne) SetWatchSecs(v int) *EngagementEventUpdateOne {
	_u.mutation.ResetWatchSecs()
	_u.mutation.SetWatchSecs(v)
	return _u
}

// SetNillableWatchSecs sets the "watch_secs" field if the given value is not nil.
func (_u *EngagementEventUpdateOne) SetNillableWatchSecs(v *int) *EngagementEventUpdateOne {
	if v != nil {
		_u.SetWatchSecs(*v)
	}
	return _u
}

// AddWatchSecs adds value to the "watch_secs" field.
func (_u *EngagementEventUpdateOne) AddWatchSecs(v int) *EngagementEventUpdateOne {
	_u.mutation.AddWatchSecs(v)
	return _u
}

// Mutation returns the EngagementEventMutation object of the builder.
func (_u *EngagementEventUpdateOne) Mutation() *EngagementEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EngagementEventUpdate builder.
func (_u *EngagementEventUpdateOne) Where(ps ...predicate.EngagementEvent) *EngagementEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementEventUpdateOne) Select(field string, fields ...string) *EngagementEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EngagementEvent entity.
func (_u *EngagementEventUpdateOne) Save(ctx context.Context) (*EngagementEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementEventUpdateOne) SaveX(ctx context.Context) *EngagementEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementEventUpdateOne) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := engagementevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "EngagementEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := engagementevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "EngagementEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementEventUpdateOne) sqlSave(ctx context.Context) (_node *EngagementEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementevent.Table, engagementevent.Columns, sqlgraph.NewFieldSpec(engagementevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EngagementEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagementevent.FieldID)
		for _, f := range fields {
			if !engagementevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagementevent.FieldID {
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
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(engagementevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(engagementevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.WatchSecs(); ok {
		_spec.SetField(engagementevent.FieldWatchSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWatchSecs(); ok {
		_spec.AddField(engagementevent.FieldWatchSecs, field.TypeInt, value)
	}
	_node = &EngagementEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
