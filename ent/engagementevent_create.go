// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campusterm/campus/ent/engagementevent"
)

// EngagementEventCreate is the builder for creating a EngagementEvent entity.
type EngagementEventCreate struct {
	config
	mutation *EngagementEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EngagementEventCreate) SetSequence(v int64) *EngagementEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EngagementEventCreate) SetTimestamp(v time.Time) *EngagementEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EngagementEventCreate) SetNillableTimestamp(v *time.Time) *EngagementEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *EngagementEventCreate) SetLessonID(v string) *EngagementEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *EngagementEventCreate) SetAction(v string) *EngagementEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetWatchSecs sets the "watch_secs" field.
func (_c *EngagementEventCreate) SetWatchSecs(v int) *EngagementEventCreate {
	_c.mutation.SetWatchSecs(v)
	return _c
}

// SetNillableWatchSecs sets the "watch_secs" field if the given value is not nil.
func (_c *EngagementEventCreate) SetNillableWatchSecs(v *int) *EngagementEventCreate {
	if v != nil {
		_c.SetWatchSecs(*v)
	}
	return _c
}

// Mutation returns the EngagementEventMutation object of the builder.
func (_c *EngagementEventCreate) Mutation() *EngagementEventMutation {
	return _c.mutation
}

// Save creates the EngagementEvent in the database.
func (_c *EngagementEventCreate) Save(ctx context.Context) (*EngagementEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementEventCreate) SaveX(ctx context.Context) *EngagementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := engagementevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.WatchSecs(); !ok {
		v := engagementevent.DefaultWatchSecs
		_c.mutation.SetWatchSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EngagementEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EngagementEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "EngagementEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := engagementevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "EngagementEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "EngagementEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := engagementevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "EngagementEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WatchSecs(); !ok {
		return &ValidationError{Name: "watch_secs", err: errors.New(`ent: missing required field "EngagementEvent.watch_secs"`)}
	}
	return nil
}

func (_c *EngagementEventCreate) sqlSave(ctx context.Context) (*EngagementEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EngagementEventCreate) createSpec() (*EngagementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EngagementEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagementevent.Table, sqlgraph.NewFieldSpec(engagementevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(engagementevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(engagementevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(engagementevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(engagementevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.WatchSecs(); ok {
		_spec.SetField(engagementevent.FieldWatchSecs, field.TypeInt, value)
		_node.WatchSecs = value
	}
	return _node, _spec
}

// EngagementEventCreateBulk is the builder for creating many EngagementEvent entities in bulk.
type EngagementEventCreateBulk struct {
	config
	err      error
	builders []*EngagementEventCreate
}

// Save creates the EngagementEvent entities in the database.
func (_c *EngagementEventCreateBulk) Save(ctx context.Context) ([]*EngagementEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EngagementEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EngagementEventCreateBulk) SaveX(ctx context.Context) []*EngagementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
