// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campusterm/campus/ent/submissionevent"
)

// SubmissionEventCreate is the builder for creating a SubmissionEvent entity.
type SubmissionEventCreate struct {
	config
	mutation *SubmissionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SubmissionEventCreate) SetSequence(v int64) *SubmissionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SubmissionEventCreate) SetTimestamp(v time.Time) *SubmissionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableTimestamp(v *time.Time) *SubmissionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *SubmissionEventCreate) SetKind(v string) *SubmissionEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *SubmissionEventCreate) SetTarget(v string) *SubmissionEventCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *SubmissionEventCreate) SetSuccess(v bool) *SubmissionEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *SubmissionEventCreate) SetLatencyMs(v int64) *SubmissionEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableLatencyMs(v *int64) *SubmissionEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetRemoteID sets the "remote_id" field.
func (_c *SubmissionEventCreate) SetRemoteID(v string) *SubmissionEventCreate {
	_c.mutation.SetRemoteID(v)
	return _c
}

// SetNillableRemoteID sets the "remote_id" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableRemoteID(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetRemoteID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SubmissionEventCreate) SetErrorMessage(v string) *SubmissionEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableErrorMessage(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_c *SubmissionEventCreate) Mutation() *SubmissionEventMutation {
	return _c.mutation
}

// Save creates the SubmissionEvent in the database.
func (_c *SubmissionEventCreate) Save(ctx context.Context) (*SubmissionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionEventCreate) SaveX(ctx context.Context) *SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := submissionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := submissionevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SubmissionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SubmissionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SubmissionEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := submissionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "SubmissionEvent.target"`)}
	}
	if v, ok := _c.mutation.Target(); ok {
		if err := submissionevent.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "SubmissionEvent.success"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "SubmissionEvent.latency_ms"`)}
	}
	return nil
}

func (_c *SubmissionEventCreate) sqlSave(ctx context.Context) (*SubmissionEvent, error) {
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

func (_c *SubmissionEventCreate) createSpec() (*SubmissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submissionevent.Table, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(submissionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(submissionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(submissionevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(submissionevent.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(submissionevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(submissionevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.RemoteID(); ok {
		_spec.SetField(submissionevent.FieldRemoteID, field.TypeString, value)
		_node.RemoteID = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// SubmissionEventCreateBulk is the builder for creating many SubmissionEvent entities in bulk.
type SubmissionEventCreateBulk struct {
	config
	err      error
	builders []*SubmissionEventCreate
}

// Save creates the SubmissionEvent entities in the database.
func (_c *SubmissionEventCreateBulk) Save(ctx context.Context) ([]*SubmissionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmissionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionEventMutation)
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
func (_c *SubmissionEventCreateBulk) SaveX(ctx context.Context) []*SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
