// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campusterm/campus/ent/pendingsubmission"
)

// PendingSubmissionCreate is the builder for creating a PendingSubmission entity.
type PendingSubmissionCreate struct {
	config
	mutation *PendingSubmissionMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *PendingSubmissionCreate) SetKind(v string) *PendingSubmissionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *PendingSubmissionCreate) SetTarget(v string) *PendingSubmissionCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PendingSubmissionCreate) SetPayload(v map[string]interface{}) *PendingSubmissionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *PendingSubmissionCreate) SetAttempts(v int) *PendingSubmissionCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *PendingSubmissionCreate) SetNillableAttempts(v *int) *PendingSubmissionCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingSubmissionCreate) SetCreatedAt(v time.Time) *PendingSubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingSubmissionCreate) SetNillableCreatedAt(v *time.Time) *PendingSubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PendingSubmissionMutation object of the builder.
func (_c *PendingSubmissionCreate) Mutation() *PendingSubmissionMutation {
	return _c.mutation
}

// Save creates the PendingSubmission in the database.
func (_c *PendingSubmissionCreate) Save(ctx context.Context) (*PendingSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingSubmissionCreate) SaveX(ctx context.Context) *PendingSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingSubmissionCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := pendingsubmission.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendingsubmission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingSubmissionCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PendingSubmission.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := pendingsubmission.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PendingSubmission.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "PendingSubmission.target"`)}
	}
	if v, ok := _c.mutation.Target(); ok {
		if err := pendingsubmission.TargetValidator(v); err != nil {
			return &ValidationError{Name: "target", err: fmt.Errorf(`ent: validator failed for field "PendingSubmission.target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "PendingSubmission.payload"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "PendingSubmission.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingSubmission.created_at"`)}
	}
	return nil
}

func (_c *PendingSubmissionCreate) sqlSave(ctx context.Context) (*PendingSubmission, error) {
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

func (_c *PendingSubmissionCreate) createSpec() (*PendingSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingsubmission.Table, sqlgraph.NewFieldSpec(pendingsubmission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(pendingsubmission.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(pendingsubmission.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(pendingsubmission.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(pendingsubmission.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendingsubmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PendingSubmissionCreateBulk is the builder for creating many PendingSubmission entities in bulk.
type PendingSubmissionCreateBulk struct {
	config
	err      error
	builders []*PendingSubmissionCreate
}

// Save creates the PendingSubmission entities in the database.
func (_c *PendingSubmissionCreateBulk) Save(ctx context.Context) ([]*PendingSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingSubmissionMutation)
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
func (_c *PendingSubmissionCreateBulk) SaveX(ctx context.Context) []*PendingSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
