// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studiz/ent/documentevent"
)

// DocumentEventCreate is the builder for creating a DocumentEvent entity.
type DocumentEventCreate struct {
	config
	mutation *DocumentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DocumentEventCreate) SetSequence(v int64) *DocumentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DocumentEventCreate) SetTimestamp(v time.Time) *DocumentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DocumentEventCreate) SetNillableTimestamp(v *time.Time) *DocumentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *DocumentEventCreate) SetSource(v string) *DocumentEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetPassages sets the "passages" field.
func (_c *DocumentEventCreate) SetPassages(v int) *DocumentEventCreate {
	_c.mutation.SetPassages(v)
	return _c
}

// SetNillablePassages sets the "passages" field if the given value is not nil.
func (_c *DocumentEventCreate) SetNillablePassages(v *int) *DocumentEventCreate {
	if v != nil {
		_c.SetPassages(*v)
	}
	return _c
}

// SetTopics sets the "topics" field.
func (_c *DocumentEventCreate) SetTopics(v []string) *DocumentEventCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// Mutation returns the DocumentEventMutation object of the builder.
func (_c *DocumentEventCreate) Mutation() *DocumentEventMutation {
	return _c.mutation
}

// Save creates the DocumentEvent in the database.
func (_c *DocumentEventCreate) Save(ctx context.Context) (*DocumentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentEventCreate) SaveX(ctx context.Context) *DocumentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := documentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Passages(); !ok {
		v := documentevent.DefaultPassages
		_c.mutation.SetPassages(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DocumentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DocumentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "DocumentEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := documentevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passages(); !ok {
		return &ValidationError{Name: "passages", err: errors.New(`ent: missing required field "DocumentEvent.passages"`)}
	}
	return nil
}

func (_c *DocumentEventCreate) sqlSave(ctx context.Context) (*DocumentEvent, error) {
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

func (_c *DocumentEventCreate) createSpec() (*DocumentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentevent.Table, sqlgraph.NewFieldSpec(documentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(documentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(documentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(documentevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Passages(); ok {
		_spec.SetField(documentevent.FieldPassages, field.TypeInt, value)
		_node.Passages = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(documentevent.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	return _node, _spec
}

// DocumentEventCreateBulk is the builder for creating many DocumentEvent entities in bulk.
type DocumentEventCreateBulk struct {
	config
	err      error
	builders []*DocumentEventCreate
}

// Save creates the DocumentEvent entities in the database.
func (_c *DocumentEventCreateBulk) Save(ctx context.Context) ([]*DocumentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentEventMutation)
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
func (_c *DocumentEventCreateBulk) SaveX(ctx context.Context) []*DocumentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
