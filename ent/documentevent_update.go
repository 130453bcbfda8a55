// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studiz/ent/documentevent"
	"github.com/abhisek/studiz/ent/predicate"
)

// DocumentEventUpdate is the builder for updating DocumentEvent entities.
type DocumentEventUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentEventMutation
}

// Where appends a list predicates to the DocumentEventUpdate builder.
func (_u *DocumentEventUpdate) Where(ps ...predicate.DocumentEvent) *DocumentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *DocumentEventUpdate) SetSource(v string) *DocumentEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableSource(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPassages sets the "passages" field.
func (_u *DocumentEventUpdate) SetPassages(v int) *DocumentEventUpdate {
	_u.mutation.ResetPassages()
	_u.mutation.SetPassages(v)
	return _u
}

// SetNillablePassages sets the "passages" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillablePassages(v *int) *DocumentEventUpdate {
	if v != nil {
		_u.SetPassages(*v)
	}
	return _u
}

// AddPassages adds value to the "passages" field.
func (_u *DocumentEventUpdate) AddPassages(v int) *DocumentEventUpdate {
	_u.mutation.AddPassages(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *DocumentEventUpdate) SetTopics(v []string) *DocumentEventUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *DocumentEventUpdate) AppendTopics(v []string) *DocumentEventUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *DocumentEventUpdate) ClearTopics() *DocumentEventUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// Mutation returns the DocumentEventMutation object of the builder.
func (_u *DocumentEventUpdate) Mutation() *DocumentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentEventUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := documentevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentevent.Table, documentevent.Columns, sqlgraph.NewFieldSpec(documentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(documentevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passages(); ok {
		_spec.SetField(documentevent.FieldPassages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassages(); ok {
		_spec.AddField(documentevent.FieldPassages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(documentevent.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentevent.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(documentevent.FieldTopics, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentEventUpdateOne is the builder for updating a single DocumentEvent entity.
type DocumentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentEventMutation
}

// SetSource sets the "source" field.
func (_u *DocumentEventUpdateOne) SetSource(v string) *DocumentEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableSource(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetPassages sets the "passages" field.
func (_u *DocumentEventUpdateOne) SetPassages(v int) *DocumentEventUpdateOne {
	_u.mutation.ResetPassages()
	_u.mutation.SetPassages(v)
	return _u
}

// SetNillablePassages sets the "passages" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillablePassages(v *int) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetPassages(*v)
	}
	return _u
}

// AddPassages adds value to the "passages" field.
func (_u *DocumentEventUpdateOne) AddPassages(v int) *DocumentEventUpdateOne {
	_u.mutation.AddPassages(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *DocumentEventUpdateOne) SetTopics(v []string) *DocumentEventUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *DocumentEventUpdateOne) AppendTopics(v []string) *DocumentEventUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *DocumentEventUpdateOne) ClearTopics() *DocumentEventUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// Mutation returns the DocumentEventMutation object of the builder.
func (_u *DocumentEventUpdateOne) Mutation() *DocumentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentEventUpdate builder.
func (_u *DocumentEventUpdateOne) Where(ps ...predicate.DocumentEvent) *DocumentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentEventUpdateOne) Select(field string, fields ...string) *DocumentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentEvent entity.
func (_u *DocumentEventUpdateOne) Save(ctx context.Context) (*DocumentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentEventUpdateOne) SaveX(ctx context.Context) *DocumentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentEventUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := documentevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentEventUpdateOne) sqlSave(ctx context.Context) (_node *DocumentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentevent.Table, documentevent.Columns, sqlgraph.NewFieldSpec(documentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentevent.FieldID)
		for _, f := range fields {
			if !documentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentevent.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(documentevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passages(); ok {
		_spec.SetField(documentevent.FieldPassages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassages(); ok {
		_spec.AddField(documentevent.FieldPassages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(documentevent.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentevent.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(documentevent.FieldTopics, field.TypeJSON)
	}
	_node = &DocumentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
