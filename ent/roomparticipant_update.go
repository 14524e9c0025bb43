// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/predicate"
	"github.com/scriptor-ai/scriptor/ent/roomparticipant"
)

// RoomParticipantUpdate is the builder for updating RoomParticipant entities.
type RoomParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *RoomParticipantMutation
}

// Where appends a list predicates to the RoomParticipantUpdate builder.
func (_u *RoomParticipantUpdate) Where(ps ...predicate.RoomParticipant) *RoomParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastReadSeq sets the "last_read_seq" field.
func (_u *RoomParticipantUpdate) SetLastReadSeq(v int64) *RoomParticipantUpdate {
	_u.mutation.ResetLastReadSeq()
	_u.mutation.SetLastReadSeq(v)
	return _u
}

// SetNillableLastReadSeq sets the "last_read_seq" field if the given value is not nil.
func (_u *RoomParticipantUpdate) SetNillableLastReadSeq(v *int64) *RoomParticipantUpdate {
	if v != nil {
		_u.SetLastReadSeq(*v)
	}
	return _u
}

// AddLastReadSeq adds value to the "last_read_seq" field.
func (_u *RoomParticipantUpdate) AddLastReadSeq(v int64) *RoomParticipantUpdate {
	_u.mutation.AddLastReadSeq(v)
	return _u
}

// SetLastReadAt sets the "last_read_at" field.
func (_u *RoomParticipantUpdate) SetLastReadAt(v time.Time) *RoomParticipantUpdate {
	_u.mutation.SetLastReadAt(v)
	return _u
}

// SetNillableLastReadAt sets the "last_read_at" field if the given value is not nil.
func (_u *RoomParticipantUpdate) SetNillableLastReadAt(v *time.Time) *RoomParticipantUpdate {
	if v != nil {
		_u.SetLastReadAt(*v)
	}
	return _u
}

// ClearLastReadAt clears the value of the "last_read_at" field.
func (_u *RoomParticipantUpdate) ClearLastReadAt() *RoomParticipantUpdate {
	_u.mutation.ClearLastReadAt()
	return _u
}

// Mutation returns the RoomParticipantMutation object of the builder.
func (_u *RoomParticipantUpdate) Mutation() *RoomParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoomParticipantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoomParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoomParticipantUpdate) check() error {
	if _u.mutation.RoomCleared() && len(_u.mutation.RoomIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoomParticipant.room"`)
	}
	return nil
}

func (_u *RoomParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roomparticipant.Table, roomparticipant.Columns, sqlgraph.NewFieldSpec(roomparticipant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastReadSeq(); ok {
		_spec.SetField(roomparticipant.FieldLastReadSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastReadSeq(); ok {
		_spec.AddField(roomparticipant.FieldLastReadSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastReadAt(); ok {
		_spec.SetField(roomparticipant.FieldLastReadAt, field.TypeTime, value)
	}
	if _u.mutation.LastReadAtCleared() {
		_spec.ClearField(roomparticipant.FieldLastReadAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roomparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoomParticipantUpdateOne is the builder for updating a single RoomParticipant entity.
type RoomParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoomParticipantMutation
}

// SetLastReadSeq sets the "last_read_seq" field.
func (_u *RoomParticipantUpdateOne) SetLastReadSeq(v int64) *RoomParticipantUpdateOne {
	_u.mutation.ResetLastReadSeq()
	_u.mutation.SetLastReadSeq(v)
	return _u
}

// SetNillableLastReadSeq sets the "last_read_seq" field if the given value is not nil.
func (_u *RoomParticipantUpdateOne) SetNillableLastReadSeq(v *int64) *RoomParticipantUpdateOne {
	if v != nil {
		_u.SetLastReadSeq(*v)
	}
	return _u
}

// AddLastReadSeq adds value to the "last_read_seq" field.
func (_u *RoomParticipantUpdateOne) AddLastReadSeq(v int64) *RoomParticipantUpdateOne {
	_u.mutation.AddLastReadSeq(v)
	return _u
}

// SetLastReadAt sets the "last_read_at" field.
func (_u *RoomParticipantUpdateOne) SetLastReadAt(v time.Time) *RoomParticipantUpdateOne {
	_u.mutation.SetLastReadAt(v)
	return _u
}

// SetNillableLastReadAt sets the "last_read_at" field if the given value is not nil.
func (_u *RoomParticipantUpdateOne) SetNillableLastReadAt(v *time.Time) *RoomParticipantUpdateOne {
	if v != nil {
		_u.SetLastReadAt(*v)
	}
	return _u
}

// ClearLastReadAt clears the value of the "last_read_at" field.
func (_u *RoomParticipantUpdateOne) ClearLastReadAt() *RoomParticipantUpdateOne {
	_u.mutation.ClearLastReadAt()
	return _u
}

// Mutation returns the RoomParticipantMutation object of the builder.
func (_u *RoomParticipantUpdateOne) Mutation() *RoomParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoomParticipantUpdate builder.
func (_u *RoomParticipantUpdateOne) Where(ps ...predicate.RoomParticipant) *RoomParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoomParticipantUpdateOne) Select(field string, fields ...string) *RoomParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoomParticipant entity.
func (_u *RoomParticipantUpdateOne) Save(ctx context.Context) (*RoomParticipant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomParticipantUpdateOne) SaveX(ctx context.Context) *RoomParticipant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoomParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoomParticipantUpdateOne) check() error {
	if _u.mutation.RoomCleared() && len(_u.mutation.RoomIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoomParticipant.room"`)
	}
	return nil
}

func (_u *RoomParticipantUpdateOne) sqlSave(ctx context.Context) (_node *RoomParticipant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roomparticipant.Table, roomparticipant.Columns, sqlgraph.NewFieldSpec(roomparticipant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoomParticipant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roomparticipant.FieldID)
		for _, f := range fields {
			if !roomparticipant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roomparticipant.FieldID {
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
	if value, ok := _u.mutation.LastReadSeq(); ok {
		_spec.SetField(roomparticipant.FieldLastReadSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastReadSeq(); ok {
		_spec.AddField(roomparticipant.FieldLastReadSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastReadAt(); ok {
		_spec.SetField(roomparticipant.FieldLastReadAt, field.TypeTime, value)
	}
	if _u.mutation.LastReadAtCleared() {
		_spec.ClearField(roomparticipant.FieldLastReadAt, field.TypeTime)
	}
	_node = &RoomParticipant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roomparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
