// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/room"
	"github.com/scriptor-ai/scriptor/ent/roomparticipant"
)

// RoomParticipantCreate is the builder for creating a RoomParticipant entity.
type RoomParticipantCreate struct {
	config
	mutation *RoomParticipantMutation
	hooks    []Hook
}

// SetRoomID sets the "room_id" field.
func (_c *RoomParticipantCreate) SetRoomID(v string) *RoomParticipantCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RoomParticipantCreate) SetUserID(v string) *RoomParticipantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLastReadSeq sets the "last_read_seq" field.
func (_c *RoomParticipantCreate) SetLastReadSeq(v int64) *RoomParticipantCreate {
	_c.mutation.SetLastReadSeq(v)
	return _c
}

// SetNillableLastReadSeq sets the "last_read_seq" field if the given value is not nil.
func (_c *RoomParticipantCreate) SetNillableLastReadSeq(v *int64) *RoomParticipantCreate {
	if v != nil {
		_c.SetLastReadSeq(*v)
	}
	return _c
}

// SetLastReadAt sets the "last_read_at" field.
func (_c *RoomParticipantCreate) SetLastReadAt(v time.Time) *RoomParticipantCreate {
	_c.mutation.SetLastReadAt(v)
	return _c
}

// SetNillableLastReadAt sets the "last_read_at" field if the given value is not nil.
func (_c *RoomParticipantCreate) SetNillableLastReadAt(v *time.Time) *RoomParticipantCreate {
	if v != nil {
		_c.SetLastReadAt(*v)
	}
	return _c
}

// SetJoinedAt sets the "joined_at" field.
func (_c *RoomParticipantCreate) SetJoinedAt(v time.Time) *RoomParticipantCreate {
	_c.mutation.SetJoinedAt(v)
	return _c
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_c *RoomParticipantCreate) SetNillableJoinedAt(v *time.Time) *RoomParticipantCreate {
	if v != nil {
		_c.SetJoinedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoomParticipantCreate) SetID(v string) *RoomParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRoom sets the "room" edge to the Room entity.
func (_c *RoomParticipantCreate) SetRoom(v *Room) *RoomParticipantCreate {
	return _c.SetRoomID(v.ID)
}

// Mutation returns the RoomParticipantMutation object of the builder.
func (_c *RoomParticipantCreate) Mutation() *RoomParticipantMutation {
	return _c.mutation
}

// Save creates the RoomParticipant in the database.
func (_c *RoomParticipantCreate) Save(ctx context.Context) (*RoomParticipant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoomParticipantCreate) SaveX(ctx context.Context) *RoomParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoomParticipantCreate) defaults() {
	if _, ok := _c.mutation.LastReadSeq(); !ok {
		v := roomparticipant.DefaultLastReadSeq
		_c.mutation.SetLastReadSeq(v)
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		v := roomparticipant.DefaultJoinedAt()
		_c.mutation.SetJoinedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoomParticipantCreate) check() error {
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "RoomParticipant.room_id"`)}
	}
	if v, ok := _c.mutation.RoomID(); ok {
		if err := roomparticipant.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "RoomParticipant.room_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RoomParticipant.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := roomparticipant.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RoomParticipant.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastReadSeq(); !ok {
		return &ValidationError{Name: "last_read_seq", err: errors.New(`ent: missing required field "RoomParticipant.last_read_seq"`)}
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		return &ValidationError{Name: "joined_at", err: errors.New(`ent: missing required field "RoomParticipant.joined_at"`)}
	}
	if len(_c.mutation.RoomIDs()) == 0 {
		return &ValidationError{Name: "room", err: errors.New(`ent: missing required edge "RoomParticipant.room"`)}
	}
	return nil
}

func (_c *RoomParticipantCreate) sqlSave(ctx context.Context) (*RoomParticipant, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RoomParticipant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoomParticipantCreate) createSpec() (*RoomParticipant, *sqlgraph.CreateSpec) {
	var (
		_node = &RoomParticipant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roomparticipant.Table, sqlgraph.NewFieldSpec(roomparticipant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(roomparticipant.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LastReadSeq(); ok {
		_spec.SetField(roomparticipant.FieldLastReadSeq, field.TypeInt64, value)
		_node.LastReadSeq = value
	}
	if value, ok := _c.mutation.LastReadAt(); ok {
		_spec.SetField(roomparticipant.FieldLastReadAt, field.TypeTime, value)
		_node.LastReadAt = &value
	}
	if value, ok := _c.mutation.JoinedAt(); ok {
		_spec.SetField(roomparticipant.FieldJoinedAt, field.TypeTime, value)
		_node.JoinedAt = value
	}
	if nodes := _c.mutation.RoomIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roomparticipant.RoomTable,
			Columns: []string{roomparticipant.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RoomID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RoomParticipantCreateBulk is the builder for creating many RoomParticipant entities in bulk.
type RoomParticipantCreateBulk struct {
	config
	err      error
	builders []*RoomParticipantCreate
}

// Save creates the RoomParticipant entities in the database.
func (_c *RoomParticipantCreateBulk) Save(ctx context.Context) ([]*RoomParticipant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoomParticipant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoomParticipantMutation)
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
func (_c *RoomParticipantCreateBulk) SaveX(ctx context.Context) []*RoomParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
