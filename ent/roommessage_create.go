// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/messagereaction"
	"github.com/scriptor-ai/scriptor/ent/room"
	"github.com/scriptor-ai/scriptor/ent/roommessage"
)

// RoomMessageCreate is the builder for creating a RoomMessage entity.
type RoomMessageCreate struct {
	config
	mutation *RoomMessageMutation
	hooks    []Hook
}

// SetRoomID sets the "room_id" field.
func (_c *RoomMessageCreate) SetRoomID(v string) *RoomMessageCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetSenderID sets the "sender_id" field.
func (_c *RoomMessageCreate) SetSenderID(v string) *RoomMessageCreate {
	_c.mutation.SetSenderID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *RoomMessageCreate) SetSeq(v int64) *RoomMessageCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetCiphertext sets the "ciphertext" field.
func (_c *RoomMessageCreate) SetCiphertext(v []byte) *RoomMessageCreate {
	_c.mutation.SetCiphertext(v)
	return _c
}

// SetNonce sets the "nonce" field.
func (_c *RoomMessageCreate) SetNonce(v []byte) *RoomMessageCreate {
	_c.mutation.SetNonce(v)
	return _c
}

// SetWrappedDek sets the "wrapped_dek" field.
func (_c *RoomMessageCreate) SetWrappedDek(v []byte) *RoomMessageCreate {
	_c.mutation.SetWrappedDek(v)
	return _c
}

// SetDekNonce sets the "dek_nonce" field.
func (_c *RoomMessageCreate) SetDekNonce(v []byte) *RoomMessageCreate {
	_c.mutation.SetDekNonce(v)
	return _c
}

// SetKeyVersion sets the "key_version" field.
func (_c *RoomMessageCreate) SetKeyVersion(v int) *RoomMessageCreate {
	_c.mutation.SetKeyVersion(v)
	return _c
}

// SetNillableKeyVersion sets the "key_version" field if the given value is not nil.
func (_c *RoomMessageCreate) SetNillableKeyVersion(v *int) *RoomMessageCreate {
	if v != nil {
		_c.SetKeyVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoomMessageCreate) SetCreatedAt(v time.Time) *RoomMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoomMessageCreate) SetNillableCreatedAt(v *time.Time) *RoomMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *RoomMessageCreate) SetDeletedAt(v time.Time) *RoomMessageCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *RoomMessageCreate) SetNillableDeletedAt(v *time.Time) *RoomMessageCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoomMessageCreate) SetID(v string) *RoomMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRoom sets the "room" edge to the Room entity.
func (_c *RoomMessageCreate) SetRoom(v *Room) *RoomMessageCreate {
	return _c.SetRoomID(v.ID)
}

// AddReactionIDs adds the "reactions" edge to the MessageReaction entity by IDs.
func (_c *RoomMessageCreate) AddReactionIDs(ids ...string) *RoomMessageCreate {
	_c.mutation.AddReactionIDs(ids...)
	return _c
}

// AddReactions adds the "reactions" edges to the MessageReaction entity.
func (_c *RoomMessageCreate) AddReactions(v ...*MessageReaction) *RoomMessageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReactionIDs(ids...)
}

// Mutation returns the RoomMessageMutation object of the builder.
func (_c *RoomMessageCreate) Mutation() *RoomMessageMutation {
	return _c.mutation
}

// Save creates the RoomMessage in the database.
func (_c *RoomMessageCreate) Save(ctx context.Context) (*RoomMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoomMessageCreate) SaveX(ctx context.Context) *RoomMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoomMessageCreate) defaults() {
	if _, ok := _c.mutation.KeyVersion(); !ok {
		v := roommessage.DefaultKeyVersion
		_c.mutation.SetKeyVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := roommessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoomMessageCreate) check() error {
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "RoomMessage.room_id"`)}
	}
	if v, ok := _c.mutation.RoomID(); ok {
		if err := roommessage.RoomIDValidator(v); err != nil {
			return &ValidationError{Name: "room_id", err: fmt.Errorf(`ent: validator failed for field "RoomMessage.room_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SenderID(); !ok {
		return &ValidationError{Name: "sender_id", err: errors.New(`ent: missing required field "RoomMessage.sender_id"`)}
	}
	if v, ok := _c.mutation.SenderID(); ok {
		if err := roommessage.SenderIDValidator(v); err != nil {
			return &ValidationError{Name: "sender_id", err: fmt.Errorf(`ent: validator failed for field "RoomMessage.sender_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "RoomMessage.seq"`)}
	}
	if _, ok := _c.mutation.KeyVersion(); !ok {
		return &ValidationError{Name: "key_version", err: errors.New(`ent: missing required field "RoomMessage.key_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoomMessage.created_at"`)}
	}
	if len(_c.mutation.RoomIDs()) == 0 {
		return &ValidationError{Name: "room", err: errors.New(`ent: missing required edge "RoomMessage.room"`)}
	}
	return nil
}

func (_c *RoomMessageCreate) sqlSave(ctx context.Context) (*RoomMessage, error) {
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
			return nil, fmt.Errorf("unexpected RoomMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoomMessageCreate) createSpec() (*RoomMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &RoomMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roommessage.Table, sqlgraph.NewFieldSpec(roommessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SenderID(); ok {
		_spec.SetField(roommessage.FieldSenderID, field.TypeString, value)
		_node.SenderID = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(roommessage.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Ciphertext(); ok {
		_spec.SetField(roommessage.FieldCiphertext, field.TypeBytes, value)
		_node.Ciphertext = value
	}
	if value, ok := _c.mutation.Nonce(); ok {
		_spec.SetField(roommessage.FieldNonce, field.TypeBytes, value)
		_node.Nonce = value
	}
	if value, ok := _c.mutation.WrappedDek(); ok {
		_spec.SetField(roommessage.FieldWrappedDek, field.TypeBytes, value)
		_node.WrappedDek = value
	}
	if value, ok := _c.mutation.DekNonce(); ok {
		_spec.SetField(roommessage.FieldDekNonce, field.TypeBytes, value)
		_node.DekNonce = value
	}
	if value, ok := _c.mutation.KeyVersion(); ok {
		_spec.SetField(roommessage.FieldKeyVersion, field.TypeInt, value)
		_node.KeyVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(roommessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(roommessage.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.RoomIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roommessage.RoomTable,
			Columns: []string{roommessage.RoomColumn},
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
	if nodes := _c.mutation.ReactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   roommessage.ReactionsTable,
			Columns: []string{roommessage.ReactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RoomMessageCreateBulk is the builder for creating many RoomMessage entities in bulk.
type RoomMessageCreateBulk struct {
	config
	err      error
	builders []*RoomMessageCreate
}

// Save creates the RoomMessage entities in the database.
func (_c *RoomMessageCreateBulk) Save(ctx context.Context) ([]*RoomMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoomMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoomMessageMutation)
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
func (_c *RoomMessageCreateBulk) SaveX(ctx context.Context) []*RoomMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
