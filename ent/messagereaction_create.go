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
	"github.com/scriptor-ai/scriptor/ent/roommessage"
)

// MessageReactionCreate is the builder for creating a MessageReaction entity.
type MessageReactionCreate struct {
	config
	mutation *MessageReactionMutation
	hooks    []Hook
}

// SetMessageID sets the "message_id" field.
func (_c *MessageReactionCreate) SetMessageID(v string) *MessageReactionCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MessageReactionCreate) SetUserID(v string) *MessageReactionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEmoji sets the "emoji" field.
func (_c *MessageReactionCreate) SetEmoji(v string) *MessageReactionCreate {
	_c.mutation.SetEmoji(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageReactionCreate) SetCreatedAt(v time.Time) *MessageReactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageReactionCreate) SetNillableCreatedAt(v *time.Time) *MessageReactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageReactionCreate) SetID(v string) *MessageReactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMessage sets the "message" edge to the RoomMessage entity.
func (_c *MessageReactionCreate) SetMessage(v *RoomMessage) *MessageReactionCreate {
	return _c.SetMessageID(v.ID)
}

// Mutation returns the MessageReactionMutation object of the builder.
func (_c *MessageReactionCreate) Mutation() *MessageReactionMutation {
	return _c.mutation
}

// Save creates the MessageReaction in the database.
func (_c *MessageReactionCreate) Save(ctx context.Context) (*MessageReaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageReactionCreate) SaveX(ctx context.Context) *MessageReaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageReactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageReactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageReactionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messagereaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageReactionCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageReaction.message_id"`)}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := messagereaction.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "MessageReaction.message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MessageReaction.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := messagereaction.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MessageReaction.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Emoji(); !ok {
		return &ValidationError{Name: "emoji", err: errors.New(`ent: missing required field "MessageReaction.emoji"`)}
	}
	if v, ok := _c.mutation.Emoji(); ok {
		if err := messagereaction.EmojiValidator(v); err != nil {
			return &ValidationError{Name: "emoji", err: fmt.Errorf(`ent: validator failed for field "MessageReaction.emoji": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageReaction.created_at"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "MessageReaction.message"`)}
	}
	return nil
}

func (_c *MessageReactionCreate) sqlSave(ctx context.Context) (*MessageReaction, error) {
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
			return nil, fmt.Errorf("unexpected MessageReaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageReactionCreate) createSpec() (*MessageReaction, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageReaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagereaction.Table, sqlgraph.NewFieldSpec(messagereaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(messagereaction.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Emoji(); ok {
		_spec.SetField(messagereaction.FieldEmoji, field.TypeString, value)
		_node.Emoji = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messagereaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messagereaction.MessageTable,
			Columns: []string{messagereaction.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roommessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MessageReactionCreateBulk is the builder for creating many MessageReaction entities in bulk.
type MessageReactionCreateBulk struct {
	config
	err      error
	builders []*MessageReactionCreate
}

// Save creates the MessageReaction entities in the database.
func (_c *MessageReactionCreateBulk) Save(ctx context.Context) ([]*MessageReaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageReaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageReactionMutation)
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
func (_c *MessageReactionCreateBulk) SaveX(ctx context.Context) []*MessageReaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageReactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageReactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
