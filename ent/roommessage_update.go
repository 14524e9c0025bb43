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
	"github.com/scriptor-ai/scriptor/ent/messagereaction"
	"github.com/scriptor-ai/scriptor/ent/predicate"
	"github.com/scriptor-ai/scriptor/ent/roommessage"
)

// RoomMessageUpdate is the builder for updating RoomMessage entities.
type RoomMessageUpdate struct {
	config
	hooks    []Hook
	mutation *RoomMessageMutation
}

// Where appends a list predicates to the RoomMessageUpdate builder.
func (_u *RoomMessageUpdate) Where(ps ...predicate.RoomMessage) *RoomMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCiphertext sets the "ciphertext" field.
func (_u *RoomMessageUpdate) SetCiphertext(v []byte) *RoomMessageUpdate {
	_u.mutation.SetCiphertext(v)
	return _u
}

// ClearCiphertext clears the value of the "ciphertext" field.
func (_u *RoomMessageUpdate) ClearCiphertext() *RoomMessageUpdate {
	_u.mutation.ClearCiphertext()
	return _u
}

// SetNonce sets the "nonce" field.
func (_u *RoomMessageUpdate) SetNonce(v []byte) *RoomMessageUpdate {
	_u.mutation.SetNonce(v)
	return _u
}

// ClearNonce clears the value of the "nonce" field.
func (_u *RoomMessageUpdate) ClearNonce() *RoomMessageUpdate {
	_u.mutation.ClearNonce()
	return _u
}

// SetWrappedDek sets the "wrapped_dek" field.
func (_u *RoomMessageUpdate) SetWrappedDek(v []byte) *RoomMessageUpdate {
	_u.mutation.SetWrappedDek(v)
	return _u
}

// ClearWrappedDek clears the value of the "wrapped_dek" field.
func (_u *RoomMessageUpdate) ClearWrappedDek() *RoomMessageUpdate {
	_u.mutation.ClearWrappedDek()
	return _u
}

// SetDekNonce sets the "dek_nonce" field.
func (_u *RoomMessageUpdate) SetDekNonce(v []byte) *RoomMessageUpdate {
	_u.mutation.SetDekNonce(v)
	return _u
}

// ClearDekNonce clears the value of the "dek_nonce" field.
func (_u *RoomMessageUpdate) ClearDekNonce() *RoomMessageUpdate {
	_u.mutation.ClearDekNonce()
	return _u
}

// SetKeyVersion sets the "key_version" field.
func (_u *RoomMessageUpdate) SetKeyVersion(v int) *RoomMessageUpdate {
	_u.mutation.ResetKeyVersion()
	_u.mutation.SetKeyVersion(v)
	return _u
}

// SetNillableKeyVersion sets the "key_version" field if the given value is not nil.
func (_u *RoomMessageUpdate) SetNillableKeyVersion(v *int) *RoomMessageUpdate {
	if v != nil {
		_u.SetKeyVersion(*v)
	}
	return _u
}

// AddKeyVersion adds value to the "key_version" field.
func (_u *RoomMessageUpdate) AddKeyVersion(v int) *RoomMessageUpdate {
	_u.mutation.AddKeyVersion(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RoomMessageUpdate) SetDeletedAt(v time.Time) *RoomMessageUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RoomMessageUpdate) SetNillableDeletedAt(v *time.Time) *RoomMessageUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RoomMessageUpdate) ClearDeletedAt() *RoomMessageUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddReactionIDs adds the "reactions" edge to the MessageReaction entity by IDs.
func (_u *RoomMessageUpdate) AddReactionIDs(ids ...string) *RoomMessageUpdate {
	_u.mutation.AddReactionIDs(ids...)
	return _u
}

// AddReactions adds the "reactions" edges to the MessageReaction entity.
func (_u *RoomMessageUpdate) AddReactions(v ...*MessageReaction) *RoomMessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReactionIDs(ids...)
}

// Mutation returns the RoomMessageMutation object of the builder.
func (_u *RoomMessageUpdate) Mutation() *RoomMessageMutation {
	return _u.mutation
}

// ClearReactions clears all "reactions" edges to the MessageReaction entity.
func (_u *RoomMessageUpdate) ClearReactions() *RoomMessageUpdate {
	_u.mutation.ClearReactions()
	return _u
}

// RemoveReactionIDs removes the "reactions" edge to MessageReaction entities by IDs.
func (_u *RoomMessageUpdate) RemoveReactionIDs(ids ...string) *RoomMessageUpdate {
	_u.mutation.RemoveReactionIDs(ids...)
	return _u
}

// RemoveReactions removes "reactions" edges to MessageReaction entities.
func (_u *RoomMessageUpdate) RemoveReactions(v ...*MessageReaction) *RoomMessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoomMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoomMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoomMessageUpdate) check() error {
	if _u.mutation.RoomCleared() && len(_u.mutation.RoomIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoomMessage.room"`)
	}
	return nil
}

func (_u *RoomMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roommessage.Table, roommessage.Columns, sqlgraph.NewFieldSpec(roommessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(roommessage.FieldCiphertext, field.TypeBytes, value)
	}
	if _u.mutation.CiphertextCleared() {
		_spec.ClearField(roommessage.FieldCiphertext, field.TypeBytes)
	}
	if value, ok := _u.mutation.Nonce(); ok {
		_spec.SetField(roommessage.FieldNonce, field.TypeBytes, value)
	}
	if _u.mutation.NonceCleared() {
		_spec.ClearField(roommessage.FieldNonce, field.TypeBytes)
	}
	if value, ok := _u.mutation.WrappedDek(); ok {
		_spec.SetField(roommessage.FieldWrappedDek, field.TypeBytes, value)
	}
	if _u.mutation.WrappedDekCleared() {
		_spec.ClearField(roommessage.FieldWrappedDek, field.TypeBytes)
	}
	if value, ok := _u.mutation.DekNonce(); ok {
		_spec.SetField(roommessage.FieldDekNonce, field.TypeBytes, value)
	}
	if _u.mutation.DekNonceCleared() {
		_spec.ClearField(roommessage.FieldDekNonce, field.TypeBytes)
	}
	if value, ok := _u.mutation.KeyVersion(); ok {
		_spec.SetField(roommessage.FieldKeyVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKeyVersion(); ok {
		_spec.AddField(roommessage.FieldKeyVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(roommessage.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(roommessage.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ReactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReactionsIDs(); len(nodes) > 0 && !_u.mutation.ReactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roommessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoomMessageUpdateOne is the builder for updating a single RoomMessage entity.
type RoomMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoomMessageMutation
}

// SetCiphertext sets the "ciphertext" field.
func (_u *RoomMessageUpdateOne) SetCiphertext(v []byte) *RoomMessageUpdateOne {
	_u.mutation.SetCiphertext(v)
	return _u
}

// ClearCiphertext clears the value of the "ciphertext" field.
func (_u *RoomMessageUpdateOne) ClearCiphertext() *RoomMessageUpdateOne {
	_u.mutation.ClearCiphertext()
	return _u
}

// SetNonce sets the "nonce" field.
func (_u *RoomMessageUpdateOne) SetNonce(v []byte) *RoomMessageUpdateOne {
	_u.mutation.SetNonce(v)
	return _u
}

// ClearNonce clears the value of the "nonce" field.
func (_u *RoomMessageUpdateOne) ClearNonce() *RoomMessageUpdateOne {
	_u.mutation.ClearNonce()
	return _u
}

// SetWrappedDek sets the "wrapped_dek" field.
func (_u *RoomMessageUpdateOne) SetWrappedDek(v []byte) *RoomMessageUpdateOne {
	_u.mutation.SetWrappedDek(v)
	return _u
}

// ClearWrappedDek clears the value of the "wrapped_dek" field.
func (_u *RoomMessageUpdateOne) ClearWrappedDek() *RoomMessageUpdateOne {
	_u.mutation.ClearWrappedDek()
	return _u
}

// SetDekNonce sets the "dek_nonce" field.
func (_u *RoomMessageUpdateOne) SetDekNonce(v []byte) *RoomMessageUpdateOne {
	_u.mutation.SetDekNonce(v)
	return _u
}

// ClearDekNonce clears the value of the "dek_nonce" field.
func (_u *RoomMessageUpdateOne) ClearDekNonce() *RoomMessageUpdateOne {
	_u.mutation.ClearDekNonce()
	return _u
}

// SetKeyVersion sets the "key_version" field.
func (_u *RoomMessageUpdateOne) SetKeyVersion(v int) *RoomMessageUpdateOne {
	_u.mutation.ResetKeyVersion()
	_u.mutation.SetKeyVersion(v)
	return _u
}

// SetNillableKeyVersion sets the "key_version" field if the given value is not nil.
func (_u *RoomMessageUpdateOne) SetNillableKeyVersion(v *int) *RoomMessageUpdateOne {
	if v != nil {
		_u.SetKeyVersion(*v)
	}
	return _u
}

// AddKeyVersion adds value to the "key_version" field.
func (_u *RoomMessageUpdateOne) AddKeyVersion(v int) *RoomMessageUpdateOne {
	_u.mutation.AddKeyVersion(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RoomMessageUpdateOne) SetDeletedAt(v time.Time) *RoomMessageUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RoomMessageUpdateOne) SetNillableDeletedAt(v *time.Time) *RoomMessageUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RoomMessageUpdateOne) ClearDeletedAt() *RoomMessageUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddReactionIDs adds the "reactions" edge to the MessageReaction entity by IDs.
func (_u *RoomMessageUpdateOne) AddReactionIDs(ids ...string) *RoomMessageUpdateOne {
	_u.mutation.AddReactionIDs(ids...)
	return _u
}

// AddReactions adds the "reactions" edges to the MessageReaction entity.
func (_u *RoomMessageUpdateOne) AddReactions(v ...*MessageReaction) *RoomMessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReactionIDs(ids...)
}

// Mutation returns the RoomMessageMutation object of the builder.
func (_u *RoomMessageUpdateOne) Mutation() *RoomMessageMutation {
	return _u.mutation
}

// ClearReactions clears all "reactions" edges to the MessageReaction entity.
func (_u *RoomMessageUpdateOne) ClearReactions() *RoomMessageUpdateOne {
	_u.mutation.ClearReactions()
	return _u
}

// RemoveReactionIDs removes the "reactions" edge to MessageReaction entities by IDs.
func (_u *RoomMessageUpdateOne) RemoveReactionIDs(ids ...string) *RoomMessageUpdateOne {
	_u.mutation.RemoveReactionIDs(ids...)
	return _u
}

// RemoveReactions removes "reactions" edges to MessageReaction entities.
func (_u *RoomMessageUpdateOne) RemoveReactions(v ...*MessageReaction) *RoomMessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReactionIDs(ids...)
}

// Where appends a list predicates to the RoomMessageUpdate builder.
func (_u *RoomMessageUpdateOne) Where(ps ...predicate.RoomMessage) *RoomMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoomMessageUpdateOne) Select(field string, fields ...string) *RoomMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoomMessage entity.
func (_u *RoomMessageUpdateOne) Save(ctx context.Context) (*RoomMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomMessageUpdateOne) SaveX(ctx context.Context) *RoomMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoomMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoomMessageUpdateOne) check() error {
	if _u.mutation.RoomCleared() && len(_u.mutation.RoomIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoomMessage.room"`)
	}
	return nil
}

func (_u *RoomMessageUpdateOne) sqlSave(ctx context.Context) (_node *RoomMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roommessage.Table, roommessage.Columns, sqlgraph.NewFieldSpec(roommessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoomMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roommessage.FieldID)
		for _, f := range fields {
			if !roommessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roommessage.FieldID {
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
	if value, ok := _u.mutation.Ciphertext(); ok {
		_spec.SetField(roommessage.FieldCiphertext, field.TypeBytes, value)
	}
	if _u.mutation.CiphertextCleared() {
		_spec.ClearField(roommessage.FieldCiphertext, field.TypeBytes)
	}
	if value, ok := _u.mutation.Nonce(); ok {
		_spec.SetField(roommessage.FieldNonce, field.TypeBytes, value)
	}
	if _u.mutation.NonceCleared() {
		_spec.ClearField(roommessage.FieldNonce, field.TypeBytes)
	}
	if value, ok := _u.mutation.WrappedDek(); ok {
		_spec.SetField(roommessage.FieldWrappedDek, field.TypeBytes, value)
	}
	if _u.mutation.WrappedDekCleared() {
		_spec.ClearField(roommessage.FieldWrappedDek, field.TypeBytes)
	}
	if value, ok := _u.mutation.DekNonce(); ok {
		_spec.SetField(roommessage.FieldDekNonce, field.TypeBytes, value)
	}
	if _u.mutation.DekNonceCleared() {
		_spec.ClearField(roommessage.FieldDekNonce, field.TypeBytes)
	}
	if value, ok := _u.mutation.KeyVersion(); ok {
		_spec.SetField(roommessage.FieldKeyVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKeyVersion(); ok {
		_spec.AddField(roommessage.FieldKeyVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(roommessage.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(roommessage.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ReactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReactionsIDs(); len(nodes) > 0 && !_u.mutation.ReactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RoomMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roommessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
