// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/editproposal"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// EditProposalUpdate is the builder for updating EditProposal entities.
type EditProposalUpdate struct {
	config
	hooks    []Hook
	mutation *EditProposalMutation
}

// Where appends a list predicates to the EditProposalUpdate builder.
func (_u *EditProposalUpdate) Where(ps ...predicate.EditProposal) *EditProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperations sets the "operations" field.
func (_u *EditProposalUpdate) SetOperations(v []map[string]interface{}) *EditProposalUpdate {
	_u.mutation.SetOperations(v)
	return _u
}

// AppendOperations appends value to the "operations" field.
func (_u *EditProposalUpdate) AppendOperations(v []map[string]interface{}) *EditProposalUpdate {
	_u.mutation.AppendOperations(v)
	return _u
}

// ClearOperations clears the value of the "operations" field.
func (_u *EditProposalUpdate) ClearOperations() *EditProposalUpdate {
	_u.mutation.ClearOperations()
	return _u
}

// SetContentEdit sets the "content_edit" field.
func (_u *EditProposalUpdate) SetContentEdit(v string) *EditProposalUpdate {
	_u.mutation.SetContentEdit(v)
	return _u
}

// SetNillableContentEdit sets the "content_edit" field if the given value is not nil.
func (_u *EditProposalUpdate) SetNillableContentEdit(v *string) *EditProposalUpdate {
	if v != nil {
		_u.SetContentEdit(*v)
	}
	return _u
}

// ClearContentEdit clears the value of the "content_edit" field.
func (_u *EditProposalUpdate) ClearContentEdit() *EditProposalUpdate {
	_u.mutation.ClearContentEdit()
	return _u
}

// SetPreview sets the "preview" field.
func (_u *EditProposalUpdate) SetPreview(v string) *EditProposalUpdate {
	_u.mutation.SetPreview(v)
	return _u
}

// SetNillablePreview sets the "preview" field if the given value is not nil.
func (_u *EditProposalUpdate) SetNillablePreview(v *string) *EditProposalUpdate {
	if v != nil {
		_u.SetPreview(*v)
	}
	return _u
}

// ClearPreview clears the value of the "preview" field.
func (_u *EditProposalUpdate) ClearPreview() *EditProposalUpdate {
	_u.mutation.ClearPreview()
	return _u
}

// SetApplied sets the "applied" field.
func (_u *EditProposalUpdate) SetApplied(v bool) *EditProposalUpdate {
	_u.mutation.SetApplied(v)
	return _u
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_u *EditProposalUpdate) SetNillableApplied(v *bool) *EditProposalUpdate {
	if v != nil {
		_u.SetApplied(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *EditProposalUpdate) SetAppliedAt(v time.Time) *EditProposalUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *EditProposalUpdate) SetNillableAppliedAt(v *time.Time) *EditProposalUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *EditProposalUpdate) ClearAppliedAt() *EditProposalUpdate {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetApplyResult sets the "apply_result" field.
func (_u *EditProposalUpdate) SetApplyResult(v map[string]interface{}) *EditProposalUpdate {
	_u.mutation.SetApplyResult(v)
	return _u
}

// ClearApplyResult clears the value of the "apply_result" field.
func (_u *EditProposalUpdate) ClearApplyResult() *EditProposalUpdate {
	_u.mutation.ClearApplyResult()
	return _u
}

// Mutation returns the EditProposalMutation object of the builder.
func (_u *EditProposalUpdate) Mutation() *EditProposalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EditProposalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EditProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EditProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(editproposal.Table, editproposal.Columns, sqlgraph.NewFieldSpec(editproposal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Operations(); ok {
		_spec.SetField(editproposal.FieldOperations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOperations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, editproposal.FieldOperations, value)
		})
	}
	if _u.mutation.OperationsCleared() {
		_spec.ClearField(editproposal.FieldOperations, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentEdit(); ok {
		_spec.SetField(editproposal.FieldContentEdit, field.TypeString, value)
	}
	if _u.mutation.ContentEditCleared() {
		_spec.ClearField(editproposal.FieldContentEdit, field.TypeString)
	}
	if value, ok := _u.mutation.Preview(); ok {
		_spec.SetField(editproposal.FieldPreview, field.TypeString, value)
	}
	if _u.mutation.PreviewCleared() {
		_spec.ClearField(editproposal.FieldPreview, field.TypeString)
	}
	if value, ok := _u.mutation.Applied(); ok {
		_spec.SetField(editproposal.FieldApplied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(editproposal.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(editproposal.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApplyResult(); ok {
		_spec.SetField(editproposal.FieldApplyResult, field.TypeJSON, value)
	}
	if _u.mutation.ApplyResultCleared() {
		_spec.ClearField(editproposal.FieldApplyResult, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EditProposalUpdateOne is the builder for updating a single EditProposal entity.
type EditProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EditProposalMutation
}

// SetOperations sets the "operations" field.
func (_u *EditProposalUpdateOne) SetOperations(v []map[string]interface{}) *EditProposalUpdateOne {
	_u.mutation.SetOperations(v)
	return _u
}

// AppendOperations appends value to the "operations" field.
func (_u *EditProposalUpdateOne) AppendOperations(v []map[string]interface{}) *EditProposalUpdateOne {
	_u.mutation.AppendOperations(v)
	return _u
}

// ClearOperations clears the value of the "operations" field.
func (_u *EditProposalUpdateOne) ClearOperations() *EditProposalUpdateOne {
	_u.mutation.ClearOperations()
	return _u
}

// SetContentEdit sets the "content_edit" field.
func (_u *EditProposalUpdateOne) SetContentEdit(v string) *EditProposalUpdateOne {
	_u.mutation.SetContentEdit(v)
	return _u
}

// SetNillableContentEdit sets the "content_edit" field if the given value is not nil.
func (_u *EditProposalUpdateOne) SetNillableContentEdit(v *string) *EditProposalUpdateOne {
	if v != nil {
		_u.SetContentEdit(*v)
	}
	return _u
}

// ClearContentEdit clears the value of the "content_edit" field.
func (_u *EditProposalUpdateOne) ClearContentEdit() *EditProposalUpdateOne {
	_u.mutation.ClearContentEdit()
	return _u
}

// SetPreview sets the "preview" field.
func (_u *EditProposalUpdateOne) SetPreview(v string) *EditProposalUpdateOne {
	_u.mutation.SetPreview(v)
	return _u
}

// SetNillablePreview sets the "preview" field if the given value is not nil.
func (_u *EditProposalUpdateOne) SetNillablePreview(v *string) *EditProposalUpdateOne {
	if v != nil {
		_u.SetPreview(*v)
	}
	return _u
}

// ClearPreview clears the value of the "preview" field.
func (_u *EditProposalUpdateOne) ClearPreview() *EditProposalUpdateOne {
	_u.mutation.ClearPreview()
	return _u
}

// SetApplied sets the "applied" field.
func (_u *EditProposalUpdateOne) SetApplied(v bool) *EditProposalUpdateOne {
	_u.mutation.SetApplied(v)
	return _u
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_u *EditProposalUpdateOne) SetNillableApplied(v *bool) *EditProposalUpdateOne {
	if v != nil {
		_u.SetApplied(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *EditProposalUpdateOne) SetAppliedAt(v time.Time) *EditProposalUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *EditProposalUpdateOne) SetNillableAppliedAt(v *time.Time) *EditProposalUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *EditProposalUpdateOne) ClearAppliedAt() *EditProposalUpdateOne {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetApplyResult sets the "apply_result" field.
func (_u *EditProposalUpdateOne) SetApplyResult(v map[string]interface{}) *EditProposalUpdateOne {
	_u.mutation.SetApplyResult(v)
	return _u
}

// ClearApplyResult clears the value of the "apply_result" field.
func (_u *EditProposalUpdateOne) ClearApplyResult() *EditProposalUpdateOne {
	_u.mutation.ClearApplyResult()
	return _u
}

// Mutation returns the EditProposalMutation object of the builder.
func (_u *EditProposalUpdateOne) Mutation() *EditProposalMutation {
	return _u.mutation
}

// Where appends a list predicates to the EditProposalUpdate builder.
func (_u *EditProposalUpdateOne) Where(ps ...predicate.EditProposal) *EditProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EditProposalUpdateOne) Select(field string, fields ...string) *EditProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EditProposal entity.
func (_u *EditProposalUpdateOne) Save(ctx context.Context) (*EditProposal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditProposalUpdateOne) SaveX(ctx context.Context) *EditProposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EditProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EditProposalUpdateOne) sqlSave(ctx context.Context) (_node *EditProposal, err error) {
	_spec := sqlgraph.NewUpdateSpec(editproposal.Table, editproposal.Columns, sqlgraph.NewFieldSpec(editproposal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EditProposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editproposal.FieldID)
		for _, f := range fields {
			if !editproposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != editproposal.FieldID {
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
	if value, ok := _u.mutation.Operations(); ok {
		_spec.SetField(editproposal.FieldOperations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOperations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, editproposal.FieldOperations, value)
		})
	}
	if _u.mutation.OperationsCleared() {
		_spec.ClearField(editproposal.FieldOperations, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentEdit(); ok {
		_spec.SetField(editproposal.FieldContentEdit, field.TypeString, value)
	}
	if _u.mutation.ContentEditCleared() {
		_spec.ClearField(editproposal.FieldContentEdit, field.TypeString)
	}
	if value, ok := _u.mutation.Preview(); ok {
		_spec.SetField(editproposal.FieldPreview, field.TypeString, value)
	}
	if _u.mutation.PreviewCleared() {
		_spec.ClearField(editproposal.FieldPreview, field.TypeString)
	}
	if value, ok := _u.mutation.Applied(); ok {
		_spec.SetField(editproposal.FieldApplied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(editproposal.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(editproposal.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApplyResult(); ok {
		_spec.SetField(editproposal.FieldApplyResult, field.TypeJSON, value)
	}
	if _u.mutation.ApplyResultCleared() {
		_spec.ClearField(editproposal.FieldApplyResult, field.TypeJSON)
	}
	_node = &EditProposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
