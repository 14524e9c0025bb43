// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/editproposal"
)

// EditProposalCreate is the builder for creating a EditProposal entity.
type EditProposalCreate struct {
	config
	mutation *EditProposalMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *EditProposalCreate) SetUserID(v string) *EditProposalCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *EditProposalCreate) SetDocumentID(v string) *EditProposalCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *EditProposalCreate) SetAgentName(v string) *EditProposalCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetEditType sets the "edit_type" field.
func (_c *EditProposalCreate) SetEditType(v editproposal.EditType) *EditProposalCreate {
	_c.mutation.SetEditType(v)
	return _c
}

// SetOperations sets the "operations" field.
func (_c *EditProposalCreate) SetOperations(v []map[string]interface{}) *EditProposalCreate {
	_c.mutation.SetOperations(v)
	return _c
}

// SetContentEdit sets the "content_edit" field.
func (_c *EditProposalCreate) SetContentEdit(v string) *EditProposalCreate {
	_c.mutation.SetContentEdit(v)
	return _c
}

// SetNillableContentEdit sets the "content_edit" field if the given value is not nil.
func (_c *EditProposalCreate) SetNillableContentEdit(v *string) *EditProposalCreate {
	if v != nil {
		_c.SetContentEdit(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *EditProposalCreate) SetSummary(v string) *EditProposalCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetPreview sets the "preview" field.
func (_c *EditProposalCreate) SetPreview(v string) *EditProposalCreate {
	_c.mutation.SetPreview(v)
	return _c
}

// SetNillablePreview sets the "preview" field if the given value is not nil.
func (_c *EditProposalCreate) SetNillablePreview(v *string) *EditProposalCreate {
	if v != nil {
		_c.SetPreview(*v)
	}
	return _c
}

// SetApplied sets the "applied" field.
func (_c *EditProposalCreate) SetApplied(v bool) *EditProposalCreate {
	_c.mutation.SetApplied(v)
	return _c
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_c *EditProposalCreate) SetNillableApplied(v *bool) *EditProposalCreate {
	if v != nil {
		_c.SetApplied(*v)
	}
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *EditProposalCreate) SetAppliedAt(v time.Time) *EditProposalCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *EditProposalCreate) SetNillableAppliedAt(v *time.Time) *EditProposalCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// SetApplyResult sets the "apply_result" field.
func (_c *EditProposalCreate) SetApplyResult(v map[string]interface{}) *EditProposalCreate {
	_c.mutation.SetApplyResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EditProposalCreate) SetCreatedAt(v time.Time) *EditProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EditProposalCreate) SetNillableCreatedAt(v *time.Time) *EditProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *EditProposalCreate) SetExpiresAt(v time.Time) *EditProposalCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EditProposalCreate) SetID(v string) *EditProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EditProposalMutation object of the builder.
func (_c *EditProposalCreate) Mutation() *EditProposalMutation {
	return _c.mutation
}

// Save creates the EditProposal in the database.
func (_c *EditProposalCreate) Save(ctx context.Context) (*EditProposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EditProposalCreate) SaveX(ctx context.Context) *EditProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EditProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EditProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EditProposalCreate) defaults() {
	if _, ok := _c.mutation.Applied(); !ok {
		v := editproposal.DefaultApplied
		_c.mutation.SetApplied(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := editproposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EditProposalCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EditProposal.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := editproposal.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "EditProposal.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "EditProposal.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := editproposal.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "EditProposal.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "EditProposal.agent_name"`)}
	}
	if v, ok := _c.mutation.AgentName(); ok {
		if err := editproposal.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "EditProposal.agent_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EditType(); !ok {
		return &ValidationError{Name: "edit_type", err: errors.New(`ent: missing required field "EditProposal.edit_type"`)}
	}
	if v, ok := _c.mutation.EditType(); ok {
		if err := editproposal.EditTypeValidator(v); err != nil {
			return &ValidationError{Name: "edit_type", err: fmt.Errorf(`ent: validator failed for field "EditProposal.edit_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "EditProposal.summary"`)}
	}
	if _, ok := _c.mutation.Applied(); !ok {
		return &ValidationError{Name: "applied", err: errors.New(`ent: missing required field "EditProposal.applied"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EditProposal.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "EditProposal.expires_at"`)}
	}
	return nil
}

func (_c *EditProposalCreate) sqlSave(ctx context.Context) (*EditProposal, error) {
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
			return nil, fmt.Errorf("unexpected EditProposal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EditProposalCreate) createSpec() (*EditProposal, *sqlgraph.CreateSpec) {
	var (
		_node = &EditProposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(editproposal.Table, sqlgraph.NewFieldSpec(editproposal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(editproposal.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(editproposal.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(editproposal.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.EditType(); ok {
		_spec.SetField(editproposal.FieldEditType, field.TypeEnum, value)
		_node.EditType = value
	}
	if value, ok := _c.mutation.Operations(); ok {
		_spec.SetField(editproposal.FieldOperations, field.TypeJSON, value)
		_node.Operations = value
	}
	if value, ok := _c.mutation.ContentEdit(); ok {
		_spec.SetField(editproposal.FieldContentEdit, field.TypeString, value)
		_node.ContentEdit = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(editproposal.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Preview(); ok {
		_spec.SetField(editproposal.FieldPreview, field.TypeString, value)
		_node.Preview = value
	}
	if value, ok := _c.mutation.Applied(); ok {
		_spec.SetField(editproposal.FieldApplied, field.TypeBool, value)
		_node.Applied = value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(editproposal.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = &value
	}
	if value, ok := _c.mutation.ApplyResult(); ok {
		_spec.SetField(editproposal.FieldApplyResult, field.TypeJSON, value)
		_node.ApplyResult = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(editproposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(editproposal.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// EditProposalCreateBulk is the builder for creating many EditProposal entities in bulk.
type EditProposalCreateBulk struct {
	config
	err      error
	builders []*EditProposalCreate
}

// Save creates the EditProposal entities in the database.
func (_c *EditProposalCreateBulk) Save(ctx context.Context) ([]*EditProposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EditProposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EditProposalMutation)
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
func (_c *EditProposalCreateBulk) SaveX(ctx context.Context) []*EditProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EditProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EditProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
