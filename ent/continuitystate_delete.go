// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/continuitystate"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// ContinuityStateDelete is the builder for deleting a ContinuityState entity.
type ContinuityStateDelete struct {
	config
	hooks    []Hook
	mutation *ContinuityStateMutation
}

// Where appends a list predicates to the ContinuityStateDelete builder.
func (_d *ContinuityStateDelete) Where(ps ...predicate.ContinuityState) *ContinuityStateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ContinuityStateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContinuityStateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ContinuityStateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(continuitystate.Table, sqlgraph.NewFieldSpec(continuitystate.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ContinuityStateDeleteOne is the builder for deleting a single ContinuityState entity.
type ContinuityStateDeleteOne struct {
	_d *ContinuityStateDelete
}

// Where appends a list predicates to the ContinuityStateDelete builder.
func (_d *ContinuityStateDeleteOne) Where(ps ...predicate.ContinuityState) *ContinuityStateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ContinuityStateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{continuitystate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContinuityStateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
