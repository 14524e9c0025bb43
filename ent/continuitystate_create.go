// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/continuitystate"
)

// ContinuityStateCreate is the builder for creating a ContinuityState entity.
type ContinuityStateCreate struct {
	config
	mutation *ContinuityStateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ContinuityStateCreate) SetUserID(v string) *ContinuityStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetManuscriptFilename sets the "manuscript_filename" field.
func (_c *ContinuityStateCreate) SetManuscriptFilename(v string) *ContinuityStateCreate {
	_c.mutation.SetManuscriptFilename(v)
	return _c
}

// SetLastAnalyzedChapter sets the "last_analyzed_chapter" field.
func (_c *ContinuityStateCreate) SetLastAnalyzedChapter(v int) *ContinuityStateCreate {
	_c.mutation.SetLastAnalyzedChapter(v)
	return _c
}

// SetNillableLastAnalyzedChapter sets the "last_analyzed_chapter" field if the given value is not nil.
func (_c *ContinuityStateCreate) SetNillableLastAnalyzedChapter(v *int) *ContinuityStateCreate {
	if v != nil {
		_c.SetLastAnalyzedChapter(*v)
	}
	return _c
}

// SetCharacterStates sets the "character_states" field.
func (_c *ContinuityStateCreate) SetCharacterStates(v map[string]interface{}) *ContinuityStateCreate {
	_c.mutation.SetCharacterStates(v)
	return _c
}

// SetPlotThreads sets the "plot_threads" field.
func (_c *ContinuityStateCreate) SetPlotThreads(v map[string]interface{}) *ContinuityStateCreate {
	_c.mutation.SetPlotThreads(v)
	return _c
}

// SetTimeline sets the "timeline" field.
func (_c *ContinuityStateCreate) SetTimeline(v []map[string]interface{}) *ContinuityStateCreate {
	_c.mutation.SetTimeline(v)
	return _c
}

// SetWorldStateChanges sets the "world_state_changes" field.
func (_c *ContinuityStateCreate) SetWorldStateChanges(v []map[string]interface{}) *ContinuityStateCreate {
	_c.mutation.SetWorldStateChanges(v)
	return _c
}

// SetUnresolvedTensions sets the "unresolved_tensions" field.
func (_c *ContinuityStateCreate) SetUnresolvedTensions(v []map[string]interface{}) *ContinuityStateCreate {
	_c.mutation.SetUnresolvedTensions(v)
	return _c
}

// SetCurrentChapterSummary sets the "current_chapter_summary" field.
func (_c *ContinuityStateCreate) SetCurrentChapterSummary(v string) *ContinuityStateCreate {
	_c.mutation.SetCurrentChapterSummary(v)
	return _c
}

// SetNillableCurrentChapterSummary sets the "current_chapter_summary" field if the given value is not nil.
func (_c *ContinuityStateCreate) SetNillableCurrentChapterSummary(v *string) *ContinuityStateCreate {
	if v != nil {
		_c.SetCurrentChapterSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContinuityStateCreate) SetCreatedAt(v time.Time) *ContinuityStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContinuityStateCreate) SetNillableCreatedAt(v *time.Time) *ContinuityStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContinuityStateCreate) SetUpdatedAt(v time.Time) *ContinuityStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContinuityStateCreate) SetNillableUpdatedAt(v *time.Time) *ContinuityStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContinuityStateCreate) SetID(v string) *ContinuityStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContinuityStateMutation object of the builder.
func (_c *ContinuityStateCreate) Mutation() *ContinuityStateMutation {
	return _c.mutation
}

// Save creates the ContinuityState in the database.
func (_c *ContinuityStateCreate) Save(ctx context.Context) (*ContinuityState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContinuityStateCreate) SaveX(ctx context.Context) *ContinuityState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContinuityStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContinuityStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContinuityStateCreate) defaults() {
	if _, ok := _c.mutation.LastAnalyzedChapter(); !ok {
		v := continuitystate.DefaultLastAnalyzedChapter
		_c.mutation.SetLastAnalyzedChapter(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := continuitystate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := continuitystate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContinuityStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ContinuityState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := continuitystate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ContinuityState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ManuscriptFilename(); !ok {
		return &ValidationError{Name: "manuscript_filename", err: errors.New(`ent: missing required field "ContinuityState.manuscript_filename"`)}
	}
	if v, ok := _c.mutation.ManuscriptFilename(); ok {
		if err := continuitystate.ManuscriptFilenameValidator(v); err != nil {
			return &ValidationError{Name: "manuscript_filename", err: fmt.Errorf(`ent: validator failed for field "ContinuityState.manuscript_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastAnalyzedChapter(); !ok {
		return &ValidationError{Name: "last_analyzed_chapter", err: errors.New(`ent: missing required field "ContinuityState.last_analyzed_chapter"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContinuityState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContinuityState.updated_at"`)}
	}
	return nil
}

func (_c *ContinuityStateCreate) sqlSave(ctx context.Context) (*ContinuityState, error) {
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
			return nil, fmt.Errorf("unexpected ContinuityState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContinuityStateCreate) createSpec() (*ContinuityState, *sqlgraph.CreateSpec) {
	var (
		_node = &ContinuityState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(continuitystate.Table, sqlgraph.NewFieldSpec(continuitystate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(continuitystate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ManuscriptFilename(); ok {
		_spec.SetField(continuitystate.FieldManuscriptFilename, field.TypeString, value)
		_node.ManuscriptFilename = value
	}
	if value, ok := _c.mutation.LastAnalyzedChapter(); ok {
		_spec.SetField(continuitystate.FieldLastAnalyzedChapter, field.TypeInt, value)
		_node.LastAnalyzedChapter = value
	}
	if value, ok := _c.mutation.CharacterStates(); ok {
		_spec.SetField(continuitystate.FieldCharacterStates, field.TypeJSON, value)
		_node.CharacterStates = value
	}
	if value, ok := _c.mutation.PlotThreads(); ok {
		_spec.SetField(continuitystate.FieldPlotThreads, field.TypeJSON, value)
		_node.PlotThreads = value
	}
	if value, ok := _c.mutation.Timeline(); ok {
		_spec.SetField(continuitystate.FieldTimeline, field.TypeJSON, value)
		_node.Timeline = value
	}
	if value, ok := _c.mutation.WorldStateChanges(); ok {
		_spec.SetField(continuitystate.FieldWorldStateChanges, field.TypeJSON, value)
		_node.WorldStateChanges = value
	}
	if value, ok := _c.mutation.UnresolvedTensions(); ok {
		_spec.SetField(continuitystate.FieldUnresolvedTensions, field.TypeJSON, value)
		_node.UnresolvedTensions = value
	}
	if value, ok := _c.mutation.CurrentChapterSummary(); ok {
		_spec.SetField(continuitystate.FieldCurrentChapterSummary, field.TypeString, value)
		_node.CurrentChapterSummary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(continuitystate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(continuitystate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ContinuityStateCreateBulk is the builder for creating many ContinuityState entities in bulk.
type ContinuityStateCreateBulk struct {
	config
	err      error
	builders []*ContinuityStateCreate
}

// Save creates the ContinuityState entities in the database.
func (_c *ContinuityStateCreateBulk) Save(ctx context.Context) ([]*ContinuityState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContinuityState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContinuityStateMutation)
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
func (_c *ContinuityStateCreateBulk) SaveX(ctx context.Context) []*ContinuityState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContinuityStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContinuityStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
