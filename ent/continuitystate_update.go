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
	"github.com/scriptor-ai/scriptor/ent/continuitystate"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// ContinuityStateUpdate is the builder for updating ContinuityState entities.
type ContinuityStateUpdate struct {
	config
	hooks    []Hook
	mutation *ContinuityStateMutation
}

// Where appends a list predicates to the ContinuityStateUpdate builder.
func (_u *ContinuityStateUpdate) Where(ps ...predicate.ContinuityState) *ContinuityStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastAnalyzedChapter sets the "last_analyzed_chapter" field.
func (_u *ContinuityStateUpdate) SetLastAnalyzedChapter(v int) *ContinuityStateUpdate {
	_u.mutation.ResetLastAnalyzedChapter()
	_u.mutation.SetLastAnalyzedChapter(v)
	return _u
}

// SetNillableLastAnalyzedChapter sets the "last_analyzed_chapter" field if the given value is not nil.
func (_u *ContinuityStateUpdate) SetNillableLastAnalyzedChapter(v *int) *ContinuityStateUpdate {
	if v != nil {
		_u.SetLastAnalyzedChapter(*v)
	}
	return _u
}

// AddLastAnalyzedChapter adds value to the "last_analyzed_chapter" field.
func (_u *ContinuityStateUpdate) AddLastAnalyzedChapter(v int) *ContinuityStateUpdate {
	_u.mutation.AddLastAnalyzedChapter(v)
	return _u
}

// SetCharacterStates sets the "character_states" field.
func (_u *ContinuityStateUpdate) SetCharacterStates(v map[string]interface{}) *ContinuityStateUpdate {
	_u.mutation.SetCharacterStates(v)
	return _u
}

// ClearCharacterStates clears the value of the "character_states" field.
func (_u *ContinuityStateUpdate) ClearCharacterStates() *ContinuityStateUpdate {
	_u.mutation.ClearCharacterStates()
	return _u
}

// SetPlotThreads sets the "plot_threads" field.
func (_u *ContinuityStateUpdate) SetPlotThreads(v map[string]interface{}) *ContinuityStateUpdate {
	_u.mutation.SetPlotThreads(v)
	return _u
}

// ClearPlotThreads clears the value of the "plot_threads" field.
func (_u *ContinuityStateUpdate) ClearPlotThreads() *ContinuityStateUpdate {
	_u.mutation.ClearPlotThreads()
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *ContinuityStateUpdate) SetTimeline(v []map[string]interface{}) *ContinuityStateUpdate {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *ContinuityStateUpdate) AppendTimeline(v []map[string]interface{}) *ContinuityStateUpdate {
	_u.mutation.AppendTimeline(v)
	return _u
}

// ClearTimeline clears the value of the "timeline" field.
func (_u *ContinuityStateUpdate) ClearTimeline() *ContinuityStateUpdate {
	_u.mutation.ClearTimeline()
	return _u
}

// SetWorldStateChanges sets the "world_state_changes" field.
func (_u *ContinuityStateUpdate) SetWorldStateChanges(v []map[string]interface{}) *ContinuityStateUpdate {
	_u.mutation.SetWorldStateChanges(v)
	return _u
}

// AppendWorldStateChanges appends value to the "world_state_changes" field.
func (_u *ContinuityStateUpdate) AppendWorldStateChanges(v []map[string]interface{}) *ContinuityStateUpdate {
	_u.mutation.AppendWorldStateChanges(v)
	return _u
}

// ClearWorldStateChanges clears the value of the "world_state_changes" field.
func (_u *ContinuityStateUpdate) ClearWorldStateChanges() *ContinuityStateUpdate {
	_u.mutation.ClearWorldStateChanges()
	return _u
}

// SetUnresolvedTensions sets the "unresolved_tensions" field.
func (_u *ContinuityStateUpdate) SetUnresolvedTensions(v []map[string]interface{}) *ContinuityStateUpdate {
	_u.mutation.SetUnresolvedTensions(v)
	return _u
}

// AppendUnresolvedTensions appends value to the "unresolved_tensions" field.
func (_u *ContinuityStateUpdate) AppendUnresolvedTensions(v []map[string]interface{}) *ContinuityStateUpdate {
	_u.mutation.AppendUnresolvedTensions(v)
	return _u
}

// ClearUnresolvedTensions clears the value of the "unresolved_tensions" field.
func (_u *ContinuityStateUpdate) ClearUnresolvedTensions() *ContinuityStateUpdate {
	_u.mutation.ClearUnresolvedTensions()
	return _u
}

// SetCurrentChapterSummary sets the "current_chapter_summary" field.
func (_u *ContinuityStateUpdate) SetCurrentChapterSummary(v string) *ContinuityStateUpdate {
	_u.mutation.SetCurrentChapterSummary(v)
	return _u
}

// SetNillableCurrentChapterSummary sets the "current_chapter_summary" field if the given value is not nil.
func (_u *ContinuityStateUpdate) SetNillableCurrentChapterSummary(v *string) *ContinuityStateUpdate {
	if v != nil {
		_u.SetCurrentChapterSummary(*v)
	}
	return _u
}

// ClearCurrentChapterSummary clears the value of the "current_chapter_summary" field.
func (_u *ContinuityStateUpdate) ClearCurrentChapterSummary() *ContinuityStateUpdate {
	_u.mutation.ClearCurrentChapterSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContinuityStateUpdate) SetUpdatedAt(v time.Time) *ContinuityStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContinuityStateMutation object of the builder.
func (_u *ContinuityStateUpdate) Mutation() *ContinuityStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContinuityStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContinuityStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContinuityStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContinuityStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContinuityStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := continuitystate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContinuityStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(continuitystate.Table, continuitystate.Columns, sqlgraph.NewFieldSpec(continuitystate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastAnalyzedChapter(); ok {
		_spec.SetField(continuitystate.FieldLastAnalyzedChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastAnalyzedChapter(); ok {
		_spec.AddField(continuitystate.FieldLastAnalyzedChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CharacterStates(); ok {
		_spec.SetField(continuitystate.FieldCharacterStates, field.TypeJSON, value)
	}
	if _u.mutation.CharacterStatesCleared() {
		_spec.ClearField(continuitystate.FieldCharacterStates, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlotThreads(); ok {
		_spec.SetField(continuitystate.FieldPlotThreads, field.TypeJSON, value)
	}
	if _u.mutation.PlotThreadsCleared() {
		_spec.ClearField(continuitystate.FieldPlotThreads, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(continuitystate.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, continuitystate.FieldTimeline, value)
		})
	}
	if _u.mutation.TimelineCleared() {
		_spec.ClearField(continuitystate.FieldTimeline, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorldStateChanges(); ok {
		_spec.SetField(continuitystate.FieldWorldStateChanges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorldStateChanges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, continuitystate.FieldWorldStateChanges, value)
		})
	}
	if _u.mutation.WorldStateChangesCleared() {
		_spec.ClearField(continuitystate.FieldWorldStateChanges, field.TypeJSON)
	}
	if value, ok := _u.mutation.UnresolvedTensions(); ok {
		_spec.SetField(continuitystate.FieldUnresolvedTensions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnresolvedTensions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, continuitystate.FieldUnresolvedTensions, value)
		})
	}
	if _u.mutation.UnresolvedTensionsCleared() {
		_spec.ClearField(continuitystate.FieldUnresolvedTensions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentChapterSummary(); ok {
		_spec.SetField(continuitystate.FieldCurrentChapterSummary, field.TypeString, value)
	}
	if _u.mutation.CurrentChapterSummaryCleared() {
		_spec.ClearField(continuitystate.FieldCurrentChapterSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(continuitystate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{continuitystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContinuityStateUpdateOne is the builder for updating a single ContinuityState entity.
type ContinuityStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContinuityStateMutation
}

// SetLastAnalyzedChapter sets the "last_analyzed_chapter" field.
func (_u *ContinuityStateUpdateOne) SetLastAnalyzedChapter(v int) *ContinuityStateUpdateOne {
	_u.mutation.ResetLastAnalyzedChapter()
	_u.mutation.SetLastAnalyzedChapter(v)
	return _u
}

// SetNillableLastAnalyzedChapter sets the "last_analyzed_chapter" field if the given value is not nil.
func (_u *ContinuityStateUpdateOne) SetNillableLastAnalyzedChapter(v *int) *ContinuityStateUpdateOne {
	if v != nil {
		_u.SetLastAnalyzedChapter(*v)
	}
	return _u
}

// AddLastAnalyzedChapter adds value to the "last_analyzed_chapter" field.
func (_u *ContinuityStateUpdateOne) AddLastAnalyzedChapter(v int) *ContinuityStateUpdateOne {
	_u.mutation.AddLastAnalyzedChapter(v)
	return _u
}

// SetCharacterStates sets the "character_states" field.
func (_u *ContinuityStateUpdateOne) SetCharacterStates(v map[string]interface{}) *ContinuityStateUpdateOne {
	_u.mutation.SetCharacterStates(v)
	return _u
}

// ClearCharacterStates clears the value of the "character_states" field.
func (_u *ContinuityStateUpdateOne) ClearCharacterStates() *ContinuityStateUpdateOne {
	_u.mutation.ClearCharacterStates()
	return _u
}

// SetPlotThreads sets the "plot_threads" field.
func (_u *ContinuityStateUpdateOne) SetPlotThreads(v map[string]interface{}) *ContinuityStateUpdateOne {
	_u.mutation.SetPlotThreads(v)
	return _u
}

// ClearPlotThreads clears the value of the "plot_threads" field.
func (_u *ContinuityStateUpdateOne) ClearPlotThreads() *ContinuityStateUpdateOne {
	_u.mutation.ClearPlotThreads()
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *ContinuityStateUpdateOne) SetTimeline(v []map[string]interface{}) *ContinuityStateUpdateOne {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *ContinuityStateUpdateOne) AppendTimeline(v []map[string]interface{}) *ContinuityStateUpdateOne {
	_u.mutation.AppendTimeline(v)
	return _u
}

// ClearTimeline clears the value of the "timeline" field.
func (_u *ContinuityStateUpdateOne) ClearTimeline() *ContinuityStateUpdateOne {
	_u.mutation.ClearTimeline()
	return _u
}

// SetWorldStateChanges sets the "world_state_changes" field.
func (_u *ContinuityStateUpdateOne) SetWorldStateChanges(v []map[string]interface{}) *ContinuityStateUpdateOne {
	_u.mutation.SetWorldStateChanges(v)
	return _u
}

// AppendWorldStateChanges appends value to the "world_state_changes" field.
func (_u *ContinuityStateUpdateOne) AppendWorldStateChanges(v []map[string]interface{}) *ContinuityStateUpdateOne {
	_u.mutation.AppendWorldStateChanges(v)
	return _u
}

// ClearWorldStateChanges clears the value of the "world_state_changes" field.
func (_u *ContinuityStateUpdateOne) ClearWorldStateChanges() *ContinuityStateUpdateOne {
	_u.mutation.ClearWorldStateChanges()
	return _u
}

// SetUnresolvedTensions sets the "unresolved_tensions" field.
func (_u *ContinuityStateUpdateOne) SetUnresolvedTensions(v []map[string]interface{}) *ContinuityStateUpdateOne {
	_u.mutation.SetUnresolvedTensions(v)
	return _u
}

// AppendUnresolvedTensions appends value to the "unresolved_tensions" field.
func (_u *ContinuityStateUpdateOne) AppendUnresolvedTensions(v []map[string]interface{}) *ContinuityStateUpdateOne {
	_u.mutation.AppendUnresolvedTensions(v)
	return _u
}

// ClearUnresolvedTensions clears the value of the "unresolved_tensions" field.
func (_u *ContinuityStateUpdateOne) ClearUnresolvedTensions() *ContinuityStateUpdateOne {
	_u.mutation.ClearUnresolvedTensions()
	return _u
}

// SetCurrentChapterSummary sets the "current_chapter_summary" field.
func (_u *ContinuityStateUpdateOne) SetCurrentChapterSummary(v string) *ContinuityStateUpdateOne {
	_u.mutation.SetCurrentChapterSummary(v)
	return _u
}

// SetNillableCurrentChapterSummary sets the "current_chapter_summary" field if the given value is not nil.
func (_u *ContinuityStateUpdateOne) SetNillableCurrentChapterSummary(v *string) *ContinuityStateUpdateOne {
	if v != nil {
		_u.SetCurrentChapterSummary(*v)
	}
	return _u
}

// ClearCurrentChapterSummary clears the value of the "current_chapter_summary" field.
func (_u *ContinuityStateUpdateOne) ClearCurrentChapterSummary() *ContinuityStateUpdateOne {
	_u.mutation.ClearCurrentChapterSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContinuityStateUpdateOne) SetUpdatedAt(v time.Time) *ContinuityStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContinuityStateMutation object of the builder.
func (_u *ContinuityStateUpdateOne) Mutation() *ContinuityStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContinuityStateUpdate builder.
func (_u *ContinuityStateUpdateOne) Where(ps ...predicate.ContinuityState) *ContinuityStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContinuityStateUpdateOne) Select(field string, fields ...string) *ContinuityStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContinuityState entity.
func (_u *ContinuityStateUpdateOne) Save(ctx context.Context) (*ContinuityState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContinuityStateUpdateOne) SaveX(ctx context.Context) *ContinuityState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContinuityStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContinuityStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContinuityStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := continuitystate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContinuityStateUpdateOne) sqlSave(ctx context.Context) (_node *ContinuityState, err error) {
	_spec := sqlgraph.NewUpdateSpec(continuitystate.Table, continuitystate.Columns, sqlgraph.NewFieldSpec(continuitystate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContinuityState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, continuitystate.FieldID)
		for _, f := range fields {
			if !continuitystate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != continuitystate.FieldID {
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
	if value, ok := _u.mutation.LastAnalyzedChapter(); ok {
		_spec.SetField(continuitystate.FieldLastAnalyzedChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastAnalyzedChapter(); ok {
		_spec.AddField(continuitystate.FieldLastAnalyzedChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CharacterStates(); ok {
		_spec.SetField(continuitystate.FieldCharacterStates, field.TypeJSON, value)
	}
	if _u.mutation.CharacterStatesCleared() {
		_spec.ClearField(continuitystate.FieldCharacterStates, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlotThreads(); ok {
		_spec.SetField(continuitystate.FieldPlotThreads, field.TypeJSON, value)
	}
	if _u.mutation.PlotThreadsCleared() {
		_spec.ClearField(continuitystate.FieldPlotThreads, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(continuitystate.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, continuitystate.FieldTimeline, value)
		})
	}
	if _u.mutation.TimelineCleared() {
		_spec.ClearField(continuitystate.FieldTimeline, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorldStateChanges(); ok {
		_spec.SetField(continuitystate.FieldWorldStateChanges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorldStateChanges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, continuitystate.FieldWorldStateChanges, value)
		})
	}
	if _u.mutation.WorldStateChangesCleared() {
		_spec.ClearField(continuitystate.FieldWorldStateChanges, field.TypeJSON)
	}
	if value, ok := _u.mutation.UnresolvedTensions(); ok {
		_spec.SetField(continuitystate.FieldUnresolvedTensions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnresolvedTensions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, continuitystate.FieldUnresolvedTensions, value)
		})
	}
	if _u.mutation.UnresolvedTensionsCleared() {
		_spec.ClearField(continuitystate.FieldUnresolvedTensions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentChapterSummary(); ok {
		_spec.SetField(continuitystate.FieldCurrentChapterSummary, field.TypeString, value)
	}
	if _u.mutation.CurrentChapterSummaryCleared() {
		_spec.ClearField(continuitystate.FieldCurrentChapterSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(continuitystate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ContinuityState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{continuitystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
