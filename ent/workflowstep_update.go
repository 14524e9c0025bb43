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
	"github.com/scriptor-ai/scriptor/ent/predicate"
	"github.com/scriptor-ai/scriptor/ent/workflowstep"
)

// WorkflowStepUpdate is the builder for updating WorkflowStep entities.
type WorkflowStepUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdate) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *WorkflowStepUpdate) SetDependsOn(v []string) *WorkflowStepUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *WorkflowStepUpdate) AppendDependsOn(v []string) *WorkflowStepUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *WorkflowStepUpdate) ClearDependsOn() *WorkflowStepUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetInputRequirements sets the "input_requirements" field.
func (_u *WorkflowStepUpdate) SetInputRequirements(v []string) *WorkflowStepUpdate {
	_u.mutation.SetInputRequirements(v)
	return _u
}

// AppendInputRequirements appends value to the "input_requirements" field.
func (_u *WorkflowStepUpdate) AppendInputRequirements(v []string) *WorkflowStepUpdate {
	_u.mutation.AppendInputRequirements(v)
	return _u
}

// ClearInputRequirements clears the value of the "input_requirements" field.
func (_u *WorkflowStepUpdate) ClearInputRequirements() *WorkflowStepUpdate {
	_u.mutation.ClearInputRequirements()
	return _u
}

// SetOutputSpecifications sets the "output_specifications" field.
func (_u *WorkflowStepUpdate) SetOutputSpecifications(v []string) *WorkflowStepUpdate {
	_u.mutation.SetOutputSpecifications(v)
	return _u
}

// AppendOutputSpecifications appends value to the "output_specifications" field.
func (_u *WorkflowStepUpdate) AppendOutputSpecifications(v []string) *WorkflowStepUpdate {
	_u.mutation.AppendOutputSpecifications(v)
	return _u
}

// ClearOutputSpecifications clears the value of the "output_specifications" field.
func (_u *WorkflowStepUpdate) ClearOutputSpecifications() *WorkflowStepUpdate {
	_u.mutation.ClearOutputSpecifications()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowStepUpdate) SetStatus(v workflowstep.Status) *WorkflowStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStatus(v *workflowstep.Status) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *WorkflowStepUpdate) SetRetryCount(v int) *WorkflowStepUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableRetryCount(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *WorkflowStepUpdate) AddRetryCount(v int) *WorkflowStepUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *WorkflowStepUpdate) SetMaxRetries(v int) *WorkflowStepUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableMaxRetries(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *WorkflowStepUpdate) AddMaxRetries(v int) *WorkflowStepUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkflowStepUpdate) SetResult(v map[string]interface{}) *WorkflowStepUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkflowStepUpdate) ClearResult() *WorkflowStepUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowStepUpdate) SetErrorMessage(v string) *WorkflowStepUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableErrorMessage(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowStepUpdate) ClearErrorMessage() *WorkflowStepUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowStepUpdate) SetStartedAt(v time.Time) *WorkflowStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStartedAt(v *time.Time) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowStepUpdate) ClearStartedAt() *WorkflowStepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowStepUpdate) SetCompletedAt(v time.Time) *WorkflowStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowStepUpdate) ClearCompletedAt() *WorkflowStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExecutionMs sets the "execution_ms" field.
func (_u *WorkflowStepUpdate) SetExecutionMs(v int64) *WorkflowStepUpdate {
	_u.mutation.ResetExecutionMs()
	_u.mutation.SetExecutionMs(v)
	return _u
}

// SetNillableExecutionMs sets the "execution_ms" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableExecutionMs(v *int64) *WorkflowStepUpdate {
	if v != nil {
		_u.SetExecutionMs(*v)
	}
	return _u
}

// AddExecutionMs adds value to the "execution_ms" field.
func (_u *WorkflowStepUpdate) AddExecutionMs(v int64) *WorkflowStepUpdate {
	_u.mutation.AddExecutionMs(v)
	return _u
}

// ClearExecutionMs clears the value of the "execution_ms" field.
func (_u *WorkflowStepUpdate) ClearExecutionMs() *WorkflowStepUpdate {
	_u.mutation.ClearExecutionMs()
	return _u
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdate) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(workflowstep.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(workflowstep.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputRequirements(); ok {
		_spec.SetField(workflowstep.FieldInputRequirements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputRequirements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldInputRequirements, value)
		})
	}
	if _u.mutation.InputRequirementsCleared() {
		_spec.ClearField(workflowstep.FieldInputRequirements, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSpecifications(); ok {
		_spec.SetField(workflowstep.FieldOutputSpecifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutputSpecifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldOutputSpecifications, value)
		})
	}
	if _u.mutation.OutputSpecificationsCleared() {
		_spec.ClearField(workflowstep.FieldOutputSpecifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(workflowstep.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(workflowstep.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(workflowstep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(workflowstep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workflowstep.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workflowstep.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowstep.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowstep.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionMs(); ok {
		_spec.SetField(workflowstep.FieldExecutionMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionMs(); ok {
		_spec.AddField(workflowstep.FieldExecutionMs, field.TypeInt64, value)
	}
	if _u.mutation.ExecutionMsCleared() {
		_spec.ClearField(workflowstep.FieldExecutionMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowStepUpdateOne is the builder for updating a single WorkflowStep entity.
type WorkflowStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// SetDependsOn sets the "depends_on" field.
func (_u *WorkflowStepUpdateOne) SetDependsOn(v []string) *WorkflowStepUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *WorkflowStepUpdateOne) AppendDependsOn(v []string) *WorkflowStepUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *WorkflowStepUpdateOne) ClearDependsOn() *WorkflowStepUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetInputRequirements sets the "input_requirements" field.
func (_u *WorkflowStepUpdateOne) SetInputRequirements(v []string) *WorkflowStepUpdateOne {
	_u.mutation.SetInputRequirements(v)
	return _u
}

// AppendInputRequirements appends value to the "input_requirements" field.
func (_u *WorkflowStepUpdateOne) AppendInputRequirements(v []string) *WorkflowStepUpdateOne {
	_u.mutation.AppendInputRequirements(v)
	return _u
}

// ClearInputRequirements clears the value of the "input_requirements" field.
func (_u *WorkflowStepUpdateOne) ClearInputRequirements() *WorkflowStepUpdateOne {
	_u.mutation.ClearInputRequirements()
	return _u
}

// SetOutputSpecifications sets the "output_specifications" field.
func (_u *WorkflowStepUpdateOne) SetOutputSpecifications(v []string) *WorkflowStepUpdateOne {
	_u.mutation.SetOutputSpecifications(v)
	return _u
}

// AppendOutputSpecifications appends value to the "output_specifications" field.
func (_u *WorkflowStepUpdateOne) AppendOutputSpecifications(v []string) *WorkflowStepUpdateOne {
	_u.mutation.AppendOutputSpecifications(v)
	return _u
}

// ClearOutputSpecifications clears the value of the "output_specifications" field.
func (_u *WorkflowStepUpdateOne) ClearOutputSpecifications() *WorkflowStepUpdateOne {
	_u.mutation.ClearOutputSpecifications()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowStepUpdateOne) SetStatus(v workflowstep.Status) *WorkflowStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStatus(v *workflowstep.Status) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *WorkflowStepUpdateOne) SetRetryCount(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableRetryCount(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *WorkflowStepUpdateOne) AddRetryCount(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *WorkflowStepUpdateOne) SetMaxRetries(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableMaxRetries(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *WorkflowStepUpdateOne) AddMaxRetries(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkflowStepUpdateOne) SetResult(v map[string]interface{}) *WorkflowStepUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkflowStepUpdateOne) ClearResult() *WorkflowStepUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowStepUpdateOne) SetErrorMessage(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableErrorMessage(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowStepUpdateOne) ClearErrorMessage() *WorkflowStepUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowStepUpdateOne) SetStartedAt(v time.Time) *WorkflowStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowStepUpdateOne) ClearStartedAt() *WorkflowStepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowStepUpdateOne) SetCompletedAt(v time.Time) *WorkflowStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowStepUpdateOne) ClearCompletedAt() *WorkflowStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExecutionMs sets the "execution_ms" field.
func (_u *WorkflowStepUpdateOne) SetExecutionMs(v int64) *WorkflowStepUpdateOne {
	_u.mutation.ResetExecutionMs()
	_u.mutation.SetExecutionMs(v)
	return _u
}

// SetNillableExecutionMs sets the "execution_ms" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableExecutionMs(v *int64) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetExecutionMs(*v)
	}
	return _u
}

// AddExecutionMs adds value to the "execution_ms" field.
func (_u *WorkflowStepUpdateOne) AddExecutionMs(v int64) *WorkflowStepUpdateOne {
	_u.mutation.AddExecutionMs(v)
	return _u
}

// ClearExecutionMs clears the value of the "execution_ms" field.
func (_u *WorkflowStepUpdateOne) ClearExecutionMs() *WorkflowStepUpdateOne {
	_u.mutation.ClearExecutionMs()
	return _u
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdateOne) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdateOne) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowStepUpdateOne) Select(field string, fields ...string) *WorkflowStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowStep entity.
func (_u *WorkflowStepUpdateOne) Save(ctx context.Context) (*WorkflowStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) SaveX(ctx context.Context) *WorkflowStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowstep.FieldID)
		for _, f := range fields {
			if !workflowstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowstep.FieldID {
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
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(workflowstep.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(workflowstep.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputRequirements(); ok {
		_spec.SetField(workflowstep.FieldInputRequirements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputRequirements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldInputRequirements, value)
		})
	}
	if _u.mutation.InputRequirementsCleared() {
		_spec.ClearField(workflowstep.FieldInputRequirements, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSpecifications(); ok {
		_spec.SetField(workflowstep.FieldOutputSpecifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutputSpecifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldOutputSpecifications, value)
		})
	}
	if _u.mutation.OutputSpecificationsCleared() {
		_spec.ClearField(workflowstep.FieldOutputSpecifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(workflowstep.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(workflowstep.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(workflowstep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(workflowstep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workflowstep.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workflowstep.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowstep.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowstep.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionMs(); ok {
		_spec.SetField(workflowstep.FieldExecutionMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionMs(); ok {
		_spec.AddField(workflowstep.FieldExecutionMs, field.TypeInt64, value)
	}
	if _u.mutation.ExecutionMsCleared() {
		_spec.ClearField(workflowstep.FieldExecutionMs, field.TypeInt64)
	}
	_node = &WorkflowStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
