// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/workflow"
	"github.com/scriptor-ai/scriptor/ent/workflowstep"
)

// WorkflowStepCreate is the builder for creating a WorkflowStep entity.
type WorkflowStepCreate struct {
	config
	mutation *WorkflowStepMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowStepCreate) SetWorkflowID(v string) *WorkflowStepCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *WorkflowStepCreate) SetStepID(v string) *WorkflowStepCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *WorkflowStepCreate) SetAgentType(v string) *WorkflowStepCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *WorkflowStepCreate) SetTaskDescription(v string) *WorkflowStepCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *WorkflowStepCreate) SetDependsOn(v []string) *WorkflowStepCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetInputRequirements sets the "input_requirements" field.
func (_c *WorkflowStepCreate) SetInputRequirements(v []string) *WorkflowStepCreate {
	_c.mutation.SetInputRequirements(v)
	return _c
}

// SetOutputSpecifications sets the "output_specifications" field.
func (_c *WorkflowStepCreate) SetOutputSpecifications(v []string) *WorkflowStepCreate {
	_c.mutation.SetOutputSpecifications(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowStepCreate) SetStatus(v workflowstep.Status) *WorkflowStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableStatus(v *workflowstep.Status) *WorkflowStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *WorkflowStepCreate) SetRetryCount(v int) *WorkflowStepCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableRetryCount(v *int) *WorkflowStepCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *WorkflowStepCreate) SetMaxRetries(v int) *WorkflowStepCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableMaxRetries(v *int) *WorkflowStepCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *WorkflowStepCreate) SetResult(v map[string]interface{}) *WorkflowStepCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowStepCreate) SetErrorMessage(v string) *WorkflowStepCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableErrorMessage(v *string) *WorkflowStepCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowStepCreate) SetStartedAt(v time.Time) *WorkflowStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableStartedAt(v *time.Time) *WorkflowStepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowStepCreate) SetCompletedAt(v time.Time) *WorkflowStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableCompletedAt(v *time.Time) *WorkflowStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetExecutionMs sets the "execution_ms" field.
func (_c *WorkflowStepCreate) SetExecutionMs(v int64) *WorkflowStepCreate {
	_c.mutation.SetExecutionMs(v)
	return _c
}

// SetNillableExecutionMs sets the "execution_ms" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableExecutionMs(v *int64) *WorkflowStepCreate {
	if v != nil {
		_c.SetExecutionMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowStepCreate) SetID(v string) *WorkflowStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowStepCreate) SetWorkflow(v *Workflow) *WorkflowStepCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_c *WorkflowStepCreate) Mutation() *WorkflowStepMutation {
	return _c.mutation
}

// Save creates the WorkflowStep in the database.
func (_c *WorkflowStepCreate) Save(ctx context.Context) (*WorkflowStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowStepCreate) SaveX(ctx context.Context) *WorkflowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowStepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := workflowstep.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := workflowstep.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowStepCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowStep.workflow_id"`)}
	}
	if v, ok := _c.mutation.WorkflowID(); ok {
		if err := workflowstep.WorkflowIDValidator(v); err != nil {
			return &ValidationError{Name: "workflow_id", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.workflow_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "WorkflowStep.step_id"`)}
	}
	if v, ok := _c.mutation.StepID(); ok {
		if err := workflowstep.StepIDValidator(v); err != nil {
			return &ValidationError{Name: "step_id", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "WorkflowStep.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := workflowstep.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskDescription(); !ok {
		return &ValidationError{Name: "task_description", err: errors.New(`ent: missing required field "WorkflowStep.task_description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "WorkflowStep.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "WorkflowStep.max_retries"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowStep.workflow"`)}
	}
	return nil
}

func (_c *WorkflowStepCreate) sqlSave(ctx context.Context) (*WorkflowStep, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowStepCreate) createSpec() (*WorkflowStep, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowstep.Table, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(workflowstep.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(workflowstep.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(workflowstep.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(workflowstep.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.InputRequirements(); ok {
		_spec.SetField(workflowstep.FieldInputRequirements, field.TypeJSON, value)
		_node.InputRequirements = value
	}
	if value, ok := _c.mutation.OutputSpecifications(); ok {
		_spec.SetField(workflowstep.FieldOutputSpecifications, field.TypeJSON, value)
		_node.OutputSpecifications = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(workflowstep.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(workflowstep.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(workflowstep.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowstep.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflowstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflowstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ExecutionMs(); ok {
		_spec.SetField(workflowstep.FieldExecutionMs, field.TypeInt64, value)
		_node.ExecutionMs = &value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.WorkflowTable,
			Columns: []string{workflowstep.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowStepCreateBulk is the builder for creating many WorkflowStep entities in bulk.
type WorkflowStepCreateBulk struct {
	config
	err      error
	builders []*WorkflowStepCreate
}

// Save creates the WorkflowStep entities in the database.
func (_c *WorkflowStepCreateBulk) Save(ctx context.Context) ([]*WorkflowStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowStepMutation)
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
func (_c *WorkflowStepCreateBulk) SaveX(ctx context.Context) []*WorkflowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
