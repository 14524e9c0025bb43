package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowStep holds the schema definition for the WorkflowStep entity.
// One row per planned step; step_id is the plan-local name referenced by
// depends_on lists and handoff routing.
type WorkflowStep struct {
	ent.Schema
}

// Fields of the WorkflowStep.
func (WorkflowStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_step_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			NotEmpty().
			Immutable(),
		field.String("step_id").
			NotEmpty().
			Immutable().
			Comment("Plan-local identifier, e.g. research_phase"),
		field.String("agent_type").
			NotEmpty().
			Immutable(),
		field.Text("task_description").
			Immutable(),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Step ids that must complete before this step is runnable"),
		field.JSON("input_requirements", []string{}).
			Optional(),
		field.JSON("output_specifications", []string{}).
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(2),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("AgentResult fields minus raw data outputs, which live in shared memory"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("execution_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the WorkflowStep.
func (WorkflowStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("steps").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowStep.
func (WorkflowStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "step_id").
			Unique(),
		index.Fields("workflow_id", "status"),
	}
}
