package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity.
// A workflow is one multi-agent execution scoped to a conversation. Rows
// double as the work queue: pending workflows are claimed by worker pods
// with SELECT ... FOR UPDATE SKIP LOCKED, and last_heartbeat_at drives
// orphan recovery when a pod dies mid-run.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("template_name").
			NotEmpty().
			Immutable().
			Comment("Registered template name, or \"dynamic\" for ad-hoc plans"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("user_context", map[string]interface{}{}).
			Optional().
			Comment("Request payload snapshot: query, persona, document refs"),
		field.Int("max_parallel").
			Default(4),
		field.Text("final_output").
			Optional().
			Nillable().
			Comment("Aggregated result of the terminal step(s)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker pod that claimed this workflow"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("Bumped while running; stale heartbeats mark the run orphaned"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("archived_at").
			Optional().
			Nillable().
			Comment("Set by retention GC; archived rows are excluded from queues"),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("workflows").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", WorkflowStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("conversation_id", "created_at"),
	}
}
