package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// Checkpoints are append-only snapshots of workflow execution state,
// sequenced monotonically per workflow under the workflow row lock.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			NotEmpty().
			Immutable(),
		field.String("workflow_id").
			NotEmpty().
			Immutable(),
		field.Int64("seq").
			Immutable().
			Comment("Monotonic per workflow; assigned under the workflow row lock"),
		field.Int64("parent_seq").
			Optional().
			Nillable().
			Immutable().
			Comment("Seq of the checkpoint this one derives from, nil for the first"),
		field.String("phase").
			NotEmpty().
			Immutable().
			Comment("Execution phase at snapshot time, e.g. step_completed"),
		field.JSON("state", map[string]interface{}{}).
			Comment("Full serialized execution state"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("checkpoints").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "seq").
			Unique(),
		index.Fields("conversation_id", "created_at"),
	}
}
