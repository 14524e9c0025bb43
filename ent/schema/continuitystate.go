package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContinuityState holds the schema definition for the ContinuityState
// entity. One row per (user, manuscript) pair carrying the merged and
// pruned narrative tracking state across chapter analyses.
type ContinuityState struct {
	ent.Schema
}

// Fields of the ContinuityState.
func (ContinuityState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("continuity_state_id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("manuscript_filename").
			NotEmpty().
			Immutable(),
		field.Int("last_analyzed_chapter").
			Default(0),
		field.JSON("character_states", map[string]interface{}{}).
			Optional(),
		field.JSON("plot_threads", map[string]interface{}{}).
			Optional(),
		field.JSON("timeline", []map[string]interface{}{}).
			Optional(),
		field.JSON("world_state_changes", []map[string]interface{}{}).
			Optional(),
		field.JSON("unresolved_tensions", []map[string]interface{}{}).
			Optional(),
		field.Text("current_chapter_summary").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ContinuityState.
func (ContinuityState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "manuscript_filename").
			Unique(),
	}
}
