package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EditProposal holds the schema definition for the EditProposal entity.
// Proposals are the audit trail behind the in-memory registry: the row
// records what an agent proposed and whether it was ever applied, so
// apply-once survives process restarts.
type EditProposal struct {
	ent.Schema
}

// Fields of the EditProposal.
func (EditProposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("proposal_id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("document_id").
			NotEmpty().
			Immutable(),
		field.String("agent_name").
			NotEmpty().
			Immutable(),
		field.Enum("edit_type").
			Values("operations", "content").
			Immutable(),
		field.JSON("operations", []map[string]interface{}{}).
			Optional().
			Comment("Resolved editor operations for edit_type=operations"),
		field.Text("content_edit").
			Optional().
			Comment("Full replacement body for edit_type=content"),
		field.Text("summary").
			Immutable(),
		field.Text("preview").
			Optional().
			Comment("Unified diff of the proposed change"),
		field.Bool("applied").
			Default(false),
		field.Time("applied_at").
			Optional().
			Nillable(),
		field.JSON("apply_result", map[string]interface{}{}).
			Optional().
			Comment("Outcome returned to the first and all subsequent apply calls"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Immutable(),
	}
}

// Indexes of the EditProposal.
func (EditProposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("document_id"),
		index.Fields("applied", "expires_at"),
	}
}
