package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// Messages are append-only; deletion is a tombstone, never a hard delete.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			NotEmpty().
			Immutable(),
		field.Enum("role").
			Values("human", "ai", "system", "tool").
			Immutable(),
		field.Text("content").
			Comment("Blanked in place when the message is tombstoned"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Free-form annotations such as agent name or workflow id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Clamped monotonic per conversation at insert time"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Tombstone marker; content is blanked when set"),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
	}
}
