package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageReaction holds the schema definition for the MessageReaction
// entity. The (message, user, emoji) unique index makes reaction adds
// idempotent.
type MessageReaction struct {
	ent.Schema
}

// Fields of the MessageReaction.
func (MessageReaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_reaction_id").
			Unique().
			Immutable(),
		field.String("message_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("emoji").
			NotEmpty().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MessageReaction.
func (MessageReaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", RoomMessage.Type).
			Ref("reactions").
			Field("message_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MessageReaction.
func (MessageReaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "user_id", "emoji").
			Unique(),
	}
}
