package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoomMessage holds the schema definition for the RoomMessage entity.
// Bodies are stored as AES-GCM envelopes: ciphertext under a random
// per-message DEK, the DEK wrapped by the versioned master key. Deletes
// tombstone the row and blank the envelope.
type RoomMessage struct {
	ent.Schema
}

// Fields of the RoomMessage.
func (RoomMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("room_message_id").
			Unique().
			Immutable(),
		field.String("room_id").
			NotEmpty().
			Immutable(),
		field.String("sender_id").
			NotEmpty().
			Immutable(),
		field.Int64("seq").
			Immutable().
			Comment("Gapless per-room sequence assigned under the room row lock"),
		field.Bytes("ciphertext").
			Optional(),
		field.Bytes("nonce").
			Optional(),
		field.Bytes("wrapped_dek").
			Optional(),
		field.Bytes("dek_nonce").
			Optional(),
		field.Int("key_version").
			Default(1).
			Comment("Master key version that wrapped the DEK"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the RoomMessage.
func (RoomMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("room", Room.Type).
			Ref("messages").
			Field("room_id").
			Unique().
			Required().
			Immutable(),
		edge.To("reactions", MessageReaction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the RoomMessage.
func (RoomMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("room_id", "seq").
			Unique(),
		index.Fields("room_id", "created_at"),
	}
}
