package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Room holds the schema definition for the Room entity. last_seq is the
// per-room message sequence counter; it is read and bumped under the
// room row lock so message sequence numbers are gapless and monotonic.
type Room struct {
	ent.Schema
}

// Fields of the Room.
func (Room) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("room_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("created_by").
			NotEmpty().
			Immutable(),
		field.Int64("last_seq").
			Default(0),
		field.Time("last_message_at").
			Optional().
			Nillable().
			Comment("Monotonic clamp floor for message timestamps in this room"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Room.
func (Room) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("participants", RoomParticipant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", RoomMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
