package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoomParticipant holds the schema definition for the RoomParticipant
// entity. The read marker lives here: last_read_seq against the room
// sequence gives the unread count without scanning messages.
type RoomParticipant struct {
	ent.Schema
}

// Fields of the RoomParticipant.
func (RoomParticipant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("room_participant_id").
			Unique().
			Immutable(),
		field.String("room_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int64("last_read_seq").
			Default(0),
		field.Time("last_read_at").
			Optional().
			Nillable(),
		field.Time("joined_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RoomParticipant.
func (RoomParticipant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("room", Room.Type).
			Ref("participants").
			Field("room_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RoomParticipant.
func (RoomParticipant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("room_id", "user_id").
			Unique(),
		index.Fields("user_id"),
	}
}
