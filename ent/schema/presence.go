package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Presence holds the schema definition for the Presence entity. One row
// per user; the reaper pipeline demotes rows whose last_seen_at went
// stale rather than deleting them.
type Presence struct {
	ent.Schema
}

// Fields of the Presence.
func (Presence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("presence_id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Enum("status").
			Values("online", "away", "offline").
			Default("offline"),
		field.Time("last_seen_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Presence.
func (Presence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "last_seen_at"),
	}
}
