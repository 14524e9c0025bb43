package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity. Events are
// written and notified in the same transaction by the publisher; the
// serial id is the catchup cursor handed to reconnecting subscribers.
// Kept minimal on purpose: the payload is an opaque JSON document.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			NotEmpty().
			Immutable().
			Comment("Logical stream name, e.g. workflow:<id> or rooms:<id>"),
		field.Text("payload").
			Immutable().
			Comment("JSON-encoded event envelope"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// The catchup cursor index (channel, id) is created by raw SQL in
		// pkg/database since ent cannot reference the implicit id column.
		index.Fields("channel", "created_at"),
	}
}
