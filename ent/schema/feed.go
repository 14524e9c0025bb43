package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feed holds the schema definition for the Feed entity. The is_polling
// flag is the cross-pod claim: a poller atomically flips it before
// fetching and releases it in a defer, and the watchdog clears claims
// whose polling_started_at is stale.
type Feed struct {
	ent.Schema
}

// Fields of the Feed.
func (Feed) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feed_id").
			Unique().
			Immutable(),
		field.String("url").
			NotEmpty().
			Unique(),
		field.String("title").
			Optional().
			Nillable(),
		field.Int("check_interval_seconds").
			Default(1800),
		field.Time("last_check").
			Optional().
			Nillable(),
		field.Bool("is_polling").
			Default(false),
		field.Time("polling_started_at").
			Optional().
			Nillable(),
		field.String("etag").
			Optional().
			Nillable().
			Comment("Conditional GET cache validator from the last 200 response"),
		field.String("last_modified").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Int("consecutive_failures").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Feed.
func (Feed) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("articles", FeedArticle.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Feed.
func (Feed) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_polling", "last_check"),
	}
}
