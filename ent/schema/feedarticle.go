package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedArticle holds the schema definition for the FeedArticle entity.
// content_hash dedupes items whose guid or url churns across fetches.
type FeedArticle struct {
	ent.Schema
}

// Fields of the FeedArticle.
func (FeedArticle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feed_article_id").
			Unique().
			Immutable(),
		field.String("feed_id").
			NotEmpty().
			Immutable(),
		field.String("guid").
			Optional().
			Nillable(),
		field.String("title").
			NotEmpty(),
		field.String("url").
			NotEmpty(),
		field.Text("content").
			Optional(),
		field.Text("summary").
			Optional(),
		field.String("author").
			Optional().
			Nillable(),
		field.String("content_hash").
			NotEmpty().
			Immutable().
			Comment("SHA-256 over normalized title, url, and body"),
		field.Bool("enriched").
			Default(false).
			Comment("Set once readability extraction replaced the feed excerpt"),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the FeedArticle.
func (FeedArticle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("feed", Feed.Type).
			Ref("articles").
			Field("feed_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FeedArticle.
func (FeedArticle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("feed_id", "content_hash").
			Unique(),
		index.Fields("feed_id", "published_at"),
	}
}
