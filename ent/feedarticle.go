// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/feed"
	"github.com/scriptor-ai/scriptor/ent/feedarticle"
)

// FeedArticle is the model entity for the FeedArticle schema.
type FeedArticle struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FeedID holds the value of the "feed_id" field.
	FeedID string `json:"feed_id,omitempty"`
	// GUID holds the value of the "guid" field.
	GUID *string `json:"guid,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Author holds the value of the "author" field.
	Author *string `json:"author,omitempty"`
	// SHA-256 over normalized title, url, and body
	ContentHash string `json:"content_hash,omitempty"`
	// Set once readability extraction replaced the feed excerpt
	Enriched bool `json:"enriched,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeedArticleQuery when eager-loading is set.
	Edges        FeedArticleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FeedArticleEdges holds the relations/edges for other nodes in the graph.
type FeedArticleEdges struct {
	// Feed holds the value of the feed edge.
	Feed *Feed `json:"feed,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FeedOrErr returns the Feed value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeedArticleEdges) FeedOrErr() (*Feed, error) {
	if e.Feed != nil {
		return e.Feed, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: feed.Label}
	}
	return nil, &NotLoadedError{edge: "feed"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeedArticle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feedarticle.FieldEnriched:
			values[i] = new(sql.NullBool)
		case feedarticle.FieldID, feedarticle.FieldFeedID, feedarticle.FieldGUID, feedarticle.FieldTitle, feedarticle.FieldURL, feedarticle.FieldContent, feedarticle.FieldSummary, feedarticle.FieldAuthor, feedarticle.FieldContentHash:
			values[i] = new(sql.NullString)
		case feedarticle.FieldPublishedAt, feedarticle.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeedArticle fields.
func (_m *FeedArticle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feedarticle.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case feedarticle.FieldFeedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feed_id", values[i])
			} else if value.Valid {
				_m.FeedID = value.String
			}
		case feedarticle.FieldGUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guid", values[i])
			} else if value.Valid {
				_m.GUID = new(string)
				*_m.GUID = value.String
			}
		case feedarticle.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case feedarticle.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case feedarticle.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case feedarticle.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case feedarticle.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case feedarticle.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case feedarticle.FieldEnriched:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enriched", values[i])
			} else if value.Valid {
				_m.Enriched = value.Bool
			}
		case feedarticle.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case feedarticle.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FeedArticle.
// This includes values selected through modifiers, order, etc.
func (_m *FeedArticle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFeed queries the "feed" edge of the FeedArticle entity.
func (_m *FeedArticle) QueryFeed() *FeedQuery {
	return NewFeedArticleClient(_m.config).QueryFeed(_m)
}

// Update returns a builder for updating this FeedArticle.
// Note that you need to call FeedArticle.Unwrap() before calling this method if this FeedArticle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeedArticle) Update() *FeedArticleUpdateOne {
	return NewFeedArticleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeedArticle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeedArticle) Unwrap() *FeedArticle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeedArticle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeedArticle) String() string {
	var builder strings.Builder
	builder.WriteString("FeedArticle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("feed_id=")
	builder.WriteString(_m.FeedID)
	builder.WriteString(", ")
	if v := _m.GUID; v != nil {
		builder.WriteString("guid=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("enriched=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enriched))
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FeedArticles is a parsable slice of FeedArticle.
type FeedArticles []*FeedArticle
