// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/feed"
)

// Feed is the model entity for the Feed schema.
type Feed struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// CheckIntervalSeconds holds the value of the "check_interval_seconds" field.
	CheckIntervalSeconds int `json:"check_interval_seconds,omitempty"`
	// LastCheck holds the value of the "last_check" field.
	LastCheck *time.Time `json:"last_check,omitempty"`
	// IsPolling holds the value of the "is_polling" field.
	IsPolling bool `json:"is_polling,omitempty"`
	// PollingStartedAt holds the value of the "polling_started_at" field.
	PollingStartedAt *time.Time `json:"polling_started_at,omitempty"`
	// Conditional GET cache validator from the last 200 response
	Etag *string `json:"etag,omitempty"`
	// LastModified holds the value of the "last_modified" field.
	LastModified *string `json:"last_modified,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeedQuery when eager-loading is set.
	Edges        FeedEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FeedEdges holds the relations/edges for other nodes in the graph.
type FeedEdges struct {
	// Articles holds the value of the articles edge.
	Articles []*FeedArticle `json:"articles,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArticlesOrErr returns the Articles value or an error if the edge
// was not loaded in eager-loading.
func (e FeedEdges) ArticlesOrErr() ([]*FeedArticle, error) {
	if e.loadedTypes[0] {
		return e.Articles, nil
	}
	return nil, &NotLoadedError{edge: "articles"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Feed) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feed.FieldIsPolling:
			values[i] = new(sql.NullBool)
		case feed.FieldCheckIntervalSeconds, feed.FieldConsecutiveFailures:
			values[i] = new(sql.NullInt64)
		case feed.FieldID, feed.FieldURL, feed.FieldTitle, feed.FieldEtag, feed.FieldLastModified, feed.FieldLastError:
			values[i] = new(sql.NullString)
		case feed.FieldLastCheck, feed.FieldPollingStartedAt, feed.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Feed fields.
func (_m *Feed) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feed.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case feed.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case feed.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case feed.FieldCheckIntervalSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field check_interval_seconds", values[i])
			} else if value.Valid {
				_m.CheckIntervalSeconds = int(value.Int64)
			}
		case feed.FieldLastCheck:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_check", values[i])
			} else if value.Valid {
				_m.LastCheck = new(time.Time)
				*_m.LastCheck = value.Time
			}
		case feed.FieldIsPolling:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_polling", values[i])
			} else if value.Valid {
				_m.IsPolling = value.Bool
			}
		case feed.FieldPollingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field polling_started_at", values[i])
			} else if value.Valid {
				_m.PollingStartedAt = new(time.Time)
				*_m.PollingStartedAt = value.Time
			}
		case feed.FieldEtag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field etag", values[i])
			} else if value.Valid {
				_m.Etag = new(string)
				*_m.Etag = value.String
			}
		case feed.FieldLastModified:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_modified", values[i])
			} else if value.Valid {
				_m.LastModified = new(string)
				*_m.LastModified = value.String
			}
		case feed.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case feed.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case feed.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Feed.
// This includes values selected through modifiers, order, etc.
func (_m *Feed) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArticles queries the "articles" edge of the Feed entity.
func (_m *Feed) QueryArticles() *FeedArticleQuery {
	return NewFeedClient(_m.config).QueryArticles(_m)
}

// Update returns a builder for updating this Feed.
// Note that you need to call Feed.Unwrap() before calling this method if this Feed
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Feed) Update() *FeedUpdateOne {
	return NewFeedClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Feed entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Feed) Unwrap() *Feed {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Feed is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Feed) String() string {
	var builder strings.Builder
	builder.WriteString("Feed(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("check_interval_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.CheckIntervalSeconds))
	builder.WriteString(", ")
	if v := _m.LastCheck; v != nil {
		builder.WriteString("last_check=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_polling=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPolling))
	builder.WriteString(", ")
	if v := _m.PollingStartedAt; v != nil {
		builder.WriteString("polling_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Etag; v != nil {
		builder.WriteString("etag=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastModified; v != nil {
		builder.WriteString("last_modified=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Feeds is a parsable slice of Feed.
type Feeds []*Feed
