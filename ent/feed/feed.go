// Code generated by ent, DO NOT EDIT.

package feed

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the feed type in the database.
	Label = "feed"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "feed_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldCheckIntervalSeconds holds the string denoting the check_interval_seconds field in the database.
	FieldCheckIntervalSeconds = "check_interval_seconds"
	// FieldLastCheck holds the string denoting the last_check field in the database.
	FieldLastCheck = "last_check"
	// FieldIsPolling holds the string denoting the is_polling field in the database.
	FieldIsPolling = "is_polling"
	// FieldPollingStartedAt holds the string denoting the polling_started_at field in the database.
	FieldPollingStartedAt = "polling_started_at"
	// FieldEtag holds the string denoting the etag field in the database.
	FieldEtag = "etag"
	// FieldLastModified holds the string denoting the last_modified field in the database.
	FieldLastModified = "last_modified"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldConsecutiveFailures holds the string denoting the consecutive_failures field in the database.
	FieldConsecutiveFailures = "consecutive_failures"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeArticles holds the string denoting the articles edge name in mutations.
	EdgeArticles = "articles"
	// FeedArticleFieldID holds the string denoting the ID field of the FeedArticle.
	FeedArticleFieldID = "feed_article_id"
	// Table holds the table name of the feed in the database.
	Table = "feeds"
	// ArticlesTable is the table that holds the articles relation/edge.
	ArticlesTable = "feed_articles"
	// ArticlesInverseTable is the table name for the FeedArticle entity.
	// It exists in this package in order to avoid circular dependency with the "feedarticle" package.
	ArticlesInverseTable = "feed_articles"
	// ArticlesColumn is the table column denoting the articles relation/edge.
	ArticlesColumn = "feed_id"
)

// Columns holds all SQL columns for feed fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldTitle,
	FieldCheckIntervalSeconds,
	FieldLastCheck,
	FieldIsPolling,
	FieldPollingStartedAt,
	FieldEtag,
	FieldLastModified,
	FieldLastError,
	FieldConsecutiveFailures,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// DefaultCheckIntervalSeconds holds the default value on creation for the "check_interval_seconds" field.
	DefaultCheckIntervalSeconds int
	// DefaultIsPolling holds the default value on creation for the "is_polling" field.
	DefaultIsPolling bool
	// DefaultConsecutiveFailures holds the default value on creation for the "consecutive_failures" field.
	DefaultConsecutiveFailures int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Feed queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByCheckIntervalSeconds orders the results by the check_interval_seconds field.
func ByCheckIntervalSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckIntervalSeconds, opts...).ToFunc()
}

// ByLastCheck orders the results by the last_check field.
func ByLastCheck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCheck, opts...).ToFunc()
}

// ByIsPolling orders the results by the is_polling field.
func ByIsPolling(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPolling, opts...).ToFunc()
}

// ByPollingStartedAt orders the results by the polling_started_at field.
func ByPollingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPollingStartedAt, opts...).ToFunc()
}

// ByEtag orders the results by the etag field.
func ByEtag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtag, opts...).ToFunc()
}

// ByLastModified orders the results by the last_modified field.
func ByLastModified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastModified, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByConsecutiveFailures orders the results by the consecutive_failures field.
func ByConsecutiveFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveFailures, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByArticlesCount orders the results by articles count.
func ByArticlesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArticlesStep(), opts...)
	}
}

// ByArticles orders the results by articles terms.
func ByArticles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArticlesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newArticlesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArticlesInverseTable, FeedArticleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArticlesTable, ArticlesColumn),
	)
}
