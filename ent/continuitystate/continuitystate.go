// Code generated by ent, DO NOT EDIT.

package continuitystate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the continuitystate type in the database.
	Label = "continuity_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "continuity_state_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldManuscriptFilename holds the string denoting the manuscript_filename field in the database.
	FieldManuscriptFilename = "manuscript_filename"
	// FieldLastAnalyzedChapter holds the string denoting the last_analyzed_chapter field in the database.
	FieldLastAnalyzedChapter = "last_analyzed_chapter"
	// FieldCharacterStates holds the string denoting the character_states field in the database.
	FieldCharacterStates = "character_states"
	// FieldPlotThreads holds the string denoting the plot_threads field in the database.
	FieldPlotThreads = "plot_threads"
	// FieldTimeline holds the string denoting the timeline field in the database.
	FieldTimeline = "timeline"
	// FieldWorldStateChanges holds the string denoting the world_state_changes field in the database.
	FieldWorldStateChanges = "world_state_changes"
	// FieldUnresolvedTensions holds the string denoting the unresolved_tensions field in the database.
	FieldUnresolvedTensions = "unresolved_tensions"
	// FieldCurrentChapterSummary holds the string denoting the current_chapter_summary field in the database.
	FieldCurrentChapterSummary = "current_chapter_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the continuitystate in the database.
	Table = "continuity_states"
)

// Columns holds all SQL columns for continuitystate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldManuscriptFilename,
	FieldLastAnalyzedChapter,
	FieldCharacterStates,
	FieldPlotThreads,
	FieldTimeline,
	FieldWorldStateChanges,
	FieldUnresolvedTensions,
	FieldCurrentChapterSummary,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ManuscriptFilenameValidator is a validator for the "manuscript_filename" field. It is called by the builders before save.
	ManuscriptFilenameValidator func(string) error
	// DefaultLastAnalyzedChapter holds the default value on creation for the "last_analyzed_chapter" field.
	DefaultLastAnalyzedChapter int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ContinuityState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByManuscriptFilename orders the results by the manuscript_filename field.
func ByManuscriptFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManuscriptFilename, opts...).ToFunc()
}

// ByLastAnalyzedChapter orders the results by the last_analyzed_chapter field.
func ByLastAnalyzedChapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAnalyzedChapter, opts...).ToFunc()
}

// ByCurrentChapterSummary orders the results by the current_chapter_summary field.
func ByCurrentChapterSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentChapterSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
