// Code generated by ent, DO NOT EDIT.

package roomparticipant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the roomparticipant type in the database.
	Label = "room_participant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "room_participant_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLastReadSeq holds the string denoting the last_read_seq field in the database.
	FieldLastReadSeq = "last_read_seq"
	// FieldLastReadAt holds the string denoting the last_read_at field in the database.
	FieldLastReadAt = "last_read_at"
	// FieldJoinedAt holds the string denoting the joined_at field in the database.
	FieldJoinedAt = "joined_at"
	// EdgeRoom holds the string denoting the room edge name in mutations.
	EdgeRoom = "room"
	// RoomFieldID holds the string denoting the ID field of the Room.
	RoomFieldID = "room_id"
	// Table holds the table name of the roomparticipant in the database.
	Table = "room_participants"
	// RoomTable is the table that holds the room relation/edge.
	RoomTable = "room_participants"
	// RoomInverseTable is the table name for the Room entity.
	// It exists in this package in order to avoid circular dependency with the "room" package.
	RoomInverseTable = "rooms"
	// RoomColumn is the table column denoting the room relation/edge.
	RoomColumn = "room_id"
)

// Columns holds all SQL columns for roomparticipant fields.
var Columns = []string{
	FieldID,
	FieldRoomID,
	FieldUserID,
	FieldLastReadSeq,
	FieldLastReadAt,
	FieldJoinedAt,
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
	// RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	RoomIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultLastReadSeq holds the default value on creation for the "last_read_seq" field.
	DefaultLastReadSeq int64
	// DefaultJoinedAt holds the default value on creation for the "joined_at" field.
	DefaultJoinedAt func() time.Time
)

// OrderOption defines the ordering options for the RoomParticipant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLastReadSeq orders the results by the last_read_seq field.
func ByLastReadSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReadSeq, opts...).ToFunc()
}

// ByLastReadAt orders the results by the last_read_at field.
func ByLastReadAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReadAt, opts...).ToFunc()
}

// ByJoinedAt orders the results by the joined_at field.
func ByJoinedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinedAt, opts...).ToFunc()
}

// ByRoomField orders the results by room field.
func ByRoomField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoomStep(), sql.OrderByField(field, opts...))
	}
}
func newRoomStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoomInverseTable, RoomFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
	)
}
