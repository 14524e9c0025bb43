// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/room"
	"github.com/scriptor-ai/scriptor/ent/roomparticipant"
)

// RoomParticipant is the model entity for the RoomParticipant schema.
type RoomParticipant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID string `json:"room_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// LastReadSeq holds the value of the "last_read_seq" field.
	LastReadSeq int64 `json:"last_read_seq,omitempty"`
	// LastReadAt holds the value of the "last_read_at" field.
	LastReadAt *time.Time `json:"last_read_at,omitempty"`
	// JoinedAt holds the value of the "joined_at" field.
	JoinedAt time.Time `json:"joined_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoomParticipantQuery when eager-loading is set.
	Edges        RoomParticipantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoomParticipantEdges holds the relations/edges for other nodes in the graph.
type RoomParticipantEdges struct {
	// Room holds the value of the room edge.
	Room *Room `json:"room,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RoomOrErr returns the Room value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoomParticipantEdges) RoomOrErr() (*Room, error) {
	if e.Room != nil {
		return e.Room, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: room.Label}
	}
	return nil, &NotLoadedError{edge: "room"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoomParticipant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roomparticipant.FieldLastReadSeq:
			values[i] = new(sql.NullInt64)
		case roomparticipant.FieldID, roomparticipant.FieldRoomID, roomparticipant.FieldUserID:
			values[i] = new(sql.NullString)
		case roomparticipant.FieldLastReadAt, roomparticipant.FieldJoinedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoomParticipant fields.
func (_m *RoomParticipant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roomparticipant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case roomparticipant.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = value.String
			}
		case roomparticipant.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case roomparticipant.FieldLastReadSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_read_seq", values[i])
			} else if value.Valid {
				_m.LastReadSeq = value.Int64
			}
		case roomparticipant.FieldLastReadAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_read_at", values[i])
			} else if value.Valid {
				_m.LastReadAt = new(time.Time)
				*_m.LastReadAt = value.Time
			}
		case roomparticipant.FieldJoinedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field joined_at", values[i])
			} else if value.Valid {
				_m.JoinedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoomParticipant.
// This includes values selected through modifiers, order, etc.
func (_m *RoomParticipant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRoom queries the "room" edge of the RoomParticipant entity.
func (_m *RoomParticipant) QueryRoom() *RoomQuery {
	return NewRoomParticipantClient(_m.config).QueryRoom(_m)
}

// Update returns a builder for updating this RoomParticipant.
// Note that you need to call RoomParticipant.Unwrap() before calling this method if this RoomParticipant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoomParticipant) Update() *RoomParticipantUpdateOne {
	return NewRoomParticipantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoomParticipant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoomParticipant) Unwrap() *RoomParticipant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoomParticipant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoomParticipant) String() string {
	var builder strings.Builder
	builder.WriteString("RoomParticipant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("room_id=")
	builder.WriteString(_m.RoomID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("last_read_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastReadSeq))
	builder.WriteString(", ")
	if v := _m.LastReadAt; v != nil {
		builder.WriteString("last_read_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("joined_at=")
	builder.WriteString(_m.JoinedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoomParticipants is a parsable slice of RoomParticipant.
type RoomParticipants []*RoomParticipant
