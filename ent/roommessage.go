// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/room"
	"github.com/scriptor-ai/scriptor/ent/roommessage"
)

// RoomMessage is the model entity for the RoomMessage schema.
type RoomMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID string `json:"room_id,omitempty"`
	// SenderID holds the value of the "sender_id" field.
	SenderID string `json:"sender_id,omitempty"`
	// Gapless per-room sequence assigned under the room row lock
	Seq int64 `json:"seq,omitempty"`
	// Ciphertext holds the value of the "ciphertext" field.
	Ciphertext []byte `json:"ciphertext,omitempty"`
	// Nonce holds the value of the "nonce" field.
	Nonce []byte `json:"nonce,omitempty"`
	// WrappedDek holds the value of the "wrapped_dek" field.
	WrappedDek []byte `json:"wrapped_dek,omitempty"`
	// DekNonce holds the value of the "dek_nonce" field.
	DekNonce []byte `json:"dek_nonce,omitempty"`
	// Master key version that wrapped the DEK
	KeyVersion int `json:"key_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoomMessageQuery when eager-loading is set.
	Edges        RoomMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoomMessageEdges holds the relations/edges for other nodes in the graph.
type RoomMessageEdges struct {
	// Room holds the value of the room edge.
	Room *Room `json:"room,omitempty"`
	// Reactions holds the value of the reactions edge.
	Reactions []*MessageReaction `json:"reactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RoomOrErr returns the Room value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoomMessageEdges) RoomOrErr() (*Room, error) {
	if e.Room != nil {
		return e.Room, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: room.Label}
	}
	return nil, &NotLoadedError{edge: "room"}
}

// ReactionsOrErr returns the Reactions value or an error if the edge
// was not loaded in eager-loading.
func (e RoomMessageEdges) ReactionsOrErr() ([]*MessageReaction, error) {
	if e.loadedTypes[1] {
		return e.Reactions, nil
	}
	return nil, &NotLoadedError{edge: "reactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoomMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roommessage.FieldCiphertext, roommessage.FieldNonce, roommessage.FieldWrappedDek, roommessage.FieldDekNonce:
			values[i] = new([]byte)
		case roommessage.FieldSeq, roommessage.FieldKeyVersion:
			values[i] = new(sql.NullInt64)
		case roommessage.FieldID, roommessage.FieldRoomID, roommessage.FieldSenderID:
			values[i] = new(sql.NullString)
		case roommessage.FieldCreatedAt, roommessage.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoomMessage fields.
func (_m *RoomMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roommessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case roommessage.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = value.String
			}
		case roommessage.FieldSenderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_id", values[i])
			} else if value.Valid {
				_m.SenderID = value.String
			}
		case roommessage.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = value.Int64
			}
		case roommessage.FieldCiphertext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ciphertext", values[i])
			} else if value != nil {
				_m.Ciphertext = *value
			}
		case roommessage.FieldNonce:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field nonce", values[i])
			} else if value != nil {
				_m.Nonce = *value
			}
		case roommessage.FieldWrappedDek:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field wrapped_dek", values[i])
			} else if value != nil {
				_m.WrappedDek = *value
			}
		case roommessage.FieldDekNonce:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dek_nonce", values[i])
			} else if value != nil {
				_m.DekNonce = *value
			}
		case roommessage.FieldKeyVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field key_version", values[i])
			} else if value.Valid {
				_m.KeyVersion = int(value.Int64)
			}
		case roommessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case roommessage.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoomMessage.
// This includes values selected through modifiers, order, etc.
func (_m *RoomMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRoom queries the "room" edge of the RoomMessage entity.
func (_m *RoomMessage) QueryRoom() *RoomQuery {
	return NewRoomMessageClient(_m.config).QueryRoom(_m)
}

// QueryReactions queries the "reactions" edge of the RoomMessage entity.
func (_m *RoomMessage) QueryReactions() *MessageReactionQuery {
	return NewRoomMessageClient(_m.config).QueryReactions(_m)
}

// Update returns a builder for updating this RoomMessage.
// Note that you need to call RoomMessage.Unwrap() before calling this method if this RoomMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoomMessage) Update() *RoomMessageUpdateOne {
	return NewRoomMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoomMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoomMessage) Unwrap() *RoomMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoomMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoomMessage) String() string {
	var builder strings.Builder
	builder.WriteString("RoomMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("room_id=")
	builder.WriteString(_m.RoomID)
	builder.WriteString(", ")
	builder.WriteString("sender_id=")
	builder.WriteString(_m.SenderID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("ciphertext=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ciphertext))
	builder.WriteString(", ")
	builder.WriteString("nonce=")
	builder.WriteString(fmt.Sprintf("%v", _m.Nonce))
	builder.WriteString(", ")
	builder.WriteString("wrapped_dek=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrappedDek))
	builder.WriteString(", ")
	builder.WriteString("dek_nonce=")
	builder.WriteString(fmt.Sprintf("%v", _m.DekNonce))
	builder.WriteString(", ")
	builder.WriteString("key_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyVersion))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RoomMessages is a parsable slice of RoomMessage.
type RoomMessages []*RoomMessage
