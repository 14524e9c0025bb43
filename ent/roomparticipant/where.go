// Code generated by ent, DO NOT EDIT.

package roomparticipant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldContainsFold(FieldID, id))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldRoomID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldUserID, v))
}

// LastReadSeq applies equality check predicate on the "last_read_seq" field. It's identical to LastReadSeqEQ.
func LastReadSeq(v int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldLastReadSeq, v))
}

// LastReadAt applies equality check predicate on the "last_read_at" field. It's identical to LastReadAtEQ.
func LastReadAt(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldLastReadAt, v))
}

// JoinedAt applies equality check predicate on the "joined_at" field. It's identical to JoinedAtEQ.
func JoinedAt(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldJoinedAt, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldContainsFold(FieldRoomID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldContainsFold(FieldUserID, v))
}

// LastReadSeqEQ applies the EQ predicate on the "last_read_seq" field.
func LastReadSeqEQ(v int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldLastReadSeq, v))
}

// LastReadSeqNEQ applies the NEQ predicate on the "last_read_seq" field.
func LastReadSeqNEQ(v int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNEQ(FieldLastReadSeq, v))
}

// LastReadSeqIn applies the In predicate on the "last_read_seq" field.
func LastReadSeqIn(vs ...int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldIn(FieldLastReadSeq, vs...))
}

// LastReadSeqNotIn applies the NotIn predicate on the "last_read_seq" field.
func LastReadSeqNotIn(vs ...int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNotIn(FieldLastReadSeq, vs...))
}

// LastReadSeqGT applies the GT predicate on the "last_read_seq" field.
func LastReadSeqGT(v int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGT(FieldLastReadSeq, v))
}

// LastReadSeqGTE applies the GTE predicate on the "last_read_seq" field.
func LastReadSeqGTE(v int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGTE(FieldLastReadSeq, v))
}

// LastReadSeqLT applies the LT predicate on the "last_read_seq" field.
func LastReadSeqLT(v int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLT(FieldLastReadSeq, v))
}

// LastReadSeqLTE applies the LTE predicate on the "last_read_seq" field.
func LastReadSeqLTE(v int64) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLTE(FieldLastReadSeq, v))
}

// LastReadAtEQ applies the EQ predicate on the "last_read_at" field.
func LastReadAtEQ(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldLastReadAt, v))
}

// LastReadAtNEQ applies the NEQ predicate on the "last_read_at" field.
func LastReadAtNEQ(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNEQ(FieldLastReadAt, v))
}

// LastReadAtIn applies the In predicate on the "last_read_at" field.
func LastReadAtIn(vs ...time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldIn(FieldLastReadAt, vs...))
}

// LastReadAtNotIn applies the NotIn predicate on the "last_read_at" field.
func LastReadAtNotIn(vs ...time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNotIn(FieldLastReadAt, vs...))
}

// LastReadAtGT applies the GT predicate on the "last_read_at" field.
func LastReadAtGT(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGT(FieldLastReadAt, v))
}

// LastReadAtGTE applies the GTE predicate on the "last_read_at" field.
func LastReadAtGTE(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGTE(FieldLastReadAt, v))
}

// LastReadAtLT applies the LT predicate on the "last_read_at" field.
func LastReadAtLT(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLT(FieldLastReadAt, v))
}

// LastReadAtLTE applies the LTE predicate on the "last_read_at" field.
func LastReadAtLTE(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLTE(FieldLastReadAt, v))
}

// LastReadAtIsNil applies the IsNil predicate on the "last_read_at" field.
func LastReadAtIsNil() predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldIsNull(FieldLastReadAt))
}

// LastReadAtNotNil applies the NotNil predicate on the "last_read_at" field.
func LastReadAtNotNil() predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNotNull(FieldLastReadAt))
}

// JoinedAtEQ applies the EQ predicate on the "joined_at" field.
func JoinedAtEQ(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldEQ(FieldJoinedAt, v))
}

// JoinedAtNEQ applies the NEQ predicate on the "joined_at" field.
func JoinedAtNEQ(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNEQ(FieldJoinedAt, v))
}

// JoinedAtIn applies the In predicate on the "joined_at" field.
func JoinedAtIn(vs ...time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldIn(FieldJoinedAt, vs...))
}

// JoinedAtNotIn applies the NotIn predicate on the "joined_at" field.
func JoinedAtNotIn(vs ...time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldNotIn(FieldJoinedAt, vs...))
}

// JoinedAtGT applies the GT predicate on the "joined_at" field.
func JoinedAtGT(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGT(FieldJoinedAt, v))
}

// JoinedAtGTE applies the GTE predicate on the "joined_at" field.
func JoinedAtGTE(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldGTE(FieldJoinedAt, v))
}

// JoinedAtLT applies the LT predicate on the "joined_at" field.
func JoinedAtLT(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLT(FieldJoinedAt, v))
}

// JoinedAtLTE applies the LTE predicate on the "joined_at" field.
func JoinedAtLTE(v time.Time) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.FieldLTE(FieldJoinedAt, v))
}

// HasRoom applies the HasEdge predicate on the "room" edge.
func HasRoom() predicate.RoomParticipant {
	return predicate.RoomParticipant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoomWith applies the HasEdge predicate on the "room" edge with a given conditions (other predicates).
func HasRoomWith(preds ...predicate.Room) predicate.RoomParticipant {
	return predicate.RoomParticipant(func(s *sql.Selector) {
		step := newRoomStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoomParticipant) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoomParticipant) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoomParticipant) predicate.RoomParticipant {
	return predicate.RoomParticipant(sql.NotPredicates(p))
}
