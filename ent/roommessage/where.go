// Code generated by ent, DO NOT EDIT.

package roommessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldContainsFold(FieldID, id))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldRoomID, v))
}

// SenderID applies equality check predicate on the "sender_id" field. It's identical to SenderIDEQ.
func SenderID(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldSenderID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldSeq, v))
}

// Ciphertext applies equality check predicate on the "ciphertext" field. It's identical to CiphertextEQ.
func Ciphertext(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldCiphertext, v))
}

// Nonce applies equality check predicate on the "nonce" field. It's identical to NonceEQ.
func Nonce(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldNonce, v))
}

// WrappedDek applies equality check predicate on the "wrapped_dek" field. It's identical to WrappedDekEQ.
func WrappedDek(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldWrappedDek, v))
}

// DekNonce applies equality check predicate on the "dek_nonce" field. It's identical to DekNonceEQ.
func DekNonce(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldDekNonce, v))
}

// KeyVersion applies equality check predicate on the "key_version" field. It's identical to KeyVersionEQ.
func KeyVersion(v int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldKeyVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldDeletedAt, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldContainsFold(FieldRoomID, v))
}

// SenderIDEQ applies the EQ predicate on the "sender_id" field.
func SenderIDEQ(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldSenderID, v))
}

// SenderIDNEQ applies the NEQ predicate on the "sender_id" field.
func SenderIDNEQ(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldSenderID, v))
}

// SenderIDIn applies the In predicate on the "sender_id" field.
func SenderIDIn(vs ...string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldSenderID, vs...))
}

// SenderIDNotIn applies the NotIn predicate on the "sender_id" field.
func SenderIDNotIn(vs ...string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldSenderID, vs...))
}

// SenderIDGT applies the GT predicate on the "sender_id" field.
func SenderIDGT(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldSenderID, v))
}

// SenderIDGTE applies the GTE predicate on the "sender_id" field.
func SenderIDGTE(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldSenderID, v))
}

// SenderIDLT applies the LT predicate on the "sender_id" field.
func SenderIDLT(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldSenderID, v))
}

// SenderIDLTE applies the LTE predicate on the "sender_id" field.
func SenderIDLTE(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldSenderID, v))
}

// SenderIDContains applies the Contains predicate on the "sender_id" field.
func SenderIDContains(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldContains(FieldSenderID, v))
}

// SenderIDHasPrefix applies the HasPrefix predicate on the "sender_id" field.
func SenderIDHasPrefix(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldHasPrefix(FieldSenderID, v))
}

// SenderIDHasSuffix applies the HasSuffix predicate on the "sender_id" field.
func SenderIDHasSuffix(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldHasSuffix(FieldSenderID, v))
}

// SenderIDEqualFold applies the EqualFold predicate on the "sender_id" field.
func SenderIDEqualFold(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEqualFold(FieldSenderID, v))
}

// SenderIDContainsFold applies the ContainsFold predicate on the "sender_id" field.
func SenderIDContainsFold(v string) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldContainsFold(FieldSenderID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldSeq, v))
}

// CiphertextEQ applies the EQ predicate on the "ciphertext" field.
func CiphertextEQ(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldCiphertext, v))
}

// CiphertextNEQ applies the NEQ predicate on the "ciphertext" field.
func CiphertextNEQ(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldCiphertext, v))
}

// CiphertextIn applies the In predicate on the "ciphertext" field.
func CiphertextIn(vs ...[]byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldCiphertext, vs...))
}

// CiphertextNotIn applies the NotIn predicate on the "ciphertext" field.
func CiphertextNotIn(vs ...[]byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldCiphertext, vs...))
}

// CiphertextGT applies the GT predicate on the "ciphertext" field.
func CiphertextGT(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldCiphertext, v))
}

// CiphertextGTE applies the GTE predicate on the "ciphertext" field.
func CiphertextGTE(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldCiphertext, v))
}

// CiphertextLT applies the LT predicate on the "ciphertext" field.
func CiphertextLT(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldCiphertext, v))
}

// CiphertextLTE applies the LTE predicate on the "ciphertext" field.
func CiphertextLTE(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldCiphertext, v))
}

// CiphertextIsNil applies the IsNil predicate on the "ciphertext" field.
func CiphertextIsNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIsNull(FieldCiphertext))
}

// CiphertextNotNil applies the NotNil predicate on the "ciphertext" field.
func CiphertextNotNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotNull(FieldCiphertext))
}

// NonceEQ applies the EQ predicate on the "nonce" field.
func NonceEQ(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldNonce, v))
}

// NonceNEQ applies the NEQ predicate on the "nonce" field.
func NonceNEQ(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldNonce, v))
}

// NonceIn applies the In predicate on the "nonce" field.
func NonceIn(vs ...[]byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldNonce, vs...))
}

// NonceNotIn applies the NotIn predicate on the "nonce" field.
func NonceNotIn(vs ...[]byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldNonce, vs...))
}

// NonceGT applies the GT predicate on the "nonce" field.
func NonceGT(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldNonce, v))
}

// NonceGTE applies the GTE predicate on the "nonce" field.
func NonceGTE(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldNonce, v))
}

// NonceLT applies the LT predicate on the "nonce" field.
func NonceLT(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldNonce, v))
}

// NonceLTE applies the LTE predicate on the "nonce" field.
func NonceLTE(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldNonce, v))
}

// NonceIsNil applies the IsNil predicate on the "nonce" field.
func NonceIsNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIsNull(FieldNonce))
}

// NonceNotNil applies the NotNil predicate on the "nonce" field.
func NonceNotNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotNull(FieldNonce))
}

// WrappedDekEQ applies the EQ predicate on the "wrapped_dek" field.
func WrappedDekEQ(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldWrappedDek, v))
}

// WrappedDekNEQ applies the NEQ predicate on the "wrapped_dek" field.
func WrappedDekNEQ(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldWrappedDek, v))
}

// WrappedDekIn applies the In predicate on the "wrapped_dek" field.
func WrappedDekIn(vs ...[]byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldWrappedDek, vs...))
}

// WrappedDekNotIn applies the NotIn predicate on the "wrapped_dek" field.
func WrappedDekNotIn(vs ...[]byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldWrappedDek, vs...))
}

// WrappedDekGT applies the GT predicate on the "wrapped_dek" field.
func WrappedDekGT(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldWrappedDek, v))
}

// WrappedDekGTE applies the GTE predicate on the "wrapped_dek" field.
func WrappedDekGTE(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldWrappedDek, v))
}

// WrappedDekLT applies the LT predicate on the "wrapped_dek" field.
func WrappedDekLT(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldWrappedDek, v))
}

// WrappedDekLTE applies the LTE predicate on the "wrapped_dek" field.
func WrappedDekLTE(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldWrappedDek, v))
}

// WrappedDekIsNil applies the IsNil predicate on the "wrapped_dek" field.
func WrappedDekIsNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIsNull(FieldWrappedDek))
}

// WrappedDekNotNil applies the NotNil predicate on the "wrapped_dek" field.
func WrappedDekNotNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotNull(FieldWrappedDek))
}

// DekNonceEQ applies the EQ predicate on the "dek_nonce" field.
func DekNonceEQ(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldDekNonce, v))
}

// DekNonceNEQ applies the NEQ predicate on the "dek_nonce" field.
func DekNonceNEQ(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldDekNonce, v))
}

// DekNonceIn applies the In predicate on the "dek_nonce" field.
func DekNonceIn(vs ...[]byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldDekNonce, vs...))
}

// DekNonceNotIn applies the NotIn predicate on the "dek_nonce" field.
func DekNonceNotIn(vs ...[]byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldDekNonce, vs...))
}

// DekNonceGT applies the GT predicate on the "dek_nonce" field.
func DekNonceGT(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldDekNonce, v))
}

// DekNonceGTE applies the GTE predicate on the "dek_nonce" field.
func DekNonceGTE(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldDekNonce, v))
}

// DekNonceLT applies the LT predicate on the "dek_nonce" field.
func DekNonceLT(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldDekNonce, v))
}

// DekNonceLTE applies the LTE predicate on the "dek_nonce" field.
func DekNonceLTE(v []byte) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldDekNonce, v))
}

// DekNonceIsNil applies the IsNil predicate on the "dek_nonce" field.
func DekNonceIsNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIsNull(FieldDekNonce))
}

// DekNonceNotNil applies the NotNil predicate on the "dek_nonce" field.
func DekNonceNotNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotNull(FieldDekNonce))
}

// KeyVersionEQ applies the EQ predicate on the "key_version" field.
func KeyVersionEQ(v int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldKeyVersion, v))
}

// KeyVersionNEQ applies the NEQ predicate on the "key_version" field.
func KeyVersionNEQ(v int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldKeyVersion, v))
}

// KeyVersionIn applies the In predicate on the "key_version" field.
func KeyVersionIn(vs ...int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldKeyVersion, vs...))
}

// KeyVersionNotIn applies the NotIn predicate on the "key_version" field.
func KeyVersionNotIn(vs ...int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldKeyVersion, vs...))
}

// KeyVersionGT applies the GT predicate on the "key_version" field.
func KeyVersionGT(v int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldKeyVersion, v))
}

// KeyVersionGTE applies the GTE predicate on the "key_version" field.
func KeyVersionGTE(v int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldKeyVersion, v))
}

// KeyVersionLT applies the LT predicate on the "key_version" field.
func KeyVersionLT(v int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldKeyVersion, v))
}

// KeyVersionLTE applies the LTE predicate on the "key_version" field.
func KeyVersionLTE(v int) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldKeyVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.RoomMessage {
	return predicate.RoomMessage(sql.FieldNotNull(FieldDeletedAt))
}

// HasRoom applies the HasEdge predicate on the "room" edge.
func HasRoom() predicate.RoomMessage {
	return predicate.RoomMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoomWith applies the HasEdge predicate on the "room" edge with a given conditions (other predicates).
func HasRoomWith(preds ...predicate.Room) predicate.RoomMessage {
	return predicate.RoomMessage(func(s *sql.Selector) {
		step := newRoomStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReactions applies the HasEdge predicate on the "reactions" edge.
func HasReactions() predicate.RoomMessage {
	return predicate.RoomMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReactionsTable, ReactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReactionsWith applies the HasEdge predicate on the "reactions" edge with a given conditions (other predicates).
func HasReactionsWith(preds ...predicate.MessageReaction) predicate.RoomMessage {
	return predicate.RoomMessage(func(s *sql.Selector) {
		step := newReactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoomMessage) predicate.RoomMessage {
	return predicate.RoomMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoomMessage) predicate.RoomMessage {
	return predicate.RoomMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoomMessage) predicate.RoomMessage {
	return predicate.RoomMessage(sql.NotPredicates(p))
}
