// Code generated by ent, DO NOT EDIT.

package feed

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldTitle, v))
}

// CheckIntervalSeconds applies equality check predicate on the "check_interval_seconds" field. It's identical to CheckIntervalSecondsEQ.
func CheckIntervalSeconds(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldCheckIntervalSeconds, v))
}

// LastCheck applies equality check predicate on the "last_check" field. It's identical to LastCheckEQ.
func LastCheck(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastCheck, v))
}

// IsPolling applies equality check predicate on the "is_polling" field. It's identical to IsPollingEQ.
func IsPolling(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldIsPolling, v))
}

// PollingStartedAt applies equality check predicate on the "polling_started_at" field. It's identical to PollingStartedAtEQ.
func PollingStartedAt(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldPollingStartedAt, v))
}

// Etag applies equality check predicate on the "etag" field. It's identical to EtagEQ.
func Etag(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldEtag, v))
}

// LastModified applies equality check predicate on the "last_modified" field. It's identical to LastModifiedEQ.
func LastModified(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastModified, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastError, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldCreatedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldTitle, v))
}

// CheckIntervalSecondsEQ applies the EQ predicate on the "check_interval_seconds" field.
func CheckIntervalSecondsEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldCheckIntervalSeconds, v))
}

// CheckIntervalSecondsNEQ applies the NEQ predicate on the "check_interval_seconds" field.
func CheckIntervalSecondsNEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldCheckIntervalSeconds, v))
}

// CheckIntervalSecondsIn applies the In predicate on the "check_interval_seconds" field.
func CheckIntervalSecondsIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldCheckIntervalSeconds, vs...))
}

// CheckIntervalSecondsNotIn applies the NotIn predicate on the "check_interval_seconds" field.
func CheckIntervalSecondsNotIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldCheckIntervalSeconds, vs...))
}

// CheckIntervalSecondsGT applies the GT predicate on the "check_interval_seconds" field.
func CheckIntervalSecondsGT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldCheckIntervalSeconds, v))
}

// CheckIntervalSecondsGTE applies the GTE predicate on the "check_interval_seconds" field.
func CheckIntervalSecondsGTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldCheckIntervalSeconds, v))
}

// CheckIntervalSecondsLT applies the LT predicate on the "check_interval_seconds" field.
func CheckIntervalSecondsLT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldCheckIntervalSeconds, v))
}

// CheckIntervalSecondsLTE applies the LTE predicate on the "check_interval_seconds" field.
func CheckIntervalSecondsLTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldCheckIntervalSeconds, v))
}

// LastCheckEQ applies the EQ predicate on the "last_check" field.
func LastCheckEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastCheck, v))
}

// LastCheckNEQ applies the NEQ predicate on the "last_check" field.
func LastCheckNEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldLastCheck, v))
}

// LastCheckIn applies the In predicate on the "last_check" field.
func LastCheckIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldLastCheck, vs...))
}

// LastCheckNotIn applies the NotIn predicate on the "last_check" field.
func LastCheckNotIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldLastCheck, vs...))
}

// LastCheckGT applies the GT predicate on the "last_check" field.
func LastCheckGT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldLastCheck, v))
}

// LastCheckGTE applies the GTE predicate on the "last_check" field.
func LastCheckGTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldLastCheck, v))
}

// LastCheckLT applies the LT predicate on the "last_check" field.
func LastCheckLT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldLastCheck, v))
}

// LastCheckLTE applies the LTE predicate on the "last_check" field.
func LastCheckLTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldLastCheck, v))
}

// LastCheckIsNil applies the IsNil predicate on the "last_check" field.
func LastCheckIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldLastCheck))
}

// LastCheckNotNil applies the NotNil predicate on the "last_check" field.
func LastCheckNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldLastCheck))
}

// IsPollingEQ applies the EQ predicate on the "is_polling" field.
func IsPollingEQ(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldIsPolling, v))
}

// IsPollingNEQ applies the NEQ predicate on the "is_polling" field.
func IsPollingNEQ(v bool) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldIsPolling, v))
}

// PollingStartedAtEQ applies the EQ predicate on the "polling_started_at" field.
func PollingStartedAtEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldPollingStartedAt, v))
}

// PollingStartedAtNEQ applies the NEQ predicate on the "polling_started_at" field.
func PollingStartedAtNEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldPollingStartedAt, v))
}

// PollingStartedAtIn applies the In predicate on the "polling_started_at" field.
func PollingStartedAtIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldPollingStartedAt, vs...))
}

// PollingStartedAtNotIn applies the NotIn predicate on the "polling_started_at" field.
func PollingStartedAtNotIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldPollingStartedAt, vs...))
}

// PollingStartedAtGT applies the GT predicate on the "polling_started_at" field.
func PollingStartedAtGT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldPollingStartedAt, v))
}

// PollingStartedAtGTE applies the GTE predicate on the "polling_started_at" field.
func PollingStartedAtGTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldPollingStartedAt, v))
}

// PollingStartedAtLT applies the LT predicate on the "polling_started_at" field.
func PollingStartedAtLT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldPollingStartedAt, v))
}

// PollingStartedAtLTE applies the LTE predicate on the "polling_started_at" field.
func PollingStartedAtLTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldPollingStartedAt, v))
}

// PollingStartedAtIsNil applies the IsNil predicate on the "polling_started_at" field.
func PollingStartedAtIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldPollingStartedAt))
}

// PollingStartedAtNotNil applies the NotNil predicate on the "polling_started_at" field.
func PollingStartedAtNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldPollingStartedAt))
}

// EtagEQ applies the EQ predicate on the "etag" field.
func EtagEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldEtag, v))
}

// EtagNEQ applies the NEQ predicate on the "etag" field.
func EtagNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldEtag, v))
}

// EtagIn applies the In predicate on the "etag" field.
func EtagIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldEtag, vs...))
}

// EtagNotIn applies the NotIn predicate on the "etag" field.
func EtagNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldEtag, vs...))
}

// EtagGT applies the GT predicate on the "etag" field.
func EtagGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldEtag, v))
}

// EtagGTE applies the GTE predicate on the "etag" field.
func EtagGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldEtag, v))
}

// EtagLT applies the LT predicate on the "etag" field.
func EtagLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldEtag, v))
}

// EtagLTE applies the LTE predicate on the "etag" field.
func EtagLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldEtag, v))
}

// EtagContains applies the Contains predicate on the "etag" field.
func EtagContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldEtag, v))
}

// EtagHasPrefix applies the HasPrefix predicate on the "etag" field.
func EtagHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldEtag, v))
}

// EtagHasSuffix applies the HasSuffix predicate on the "etag" field.
func EtagHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldEtag, v))
}

// EtagIsNil applies the IsNil predicate on the "etag" field.
func EtagIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldEtag))
}

// EtagNotNil applies the NotNil predicate on the "etag" field.
func EtagNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldEtag))
}

// EtagEqualFold applies the EqualFold predicate on the "etag" field.
func EtagEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldEtag, v))
}

// EtagContainsFold applies the ContainsFold predicate on the "etag" field.
func EtagContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldEtag, v))
}

// LastModifiedEQ applies the EQ predicate on the "last_modified" field.
func LastModifiedEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastModified, v))
}

// LastModifiedNEQ applies the NEQ predicate on the "last_modified" field.
func LastModifiedNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldLastModified, v))
}

// LastModifiedIn applies the In predicate on the "last_modified" field.
func LastModifiedIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldLastModified, vs...))
}

// LastModifiedNotIn applies the NotIn predicate on the "last_modified" field.
func LastModifiedNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldLastModified, vs...))
}

// LastModifiedGT applies the GT predicate on the "last_modified" field.
func LastModifiedGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldLastModified, v))
}

// LastModifiedGTE applies the GTE predicate on the "last_modified" field.
func LastModifiedGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldLastModified, v))
}

// LastModifiedLT applies the LT predicate on the "last_modified" field.
func LastModifiedLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldLastModified, v))
}

// LastModifiedLTE applies the LTE predicate on the "last_modified" field.
func LastModifiedLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldLastModified, v))
}

// LastModifiedContains applies the Contains predicate on the "last_modified" field.
func LastModifiedContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldLastModified, v))
}

// LastModifiedHasPrefix applies the HasPrefix predicate on the "last_modified" field.
func LastModifiedHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldLastModified, v))
}

// LastModifiedHasSuffix applies the HasSuffix predicate on the "last_modified" field.
func LastModifiedHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldLastModified, v))
}

// LastModifiedIsNil applies the IsNil predicate on the "last_modified" field.
func LastModifiedIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldLastModified))
}

// LastModifiedNotNil applies the NotNil predicate on the "last_modified" field.
func LastModifiedNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldLastModified))
}

// LastModifiedEqualFold applies the EqualFold predicate on the "last_modified" field.
func LastModifiedEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldLastModified, v))
}

// LastModifiedContainsFold applies the ContainsFold predicate on the "last_modified" field.
func LastModifiedContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldLastModified, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Feed {
	return predicate.Feed(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Feed {
	return predicate.Feed(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Feed {
	return predicate.Feed(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Feed {
	return predicate.Feed(sql.FieldContainsFold(FieldLastError, v))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Feed {
	return predicate.Feed(sql.FieldLTE(FieldCreatedAt, v))
}

// HasArticles applies the HasEdge predicate on the "articles" edge.
func HasArticles() predicate.Feed {
	return predicate.Feed(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArticlesTable, ArticlesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArticlesWith applies the HasEdge predicate on the "articles" edge with a given conditions (other predicates).
func HasArticlesWith(preds ...predicate.FeedArticle) predicate.Feed {
	return predicate.Feed(func(s *sql.Selector) {
		step := newArticlesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Feed) predicate.Feed {
	return predicate.Feed(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Feed) predicate.Feed {
	return predicate.Feed(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Feed) predicate.Feed {
	return predicate.Feed(sql.NotPredicates(p))
}
