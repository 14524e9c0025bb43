// Code generated by ent, DO NOT EDIT.

package feedarticle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldID, id))
}

// FeedID applies equality check predicate on the "feed_id" field. It's identical to FeedIDEQ.
func FeedID(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldFeedID, v))
}

// GUID applies equality check predicate on the "guid" field. It's identical to GUIDEQ.
func GUID(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldGUID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldTitle, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldURL, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldContent, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldSummary, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldAuthor, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldContentHash, v))
}

// Enriched applies equality check predicate on the "enriched" field. It's identical to EnrichedEQ.
func Enriched(v bool) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldEnriched, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldPublishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldCreatedAt, v))
}

// FeedIDEQ applies the EQ predicate on the "feed_id" field.
func FeedIDEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldFeedID, v))
}

// FeedIDNEQ applies the NEQ predicate on the "feed_id" field.
func FeedIDNEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldFeedID, v))
}

// FeedIDIn applies the In predicate on the "feed_id" field.
func FeedIDIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldFeedID, vs...))
}

// FeedIDNotIn applies the NotIn predicate on the "feed_id" field.
func FeedIDNotIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldFeedID, vs...))
}

// FeedIDGT applies the GT predicate on the "feed_id" field.
func FeedIDGT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldFeedID, v))
}

// FeedIDGTE applies the GTE predicate on the "feed_id" field.
func FeedIDGTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldFeedID, v))
}

// FeedIDLT applies the LT predicate on the "feed_id" field.
func FeedIDLT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldFeedID, v))
}

// FeedIDLTE applies the LTE predicate on the "feed_id" field.
func FeedIDLTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldFeedID, v))
}

// FeedIDContains applies the Contains predicate on the "feed_id" field.
func FeedIDContains(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContains(FieldFeedID, v))
}

// FeedIDHasPrefix applies the HasPrefix predicate on the "feed_id" field.
func FeedIDHasPrefix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasPrefix(FieldFeedID, v))
}

// FeedIDHasSuffix applies the HasSuffix predicate on the "feed_id" field.
func FeedIDHasSuffix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasSuffix(FieldFeedID, v))
}

// FeedIDEqualFold applies the EqualFold predicate on the "feed_id" field.
func FeedIDEqualFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldFeedID, v))
}

// FeedIDContainsFold applies the ContainsFold predicate on the "feed_id" field.
func FeedIDContainsFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldFeedID, v))
}

// GUIDEQ applies the EQ predicate on the "guid" field.
func GUIDEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldGUID, v))
}

// GUIDNEQ applies the NEQ predicate on the "guid" field.
func GUIDNEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldGUID, v))
}

// GUIDIn applies the In predicate on the "guid" field.
func GUIDIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldGUID, vs...))
}

// GUIDNotIn applies the NotIn predicate on the "guid" field.
func GUIDNotIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldGUID, vs...))
}

// GUIDGT applies the GT predicate on the "guid" field.
func GUIDGT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldGUID, v))
}

// GUIDGTE applies the GTE predicate on the "guid" field.
func GUIDGTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldGUID, v))
}

// GUIDLT applies the LT predicate on the "guid" field.
func GUIDLT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldGUID, v))
}

// GUIDLTE applies the LTE predicate on the "guid" field.
func GUIDLTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldGUID, v))
}

// GUIDContains applies the Contains predicate on the "guid" field.
func GUIDContains(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContains(FieldGUID, v))
}

// GUIDHasPrefix applies the HasPrefix predicate on the "guid" field.
func GUIDHasPrefix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasPrefix(FieldGUID, v))
}

// GUIDHasSuffix applies the HasSuffix predicate on the "guid" field.
func GUIDHasSuffix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasSuffix(FieldGUID, v))
}

// GUIDIsNil applies the IsNil predicate on the "guid" field.
func GUIDIsNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIsNull(FieldGUID))
}

// GUIDNotNil applies the NotNil predicate on the "guid" field.
func GUIDNotNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotNull(FieldGUID))
}

// GUIDEqualFold applies the EqualFold predicate on the "guid" field.
func GUIDEqualFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldGUID, v))
}

// GUIDContainsFold applies the ContainsFold predicate on the "guid" field.
func GUIDContainsFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldGUID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldTitle, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldURL, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldContent, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldSummary, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldAuthor, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldContainsFold(FieldContentHash, v))
}

// EnrichedEQ applies the EQ predicate on the "enriched" field.
func EnrichedEQ(v bool) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldEnriched, v))
}

// EnrichedNEQ applies the NEQ predicate on the "enriched" field.
func EnrichedNEQ(v bool) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldEnriched, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotNull(FieldPublishedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FeedArticle {
	return predicate.FeedArticle(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFeed applies the HasEdge predicate on the "feed" edge.
func HasFeed() predicate.FeedArticle {
	return predicate.FeedArticle(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FeedTable, FeedColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedWith applies the HasEdge predicate on the "feed" edge with a given conditions (other predicates).
func HasFeedWith(preds ...predicate.Feed) predicate.FeedArticle {
	return predicate.FeedArticle(func(s *sql.Selector) {
		step := newFeedStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeedArticle) predicate.FeedArticle {
	return predicate.FeedArticle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeedArticle) predicate.FeedArticle {
	return predicate.FeedArticle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeedArticle) predicate.FeedArticle {
	return predicate.FeedArticle(sql.NotPredicates(p))
}
