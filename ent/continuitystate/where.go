// Code generated by ent, DO NOT EDIT.

package continuitystate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldUserID, v))
}

// ManuscriptFilename applies equality check predicate on the "manuscript_filename" field. It's identical to ManuscriptFilenameEQ.
func ManuscriptFilename(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldManuscriptFilename, v))
}

// LastAnalyzedChapter applies equality check predicate on the "last_analyzed_chapter" field. It's identical to LastAnalyzedChapterEQ.
func LastAnalyzedChapter(v int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldLastAnalyzedChapter, v))
}

// CurrentChapterSummary applies equality check predicate on the "current_chapter_summary" field. It's identical to CurrentChapterSummaryEQ.
func CurrentChapterSummary(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldCurrentChapterSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldContainsFold(FieldUserID, v))
}

// ManuscriptFilenameEQ applies the EQ predicate on the "manuscript_filename" field.
func ManuscriptFilenameEQ(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldManuscriptFilename, v))
}

// ManuscriptFilenameNEQ applies the NEQ predicate on the "manuscript_filename" field.
func ManuscriptFilenameNEQ(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNEQ(FieldManuscriptFilename, v))
}

// ManuscriptFilenameIn applies the In predicate on the "manuscript_filename" field.
func ManuscriptFilenameIn(vs ...string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIn(FieldManuscriptFilename, vs...))
}

// ManuscriptFilenameNotIn applies the NotIn predicate on the "manuscript_filename" field.
func ManuscriptFilenameNotIn(vs ...string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotIn(FieldManuscriptFilename, vs...))
}

// ManuscriptFilenameGT applies the GT predicate on the "manuscript_filename" field.
func ManuscriptFilenameGT(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGT(FieldManuscriptFilename, v))
}

// ManuscriptFilenameGTE applies the GTE predicate on the "manuscript_filename" field.
func ManuscriptFilenameGTE(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGTE(FieldManuscriptFilename, v))
}

// ManuscriptFilenameLT applies the LT predicate on the "manuscript_filename" field.
func ManuscriptFilenameLT(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLT(FieldManuscriptFilename, v))
}

// ManuscriptFilenameLTE applies the LTE predicate on the "manuscript_filename" field.
func ManuscriptFilenameLTE(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLTE(FieldManuscriptFilename, v))
}

// ManuscriptFilenameContains applies the Contains predicate on the "manuscript_filename" field.
func ManuscriptFilenameContains(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldContains(FieldManuscriptFilename, v))
}

// ManuscriptFilenameHasPrefix applies the HasPrefix predicate on the "manuscript_filename" field.
func ManuscriptFilenameHasPrefix(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldHasPrefix(FieldManuscriptFilename, v))
}

// ManuscriptFilenameHasSuffix applies the HasSuffix predicate on the "manuscript_filename" field.
func ManuscriptFilenameHasSuffix(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldHasSuffix(FieldManuscriptFilename, v))
}

// ManuscriptFilenameEqualFold applies the EqualFold predicate on the "manuscript_filename" field.
func ManuscriptFilenameEqualFold(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEqualFold(FieldManuscriptFilename, v))
}

// ManuscriptFilenameContainsFold applies the ContainsFold predicate on the "manuscript_filename" field.
func ManuscriptFilenameContainsFold(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldContainsFold(FieldManuscriptFilename, v))
}

// LastAnalyzedChapterEQ applies the EQ predicate on the "last_analyzed_chapter" field.
func LastAnalyzedChapterEQ(v int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldLastAnalyzedChapter, v))
}

// LastAnalyzedChapterNEQ applies the NEQ predicate on the "last_analyzed_chapter" field.
func LastAnalyzedChapterNEQ(v int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNEQ(FieldLastAnalyzedChapter, v))
}

// LastAnalyzedChapterIn applies the In predicate on the "last_analyzed_chapter" field.
func LastAnalyzedChapterIn(vs ...int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIn(FieldLastAnalyzedChapter, vs...))
}

// LastAnalyzedChapterNotIn applies the NotIn predicate on the "last_analyzed_chapter" field.
func LastAnalyzedChapterNotIn(vs ...int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotIn(FieldLastAnalyzedChapter, vs...))
}

// LastAnalyzedChapterGT applies the GT predicate on the "last_analyzed_chapter" field.
func LastAnalyzedChapterGT(v int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGT(FieldLastAnalyzedChapter, v))
}

// LastAnalyzedChapterGTE applies the GTE predicate on the "last_analyzed_chapter" field.
func LastAnalyzedChapterGTE(v int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGTE(FieldLastAnalyzedChapter, v))
}

// LastAnalyzedChapterLT applies the LT predicate on the "last_analyzed_chapter" field.
func LastAnalyzedChapterLT(v int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLT(FieldLastAnalyzedChapter, v))
}

// LastAnalyzedChapterLTE applies the LTE predicate on the "last_analyzed_chapter" field.
func LastAnalyzedChapterLTE(v int) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLTE(FieldLastAnalyzedChapter, v))
}

// CharacterStatesIsNil applies the IsNil predicate on the "character_states" field.
func CharacterStatesIsNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIsNull(FieldCharacterStates))
}

// CharacterStatesNotNil applies the NotNil predicate on the "character_states" field.
func CharacterStatesNotNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotNull(FieldCharacterStates))
}

// PlotThreadsIsNil applies the IsNil predicate on the "plot_threads" field.
func PlotThreadsIsNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIsNull(FieldPlotThreads))
}

// PlotThreadsNotNil applies the NotNil predicate on the "plot_threads" field.
func PlotThreadsNotNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotNull(FieldPlotThreads))
}

// TimelineIsNil applies the IsNil predicate on the "timeline" field.
func TimelineIsNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIsNull(FieldTimeline))
}

// TimelineNotNil applies the NotNil predicate on the "timeline" field.
func TimelineNotNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotNull(FieldTimeline))
}

// WorldStateChangesIsNil applies the IsNil predicate on the "world_state_changes" field.
func WorldStateChangesIsNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIsNull(FieldWorldStateChanges))
}

// WorldStateChangesNotNil applies the NotNil predicate on the "world_state_changes" field.
func WorldStateChangesNotNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotNull(FieldWorldStateChanges))
}

// UnresolvedTensionsIsNil applies the IsNil predicate on the "unresolved_tensions" field.
func UnresolvedTensionsIsNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIsNull(FieldUnresolvedTensions))
}

// UnresolvedTensionsNotNil applies the NotNil predicate on the "unresolved_tensions" field.
func UnresolvedTensionsNotNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotNull(FieldUnresolvedTensions))
}

// CurrentChapterSummaryEQ applies the EQ predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryEQ(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryNEQ applies the NEQ predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryNEQ(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNEQ(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryIn applies the In predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryIn(vs ...string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIn(FieldCurrentChapterSummary, vs...))
}

// CurrentChapterSummaryNotIn applies the NotIn predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryNotIn(vs ...string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotIn(FieldCurrentChapterSummary, vs...))
}

// CurrentChapterSummaryGT applies the GT predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryGT(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGT(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryGTE applies the GTE predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryGTE(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGTE(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryLT applies the LT predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryLT(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLT(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryLTE applies the LTE predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryLTE(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLTE(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryContains applies the Contains predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryContains(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldContains(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryHasPrefix applies the HasPrefix predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryHasPrefix(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldHasPrefix(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryHasSuffix applies the HasSuffix predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryHasSuffix(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldHasSuffix(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryIsNil applies the IsNil predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryIsNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIsNull(FieldCurrentChapterSummary))
}

// CurrentChapterSummaryNotNil applies the NotNil predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryNotNil() predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotNull(FieldCurrentChapterSummary))
}

// CurrentChapterSummaryEqualFold applies the EqualFold predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryEqualFold(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEqualFold(FieldCurrentChapterSummary, v))
}

// CurrentChapterSummaryContainsFold applies the ContainsFold predicate on the "current_chapter_summary" field.
func CurrentChapterSummaryContainsFold(v string) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldContainsFold(FieldCurrentChapterSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ContinuityState {
	return predicate.ContinuityState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContinuityState) predicate.ContinuityState {
	return predicate.ContinuityState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContinuityState) predicate.ContinuityState {
	return predicate.ContinuityState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContinuityState) predicate.ContinuityState {
	return predicate.ContinuityState(sql.NotPredicates(p))
}
