// Code generated by ent, DO NOT EDIT.

package editproposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldUserID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldDocumentID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldAgentName, v))
}

// ContentEdit applies equality check predicate on the "content_edit" field. It's identical to ContentEditEQ.
func ContentEdit(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldContentEdit, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldSummary, v))
}

// Preview applies equality check predicate on the "preview" field. It's identical to PreviewEQ.
func Preview(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldPreview, v))
}

// Applied applies equality check predicate on the "applied" field. It's identical to AppliedEQ.
func Applied(v bool) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldApplied, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldAppliedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldExpiresAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContainsFold(FieldUserID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContainsFold(FieldDocumentID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContainsFold(FieldAgentName, v))
}

// EditTypeEQ applies the EQ predicate on the "edit_type" field.
func EditTypeEQ(v EditType) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldEditType, v))
}

// EditTypeNEQ applies the NEQ predicate on the "edit_type" field.
func EditTypeNEQ(v EditType) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldEditType, v))
}

// EditTypeIn applies the In predicate on the "edit_type" field.
func EditTypeIn(vs ...EditType) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldEditType, vs...))
}

// EditTypeNotIn applies the NotIn predicate on the "edit_type" field.
func EditTypeNotIn(vs ...EditType) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldEditType, vs...))
}

// OperationsIsNil applies the IsNil predicate on the "operations" field.
func OperationsIsNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIsNull(FieldOperations))
}

// OperationsNotNil applies the NotNil predicate on the "operations" field.
func OperationsNotNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotNull(FieldOperations))
}

// ContentEditEQ applies the EQ predicate on the "content_edit" field.
func ContentEditEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldContentEdit, v))
}

// ContentEditNEQ applies the NEQ predicate on the "content_edit" field.
func ContentEditNEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldContentEdit, v))
}

// ContentEditIn applies the In predicate on the "content_edit" field.
func ContentEditIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldContentEdit, vs...))
}

// ContentEditNotIn applies the NotIn predicate on the "content_edit" field.
func ContentEditNotIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldContentEdit, vs...))
}

// ContentEditGT applies the GT predicate on the "content_edit" field.
func ContentEditGT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldContentEdit, v))
}

// ContentEditGTE applies the GTE predicate on the "content_edit" field.
func ContentEditGTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldContentEdit, v))
}

// ContentEditLT applies the LT predicate on the "content_edit" field.
func ContentEditLT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldContentEdit, v))
}

// ContentEditLTE applies the LTE predicate on the "content_edit" field.
func ContentEditLTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldContentEdit, v))
}

// ContentEditContains applies the Contains predicate on the "content_edit" field.
func ContentEditContains(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContains(FieldContentEdit, v))
}

// ContentEditHasPrefix applies the HasPrefix predicate on the "content_edit" field.
func ContentEditHasPrefix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasPrefix(FieldContentEdit, v))
}

// ContentEditHasSuffix applies the HasSuffix predicate on the "content_edit" field.
func ContentEditHasSuffix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasSuffix(FieldContentEdit, v))
}

// ContentEditIsNil applies the IsNil predicate on the "content_edit" field.
func ContentEditIsNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIsNull(FieldContentEdit))
}

// ContentEditNotNil applies the NotNil predicate on the "content_edit" field.
func ContentEditNotNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotNull(FieldContentEdit))
}

// ContentEditEqualFold applies the EqualFold predicate on the "content_edit" field.
func ContentEditEqualFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEqualFold(FieldContentEdit, v))
}

// ContentEditContainsFold applies the ContainsFold predicate on the "content_edit" field.
func ContentEditContainsFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContainsFold(FieldContentEdit, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContainsFold(FieldSummary, v))
}

// PreviewEQ applies the EQ predicate on the "preview" field.
func PreviewEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldPreview, v))
}

// PreviewNEQ applies the NEQ predicate on the "preview" field.
func PreviewNEQ(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldPreview, v))
}

// PreviewIn applies the In predicate on the "preview" field.
func PreviewIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldPreview, vs...))
}

// PreviewNotIn applies the NotIn predicate on the "preview" field.
func PreviewNotIn(vs ...string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldPreview, vs...))
}

// PreviewGT applies the GT predicate on the "preview" field.
func PreviewGT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldPreview, v))
}

// PreviewGTE applies the GTE predicate on the "preview" field.
func PreviewGTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldPreview, v))
}

// PreviewLT applies the LT predicate on the "preview" field.
func PreviewLT(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldPreview, v))
}

// PreviewLTE applies the LTE predicate on the "preview" field.
func PreviewLTE(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldPreview, v))
}

// PreviewContains applies the Contains predicate on the "preview" field.
func PreviewContains(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContains(FieldPreview, v))
}

// PreviewHasPrefix applies the HasPrefix predicate on the "preview" field.
func PreviewHasPrefix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasPrefix(FieldPreview, v))
}

// PreviewHasSuffix applies the HasSuffix predicate on the "preview" field.
func PreviewHasSuffix(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldHasSuffix(FieldPreview, v))
}

// PreviewIsNil applies the IsNil predicate on the "preview" field.
func PreviewIsNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIsNull(FieldPreview))
}

// PreviewNotNil applies the NotNil predicate on the "preview" field.
func PreviewNotNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotNull(FieldPreview))
}

// PreviewEqualFold applies the EqualFold predicate on the "preview" field.
func PreviewEqualFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEqualFold(FieldPreview, v))
}

// PreviewContainsFold applies the ContainsFold predicate on the "preview" field.
func PreviewContainsFold(v string) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldContainsFold(FieldPreview, v))
}

// AppliedEQ applies the EQ predicate on the "applied" field.
func AppliedEQ(v bool) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldApplied, v))
}

// AppliedNEQ applies the NEQ predicate on the "applied" field.
func AppliedNEQ(v bool) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldApplied, v))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldAppliedAt, v))
}

// AppliedAtIsNil applies the IsNil predicate on the "applied_at" field.
func AppliedAtIsNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIsNull(FieldAppliedAt))
}

// AppliedAtNotNil applies the NotNil predicate on the "applied_at" field.
func AppliedAtNotNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotNull(FieldAppliedAt))
}

// ApplyResultIsNil applies the IsNil predicate on the "apply_result" field.
func ApplyResultIsNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIsNull(FieldApplyResult))
}

// ApplyResultNotNil applies the NotNil predicate on the "apply_result" field.
func ApplyResultNotNil() predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotNull(FieldApplyResult))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.EditProposal {
	return predicate.EditProposal(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EditProposal) predicate.EditProposal {
	return predicate.EditProposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EditProposal) predicate.EditProposal {
	return predicate.EditProposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EditProposal) predicate.EditProposal {
	return predicate.EditProposal(sql.NotPredicates(p))
}
