// Code generated by ent, DO NOT EDIT.

package editproposal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the editproposal type in the database.
	Label = "edit_proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "proposal_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldEditType holds the string denoting the edit_type field in the database.
	FieldEditType = "edit_type"
	// FieldOperations holds the string denoting the operations field in the database.
	FieldOperations = "operations"
	// FieldContentEdit holds the string denoting the content_edit field in the database.
	FieldContentEdit = "content_edit"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldPreview holds the string denoting the preview field in the database.
	FieldPreview = "preview"
	// FieldApplied holds the string denoting the applied field in the database.
	FieldApplied = "applied"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// FieldApplyResult holds the string denoting the apply_result field in the database.
	FieldApplyResult = "apply_result"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the editproposal in the database.
	Table = "edit_proposals"
)

// Columns holds all SQL columns for editproposal fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDocumentID,
	FieldAgentName,
	FieldEditType,
	FieldOperations,
	FieldContentEdit,
	FieldSummary,
	FieldPreview,
	FieldApplied,
	FieldAppliedAt,
	FieldApplyResult,
	FieldCreatedAt,
	FieldExpiresAt,
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
	// DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	DocumentIDValidator func(string) error
	// AgentNameValidator is a validator for the "agent_name" field. It is called by the builders before save.
	AgentNameValidator func(string) error
	// DefaultApplied holds the default value on creation for the "applied" field.
	DefaultApplied bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EditType defines the type for the "edit_type" enum field.
type EditType string

// EditType values.
const (
	EditTypeOperations EditType = "operations"
	EditTypeContent    EditType = "content"
)

func (et EditType) String() string {
	return string(et)
}

// EditTypeValidator is a validator for the "edit_type" field enum values. It is called by the builders before save.
func EditTypeValidator(et EditType) error {
	switch et {
	case EditTypeOperations, EditTypeContent:
		return nil
	default:
		return fmt.Errorf("editproposal: invalid enum value for edit_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the EditProposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByEditType orders the results by the edit_type field.
func ByEditType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEditType, opts...).ToFunc()
}

// ByContentEdit orders the results by the content_edit field.
func ByContentEdit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentEdit, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByPreview orders the results by the preview field.
func ByPreview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreview, opts...).ToFunc()
}

// ByApplied orders the results by the applied field.
func ByApplied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplied, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
