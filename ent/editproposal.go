// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/editproposal"
)

// EditProposal is the model entity for the EditProposal schema.
type EditProposal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// EditType holds the value of the "edit_type" field.
	EditType editproposal.EditType `json:"edit_type,omitempty"`
	// Resolved editor operations for edit_type=operations
	Operations []map[string]interface{} `json:"operations,omitempty"`
	// Full replacement body for edit_type=content
	ContentEdit string `json:"content_edit,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Unified diff of the proposed change
	Preview string `json:"preview,omitempty"`
	// Applied holds the value of the "applied" field.
	Applied bool `json:"applied,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	// Outcome returned to the first and all subsequent apply calls
	ApplyResult map[string]interface{} `json:"apply_result,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EditProposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case editproposal.FieldOperations, editproposal.FieldApplyResult:
			values[i] = new([]byte)
		case editproposal.FieldApplied:
			values[i] = new(sql.NullBool)
		case editproposal.FieldID, editproposal.FieldUserID, editproposal.FieldDocumentID, editproposal.FieldAgentName, editproposal.FieldEditType, editproposal.FieldContentEdit, editproposal.FieldSummary, editproposal.FieldPreview:
			values[i] = new(sql.NullString)
		case editproposal.FieldAppliedAt, editproposal.FieldCreatedAt, editproposal.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EditProposal fields.
func (_m *EditProposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case editproposal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case editproposal.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case editproposal.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case editproposal.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case editproposal.FieldEditType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field edit_type", values[i])
			} else if value.Valid {
				_m.EditType = editproposal.EditType(value.String)
			}
		case editproposal.FieldOperations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field operations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Operations); err != nil {
					return fmt.Errorf("unmarshal field operations: %w", err)
				}
			}
		case editproposal.FieldContentEdit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_edit", values[i])
			} else if value.Valid {
				_m.ContentEdit = value.String
			}
		case editproposal.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case editproposal.FieldPreview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview", values[i])
			} else if value.Valid {
				_m.Preview = value.String
			}
		case editproposal.FieldApplied:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field applied", values[i])
			} else if value.Valid {
				_m.Applied = value.Bool
			}
		case editproposal.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = new(time.Time)
				*_m.AppliedAt = value.Time
			}
		case editproposal.FieldApplyResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field apply_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ApplyResult); err != nil {
					return fmt.Errorf("unmarshal field apply_result: %w", err)
				}
			}
		case editproposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case editproposal.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EditProposal.
// This includes values selected through modifiers, order, etc.
func (_m *EditProposal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EditProposal.
// Note that you need to call EditProposal.Unwrap() before calling this method if this EditProposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EditProposal) Update() *EditProposalUpdateOne {
	return NewEditProposalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EditProposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EditProposal) Unwrap() *EditProposal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EditProposal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EditProposal) String() string {
	var builder strings.Builder
	builder.WriteString("EditProposal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("edit_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EditType))
	builder.WriteString(", ")
	builder.WriteString("operations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Operations))
	builder.WriteString(", ")
	builder.WriteString("content_edit=")
	builder.WriteString(_m.ContentEdit)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("preview=")
	builder.WriteString(_m.Preview)
	builder.WriteString(", ")
	builder.WriteString("applied=")
	builder.WriteString(fmt.Sprintf("%v", _m.Applied))
	builder.WriteString(", ")
	if v := _m.AppliedAt; v != nil {
		builder.WriteString("applied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("apply_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplyResult))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EditProposals is a parsable slice of EditProposal.
type EditProposals []*EditProposal
