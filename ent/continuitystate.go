// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/continuitystate"
)

// ContinuityState is the model entity for the ContinuityState schema.
type ContinuityState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ManuscriptFilename holds the value of the "manuscript_filename" field.
	ManuscriptFilename string `json:"manuscript_filename,omitempty"`
	// LastAnalyzedChapter holds the value of the "last_analyzed_chapter" field.
	LastAnalyzedChapter int `json:"last_analyzed_chapter,omitempty"`
	// CharacterStates holds the value of the "character_states" field.
	CharacterStates map[string]interface{} `json:"character_states,omitempty"`
	// PlotThreads holds the value of the "plot_threads" field.
	PlotThreads map[string]interface{} `json:"plot_threads,omitempty"`
	// Timeline holds the value of the "timeline" field.
	Timeline []map[string]interface{} `json:"timeline,omitempty"`
	// WorldStateChanges holds the value of the "world_state_changes" field.
	WorldStateChanges []map[string]interface{} `json:"world_state_changes,omitempty"`
	// UnresolvedTensions holds the value of the "unresolved_tensions" field.
	UnresolvedTensions []map[string]interface{} `json:"unresolved_tensions,omitempty"`
	// CurrentChapterSummary holds the value of the "current_chapter_summary" field.
	CurrentChapterSummary string `json:"current_chapter_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContinuityState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case continuitystate.FieldCharacterStates, continuitystate.FieldPlotThreads, continuitystate.FieldTimeline, continuitystate.FieldWorldStateChanges, continuitystate.FieldUnresolvedTensions:
			values[i] = new([]byte)
		case continuitystate.FieldLastAnalyzedChapter:
			values[i] = new(sql.NullInt64)
		case continuitystate.FieldID, continuitystate.FieldUserID, continuitystate.FieldManuscriptFilename, continuitystate.FieldCurrentChapterSummary:
			values[i] = new(sql.NullString)
		case continuitystate.FieldCreatedAt, continuitystate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContinuityState fields.
func (_m *ContinuityState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case continuitystate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case continuitystate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case continuitystate.FieldManuscriptFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manuscript_filename", values[i])
			} else if value.Valid {
				_m.ManuscriptFilename = value.String
			}
		case continuitystate.FieldLastAnalyzedChapter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_analyzed_chapter", values[i])
			} else if value.Valid {
				_m.LastAnalyzedChapter = int(value.Int64)
			}
		case continuitystate.FieldCharacterStates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field character_states", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CharacterStates); err != nil {
					return fmt.Errorf("unmarshal field character_states: %w", err)
				}
			}
		case continuitystate.FieldPlotThreads:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plot_threads", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlotThreads); err != nil {
					return fmt.Errorf("unmarshal field plot_threads: %w", err)
				}
			}
		case continuitystate.FieldTimeline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field timeline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Timeline); err != nil {
					return fmt.Errorf("unmarshal field timeline: %w", err)
				}
			}
		case continuitystate.FieldWorldStateChanges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field world_state_changes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WorldStateChanges); err != nil {
					return fmt.Errorf("unmarshal field world_state_changes: %w", err)
				}
			}
		case continuitystate.FieldUnresolvedTensions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field unresolved_tensions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UnresolvedTensions); err != nil {
					return fmt.Errorf("unmarshal field unresolved_tensions: %w", err)
				}
			}
		case continuitystate.FieldCurrentChapterSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_chapter_summary", values[i])
			} else if value.Valid {
				_m.CurrentChapterSummary = value.String
			}
		case continuitystate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case continuitystate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContinuityState.
// This includes values selected through modifiers, order, etc.
func (_m *ContinuityState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContinuityState.
// Note that you need to call ContinuityState.Unwrap() before calling this method if this ContinuityState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContinuityState) Update() *ContinuityStateUpdateOne {
	return NewContinuityStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContinuityState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContinuityState) Unwrap() *ContinuityState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContinuityState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContinuityState) String() string {
	var builder strings.Builder
	builder.WriteString("ContinuityState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("manuscript_filename=")
	builder.WriteString(_m.ManuscriptFilename)
	builder.WriteString(", ")
	builder.WriteString("last_analyzed_chapter=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastAnalyzedChapter))
	builder.WriteString(", ")
	builder.WriteString("character_states=")
	builder.WriteString(fmt.Sprintf("%v", _m.CharacterStates))
	builder.WriteString(", ")
	builder.WriteString("plot_threads=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlotThreads))
	builder.WriteString(", ")
	builder.WriteString("timeline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Timeline))
	builder.WriteString(", ")
	builder.WriteString("world_state_changes=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorldStateChanges))
	builder.WriteString(", ")
	builder.WriteString("unresolved_tensions=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnresolvedTensions))
	builder.WriteString(", ")
	builder.WriteString("current_chapter_summary=")
	builder.WriteString(_m.CurrentChapterSummary)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContinuityStates is a parsable slice of ContinuityState.
type ContinuityStates []*ContinuityState
