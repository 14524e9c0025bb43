package models

import "time"

// ActiveEditor is the snapshot of a live document editor taken at
// workflow start. It is immutable for the duration of a step: agents
// never re-read the underlying document mid-step.
type ActiveEditor struct {
	DocumentID    string         `json:"document_id"`
	Filename      string         `json:"filename"`
	CanonicalPath string         `json:"canonical_path"`
	Frontmatter   map[string]any `json:"frontmatter,omitempty"`
	Content       string         `json:"content"`
	FolderID      string         `json:"folder_id,omitempty"`
	CursorOffset  *int           `json:"cursor_offset,omitempty"`
}

// OpType is the symbolic edit operation kind an agent may emit.
type OpType string

const (
	OpReplaceRange       OpType = "replace_range"
	OpDeleteRange        OpType = "delete_range"
	OpInsertAfterHeading OpType = "insert_after_heading"
	OpInsertAfter        OpType = "insert_after"
)

// EditorOperation is a symbolic edit emitted by an agent. The resolver
// turns it into concrete offsets; Start/End/OriginalText are the
// agent's best guesses, not trusted positions.
type EditorOperation struct {
	OpType          OpType  `json:"op_type"`
	Start           *int    `json:"start,omitempty"`
	End             *int    `json:"end,omitempty"`
	Text            string  `json:"text,omitempty"`
	OriginalText    string  `json:"original_text,omitempty"`
	AnchorText      string  `json:"anchor_text,omitempty"`
	OccurrenceIndex int     `json:"occurrence_index,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
}

// ResolvedOperation is a concrete splice produced by the edit resolver.
type ResolvedOperation struct {
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	// Strategy records which resolution rung placed the operation,
	// e.g. "exact_offsets" or "prefix_suffix_anchor".
	Strategy string `json:"strategy"`
}

// ContentEditMode selects how a content-style edit lands in the body.
type ContentEditMode string

const (
	ContentAppend   ContentEditMode = "append"
	ContentReplace  ContentEditMode = "replace"
	ContentInsertAt ContentEditMode = "insert_at"
)

// ContentEdit is the whole-body alternative to operation lists.
type ContentEdit struct {
	Mode           ContentEditMode `json:"mode"`
	Content        string          `json:"content"`
	InsertPosition *int            `json:"insert_position,omitempty"`
}

// EditType selects between the two proposal payload shapes.
type EditType string

const (
	EditTypeOperations EditType = "operations"
	EditTypeContent    EditType = "content"
)

// ProposeEditRequest creates a user-approvable edit proposal.
type ProposeEditRequest struct {
	DocumentID      string              `json:"document_id"`
	EditType        EditType            `json:"edit_type"`
	Operations      []ResolvedOperation `json:"operations,omitempty"`
	ContentEdit     *ContentEdit        `json:"content_edit,omitempty"`
	AgentName       string              `json:"agent_name"`
	Summary         string              `json:"summary"`
	RequiresPreview bool                `json:"requires_preview"`
}

// ApplyResult is the outcome of applying a proposal. The first apply
// stores it; every later apply returns the stored value with
// Idempotent set.
type ApplyResult struct {
	ProposalID   string    `json:"proposal_id"`
	DocumentID   string    `json:"document_id"`
	AppliedCount int       `json:"applied_count"`
	Idempotent   bool      `json:"idempotent"`
	AppliedAt    time.Time `json:"applied_at"`
}
