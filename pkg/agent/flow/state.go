// Package flow implements the canonical agent state machine:
// prepare_context → extract_content → generate → resolve_operations
// (editing only) → format_response, with an optional proofreading
// sub-graph. Concrete agent types are this flow plus their configured
// definition.
package flow

import (
	"time"

	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// State is the shared state threaded through the flow graph.
type State struct {
	ExecCtx *agent.ExecutionContext

	// Set by prepare_context.
	Editing  bool
	Tools    []agent.ToolDefinition
	Messages []agent.ConversationMessage

	// Set by extract_content.
	FrontmatterEnd int

	// Set by generate (and revised by proofreading).
	ResponseText string
	Thinking     string
	ToolsUsed    []models.ToolCall
	Usage        agent.UsageChunk

	// Set by resolve_operations.
	Operations []models.EditorOperation

	// Set by the proofreading sub-graph.
	critique string

	// Accumulated non-fatal degradations.
	Warnings []string

	// Set by format_response.
	Result *agent.Result

	startedAt time.Time
}
