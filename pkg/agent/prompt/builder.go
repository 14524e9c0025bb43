// Package prompt assembles the conversations sent to the LLM worker
// pool. Stateless: all inputs arrive as parameters, so one Builder is
// safe for concurrent use across agents.
package prompt

import (
	"strings"

	"github.com/scriptor-ai/scriptor/pkg/agent"
)

// Builder composes system and user messages for agent runs.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// RoleSystem and friends are the conversation role strings the worker
// pool understands.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// BuildMessages builds the initial conversation for one agent run.
// editing selects the edit-operation format instructions; tools may be
// nil when the agent has no tool servers.
func (b *Builder) BuildMessages(execCtx *agent.ExecutionContext, tools []agent.ToolDefinition, editing bool) []agent.ConversationMessage {
	return []agent.ConversationMessage{
		{Role: RoleSystem, Content: b.buildSystemMessage(execCtx, len(tools) > 0, editing)},
		{Role: RoleUser, Content: b.buildUserMessage(execCtx, editing)},
	}
}

func (b *Builder) buildSystemMessage(execCtx *agent.ExecutionContext, hasTools, editing bool) string {
	sections := []string{execCtx.Definition.SystemPrompt}
	if persona := FormatPersonaSection(execCtx.Persona); persona != "" {
		sections = append(sections, persona)
	}
	if hasTools {
		sections = append(sections, toolUseInstructions)
	}
	if editing {
		sections = append(sections, editFormatInstructions)
	}
	return strings.Join(sections, "\n\n")
}

func (b *Builder) buildUserMessage(execCtx *agent.ExecutionContext, editing bool) string {
	sections := []string{
		FormatTaskSection(execCtx.TaskDescription),
		FormatAncestorOutputs(execCtx.AncestorOutputs),
	}
	if editing && execCtx.ActiveEditor != nil {
		sections = append(sections, FormatEditorSection(
			execCtx.ActiveEditor.Filename,
			execCtx.ActiveEditor.Content,
			execCtx.ActiveEditor.CursorOffset,
		))
	}
	if specs := FormatOutputSpecs(execCtx.OutputSpecifications); specs != "" {
		sections = append(sections, specs)
	}
	return strings.Join(sections, "\n\n")
}

// BuildToolResultMessage wraps one tool result for the conversation.
func BuildToolResultMessage(call agent.ToolCall, result string) agent.ConversationMessage {
	return agent.ConversationMessage{
		Role:       RoleTool,
		Content:    result,
		ToolCallID: call.ID,
		ToolName:   call.Name,
	}
}
