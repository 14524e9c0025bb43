package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

func execCtxForTest() *agent.ExecutionContext {
	return &agent.ExecutionContext{
		TaskDescription:      "Research the history of movable type",
		OutputSpecifications: []string{"response", "sources"},
		Definition: &config.AgentDefinition{
			SystemPrompt: "You are a research agent.",
		},
		AncestorOutputs: map[string]map[string]any{
			"research_phase": {"response": "Gutenberg, 1440s"},
		},
	}
}

func TestBuildMessages_Basic(t *testing.T) {
	b := NewBuilder()
	msgs := b.BuildMessages(execCtxForTest(), nil, false)

	require.Len(t, msgs, 2)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, RoleUser, msgs[1].Role)

	assert.Contains(t, msgs[0].Content, "You are a research agent.")
	assert.NotContains(t, msgs[0].Content, "Tool Use")
	assert.NotContains(t, msgs[0].Content, "Edit Operations")

	assert.Contains(t, msgs[1].Content, "Research the history of movable type")
	assert.Contains(t, msgs[1].Content, "research_phase")
	assert.Contains(t, msgs[1].Content, "Gutenberg, 1440s")
	assert.Contains(t, msgs[1].Content, "- sources")
}

func TestBuildMessages_ToolsAndEditing(t *testing.T) {
	execCtx := execCtxForTest()
	cursor := 42
	execCtx.ActiveEditor = &models.ActiveEditor{
		Filename:     "draft.md",
		Content:      "# Draft\n\nBody text.",
		CursorOffset: &cursor,
	}
	execCtx.Persona = "formal"

	tools := []agent.ToolDefinition{{Name: "web_search"}}
	msgs := NewBuilder().BuildMessages(execCtx, tools, true)

	assert.Contains(t, msgs[0].Content, "Tool Use")
	assert.Contains(t, msgs[0].Content, "Edit Operations Format")
	assert.Contains(t, msgs[0].Content, "formal voice")

	assert.Contains(t, msgs[1].Content, "draft.md")
	assert.Contains(t, msgs[1].Content, "Cursor offset:** 42")
	assert.Contains(t, msgs[1].Content, "DOCUMENT_START")
	assert.Contains(t, msgs[1].Content, "Body text.")
}

func TestFormatAncestorOutputs_Empty(t *testing.T) {
	out := FormatAncestorOutputs(nil)
	assert.Contains(t, out, "first step")
}

func TestFormatAncestorOutputs_Deterministic(t *testing.T) {
	outputs := map[string]map[string]any{
		"b_step": {"x": 1},
		"a_step": {"y": 2},
	}
	first := FormatAncestorOutputs(outputs)
	assert.Less(t, strings.Index(first, "a_step"), strings.Index(first, "b_step"))
}

func TestBuildToolResultMessage(t *testing.T) {
	msg := BuildToolResultMessage(agent.ToolCall{ID: "call-1", Name: "web_search"}, "results here")
	assert.Equal(t, RoleTool, msg.Role)
	assert.Equal(t, "call-1", msg.ToolCallID)
	assert.Equal(t, "web_search", msg.ToolName)
	assert.Equal(t, "results here", msg.Content)
}
