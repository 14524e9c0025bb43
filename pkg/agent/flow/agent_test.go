package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// scriptedLLM replays one canned chunk sequence per Generate call.
type scriptedLLM struct {
	turns [][]agent.Chunk
	calls int
}

func (s *scriptedLLM) Generate(_ context.Context, _ *agent.GenerateInput) (<-chan agent.Chunk, error) {
	if s.calls >= len(s.turns) {
		return nil, errors.New("no more scripted turns")
	}
	turn := s.turns[s.calls]
	s.calls++
	ch := make(chan agent.Chunk, len(turn))
	for _, c := range turn {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

type fakeTools struct {
	defs    []agent.ToolDefinition
	results map[string]string
	errs    map[string]error
	calls   []agent.ToolCall
}

func (f *fakeTools) ListTools(_ context.Context, _ []string) ([]agent.ToolDefinition, error) {
	return f.defs, nil
}

func (f *fakeTools) Execute(_ context.Context, call agent.ToolCall) (string, error) {
	f.calls = append(f.calls, call)
	if err := f.errs[call.Name]; err != nil {
		return "", err
	}
	return f.results[call.Name], nil
}

func execCtxWith(def *config.AgentDefinition, llm agent.LLMClient, tools agent.ToolExecutor) *agent.ExecutionContext {
	return &agent.ExecutionContext{
		WorkflowID:      "wf-1",
		StepID:          "step-1",
		ExecutionID:     "exec-1",
		ConversationID:  "conv-1",
		AgentType:       "research",
		TaskDescription: "look things up",
		Definition:      def,
		Provider:        &config.LLMProviderConfig{Endpoint: "x", Model: "m"},
		LLM:             llm,
		Tools:           tools,
	}
}

func TestProcess_PlainResponse(t *testing.T) {
	llm := &scriptedLLM{turns: [][]agent.Chunk{
		{&agent.TextChunk{Content: "The answer is 42."}, &agent.UsageChunk{TotalTokens: 10}},
	}}
	def := &config.AgentDefinition{Capabilities: []string{"research"}, SystemPrompt: "p"}

	a := New(def)
	result, err := a.Process(context.Background(), execCtxWith(def, llm, nil))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "The answer is 42.", result.Response)
	assert.Equal(t, "research", result.AgentType)
	assert.Equal(t, "The answer is 42.", result.DataOutputs["response"])
	assert.Empty(t, result.Operations)
}

func TestProcess_ToolLoop(t *testing.T) {
	llm := &scriptedLLM{turns: [][]agent.Chunk{
		{&agent.ToolCallChunk{CallID: "c1", Name: "web_search", Arguments: `{"q": "movable type"}`}},
		{&agent.TextChunk{Content: "Found it."}},
	}}
	tools := &fakeTools{
		defs:    []agent.ToolDefinition{{Name: "web_search"}},
		results: map[string]string{"web_search": "Gutenberg, 1440s"},
	}
	def := &config.AgentDefinition{
		Capabilities:  []string{"research"},
		SystemPrompt:  "p",
		ToolServers:   []string{"web-search"},
		MaxIterations: 3,
	}

	result, err := New(def).Process(context.Background(), execCtxWith(def, llm, tools))
	require.NoError(t, err)

	assert.Equal(t, "Found it.", result.Response)
	require.Len(t, result.ToolsUsed, 1)
	assert.Equal(t, "web_search", result.ToolsUsed[0].Tool)
	assert.Equal(t, "Gutenberg, 1440s", result.ToolsUsed[0].Result)
	require.Len(t, tools.calls, 1)
}

func TestProcess_ToolErrorStaysInTrail(t *testing.T) {
	llm := &scriptedLLM{turns: [][]agent.Chunk{
		{&agent.ToolCallChunk{CallID: "c1", Name: "web_search", Arguments: `{}`}},
		{&agent.TextChunk{Content: "Worked around it."}},
	}}
	tools := &fakeTools{
		defs: []agent.ToolDefinition{{Name: "web_search"}},
		errs: map[string]error{"web_search": errors.New("upstream 503")},
	}
	def := &config.AgentDefinition{
		Capabilities: []string{"research"}, SystemPrompt: "p",
		ToolServers: []string{"web-search"}, MaxIterations: 3,
	}

	result, err := New(def).Process(context.Background(), execCtxWith(def, llm, tools))
	require.NoError(t, err)

	assert.True(t, result.Success, "tool failure must not fail the step")
	require.Len(t, result.ToolsUsed, 1)
	assert.Contains(t, result.ToolsUsed[0].Error, "upstream 503")
}

func TestProcess_EditingResolvesOperations(t *testing.T) {
	body := "---\ntitle: Draft\n---\n# Notes\n\nThe quick brown fox.\n"
	response := "Tightened the wording.\n```json\n" +
		`[{"op_type": "replace_range", "original_text": "quick brown fox", "text": "swift red fox"}]` +
		"\n```"

	llm := &scriptedLLM{turns: [][]agent.Chunk{{&agent.TextChunk{Content: response}}}}
	def := &config.AgentDefinition{
		Capabilities: []string{"editing"}, SystemPrompt: "p", EditCapable: true,
	}

	execCtx := execCtxWith(def, llm, nil)
	execCtx.ActiveEditor = &models.ActiveEditor{Filename: "draft.md", Content: body}

	result, err := New(def).Process(context.Background(), execCtx)
	require.NoError(t, err)

	require.Len(t, result.Operations, 1)
	assert.Equal(t, models.OpReplaceRange, result.Operations[0].OpType)
	assert.Empty(t, result.Warnings)
}

func TestProcess_UnparseableOpsIsSuccessWithWarning(t *testing.T) {
	response := "Edits below.\n```json\n[{\"op_type\": \"replace_range\", \"original_text\": \n```"
	llm := &scriptedLLM{turns: [][]agent.Chunk{{&agent.TextChunk{Content: response}}}}
	def := &config.AgentDefinition{
		Capabilities: []string{"editing"}, SystemPrompt: "p", EditCapable: true,
	}

	execCtx := execCtxWith(def, llm, nil)
	execCtx.ActiveEditor = &models.ActiveEditor{Filename: "draft.md", Content: "# Doc\n\nText.\n"}

	result, err := New(def).Process(context.Background(), execCtx)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Operations)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "unparseable")
}

func TestProcess_LLMErrorChunkFailsRun(t *testing.T) {
	llm := &scriptedLLM{turns: [][]agent.Chunk{
		{&agent.ErrorChunk{Message: "rate limited", Retryable: true}},
	}}
	def := &config.AgentDefinition{Capabilities: []string{"research"}, SystemPrompt: "p"}

	_, err := New(def).Process(context.Background(), execCtxWith(def, llm, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestProcess_OutputSpecsParsed(t *testing.T) {
	response := `{"response": "summary here", "sources": ["a", "b"]}`
	llm := &scriptedLLM{turns: [][]agent.Chunk{{&agent.TextChunk{Content: response}}}}
	def := &config.AgentDefinition{Capabilities: []string{"research"}, SystemPrompt: "p"}

	execCtx := execCtxWith(def, llm, nil)
	execCtx.OutputSpecifications = []string{"response", "sources"}

	result, err := New(def).Process(context.Background(), execCtx)
	require.NoError(t, err)

	assert.Equal(t, "summary here", result.Response)
	assert.Equal(t, []any{"a", "b"}, result.DataOutputs["sources"])
}

func TestProcess_ResumeSkipsGenerate(t *testing.T) {
	// No scripted turns: generate must not run at all.
	llm := &scriptedLLM{}
	def := &config.AgentDefinition{Capabilities: []string{"research"}, SystemPrompt: "p"}

	execCtx := execCtxWith(def, llm, nil)
	execCtx.ResumeCursors = map[string]string{"": "generate"}

	result, err := New(def).Process(context.Background(), execCtx)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Zero(t, llm.calls)
}

func TestRegisterBuiltins(t *testing.T) {
	builtin := config.GetBuiltinConfig()
	agents := config.NewAgentRegistry(builtin.Agents)
	reg := agent.NewRegistry(agents)
	RegisterBuiltins(reg, agents)

	for _, agentType := range agents.Names() {
		a, err := reg.Create(agentType)
		require.NoError(t, err, agentType)
		assert.NotEmpty(t, a.Capabilities(), agentType)
	}

	_, err := reg.Create("ghost")
	require.Error(t, err)
}
