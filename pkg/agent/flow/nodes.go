package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/agent/prompt"
	"github.com/scriptor-ai/scriptor/pkg/editor"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// prepareContext decides the execution mode, lists tools, and builds
// the initial conversation.
func prepareContext(builder *prompt.Builder) func(ctx context.Context, s *State) error {
	return func(ctx context.Context, s *State) error {
		execCtx := s.ExecCtx
		s.startedAt = time.Now()

		// Editing mode needs an edit-capable agent and a snapshot with
		// actual content.
		s.Editing = execCtx.Definition.EditCapable &&
			execCtx.ActiveEditor != nil &&
			strings.TrimSpace(execCtx.ActiveEditor.Content) != ""

		if len(execCtx.Definition.ToolServers) > 0 && execCtx.Tools != nil {
			tools, err := execCtx.Tools.ListTools(ctx, execCtx.Definition.ToolServers)
			if err != nil {
				// Tools unavailable degrades the run, it does not kill it.
				s.Warnings = append(s.Warnings, fmt.Sprintf("tool listing failed: %v", err))
			} else {
				s.Tools = tools
			}
		}

		s.Messages = builder.BuildMessages(execCtx, s.Tools, s.Editing)
		return nil
	}
}

// extractContent derives document facts the later nodes need. The
// snapshot was taken at step start and is never re-read.
func extractContent(_ context.Context, s *State) error {
	if s.Editing {
		s.FrontmatterEnd = editor.FrontmatterEnd(s.ExecCtx.ActiveEditor.Content)
	}
	return nil
}

// generate runs the LLM tool-calling loop. Tool failures are recorded
// in the trail and reported back to the model; only LLM transport
// errors abort the node.
func generate(ctx context.Context, s *State) error {
	execCtx := s.ExecCtx

	maxIterations := execCtx.Definition.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 1
	}

	for iteration := 0; iteration < maxIterations; iteration++ {
		s.publishStatus(ctx, "generating")

		ch, err := execCtx.LLM.Generate(ctx, &agent.GenerateInput{
			WorkflowID:  execCtx.WorkflowID,
			ExecutionID: execCtx.ExecutionID,
			Messages:    s.Messages,
			Config:      execCtx.Provider,
			Tools:       s.Tools,
		})
		if err != nil {
			return fault.Wrap(fault.KindTransient, err, "llm dispatch failed")
		}

		completion, err := agent.Collect(ctx, ch)
		if err != nil {
			return err
		}

		s.Usage.InputTokens += completion.Usage.InputTokens
		s.Usage.OutputTokens += completion.Usage.OutputTokens
		s.Usage.TotalTokens += completion.Usage.TotalTokens
		s.Usage.ThinkingTokens += completion.Usage.ThinkingTokens
		if completion.Thinking != "" {
			s.Thinking = completion.Thinking
		}

		if len(completion.ToolCalls) == 0 {
			s.ResponseText = completion.Text
			return nil
		}

		// Record the assistant turn, then execute each requested tool.
		s.Messages = append(s.Messages, agent.ConversationMessage{
			Role:      prompt.RoleAssistant,
			Content:   completion.Text,
			ToolCalls: completion.ToolCalls,
		})
		for _, call := range completion.ToolCalls {
			s.executeTool(ctx, call)
		}
	}

	// Iteration budget exhausted: force a final answer without tools.
	s.Messages = append(s.Messages, agent.ConversationMessage{
		Role:    prompt.RoleUser,
		Content: "Tool budget exhausted. Produce your final answer now using what you have.",
	})
	ch, err := execCtx.LLM.Generate(ctx, &agent.GenerateInput{
		WorkflowID:  execCtx.WorkflowID,
		ExecutionID: execCtx.ExecutionID,
		Messages:    s.Messages,
		Config:      execCtx.Provider,
	})
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "llm dispatch failed")
	}
	completion, err := agent.Collect(ctx, ch)
	if err != nil {
		return err
	}
	s.ResponseText = completion.Text
	return nil
}

// executeTool runs one tool call and appends both the trail entry and
// the conversation message carrying the result.
func (s *State) executeTool(ctx context.Context, call agent.ToolCall) {
	s.publishStatus(ctx, "using_tool:"+call.Name)

	var params map[string]any
	_ = json.Unmarshal([]byte(call.Arguments), &params)

	start := time.Now()
	result, err := s.ExecCtx.Tools.Execute(ctx, call)
	entry := models.ToolCall{
		Tool:     call.Name,
		Params:   params,
		Duration: time.Since(start),
	}
	if err != nil {
		entry.Error = err.Error()
		result = "tool error: " + err.Error()
	} else {
		entry.Result = result
	}
	s.ToolsUsed = append(s.ToolsUsed, entry)
	s.Messages = append(s.Messages, prompt.BuildToolResultMessage(call, result))
}

// resolveOperations parses the operations array from the response and
// pre-resolves it against the snapshot, dropping unplaceable ops with
// a warning. Runs only in editing mode.
func resolveOperations(_ context.Context, s *State) error {
	raw, found := extractJSONArray(s.ResponseText)
	if !found {
		// No operations emitted is a valid outcome.
		return nil
	}

	var ops []models.EditorOperation
	if !parseOperationsJSON(raw, &ops) {
		s.Warnings = append(s.Warnings, "edit plan unparseable after repair; proceeding with no operations")
		return nil
	}

	snapshot := s.ExecCtx.ActiveEditor
	batch := editor.ResolveBatch(s.ExecCtx.Log(), snapshot.Content, ops, s.FrontmatterEnd, snapshot.CursorOffset)
	for _, dropped := range batch.Dropped {
		s.Warnings = append(s.Warnings, fmt.Sprintf("dropped unresolvable %s operation", dropped.OpType))
	}

	// Keep the symbolic ops that resolved; the engine re-resolves them
	// against the same snapshot when it files the proposal.
	resolved := make([]models.EditorOperation, 0, len(ops))
	for _, op := range ops {
		if !containsOp(batch.Dropped, op) {
			resolved = append(resolved, op)
		}
	}
	s.Operations = resolved
	return nil
}

func containsOp(dropped []models.EditorOperation, op models.EditorOperation) bool {
	for _, d := range dropped {
		if d.OpType == op.OpType && d.OriginalText == op.OriginalText &&
			d.AnchorText == op.AnchorText && d.Text == op.Text {
			return true
		}
	}
	return false
}

// formatResponse assembles the final AgentResult.
func formatResponse(_ context.Context, s *State) error {
	execCtx := s.ExecCtx

	response := s.ResponseText
	dataOutputs := map[string]any{}

	if len(execCtx.OutputSpecifications) > 0 {
		if raw, found := extractJSONObject(s.ResponseText); found {
			var parsed map[string]any
			if parseOperationsJSON(raw, &parsed) {
				for _, spec := range execCtx.OutputSpecifications {
					if v, ok := parsed[spec]; ok {
						dataOutputs[spec] = v
					}
				}
				if r, ok := parsed["response"].(string); ok && r != "" {
					response = r
				}
			}
		}
	}
	if _, ok := dataOutputs["response"]; !ok {
		dataOutputs["response"] = response
	}

	s.Result = &agent.Result{
		AgentType:     execCtx.AgentType,
		ExecutionID:   execCtx.ExecutionID,
		Success:       true,
		Response:      response,
		DataOutputs:   dataOutputs,
		ToolsUsed:     s.ToolsUsed,
		Operations:    s.Operations,
		Warnings:      s.Warnings,
		ExecutionTime: time.Since(s.startedAt),
		Timestamp:     time.Now(),
	}
	if s.Result.ExecutionID == "" {
		s.Result.ExecutionID = uuid.New().String()
	}
	return nil
}

// publishStatus streams transient progress; best-effort.
func (s *State) publishStatus(ctx context.Context, status string) {
	if s.ExecCtx.Publisher == nil {
		return
	}
	_ = s.ExecCtx.Publisher.PublishAgentStatus(ctx, s.ExecCtx.ConversationID, events.AgentStatusPayload{
		Type:           events.EventTypeAgentStatus,
		ConversationID: s.ExecCtx.ConversationID,
		WorkflowID:     s.ExecCtx.WorkflowID,
		AgentName:      s.ExecCtx.AgentType,
		Status:         status,
		Timestamp:      events.Timestamp(time.Now()),
	})
}
