package agent

import (
	"context"
	"log/slog"

	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/memory"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// Result is what an agent run produces.
type Result = models.AgentResult

// EventPublisher is the subset of the events publisher agents use to
// surface progress. Nil disables streaming.
type EventPublisher interface {
	PublishAgentStatus(ctx context.Context, conversationID string, payload events.AgentStatusPayload) error
}

// ToolExecutor runs tool calls against the configured MCP servers.
// Implemented by pkg/tools; declared here so agents avoid the import.
type ToolExecutor interface {
	// ListTools returns the tool definitions visible to this agent.
	ListTools(ctx context.Context, servers []string) ([]ToolDefinition, error)
	// Execute runs one tool call and returns its (truncated) result.
	Execute(ctx context.Context, call ToolCall) (string, error)
}

// Checkpointer receives the node cursor after every completed node so
// a resumed run can skip finished work. namespace is "" for the main
// graph and the sub-graph name for nested graphs.
type Checkpointer func(ctx context.Context, namespace, node string) error

// ExecutionContext carries everything one agent run needs. Built by
// the workflow engine per step; agents treat it as read-only except
// for the shared memory store.
type ExecutionContext struct {
	WorkflowID     string
	StepID         string
	ExecutionID    string
	ConversationID string
	AgentType      string
	Principal      models.Principal

	TaskDescription      string
	InputRequirements    []string
	OutputSpecifications []string

	// Definition is the resolved agent configuration.
	Definition *config.AgentDefinition
	// Provider is the resolved LLM provider for this run.
	Provider *config.LLMProviderConfig
	// Persona shapes the response voice; from the workflow request or
	// the configured default.
	Persona string

	// Memory is the conversation's shared memory store.
	Memory *memory.Store
	// AncestorOutputs holds completed ancestor step outputs,
	// namespaced by step id.
	AncestorOutputs map[string]map[string]any
	// ActiveEditor is the editor snapshot taken at step start. It is
	// never re-read during the run: all of the step's operations
	// resolve against this one body.
	ActiveEditor *models.ActiveEditor

	LLM       LLMClient
	Tools     ToolExecutor
	Publisher EventPublisher
	Logger    *slog.Logger

	// Checkpoint is called after every graph node; nil disables
	// mid-agent resume.
	Checkpoint Checkpointer
	// ResumeCursors maps graph namespace to the last completed node
	// from a prior run of this step, empty for a fresh start.
	ResumeCursors map[string]string
}

// Log returns the context logger, falling back to the default.
func (e *ExecutionContext) Log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.With("component", "agent")
}
