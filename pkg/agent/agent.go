// Package agent provides the agent framework: the Agent contract, the
// type registry, the execution context handed to every run, and the
// gRPC client for the LLM worker pool.
package agent

import "context"

// Agent is implemented by every agent type. Agents are created
// per-execution and never shared between workflows.
type Agent interface {
	// Process runs the agent for one workflow step.
	// ctx carries the workflow cancellation signal.
	//
	// Returns (*models.AgentResult, nil) on completion — check
	// Result.Success for agent-level failures (LLM errors, tool
	// failures). Returns (nil, error) only when no meaningful result
	// exists (infrastructure failures, cancellation).
	Process(ctx context.Context, execCtx *ExecutionContext) (*Result, error)

	// Capabilities declares what this agent can do, e.g. "research",
	// "editing". Used for routing and validation, not dispatch.
	Capabilities() []string
}
