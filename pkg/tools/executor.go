package tools

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/masking"
)

// Compile-time check that Executor implements agent.ToolExecutor.
var _ agent.ToolExecutor = (*Executor)(nil)

// Executor routes agent tool calls to MCP servers. Tool names are
// server-prefixed ("web-search.query") so one executor serves every
// server an agent is allowed to use.
type Executor struct {
	client   *Client
	registry *config.ToolServerRegistry
	masker   *masking.Service
	logger   *slog.Logger

	// recent maps idempotency key -> result, so a recovered retry of
	// the same call does not re-execute a side-effecting tool within
	// this executor's lifetime (one workflow step).
	recentMu sync.Mutex
	recent   map[string]string
}

// NewExecutor creates an executor. masker may be nil (masking disabled).
func NewExecutor(client *Client, registry *config.ToolServerRegistry, masker *masking.Service) *Executor {
	return &Executor{
		client:   client,
		registry: registry,
		masker:   masker,
		logger:   slog.With("component", "tools"),
		recent:   make(map[string]string),
	}
}

// ListTools returns the tool definitions of the given servers with
// server-prefixed names. Per-server failures degrade to partial lists.
func (e *Executor) ListTools(ctx context.Context, servers []string) ([]agent.ToolDefinition, error) {
	var all []agent.ToolDefinition
	var lastErr error

	for _, serverID := range servers {
		tools, err := e.client.ListTools(ctx, serverID)
		if err != nil {
			lastErr = err
			e.logger.Warn("Failed to list tools", "server", serverID, "error", err)
			continue
		}
		for _, tool := range tools {
			all = append(all, agent.ToolDefinition{
				Name:             fmt.Sprintf("%s.%s", serverID, tool.Name),
				Description:      tool.Description,
				ParametersSchema: marshalSchema(tool.InputSchema),
				Server:           serverID,
			})
		}
	}

	if len(all) == 0 && lastErr != nil {
		return nil, fmt.Errorf("no tool server produced a tool list: %w", lastErr)
	}
	return all, nil
}

// Execute runs one tool call. Tool-level failures come back as errors
// for the agent's trail; they never panic the step.
func (e *Executor) Execute(ctx context.Context, call agent.ToolCall) (string, error) {
	serverID, toolName, err := splitToolName(call.Name)
	if err != nil {
		return "", err
	}

	args, err := parseArguments(call.Arguments)
	if err != nil {
		return "", fmt.Errorf("failed to parse tool arguments: %w", err)
	}

	key := idempotencyKey(serverID, toolName, call.Arguments)
	e.recentMu.Lock()
	if cached, ok := e.recent[key]; ok {
		e.recentMu.Unlock()
		e.logger.Debug("Tool call served from idempotency cache",
			"server", serverID, "tool", toolName, "key", key)
		return cached, nil
	}
	e.recentMu.Unlock()

	result, err := e.client.CallTool(ctx, serverID, toolName, args)
	if err != nil {
		if e.masker != nil {
			return "", fmt.Errorf("tool execution failed: %s", e.masker.MaskError(err.Error()))
		}
		return "", fmt.Errorf("tool execution failed: %w", err)
	}

	content := extractTextContent(result)
	if result.IsError {
		if e.masker != nil {
			content = e.masker.MaskError(content)
		}
		return "", fmt.Errorf("tool reported error: %s", content)
	}

	if e.masker != nil {
		content = e.masker.MaskToolResult(content)
	}
	content = TruncateResult(content, e.resultBudget(serverID))

	e.recentMu.Lock()
	e.recent[key] = content
	e.recentMu.Unlock()

	return content, nil
}

func (e *Executor) resultBudget(serverID string) int {
	cfg, err := e.registry.Get(serverID)
	if err != nil || cfg.ResultMaxTokens <= 0 {
		return DefaultResultMaxTokens
	}
	return cfg.ResultMaxTokens
}

// idempotencyKey identifies a tool call by its full routing and
// payload, so identical retried calls collapse.
func idempotencyKey(serverID, toolName, arguments string) string {
	sum := sha256.Sum256([]byte(serverID + "\x00" + toolName + "\x00" + arguments))
	return hex.EncodeToString(sum[:8])
}

// splitToolName splits "server.tool" at the first dot.
func splitToolName(name string) (serverID, toolName string, err error) {
	idx := strings.Index(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return "", "", fmt.Errorf("malformed tool name %q, want server.tool", name)
	}
	return name[:idx], name[idx+1:], nil
}

// parseArguments decodes the JSON arguments string. Empty means no
// arguments.
func parseArguments(arguments string) (map[string]any, error) {
	if strings.TrimSpace(arguments) == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return nil, err
	}
	return args, nil
}

// extractTextContent concatenates the text parts of a tool result.
// Non-text content is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func marshalSchema(schema any) string {
	if schema == nil {
		return ""
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return ""
	}
	return string(data)
}
