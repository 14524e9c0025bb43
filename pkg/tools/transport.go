package tools

import (
	"fmt"
	"os"
	"os/exec"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scriptor-ai/scriptor/pkg/config"
)

// createTransport creates an MCP SDK transport from a tool server config.
func createTransport(cfg *config.ToolServerConfig) (mcpsdk.Transport, error) {
	switch cfg.Transport {
	case "stdio":
		return createStdioTransport(cfg)
	case "http":
		return createHTTPTransport(cfg)
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", cfg.Transport)
	}
}

func createStdioTransport(cfg *config.ToolServerConfig) (*mcpsdk.CommandTransport, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("stdio transport requires command")
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)
	// Inherit parent environment + config overrides. Template vars in
	// the env entries were resolved by the config loader.
	cmd.Env = append(os.Environ(), cfg.Env...)

	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

func createHTTPTransport(cfg *config.ToolServerConfig) (*mcpsdk.StreamableClientTransport, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("http transport requires url")
	}
	return &mcpsdk.StreamableClientTransport{Endpoint: cfg.URL}, nil
}
