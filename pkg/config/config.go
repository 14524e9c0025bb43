// Package config loads, merges, and validates the system configuration:
// agent definitions, workflow templates, tool servers, LLM providers,
// and the tuning knobs for the worker pool and background pipelines.
//
// Built-in configuration ships in the binary; scriptor.yaml and
// llm-providers.yaml overlay it. Same-named entries override wholesale.
package config

// Config is the fully merged and validated configuration.
type Config struct {
	Agents       *AgentRegistry
	Templates    *TemplateRegistry
	ToolServers  *ToolServerRegistry
	LLMProviders *LLMProviderRegistry

	WorkerPool *WorkerPoolConfig
	Pipelines  *PipelinesConfig
	Messaging  *MessagingConfig
	Slack      *SlackConfig
	Defaults   *Defaults
}

// Stats summarizes the loaded configuration for startup logging.
type Stats struct {
	Agents       int
	Templates    int
	ToolServers  int
	LLMProviders int
}

// Stats returns counts of the loaded registries.
func (c *Config) Stats() Stats {
	return Stats{
		Agents:       c.Agents.Len(),
		Templates:    c.Templates.Len(),
		ToolServers:  c.ToolServers.Len(),
		LLMProviders: c.LLMProviders.Len(),
	}
}
