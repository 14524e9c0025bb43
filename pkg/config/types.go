package config

import "time"

// AgentDefinition configures one agent type. Prompts are data: the
// core never interprets them beyond assembly.
type AgentDefinition struct {
	// Capabilities declared by the agent, e.g. "research",
	// "article_writing", "continuity_validation".
	Capabilities []string `yaml:"capabilities"`
	// SystemPrompt seeds the agent's LLM conversation.
	SystemPrompt string `yaml:"system_prompt"`
	// LLMProvider names an entry in llm-providers.yaml; empty uses the
	// default provider.
	LLMProvider string `yaml:"llm_provider,omitempty"`
	// Temperature for generation; nil uses the provider default.
	Temperature *float64 `yaml:"temperature,omitempty"`
	// ToolServers lists the tool servers this agent may call.
	ToolServers []string `yaml:"tool_servers,omitempty"`
	// EditCapable marks agents that may emit editor operations.
	EditCapable bool `yaml:"edit_capable,omitempty"`
	// Proofread wires the proofreading sub-graph into the agent's
	// state machine. Compile-time wiring, not a runtime switch.
	Proofread bool `yaml:"proofread,omitempty"`
	// MaxIterations bounds tool-calling loops inside generate.
	MaxIterations int `yaml:"max_iterations,omitempty"`
}

// TemplateStep is one step of a workflow template.
type TemplateStep struct {
	StepID               string   `yaml:"step_id"`
	AgentType            string   `yaml:"agent_type"`
	TaskDescription      string   `yaml:"task_description"`
	InputRequirements    []string `yaml:"input_requirements,omitempty"`
	OutputSpecifications []string `yaml:"output_specifications,omitempty"`
	DependsOn            []string `yaml:"depends_on,omitempty"`
	MaxRetries           *int     `yaml:"max_retries,omitempty"`
}

// WorkflowTemplate is a named DAG of steps registered at startup.
type WorkflowTemplate struct {
	Description string         `yaml:"description,omitempty"`
	MaxParallel int            `yaml:"max_parallel,omitempty"`
	Steps       []TemplateStep `yaml:"steps"`
}

// ToolServerConfig describes one MCP tool server.
type ToolServerConfig struct {
	// Transport is "stdio" or "http".
	Transport string `yaml:"transport"`
	// Command and Args launch a stdio server.
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
	Env     []string `yaml:"env,omitempty"`
	// URL reaches an http server.
	URL string `yaml:"url,omitempty"`
	// ResultMaxTokens caps stored tool results; longer results are
	// truncated at a line boundary.
	ResultMaxTokens int `yaml:"result_max_tokens,omitempty"`
}

// LLMProviderConfig describes one LLM worker pool endpoint. The core
// dispatches inference over gRPC; it never loads provider SDKs.
type LLMProviderConfig struct {
	// Endpoint is the gRPC address of the LLM worker pool.
	Endpoint string `yaml:"endpoint"`
	// Model is the model hint forwarded with each request.
	Model string `yaml:"model"`
	// APIKeyEnv names the env var the worker pool reads the provider
	// key from; forwarded by name, never by value.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	// BaseURL overrides the provider endpoint inside the worker pool.
	BaseURL string `yaml:"base_url,omitempty"`
	// Temperature is the default sampling temperature.
	Temperature float64 `yaml:"temperature,omitempty"`
	// ReasoningEffort is forwarded verbatim when set.
	ReasoningEffort string `yaml:"reasoning_effort,omitempty"`
	// MaxConcurrent bounds in-flight requests to this provider.
	MaxConcurrent int `yaml:"max_concurrent,omitempty"`
	// RequestTimeout bounds one Generate call.
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`
}

// WorkerPoolConfig tunes the workflow worker pool.
type WorkerPoolConfig struct {
	// MaxConcurrent is the global cap on workflows running in this pod.
	MaxConcurrent int `yaml:"max_concurrent,omitempty"`
	// PollInterval is the queue poll cadence.
	PollInterval time.Duration `yaml:"poll_interval,omitempty"`
	// HeartbeatInterval is how often running workflows bump
	// last_heartbeat_at. Must stay under the 30s liveness bound.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval,omitempty"`
	// OrphanThreshold is how stale a heartbeat must be before the
	// watchdog declares the workflow orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold,omitempty"`
	// OrphanCheckInterval is the watchdog cadence.
	OrphanCheckInterval time.Duration `yaml:"orphan_check_interval,omitempty"`
	// CancelGrace bounds how long a cancelled step may keep running.
	CancelGrace time.Duration `yaml:"cancel_grace,omitempty"`
	// DefaultMaxParallel is the per-workflow step parallelism when the
	// template does not set one.
	DefaultMaxParallel int `yaml:"default_max_parallel,omitempty"`
}

// DefaultWorkerPoolConfig returns production defaults.
func DefaultWorkerPoolConfig() *WorkerPoolConfig {
	return &WorkerPoolConfig{
		MaxConcurrent:       10,
		PollInterval:        2 * time.Second,
		HeartbeatInterval:   15 * time.Second,
		OrphanThreshold:     90 * time.Second,
		OrphanCheckInterval: 30 * time.Second,
		CancelGrace:         5 * time.Second,
		DefaultMaxParallel:  4,
	}
}

// PipelinesConfig tunes the background pipelines.
type PipelinesConfig struct {
	// FeedPollInterval is the cadence of the feed polling pipeline.
	FeedPollInterval time.Duration `yaml:"feed_poll_interval,omitempty"`
	// FeedConcurrency caps feeds fetched in parallel.
	FeedConcurrency int `yaml:"feed_concurrency,omitempty"`
	// FeedRequestTimeout bounds one HTTP fetch.
	FeedRequestTimeout time.Duration `yaml:"feed_request_timeout,omitempty"`
	// FeedTargetTimeout is the hard per-feed budget including
	// enrichment.
	FeedTargetTimeout time.Duration `yaml:"feed_target_timeout,omitempty"`
	// FeedFlagWatchdogAge is how old an is_polling claim may be before
	// the watchdog clears it as orphaned.
	FeedFlagWatchdogAge time.Duration `yaml:"feed_flag_watchdog_age,omitempty"`
	// PresenceReapInterval is the presence reaper cadence.
	PresenceReapInterval time.Duration `yaml:"presence_reap_interval,omitempty"`
	// PresenceOfflineAfter marks users offline past this idle window.
	PresenceOfflineAfter time.Duration `yaml:"presence_offline_after,omitempty"`
	// GCInterval is the checkpoint/workflow GC cadence.
	GCInterval time.Duration `yaml:"gc_interval,omitempty"`
	// WorkflowRetention is how long completed workflows stay before
	// archival.
	WorkflowRetention time.Duration `yaml:"workflow_retention,omitempty"`
	// ProposalSweepInterval is the proposal expiry sweep cadence.
	ProposalSweepInterval time.Duration `yaml:"proposal_sweep_interval,omitempty"`
}

// DefaultPipelinesConfig returns production defaults.
func DefaultPipelinesConfig() *PipelinesConfig {
	return &PipelinesConfig{
		FeedPollInterval:      time.Minute,
		FeedConcurrency:       8,
		FeedRequestTimeout:    30 * time.Second,
		FeedTargetTimeout:     5 * time.Minute,
		FeedFlagWatchdogAge:   10 * time.Minute,
		PresenceReapInterval:  30 * time.Second,
		PresenceOfflineAfter:  2 * time.Minute,
		GCInterval:            time.Hour,
		WorkflowRetention:     24 * time.Hour,
		ProposalSweepInterval: time.Hour,
	}
}

// MessagingConfig holds the at-rest encryption settings for rooms.
type MessagingConfig struct {
	// MasterKeyEnv names the environment variable carrying the 32-byte
	// master key (base64). The key itself never appears in YAML.
	MasterKeyEnv string `yaml:"master_key_env,omitempty"`
	// KeyVersion is recorded on every envelope for future rotation.
	KeyVersion int `yaml:"key_version,omitempty"`
}

// SlackConfig holds best-effort operator notification settings.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// Defaults are system-wide fallbacks.
type Defaults struct {
	// LLMProvider is the provider used when an agent does not name one.
	LLMProvider string `yaml:"llm_provider,omitempty"`
	// Persona is the default response persona.
	Persona string `yaml:"persona,omitempty"`
}
