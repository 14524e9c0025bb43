package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestInitialize_BuiltinsOnly(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Agents.Has("research"))
	assert.True(t, cfg.Agents.Has("article_writer"))
	assert.True(t, cfg.Agents.Has("continuity"))
	assert.True(t, cfg.Templates.Has("research_analysis_synthesis"))
	assert.True(t, cfg.Templates.Has("parallel_research_synthesis"))
	assert.True(t, cfg.LLMProviders.Has("default"))
	assert.Equal(t, "default", cfg.Defaults.LLMProvider)

	// Tuning knobs come back with production defaults.
	assert.Equal(t, 10, cfg.WorkerPool.MaxConcurrent)
	assert.Equal(t, 15*time.Second, cfg.WorkerPool.HeartbeatInterval)
	assert.Equal(t, 8, cfg.Pipelines.FeedConcurrency)
	assert.Equal(t, "SCRIPTOR_MASTER_KEY", cfg.Messaging.MasterKeyEnv)
	assert.Equal(t, 1, cfg.Messaging.KeyVersion)
}

func TestInitialize_UserOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, MainConfigFile, `
agents:
  research:
    capabilities: ["research"]
    system_prompt: "Custom research prompt"
  custom_agent:
    capabilities: ["custom"]
    system_prompt: "Do the custom thing"
worker_pool:
  max_concurrent: 3
defaults:
  persona: formal
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	// Same-named user agent replaces the builtin wholesale.
	research, err := cfg.Agents.Get("research")
	require.NoError(t, err)
	assert.Equal(t, "Custom research prompt", research.SystemPrompt)
	assert.Empty(t, research.ToolServers)

	assert.True(t, cfg.Agents.Has("custom_agent"))
	// Builtins not named in the overlay survive.
	assert.True(t, cfg.Agents.Has("synthesis"))

	assert.Equal(t, 3, cfg.WorkerPool.MaxConcurrent)
	// Unset worker pool fields keep their defaults.
	assert.Equal(t, 2*time.Second, cfg.WorkerPool.PollInterval)
	assert.Equal(t, "formal", cfg.Defaults.Persona)
}

func TestInitialize_ProvidersFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ProvidersConfigFile, `
llm_providers:
  fast:
    endpoint: "llm-pool:50051"
    model: "fast-model"
    max_concurrent: 16
default_provider: fast
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	fast, err := cfg.LLMProviders.Get("fast")
	require.NoError(t, err)
	assert.Equal(t, "llm-pool:50051", fast.Endpoint)
	assert.Equal(t, 16, fast.MaxConcurrent)
	assert.Equal(t, "fast", cfg.Defaults.LLMProvider)
	// Builtin default provider is still registered.
	assert.True(t, cfg.LLMProviders.Has("default"))
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_LLM_ENDPOINT", "llm.internal:50051")

	dir := t.TempDir()
	writeConfigFile(t, dir, ProvidersConfigFile, `
llm_providers:
  internal:
    endpoint: "{{.TEST_LLM_ENDPOINT}}"
    model: "m"
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	p, err := cfg.LLMProviders.Get("internal")
	require.NoError(t, err)
	assert.Equal(t, "llm.internal:50051", p.Endpoint)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, MainConfigFile, "agents:\n  bad: [unclosed")

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		builtin := GetBuiltinConfig()
		return &Config{
			Agents:       NewAgentRegistry(builtin.Agents),
			Templates:    NewTemplateRegistry(builtin.Templates),
			ToolServers:  NewToolServerRegistry(builtin.ToolServers),
			LLMProviders: NewLLMProviderRegistry(builtin.LLMProviders),
			WorkerPool:   DefaultWorkerPoolConfig(),
			Pipelines:    DefaultPipelinesConfig(),
			Messaging:    mergeMessaging(nil),
			Slack:        &SlackConfig{},
			Defaults:     &Defaults{LLMProvider: "default", Persona: "neutral"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "builtins are valid",
			mutate: func(*Config) {},
		},
		{
			name: "agent with unknown provider",
			mutate: func(cfg *Config) {
				agents := map[string]AgentDefinition{
					"broken": {Capabilities: []string{"x"}, SystemPrompt: "p", LLMProvider: "nope"},
				}
				cfg.Agents = NewAgentRegistry(mergeAgents(GetBuiltinConfig().Agents, agents))
			},
			wantErr: `unknown llm_provider "nope"`,
		},
		{
			name: "agent with unknown tool server",
			mutate: func(cfg *Config) {
				agents := map[string]AgentDefinition{
					"broken": {Capabilities: []string{"x"}, SystemPrompt: "p", ToolServers: []string{"missing"}},
				}
				cfg.Agents = NewAgentRegistry(mergeAgents(GetBuiltinConfig().Agents, agents))
			},
			wantErr: `unknown tool server "missing"`,
		},
		{
			name: "template with unknown agent",
			mutate: func(cfg *Config) {
				tpls := map[string]WorkflowTemplate{
					"broken": {Steps: []TemplateStep{{StepID: "s1", AgentType: "ghost", TaskDescription: "t"}}},
				}
				cfg.Templates = NewTemplateRegistry(mergeTemplates(GetBuiltinConfig().Templates, tpls))
			},
			wantErr: `unknown agent type "ghost"`,
		},
		{
			name: "template with dependency cycle",
			mutate: func(cfg *Config) {
				tpls := map[string]WorkflowTemplate{
					"cyclic": {Steps: []TemplateStep{
						{StepID: "a", AgentType: "research", TaskDescription: "t", DependsOn: []string{"b"}},
						{StepID: "b", AgentType: "research", TaskDescription: "t", DependsOn: []string{"a"}},
					}},
				}
				cfg.Templates = NewTemplateRegistry(mergeTemplates(GetBuiltinConfig().Templates, tpls))
			},
			wantErr: "dependency cycle detected",
		},
		{
			name: "template with dangling depends_on",
			mutate: func(cfg *Config) {
				tpls := map[string]WorkflowTemplate{
					"dangling": {Steps: []TemplateStep{
						{StepID: "a", AgentType: "research", TaskDescription: "t", DependsOn: []string{"ghost"}},
					}},
				}
				cfg.Templates = NewTemplateRegistry(mergeTemplates(GetBuiltinConfig().Templates, tpls))
			},
			wantErr: `depends on unknown step "ghost"`,
		},
		{
			name: "tool server with bad transport",
			mutate: func(cfg *Config) {
				srvs := map[string]ToolServerConfig{"bad": {Transport: "carrier-pigeon"}}
				cfg.ToolServers = NewToolServerRegistry(mergeToolServers(GetBuiltinConfig().ToolServers, srvs))
			},
			wantErr: `unknown transport "carrier-pigeon"`,
		},
		{
			name: "unknown default provider",
			mutate: func(cfg *Config) {
				cfg.Defaults.LLMProvider = "ghost"
			},
			wantErr: `default llm_provider "ghost" is not defined`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckAcyclic_DiamondIsFine(t *testing.T) {
	steps := []TemplateStep{
		{StepID: "root"},
		{StepID: "left", DependsOn: []string{"root"}},
		{StepID: "right", DependsOn: []string{"root"}},
		{StepID: "join", DependsOn: []string{"left", "right"}},
	}
	assert.NoError(t, checkAcyclic(steps))
}
