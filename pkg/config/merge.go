package config

import (
	"fmt"

	"dario.cat/mergo"
)

// userConfig is the parsed shape of scriptor.yaml.
type userConfig struct {
	Agents      map[string]AgentDefinition  `yaml:"agents,omitempty"`
	Templates   map[string]WorkflowTemplate `yaml:"workflow_templates,omitempty"`
	ToolServers map[string]ToolServerConfig `yaml:"tool_servers,omitempty"`
	WorkerPool  *WorkerPoolConfig           `yaml:"worker_pool,omitempty"`
	Pipelines   *PipelinesConfig            `yaml:"pipelines,omitempty"`
	Messaging   *MessagingConfig            `yaml:"messaging,omitempty"`
	Slack       *SlackConfig                `yaml:"slack,omitempty"`
	Defaults    *Defaults                   `yaml:"defaults,omitempty"`
}

// providersFile is the parsed shape of llm-providers.yaml.
type providersFile struct {
	Providers map[string]LLMProviderConfig `yaml:"llm_providers"`
	Default   string                       `yaml:"default_provider,omitempty"`
}

// mergeAgents overlays user agents on the builtins. A user entry with
// the same name replaces the builtin wholesale; partial overrides of a
// single field are not supported, matching registry semantics elsewhere.
func mergeAgents(builtin, user map[string]AgentDefinition) map[string]AgentDefinition {
	merged := make(map[string]AgentDefinition, len(builtin)+len(user))
	for name, def := range builtin {
		merged[name] = def
	}
	for name, def := range user {
		merged[name] = def
	}
	return merged
}

func mergeTemplates(builtin, user map[string]WorkflowTemplate) map[string]WorkflowTemplate {
	merged := make(map[string]WorkflowTemplate, len(builtin)+len(user))
	for name, tpl := range builtin {
		merged[name] = tpl
	}
	for name, tpl := range user {
		merged[name] = tpl
	}
	return merged
}

func mergeToolServers(builtin, user map[string]ToolServerConfig) map[string]ToolServerConfig {
	merged := make(map[string]ToolServerConfig, len(builtin)+len(user))
	for name, srv := range builtin {
		merged[name] = srv
	}
	for name, srv := range user {
		merged[name] = srv
	}
	return merged
}

func mergeProviders(builtin, user map[string]LLMProviderConfig) map[string]LLMProviderConfig {
	merged := make(map[string]LLMProviderConfig, len(builtin)+len(user))
	for name, p := range builtin {
		merged[name] = p
	}
	for name, p := range user {
		merged[name] = p
	}
	return merged
}

// mergeWorkerPool fills unset user fields from the defaults.
func mergeWorkerPool(user *WorkerPoolConfig) (*WorkerPoolConfig, error) {
	merged := DefaultWorkerPoolConfig()
	if user != nil {
		if err := mergo.Merge(merged, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge worker pool config: %w", err)
		}
	}
	return merged, nil
}

// mergePipelines fills unset user fields from the defaults.
func mergePipelines(user *PipelinesConfig) (*PipelinesConfig, error) {
	merged := DefaultPipelinesConfig()
	if user != nil {
		if err := mergo.Merge(merged, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipelines config: %w", err)
		}
	}
	return merged, nil
}

func mergeMessaging(user *MessagingConfig) *MessagingConfig {
	merged := &MessagingConfig{
		MasterKeyEnv: "SCRIPTOR_MASTER_KEY",
		KeyVersion:   1,
	}
	if user != nil {
		if user.MasterKeyEnv != "" {
			merged.MasterKeyEnv = user.MasterKeyEnv
		}
		if user.KeyVersion != 0 {
			merged.KeyVersion = user.KeyVersion
		}
	}
	return merged
}

func mergeDefaults(builtin *BuiltinConfig, user *Defaults) *Defaults {
	merged := &Defaults{
		LLMProvider: builtin.DefaultLLMProvider,
		Persona:     builtin.DefaultPersona,
	}
	if user != nil {
		if user.LLMProvider != "" {
			merged.LLMProvider = user.LLMProvider
		}
		if user.Persona != "" {
			merged.Persona = user.Persona
		}
	}
	return merged
}
