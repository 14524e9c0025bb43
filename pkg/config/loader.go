package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// MainConfigFile is the user overlay for agents, templates, tool
	// servers, and tuning knobs.
	MainConfigFile = "scriptor.yaml"
	// ProvidersConfigFile holds LLM provider endpoints.
	ProvidersConfigFile = "llm-providers.yaml"
)

// Initialize loads the built-in configuration, overlays the user YAML
// files from configDir (both optional), validates the result, and
// returns the merged Config. Validation failures are fatal: the process
// should not start on a broken configuration.
func Initialize(configDir string) (*Config, error) {
	logger := slog.With("component", "config")
	builtin := GetBuiltinConfig()

	user, err := loadMainConfig(filepath.Join(configDir, MainConfigFile), logger)
	if err != nil {
		return nil, err
	}

	providers, defaultProvider, err := loadProvidersConfig(filepath.Join(configDir, ProvidersConfigFile), logger)
	if err != nil {
		return nil, err
	}

	workerPool, err := mergeWorkerPool(user.WorkerPool)
	if err != nil {
		return nil, err
	}
	pipelines, err := mergePipelines(user.Pipelines)
	if err != nil {
		return nil, err
	}

	defaults := mergeDefaults(builtin, user.Defaults)
	if defaultProvider != "" {
		defaults.LLMProvider = defaultProvider
	}

	slackCfg := user.Slack
	if slackCfg == nil {
		slackCfg = &SlackConfig{}
	}

	cfg := &Config{
		Agents:       NewAgentRegistry(mergeAgents(builtin.Agents, user.Agents)),
		Templates:    NewTemplateRegistry(mergeTemplates(builtin.Templates, user.Templates)),
		ToolServers:  NewToolServerRegistry(mergeToolServers(builtin.ToolServers, user.ToolServers)),
		LLMProviders: NewLLMProviderRegistry(mergeProviders(builtin.LLMProviders, providers)),
		WorkerPool:   workerPool,
		Pipelines:    pipelines,
		Messaging:    mergeMessaging(user.Messaging),
		Slack:        slackCfg,
		Defaults:     defaults,
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	stats := cfg.Stats()
	logger.Info("Configuration loaded",
		"agents", stats.Agents,
		"templates", stats.Templates,
		"tool_servers", stats.ToolServers,
		"llm_providers", stats.LLMProviders,
		"default_provider", cfg.Defaults.LLMProvider)

	return cfg, nil
}

// loadMainConfig reads scriptor.yaml. A missing file is not an error:
// the builtins alone are a valid configuration.
func loadMainConfig(path string, logger *slog.Logger) (*userConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No user configuration found, using builtins", "path", path)
			return &userConfig{}, nil
		}
		return nil, NewLoadError(path, err)
	}

	expanded := ExpandEnv(data)

	var cfg userConfig
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	logger.Info("Loaded user configuration", "path", path,
		"agents", len(cfg.Agents), "templates", len(cfg.Templates),
		"tool_servers", len(cfg.ToolServers))
	return &cfg, nil
}

// loadProvidersConfig reads llm-providers.yaml. Missing file means the
// builtin default provider carries the load.
func loadProvidersConfig(path string, logger *slog.Logger) (map[string]LLMProviderConfig, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No LLM providers file found, using builtin default", "path", path)
			return nil, "", nil
		}
		return nil, "", NewLoadError(path, err)
	}

	expanded := ExpandEnv(data)

	var file providersFile
	if err := yaml.Unmarshal(expanded, &file); err != nil {
		return nil, "", NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	logger.Info("Loaded LLM providers", "path", path, "providers", len(file.Providers))
	return file.Providers, file.Default, nil
}
