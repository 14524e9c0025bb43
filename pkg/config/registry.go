package config

import (
	"fmt"
	"sort"
)

// registry is the shared shape of the name-keyed config registries.
type registry[T any] struct {
	kind  string
	items map[string]*T
}

func newRegistry[T any](kind string, items map[string]T) registry[T] {
	m := make(map[string]*T, len(items))
	for name := range items {
		item := items[name]
		m[name] = &item
	}
	return registry[T]{kind: kind, items: m}
}

// Get returns the named entry or an error identifying the registry.
func (r registry[T]) Get(name string) (*T, error) {
	item, ok := r.items[name]
	if !ok {
		return nil, fmt.Errorf("unknown %s %q", r.kind, name)
	}
	return item, nil
}

// Has reports whether the entry exists.
func (r registry[T]) Has(name string) bool {
	_, ok := r.items[name]
	return ok
}

// Len returns the number of entries.
func (r registry[T]) Len() int { return len(r.items) }

// Names returns all entry names, sorted.
func (r registry[T]) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AgentRegistry holds agent definitions by agent type.
type AgentRegistry struct{ registry[AgentDefinition] }

// NewAgentRegistry builds the registry from merged definitions.
func NewAgentRegistry(items map[string]AgentDefinition) *AgentRegistry {
	return &AgentRegistry{newRegistry("agent type", items)}
}

// TemplateRegistry holds workflow templates by name.
type TemplateRegistry struct{ registry[WorkflowTemplate] }

// NewTemplateRegistry builds the registry from merged templates.
func NewTemplateRegistry(items map[string]WorkflowTemplate) *TemplateRegistry {
	return &TemplateRegistry{newRegistry("workflow template", items)}
}

// ToolServerRegistry holds MCP tool server configs by server id.
type ToolServerRegistry struct{ registry[ToolServerConfig] }

// NewToolServerRegistry builds the registry from merged servers.
func NewToolServerRegistry(items map[string]ToolServerConfig) *ToolServerRegistry {
	return &ToolServerRegistry{newRegistry("tool server", items)}
}

// LLMProviderRegistry holds LLM provider configs by name.
type LLMProviderRegistry struct{ registry[LLMProviderConfig] }

// NewLLMProviderRegistry builds the registry from merged providers.
func NewLLMProviderRegistry(items map[string]LLMProviderConfig) *LLMProviderRegistry {
	return &LLMProviderRegistry{newRegistry("llm provider", items)}
}
