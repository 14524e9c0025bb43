package agent

import (
	"fmt"
	"sort"
	"sync"

	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/fault"
)

// Factory builds one agent instance for an execution. The definition
// is the merged configuration for the agent type.
type Factory func(def *config.AgentDefinition) (Agent, error)

// Registry maps agent types to factories. Registration happens at
// startup; lookups after that are read-only and safe for concurrent
// use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	agents    *config.AgentRegistry
}

// NewRegistry creates a registry over the configured agent definitions.
func NewRegistry(agents *config.AgentRegistry) *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		agents:    agents,
	}
}

// Register binds a factory to an agent type. Later registrations for
// the same type win, so callers can override builtins.
func (r *Registry) Register(agentType string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[agentType] = factory
}

// Create builds an agent for the given type. An unknown type is a
// configuration defect: the plan validator should have rejected it, so
// hitting this at execution time is FatalConfig, not retryable.
func (r *Registry) Create(agentType string) (Agent, error) {
	r.mu.RLock()
	factory, ok := r.factories[agentType]
	r.mu.RUnlock()
	if !ok {
		return nil, fault.New(fault.KindFatalConfig, "unknown agent type %q", agentType)
	}

	def, err := r.agents.Get(agentType)
	if err != nil {
		return nil, fault.Wrap(fault.KindFatalConfig, err, "agent definition missing")
	}

	a, err := factory(def)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent %q: %w", agentType, err)
	}
	return a, nil
}

// Has reports whether the agent type is registered.
func (r *Registry) Has(agentType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[agentType]
	return ok
}

// Types returns all registered agent types, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
