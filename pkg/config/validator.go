package config

import (
	"errors"
	"fmt"
)

// Validate checks cross-references between the merged registries. All
// problems are collected so the operator sees the full list at once.
func Validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateAgents(cfg)...)
	errs = append(errs, validateTemplates(cfg)...)
	errs = append(errs, validateToolServers(cfg)...)
	errs = append(errs, validateProviders(cfg)...)

	if !cfg.LLMProviders.Has(cfg.Defaults.LLMProvider) {
		errs = append(errs, &ValidationError{
			Section: "defaults",
			Message: fmt.Sprintf("default llm_provider %q is not defined", cfg.Defaults.LLMProvider),
		})
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func validateAgents(cfg *Config) []error {
	var errs []error
	for _, name := range cfg.Agents.Names() {
		agent, _ := cfg.Agents.Get(name)
		if len(agent.Capabilities) == 0 {
			errs = append(errs, &ValidationError{Section: "agent", Name: name, Message: "must declare at least one capability"})
		}
		if agent.SystemPrompt == "" {
			errs = append(errs, &ValidationError{Section: "agent", Name: name, Message: "system_prompt is required"})
		}
		if agent.LLMProvider != "" && !cfg.LLMProviders.Has(agent.LLMProvider) {
			errs = append(errs, &ValidationError{
				Section: "agent", Name: name,
				Message: fmt.Sprintf("references unknown llm_provider %q", agent.LLMProvider),
			})
		}
		for _, srv := range agent.ToolServers {
			if !cfg.ToolServers.Has(srv) {
				errs = append(errs, &ValidationError{
					Section: "agent", Name: name,
					Message: fmt.Sprintf("references unknown tool server %q", srv),
				})
			}
		}
		if agent.Proofread && !agent.EditCapable {
			errs = append(errs, &ValidationError{Section: "agent", Name: name, Message: "proofread requires edit_capable"})
		}
	}
	return errs
}

func validateTemplates(cfg *Config) []error {
	var errs []error
	for _, name := range cfg.Templates.Names() {
		tpl, _ := cfg.Templates.Get(name)
		if len(tpl.Steps) == 0 {
			errs = append(errs, &ValidationError{Section: "workflow template", Name: name, Message: "must have at least one step"})
			continue
		}
		if tpl.MaxParallel < 0 {
			errs = append(errs, &ValidationError{Section: "workflow template", Name: name, Message: "max_parallel must not be negative"})
		}

		stepIDs := make(map[string]bool, len(tpl.Steps))
		for _, step := range tpl.Steps {
			if step.StepID == "" {
				errs = append(errs, &ValidationError{Section: "workflow template", Name: name, Message: "step with empty step_id"})
				continue
			}
			if stepIDs[step.StepID] {
				errs = append(errs, &ValidationError{
					Section: "workflow template", Name: name,
					Message: fmt.Sprintf("duplicate step_id %q", step.StepID),
				})
			}
			stepIDs[step.StepID] = true
			if !cfg.Agents.Has(step.AgentType) {
				errs = append(errs, &ValidationError{
					Section: "workflow template", Name: name,
					Message: fmt.Sprintf("step %q references unknown agent type %q", step.StepID, step.AgentType),
				})
			}
		}

		for _, step := range tpl.Steps {
			for _, dep := range step.DependsOn {
				if !stepIDs[dep] {
					errs = append(errs, &ValidationError{
						Section: "workflow template", Name: name,
						Message: fmt.Sprintf("step %q depends on unknown step %q", step.StepID, dep),
					})
				}
			}
		}

		if err := checkAcyclic(tpl.Steps); err != nil {
			errs = append(errs, &ValidationError{Section: "workflow template", Name: name, Message: err.Error()})
		}
	}
	return errs
}

// checkAcyclic runs Kahn's algorithm over the depends_on edges.
func checkAcyclic(steps []TemplateStep) error {
	indegree := make(map[string]int, len(steps))
	dependents := make(map[string][]string, len(steps))
	for _, step := range steps {
		if _, ok := indegree[step.StepID]; !ok {
			indegree[step.StepID] = 0
		}
		for _, dep := range step.DependsOn {
			indegree[step.StepID]++
			dependents[dep] = append(dependents[dep], step.StepID)
		}
	}

	var ready []string
	for id, deg := range indegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}

	visited := 0
	for len(ready) > 0 {
		id := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		visited++
		for _, next := range dependents[id] {
			indegree[next]--
			if indegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if visited != len(indegree) {
		return errors.New("dependency cycle detected")
	}
	return nil
}

func validateToolServers(cfg *Config) []error {
	var errs []error
	for _, name := range cfg.ToolServers.Names() {
		srv, _ := cfg.ToolServers.Get(name)
		switch srv.Transport {
		case "stdio":
			if srv.Command == "" {
				errs = append(errs, &ValidationError{Section: "tool server", Name: name, Message: "stdio transport requires command"})
			}
		case "http":
			if srv.URL == "" {
				errs = append(errs, &ValidationError{Section: "tool server", Name: name, Message: "http transport requires url"})
			}
		default:
			errs = append(errs, &ValidationError{
				Section: "tool server", Name: name,
				Message: fmt.Sprintf("unknown transport %q (want stdio or http)", srv.Transport),
			})
		}
		if srv.ResultMaxTokens < 0 {
			errs = append(errs, &ValidationError{Section: "tool server", Name: name, Message: "result_max_tokens must not be negative"})
		}
	}
	return errs
}

func validateProviders(cfg *Config) []error {
	var errs []error
	for _, name := range cfg.LLMProviders.Names() {
		p, _ := cfg.LLMProviders.Get(name)
		if p.Endpoint == "" {
			errs = append(errs, &ValidationError{Section: "llm provider", Name: name, Message: "endpoint is required"})
		}
		if p.Model == "" {
			errs = append(errs, &ValidationError{Section: "llm provider", Name: name, Message: "model is required"})
		}
		if p.MaxConcurrent < 0 {
			errs = append(errs, &ValidationError{Section: "llm provider", Name: name, Message: "max_concurrent must not be negative"})
		}
	}
	return errs
}
