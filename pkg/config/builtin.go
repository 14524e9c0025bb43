package config

// BuiltinConfig bundles the configuration that ships in the binary.
// User YAML merges on top: same-named entries override wholesale.
type BuiltinConfig struct {
	Agents       map[string]AgentDefinition
	Templates    map[string]WorkflowTemplate
	ToolServers  map[string]ToolServerConfig
	LLMProviders map[string]LLMProviderConfig

	DefaultLLMProvider string
	DefaultPersona     string
}

// GetBuiltinConfig returns the built-in configuration set.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		Agents:             builtinAgents(),
		Templates:          builtinTemplates(),
		ToolServers:        builtinToolServers(),
		LLMProviders:       builtinLLMProviders(),
		DefaultLLMProvider: "default",
		DefaultPersona:     "neutral",
	}
}

func builtinAgents() map[string]AgentDefinition {
	return map[string]AgentDefinition{
		"research": {
			Capabilities: []string{"research", "web_search"},
			SystemPrompt: "You are a research agent. Investigate the query using the available tools and report findings with sources.",
			ToolServers:  []string{"web-search", "url-fetch"},
			MaxIterations: 6,
		},
		"analysis": {
			Capabilities: []string{"analysis"},
			SystemPrompt: "You are an analysis agent. Examine the research findings you are given and extract the key insights, contradictions, and open questions.",
		},
		"synthesis": {
			Capabilities: []string{"synthesis"},
			SystemPrompt: "You are a synthesis agent. Combine the upstream findings into a single coherent answer for the user.",
		},
		"coding": {
			Capabilities: []string{"coding"},
			SystemPrompt: "You are a coding agent. Produce working code for the task, with brief usage notes.",
			MaxIterations: 4,
		},
		"validation": {
			Capabilities: []string{"validation"},
			SystemPrompt: "You are a validation agent. Review the produced artifact against the task description and report defects.",
		},
		"article_writer": {
			Capabilities: []string{"article_writing", "editing"},
			SystemPrompt: "You are an article writing agent. Draft or edit prose in the document you are given, following the user's persona and style.",
			EditCapable:  true,
			Proofread:    true,
		},
		"podcast_scripter": {
			Capabilities: []string{"podcast_scripting", "editing"},
			SystemPrompt: "You are a podcast scripting agent. Turn the source material into a natural spoken-word script.",
			EditCapable:  true,
		},
		"project_planner": {
			Capabilities: []string{"project_planning"},
			SystemPrompt: "You are a project planning agent. Break the goal into milestones, tasks, and dependencies.",
		},
		"continuity": {
			Capabilities: []string{"continuity_tracking", "continuity_validation"},
			SystemPrompt: "You are a continuity tracking agent. Extract narrative state from manuscript chapters and validate new content against it.",
		},
	}
}

func builtinTemplates() map[string]WorkflowTemplate {
	return map[string]WorkflowTemplate{
		"research_analysis_synthesis": {
			Description: "Research a topic, analyse the findings, synthesise an answer",
			MaxParallel: 4,
			Steps: []TemplateStep{
				{
					StepID:               "research_phase",
					AgentType:            "research",
					TaskDescription:      "Research the user's query",
					OutputSpecifications: []string{"response", "sources"},
				},
				{
					StepID:               "analysis_phase",
					AgentType:            "analysis",
					TaskDescription:      "Analyse the research findings",
					InputRequirements:    []string{"research_phase.response"},
					OutputSpecifications: []string{"response"},
					DependsOn:            []string{"research_phase"},
				},
				{
					StepID:               "synthesis_phase",
					AgentType:            "synthesis",
					TaskDescription:      "Synthesise the final answer",
					InputRequirements:    []string{"research_phase.response", "analysis_phase.response"},
					OutputSpecifications: []string{"response"},
					DependsOn:            []string{"analysis_phase"},
				},
			},
		},
		"research_coding_implementation": {
			Description: "Research an approach, implement it, validate the result",
			MaxParallel: 4,
			Steps: []TemplateStep{
				{
					StepID:               "research_phase",
					AgentType:            "research",
					TaskDescription:      "Research implementation approaches",
					OutputSpecifications: []string{"response", "sources"},
				},
				{
					StepID:               "coding_phase",
					AgentType:            "coding",
					TaskDescription:      "Implement the chosen approach",
					InputRequirements:    []string{"research_phase.response"},
					OutputSpecifications: []string{"response", "code"},
					DependsOn:            []string{"research_phase"},
				},
				{
					StepID:               "validation_phase",
					AgentType:            "validation",
					TaskDescription:      "Validate the implementation",
					InputRequirements:    []string{"coding_phase.code"},
					OutputSpecifications: []string{"response"},
					DependsOn:            []string{"coding_phase"},
				},
			},
		},
		"parallel_research_synthesis": {
			Description: "Fan out research across angles, then synthesise",
			MaxParallel: 4,
			Steps: []TemplateStep{
				{
					StepID:               "research_primary",
					AgentType:            "research",
					TaskDescription:      "Research the primary angle of the query",
					OutputSpecifications: []string{"response"},
				},
				{
					StepID:               "research_secondary",
					AgentType:            "research",
					TaskDescription:      "Research alternative perspectives and counterpoints",
					OutputSpecifications: []string{"response"},
				},
				{
					StepID:               "synthesis_phase",
					AgentType:            "synthesis",
					TaskDescription:      "Synthesise both research threads",
					InputRequirements:    []string{"research_primary.response", "research_secondary.response"},
					OutputSpecifications: []string{"response"},
					DependsOn:            []string{"research_primary", "research_secondary"},
				},
			},
		},
	}
}

func builtinToolServers() map[string]ToolServerConfig {
	return map[string]ToolServerConfig{
		"web-search": {
			Transport:       "stdio",
			Command:         "scriptor-tool-websearch",
			ResultMaxTokens: 4000,
		},
		"url-fetch": {
			Transport:       "stdio",
			Command:         "scriptor-tool-fetch",
			ResultMaxTokens: 8000,
		},
		"weather": {
			Transport:       "stdio",
			Command:         "scriptor-tool-weather",
			ResultMaxTokens: 1000,
		},
		"pricing": {
			Transport:       "stdio",
			Command:         "scriptor-tool-pricing",
			ResultMaxTokens: 1000,
		},
	}
}

func builtinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"default": {
			Endpoint:      "localhost:50051",
			Model:         "default",
			Temperature:   0.7,
			MaxConcurrent: 8,
		},
	}
}
