package models

import "time"

// ToolCall is one entry in an agent's tools_used trail. Failed calls
// stay in the trail with Error set; they do not fail the step.
type ToolCall struct {
	Tool           string         `json:"tool"`
	Server         string         `json:"server,omitempty"`
	Params         map[string]any `json:"params,omitempty"`
	Result         string         `json:"result,omitempty"`
	Error          string         `json:"error,omitempty"`
	IdempotencyKey string         `json:"idempotency_key,omitempty"`
	Duration       time.Duration  `json:"duration"`
}

// AgentResult is the outcome of one agent invocation within a step.
// DataOutputs is a shared-memory patch keyed by the agent's declared
// output specifications; the engine namespaces it by step id before
// writing it into conversation memory.
type AgentResult struct {
	AgentType       string         `json:"agent_type"`
	ExecutionID     string         `json:"execution_id"`
	Success         bool           `json:"success"`
	Response        string         `json:"response"`
	DataOutputs     map[string]any `json:"data_outputs,omitempty"`
	ToolsUsed       []ToolCall     `json:"tools_used,omitempty"`
	Operations      []EditorOperation `json:"operations,omitempty"`
	ExecutionTime   time.Duration  `json:"execution_time"`
	Timestamp       time.Time      `json:"timestamp"`
	ConfidenceScore *float64       `json:"confidence_score,omitempty"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	// Warnings carries non-fatal degradations, e.g. an unrepairable
	// edit plan that produced an empty operations list.
	Warnings []string `json:"warnings,omitempty"`
}

// HandoffType classifies the data flowing between two steps.
type HandoffType string

const (
	HandoffResearchToAnalysis      HandoffType = "research_to_analysis"
	HandoffAnalysisToCoding        HandoffType = "analysis_to_coding"
	HandoffResearchToCoding        HandoffType = "research_to_coding"
	HandoffCodingToValidation      HandoffType = "coding_to_validation"
	HandoffMultiResearchSynthesis  HandoffType = "multi_research_synthesis"
	HandoffIterativeRefinement     HandoffType = "iterative_refinement"
)

// DataHandoff is the typed packet created when a step completes and
// consumed when a dependent step starts. One handoff exists per
// (source step, dependent step) pair; consumed handoffs are retained
// until workflow archival.
type DataHandoff struct {
	HandoffID              string         `json:"handoff_id"`
	Type                   HandoffType    `json:"type"`
	FromAgent              string         `json:"from_agent"`
	ToAgent                string         `json:"to_agent"`
	FromStepID             string         `json:"from_step_id"`
	ToStepID               string         `json:"to_step_id"`
	DataPackage            map[string]any `json:"data_package"`
	ProcessingInstructions string         `json:"processing_instructions,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	SizeBytes              int            `json:"size_bytes"`
	Consumed               bool           `json:"consumed"`
}
