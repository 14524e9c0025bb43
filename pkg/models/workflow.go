package models

import "time"

// DynamicTemplateName is the template_name recorded for ad-hoc plans.
const DynamicTemplateName = "dynamic"

// StepSpec is one planned step in a workflow template or dynamic plan.
type StepSpec struct {
	StepID               string   `json:"step_id"`
	AgentType            string   `json:"agent_type"`
	TaskDescription      string   `json:"task_description"`
	InputRequirements    []string `json:"input_requirements,omitempty"`
	OutputSpecifications []string `json:"output_specifications,omitempty"`
	DependsOn            []string `json:"depends_on,omitempty"`
	MaxRetries           int      `json:"max_retries,omitempty"`
}

// PlanSpec is a fully specified dynamic step graph submitted by a
// caller. It is validated for shape and structure before acceptance.
type PlanSpec struct {
	Steps       []StepSpec `json:"steps"`
	MaxParallel int        `json:"max_parallel,omitempty"`
}

// StartWorkflowRequest starts a workflow from a registered template or
// a dynamic plan. Exactly one of TemplateName and Plan must be set.
type StartWorkflowRequest struct {
	ConversationID string         `json:"conversation_id"`
	TemplateName   string         `json:"template_name,omitempty"`
	Plan           *PlanSpec      `json:"plan,omitempty"`
	Query          string         `json:"query"`
	Persona        string         `json:"persona,omitempty"`
	UserContext    map[string]any `json:"user_context,omitempty"`
}

// StepStatusSummary is the per-step slice of a status response.
type StepStatusSummary struct {
	StepID     string `json:"step_id"`
	AgentType  string `json:"agent_type"`
	Status     string `json:"status"`
	RetryCount int    `json:"retry_count"`
	// Sanitised message for the first failed step only.
	ErrorMessage string `json:"error_message,omitempty"`
}

// WorkflowStatusResponse answers GetWorkflowStatus.
type WorkflowStatusResponse struct {
	WorkflowID     string              `json:"workflow_id"`
	Status         string              `json:"status"`
	TotalSteps     int                 `json:"total_steps"`
	CompletedSteps int                 `json:"completed_steps"`
	FailedSteps    int                 `json:"failed_steps"`
	CurrentStep    string              `json:"current_step,omitempty"`
	ExecutionTime  time.Duration       `json:"execution_time"`
	Steps          []StepStatusSummary `json:"steps"`
}

// CancelWorkflowResponse answers CancelWorkflow.
type CancelWorkflowResponse struct {
	Cancelled bool `json:"cancelled"`
}
