package events

// WorkflowStartedPayload announces that a claimed workflow began
// executing.
type WorkflowStartedPayload struct {
	Type           string `json:"type"` // always EventTypeWorkflowStarted
	WorkflowID     string `json:"workflow_id"`
	ConversationID string `json:"conversation_id"`
	TemplateName   string `json:"template_name"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// WorkflowPlannedPayload carries the resolved step graph summary,
// emitted once after template/plan resolution.
type WorkflowPlannedPayload struct {
	Type       string   `json:"type"` // always EventTypeWorkflowPlanned
	WorkflowID string   `json:"workflow_id"`
	TotalSteps int      `json:"total_steps"`
	StepIDs    []string `json:"step_ids"`
	Timestamp  string   `json:"timestamp"`
}

// StepStatusPayload covers step_starting, step_prepared, and
// step_executing; the Type field is the discriminator.
type StepStatusPayload struct {
	Type       string `json:"type"`
	WorkflowID string `json:"workflow_id"`
	StepID     string `json:"step_id"`
	AgentType  string `json:"agent_type"`
	Attempt    int    `json:"attempt"` // 0 on first execution
	Timestamp  string `json:"timestamp"`
}

// StepCompletedPayload is the terminal success event of one step.
type StepCompletedPayload struct {
	Type        string  `json:"type"` // always EventTypeStepCompleted
	WorkflowID  string  `json:"workflow_id"`
	StepID      string  `json:"step_id"`
	AgentType   string  `json:"agent_type"`
	ExecutionMS int64   `json:"execution_ms"`
	Confidence  *float64 `json:"confidence,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

// StepFailedPayload is emitted on step failure. WillRetry
// distinguishes a retryable failure from a terminal one; cascade
// failures carry Reason "dependency_failed".
type StepFailedPayload struct {
	Type         string `json:"type"` // EventTypeStepFailed or EventTypeStepCancelled
	WorkflowID   string `json:"workflow_id"`
	StepID       string `json:"step_id"`
	AgentType    string `json:"agent_type"`
	ErrorMessage string `json:"error_message"`
	Reason       string `json:"reason,omitempty"`
	WillRetry    bool   `json:"will_retry"`
	Timestamp    string `json:"timestamp"`
}

// WorkflowTerminalPayload is the single terminal event of a workflow:
// workflow_completed, workflow_error, or workflow_cancelled.
type WorkflowTerminalPayload struct {
	Type           string `json:"type"`
	WorkflowID     string `json:"workflow_id"`
	ConversationID string `json:"conversation_id"`
	Status         string `json:"status"`
	CompletedSteps int    `json:"completed_steps"`
	FailedSteps    int    `json:"failed_steps"`
	ErrorMessage   string `json:"error_message,omitempty"`
	Timestamp      string `json:"timestamp"`
}

// StepHeartbeatPayload is the transient liveness signal for an
// in-flight step.
type StepHeartbeatPayload struct {
	Type       string `json:"type"` // always EventTypeStepHeartbeat
	WorkflowID string `json:"workflow_id"`
	StepID     string `json:"step_id"`
	Timestamp  string `json:"timestamp"`
}

// AgentStatusPayload reports an agent's progress to a conversation
// subscriber.
type AgentStatusPayload struct {
	Type           string `json:"type"` // always EventTypeAgentStatus
	ConversationID string `json:"conversation_id"`
	WorkflowID     string `json:"workflow_id,omitempty"`
	AgentName      string `json:"agent_name"`
	Status         string `json:"status"`
	Detail         string `json:"detail,omitempty"`
	Timestamp      string `json:"timestamp"`
}

// MessagePayload announces a newly appended conversation message.
type MessagePayload struct {
	Type           string `json:"type"` // always EventTypeMessage
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id"`
	Role           string `json:"role"`
	Content        string `json:"content"`
	Timestamp      string `json:"timestamp"`
}

// EditProposalCreatedPayload tells the conversation that an agent
// proposed an edit awaiting approval.
type EditProposalCreatedPayload struct {
	Type            string `json:"type"` // always EventTypeEditProposalCreated
	ConversationID  string `json:"conversation_id"`
	ProposalID      string `json:"proposal_id"`
	DocumentID      string `json:"document_id"`
	AgentName       string `json:"agent_name"`
	Summary         string `json:"summary"`
	RequiresPreview bool   `json:"requires_preview"`
	OperationCount  int    `json:"operation_count"`
	Timestamp       string `json:"timestamp"`
}

// RoomMessagePayload announces a new room message. The body is never
// included: subscribers fetch and decrypt through the room service.
type RoomMessagePayload struct {
	Type      string `json:"type"` // always EventTypeRoomMessage
	RoomID    string `json:"room_id"`
	MessageID string `json:"message_id"`
	SenderID  string `json:"sender_id"`
	Seq       int64  `json:"seq"`
	Timestamp string `json:"timestamp"`
}
