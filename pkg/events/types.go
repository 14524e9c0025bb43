// Package events provides typed event publishing and delivery over
// PostgreSQL NOTIFY/LISTEN.
//
// Lifecycle events are persisted to the events table and broadcast
// with pg_notify in the same transaction, so subscribers that
// reconnect can catch up from the table by db_event_id and never
// observe a notification whose row did not commit. Transient events
// (heartbeats, token-level progress) are notify-only and may be lost
// on disconnect.
//
// Delivery is ordered within one channel and unordered across
// channels. The in-process Hub fans notifications out to local
// subscribers; the transport that would carry them to browsers is an
// external collaborator and out of scope here.
package events

// Workflow lifecycle event types (persisted + NOTIFY). For one
// workflow exactly one workflow_started and exactly one terminal
// event (workflow_completed, workflow_error, or workflow_cancelled)
// are ever emitted, and per-step events follow the order
// starting → prepared → executing → completed|failed.
const (
	EventTypeWorkflowStarted   = "workflow_started"
	EventTypeWorkflowPlanned   = "workflow_planned"
	EventTypeStepStarting      = "step_starting"
	EventTypeStepPrepared      = "step_prepared"
	EventTypeStepExecuting     = "step_executing"
	EventTypeStepCompleted     = "step_completed"
	EventTypeStepFailed        = "step_failed"
	EventTypeStepCancelled     = "step_cancelled"
	EventTypeWorkflowCompleted = "workflow_completed"
	EventTypeWorkflowError     = "workflow_error"
	EventTypeWorkflowCancelled = "workflow_cancelled"
)

// Conversation event types (persisted + NOTIFY).
const (
	EventTypeAgentStatus         = "agent_status"
	EventTypeMessage             = "message"
	EventTypeEditProposalCreated = "edit_proposal_created"
	EventTypeRoomMessage         = "room_message"
)

// Transient event types (NOTIFY only, no persistence).
const (
	// Liveness signal for in-flight steps, emitted at least every 30s.
	EventTypeStepHeartbeat = "step_heartbeat"
)

// GlobalWorkflowsChannel carries workflow-level status events for
// dashboards that watch every workflow.
const GlobalWorkflowsChannel = "workflows"

// WorkflowChannel returns the channel name for one workflow's events.
func WorkflowChannel(workflowID string) string {
	return "workflow:" + workflowID
}

// ConversationChannel returns the channel name for one conversation's
// events.
func ConversationChannel(conversationID string) string {
	return "conversation:" + conversationID
}

// RoomChannel returns the channel name for one messaging room.
func RoomChannel(roomID string) string {
	return "room:" + roomID
}
