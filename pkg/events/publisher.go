package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher writes events for cross-pod delivery. Persistent
// events are inserted into the events table and broadcast via NOTIFY
// in one transaction; transient events are NOTIFY-only.
//
// Each public method takes a typed payload struct from payloads.go.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a publisher over the shared pool. The db
// parameter should be database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// Timestamp formats a time for event payloads.
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// --- Workflow channel ---

// PublishWorkflowStarted persists and broadcasts workflow_started.
func (p *EventPublisher) PublishWorkflowStarted(ctx context.Context, workflowID string, payload WorkflowStartedPayload) error {
	return p.publishPersistent(ctx, WorkflowChannel(workflowID), payload)
}

// PublishWorkflowPlanned persists and broadcasts workflow_planned.
func (p *EventPublisher) PublishWorkflowPlanned(ctx context.Context, workflowID string, payload WorkflowPlannedPayload) error {
	return p.publishPersistent(ctx, WorkflowChannel(workflowID), payload)
}

// PublishStepStatus persists and broadcasts a step_starting,
// step_prepared, or step_executing event.
func (p *EventPublisher) PublishStepStatus(ctx context.Context, workflowID string, payload StepStatusPayload) error {
	return p.publishPersistent(ctx, WorkflowChannel(workflowID), payload)
}

// PublishStepCompleted persists and broadcasts step_completed.
func (p *EventPublisher) PublishStepCompleted(ctx context.Context, workflowID string, payload StepCompletedPayload) error {
	return p.publishPersistent(ctx, WorkflowChannel(workflowID), payload)
}

// PublishStepFailed persists and broadcasts step_failed or
// step_cancelled.
func (p *EventPublisher) PublishStepFailed(ctx context.Context, workflowID string, payload StepFailedPayload) error {
	return p.publishPersistent(ctx, WorkflowChannel(workflowID), payload)
}

// PublishWorkflowTerminal persists the workflow's single terminal
// event to its own channel and broadcasts a transient copy to the
// global workflows channel. Both publishes are attempted; the first
// error wins.
func (p *EventPublisher) PublishWorkflowTerminal(ctx context.Context, workflowID string, payload WorkflowTerminalPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WorkflowTerminalPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, WorkflowChannel(workflowID), payloadJSON); err != nil {
		slog.Warn("Failed to publish workflow terminal event to workflow channel",
			"workflow_id", workflowID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalWorkflowsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish workflow terminal event to global channel",
			"workflow_id", workflowID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishStepHeartbeat broadcasts a transient liveness signal for an
// in-flight step (no persistence).
func (p *EventPublisher) PublishStepHeartbeat(ctx context.Context, workflowID string, payload StepHeartbeatPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StepHeartbeatPayload: %w", err)
	}
	return p.notifyOnly(ctx, WorkflowChannel(workflowID), payloadJSON)
}

// --- Conversation channel ---

// PublishAgentStatus persists and broadcasts agent_status.
func (p *EventPublisher) PublishAgentStatus(ctx context.Context, conversationID string, payload AgentStatusPayload) error {
	return p.publishPersistent(ctx, ConversationChannel(conversationID), payload)
}

// PublishMessage persists and broadcasts a conversation message event.
func (p *EventPublisher) PublishMessage(ctx context.Context, conversationID string, payload MessagePayload) error {
	return p.publishPersistent(ctx, ConversationChannel(conversationID), payload)
}

// PublishEditProposalCreated persists and broadcasts
// edit_proposal_created.
func (p *EventPublisher) PublishEditProposalCreated(ctx context.Context, conversationID string, payload EditProposalCreatedPayload) error {
	return p.publishPersistent(ctx, ConversationChannel(conversationID), payload)
}

// --- Room channel ---

// PublishRoomMessage persists and broadcasts room_message.
func (p *EventPublisher) PublishRoomMessage(ctx context.Context, roomID string, payload RoomMessagePayload) error {
	return p.publishPersistent(ctx, RoomChannel(roomID), payload)
}

// --- Internal core methods ---

func (p *EventPublisher) publishPersistent(ctx context.Context, channel string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	return p.persistAndNotify(ctx, channel, payloadJSON)
}

// persistAndNotify inserts the event row and fires pg_notify in a
// single transaction. pg_notify is transactional: the notification is
// held until COMMIT, so listeners never see an event whose row did
// not land.
func (p *EventPublisher) persistAndNotify(ctx context.Context, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, payload, created_at) VALUES ($1, $2, $3) RETURNING id`,
		channel, string(payloadJSON), time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without persistence.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the NOTIFY copy of
// the payload (the catchup cursor) and truncates if oversized.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded keeps payloads under PostgreSQL's 8000-byte NOTIFY
// limit. Oversized payloads collapse to a routing envelope; the
// subscriber fetches the full row by db_event_id.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type           string `json:"type"`
		WorkflowID     string `json:"workflow_id"`
		ConversationID string `json:"conversation_id"`
		StepID         string `json:"step_id"`
		DBEventID      *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"truncated": true,
	}
	if routing.WorkflowID != "" {
		truncated["workflow_id"] = routing.WorkflowID
	}
	if routing.ConversationID != "" {
		truncated["conversation_id"] = routing.ConversationID
	}
	if routing.StepID != "" {
		truncated["step_id"] = routing.StepID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
