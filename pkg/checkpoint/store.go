package checkpoint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entcheckpoint "github.com/scriptor-ai/scriptor/ent/checkpoint"
	entworkflow "github.com/scriptor-ai/scriptor/ent/workflow"
	"github.com/scriptor-ai/scriptor/pkg/fault"
)

// Store reads and writes workflow checkpoints.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStore creates a checkpoint store.
func NewStore(client *ent.Client) *Store {
	return &Store{
		client: client,
		logger: slog.With("component", "checkpoint"),
	}
}

// Put appends a new checkpoint for the workflow. The next sequence
// number is allocated inside a transaction that locks the workflow row,
// so concurrent writers for the same workflow serialise and sequences
// stay gapless and monotonic. The write is committed before returning.
func (s *Store) Put(ctx context.Context, conversationID, workflowID, phase string, state *WorkflowState) (*ent.Checkpoint, error) {
	payload, err := encodeState(state)
	if err != nil {
		return nil, fault.Wrap(fault.KindBadInput, err, "invalid checkpoint state")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Serialisation point for this workflow's checkpoint stream.
	_, err = tx.Workflow.Query().
		Where(entworkflow.ID(workflowID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "workflow %s not found", workflowID)
		}
		return nil, fmt.Errorf("failed to lock workflow: %w", err)
	}

	var seq int64 = 1
	var parentSeq *int64
	latest, err := tx.Checkpoint.Query().
		Where(entcheckpoint.WorkflowID(workflowID)).
		Order(ent.Desc(entcheckpoint.FieldSeq)).
		First(ctx)
	switch {
	case err == nil:
		seq = latest.Seq + 1
		parent := latest.Seq
		parentSeq = &parent
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query latest checkpoint: %w", err)
	}

	builder := tx.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetWorkflowID(workflowID).
		SetSeq(seq).
		SetPhase(phase).
		SetState(payload)
	if parentSeq != nil {
		builder.SetParentSeq(*parentSeq)
	}

	cp, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkpoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkpoint: %w", err)
	}

	s.logger.Debug("Checkpoint written",
		"workflow_id", workflowID, "seq", seq, "phase", phase)
	return cp, nil
}

// Latest returns the most recent checkpoint for the workflow.
func (s *Store) Latest(ctx context.Context, workflowID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(entcheckpoint.WorkflowID(workflowID)).
		Order(ent.Desc(entcheckpoint.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "no checkpoints for workflow %s", workflowID)
		}
		return nil, fmt.Errorf("failed to query latest checkpoint: %w", err)
	}
	return cp, nil
}

// Get returns one checkpoint by id.
func (s *Store) Get(ctx context.Context, checkpointID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Get(ctx, checkpointID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "checkpoint %s not found", checkpointID)
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return cp, nil
}

// List returns all checkpoints for the workflow in sequence order.
func (s *Store) List(ctx context.Context, workflowID string) ([]*ent.Checkpoint, error) {
	cps, err := s.client.Checkpoint.Query().
		Where(entcheckpoint.WorkflowID(workflowID)).
		Order(ent.Asc(entcheckpoint.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	return cps, nil
}

// GC deletes checkpoints of terminal workflows that completed more than
// olderThan ago. Running workflows keep their full checkpoint history.
func (s *Store) GC(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := s.client.Checkpoint.Delete().
		Where(entcheckpoint.HasWorkflowWith(
			entworkflow.StatusIn(
				entworkflow.StatusCompleted,
				entworkflow.StatusFailed,
				entworkflow.StatusCancelled,
			),
			entworkflow.CompletedAtLT(cutoff),
		)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old checkpoints: %w", err)
	}
	if n > 0 {
		s.logger.Info("Checkpoint GC removed rows", "count", n, "older_than", olderThan)
	}
	return n, nil
}
