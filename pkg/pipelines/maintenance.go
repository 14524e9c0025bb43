package pipelines

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scriptor-ai/scriptor/ent"
	entpresence "github.com/scriptor-ai/scriptor/ent/presence"
	entworkflow "github.com/scriptor-ai/scriptor/ent/workflow"
	"github.com/scriptor-ai/scriptor/pkg/checkpoint"
	"github.com/scriptor-ai/scriptor/pkg/config"
)

// singleTarget adapts whole-table maintenance jobs to the pipeline
// shape.
func singleTarget(id string) func(ctx context.Context) ([]Target, error) {
	return func(context.Context) ([]Target, error) {
		return []Target{{ID: id}}, nil
	}
}

// NewPresenceReaperPipeline demotes users whose last_seen_at went
// stale to offline.
func NewPresenceReaperPipeline(client *ent.Client, cfg *config.PipelinesConfig) Pipeline {
	return Pipeline{
		Name:     "presence_reaper",
		Interval: cfg.PresenceReapInterval,
		Discover: singleTarget("stale_presence"),
		Handle: func(ctx context.Context, _ Target) error {
			cutoff := time.Now().Add(-cfg.PresenceOfflineAfter)
			n, err := client.Presence.Update().
				Where(
					entpresence.StatusNEQ(entpresence.StatusOffline),
					entpresence.LastSeenAtLT(cutoff),
				).
				SetStatus(entpresence.StatusOffline).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to reap stale presence: %w", err)
			}
			if n > 0 {
				slog.Info("Presence reaper marked users offline", "count", n)
			}
			return nil
		},
	}
}

// EventGC removes persisted catchup events older than a cutoff.
// Implemented by services.EventService.
type EventGC interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// NewRetentionPipeline archives terminal workflows past the retention
// window and garbage-collects their checkpoints and catchup events.
// eventGC may be nil.
func NewRetentionPipeline(client *ent.Client, checkpoints *checkpoint.Store, eventGC EventGC, cfg *config.PipelinesConfig) Pipeline {
	return Pipeline{
		Name:     "retention",
		Interval: cfg.GCInterval,
		Discover: singleTarget("retention"),
		Handle: func(ctx context.Context, _ Target) error {
			archived, err := archiveWorkflows(ctx, client, cfg.WorkflowRetention)
			if err != nil {
				return err
			}
			collected, err := checkpoints.GC(ctx, cfg.WorkflowRetention)
			if err != nil {
				return err
			}
			var eventsRemoved int
			if eventGC != nil {
				eventsRemoved, err = eventGC.DeleteOlderThan(ctx, time.Now().Add(-cfg.WorkflowRetention))
				if err != nil {
					return err
				}
			}
			if archived > 0 || collected > 0 || eventsRemoved > 0 {
				slog.Info("Retention pass complete",
					"workflows_archived", archived,
					"checkpoints_removed", collected,
					"events_removed", eventsRemoved)
			}
			return nil
		},
	}
}

// archiveWorkflows soft-deletes terminal workflows older than the
// retention window. Archived rows stay queryable but leave the worker
// pool's and the GC's scan sets.
func archiveWorkflows(ctx context.Context, client *ent.Client, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := client.Workflow.Update().
		Where(
			entworkflow.StatusIn(
				entworkflow.StatusCompleted,
				entworkflow.StatusFailed,
				entworkflow.StatusCancelled,
			),
			entworkflow.CompletedAtLT(cutoff),
			entworkflow.ArchivedAtIsNil(),
		).
		SetArchivedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to archive workflows: %w", err)
	}
	return n, nil
}

// ProposalSweeper expires stale edit proposals. Implemented by
// editor.Registry; a bare store sweep serves daemons that do not host
// the registry.
type ProposalSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// NewProposalSweepPipeline expires stale edit proposals from the
// registry and the audit rows.
func NewProposalSweepPipeline(registry ProposalSweeper, cfg *config.PipelinesConfig) Pipeline {
	return Pipeline{
		Name:     "proposal_sweep",
		Interval: cfg.ProposalSweepInterval,
		Discover: singleTarget("expired_proposals"),
		Handle: func(ctx context.Context, _ Target) error {
			n, err := registry.Sweep(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				slog.Info("Proposal sweep expired entries", "count", n)
			}
			return nil
		},
	}
}
