package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/scriptor-ai/scriptor/ent"
	entworkflow "github.com/scriptor-ai/scriptor/ent/workflow"
)

// orphanState tracks watchdog metrics.
type orphanState struct {
	mu               sync.Mutex
	lastScan         time.Time
	orphansRecovered int
}

// runOrphanWatchdog periodically scans for running workflows with
// stale heartbeats. Every pod runs this independently; the terminal
// update is idempotent.
func (p *Pool) runOrphanWatchdog(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.OrphanCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverOrphans(ctx); err != nil {
				p.logger.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// recoverOrphans marks heartbeat-stale running workflows failed.
// Orphaned runs are not resumed automatically; their checkpoints stay
// available for manual replay.
func (p *Pool) recoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.cfg.OrphanThreshold)

	orphans, err := p.client.Workflow.Query().
		Where(
			entworkflow.StatusEQ(entworkflow.StatusRunning),
			entworkflow.LastHeartbeatAtNotNil(),
			entworkflow.LastHeartbeatAtLT(threshold),
			entworkflow.ArchivedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned workflows: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.mu.Unlock()

	if len(orphans) == 0 {
		return nil
	}
	p.logger.Warn("Detected orphaned workflows", "count", len(orphans))

	recovered := 0
	for _, wf := range orphans {
		// Skip workflows this pod still owns: a missed heartbeat write
		// on a live run is a DB hiccup, not a dead pod.
		if p.isActive(wf.ID) {
			continue
		}
		if err := markOrphaned(ctx, wf, "no heartbeat"); err != nil {
			p.logger.Error("Failed to mark orphaned workflow",
				"workflow_id", wf.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()
	return nil
}

func markOrphaned(ctx context.Context, wf *ent.Workflow, cause string) error {
	podID := "unknown"
	if wf.PodID != nil {
		podID = *wf.PodID
	}
	lastHeartbeat := "unknown"
	if wf.LastHeartbeatAt != nil {
		lastHeartbeat = wf.LastHeartbeatAt.Format(time.RFC3339)
	}
	return wf.Update().
		SetStatus(entworkflow.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(fmt.Sprintf("orphaned: %s from pod %s since %s", cause, podID, lastHeartbeat)).
		Exec(ctx)
}

// CleanupStartupOrphans recovers workflows this pod owned before a
// crash. Called once during startup, before the pool starts claiming.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Workflow.Query().
		Where(
			entworkflow.StatusEQ(entworkflow.StatusRunning),
			entworkflow.PodIDEQ(podID),
			entworkflow.ArchivedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))
	for _, wf := range orphans {
		if err := markOrphaned(ctx, wf, "pod restarted mid-run"); err != nil {
			slog.Error("Failed to mark startup orphan",
				"workflow_id", wf.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "workflow_id", wf.ID)
	}
	return nil
}
