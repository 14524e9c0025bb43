package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/scriptor-ai/scriptor/ent"
	entworkflow "github.com/scriptor-ai/scriptor/ent/workflow"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/events"
)

// Sentinel results of one poll pass.
var (
	ErrNoWorkflowsAvailable = errors.New("no pending workflows available")
	ErrAtCapacity           = errors.New("global workflow capacity reached")
)

// Pool claims persisted workflows off the database queue and runs them
// through the engine. One pool per pod; multiple pods share the queue
// safely via FOR UPDATE SKIP LOCKED.
type Pool struct {
	podID  string
	client *ent.Client
	cfg    *config.WorkerPoolConfig
	engine *Engine

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Cancel registry: workflow_id -> context cancel.
	mu      sync.RWMutex
	active  map[string]context.CancelFunc
	started bool

	orphans orphanState

	logger *slog.Logger
}

// NewPool creates a worker pool.
func NewPool(podID string, client *ent.Client, cfg *config.WorkerPoolConfig, engine *Engine) *Pool {
	return &Pool{
		podID:  podID,
		client: client,
		cfg:    cfg,
		engine: engine,
		stopCh: make(chan struct{}),
		active: make(map[string]context.CancelFunc),
		logger: slog.With("component", "workflow.pool", "pod_id", podID),
	}
}

// Start launches the polling loop and the orphan watchdog. Safe to
// call once; repeated calls are no-ops.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		p.logger.Warn("Worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.logger.Info("Starting worker pool", "max_concurrent", p.cfg.MaxConcurrent)

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.runPollLoop(ctx)
	}()
	go func() {
		defer p.wg.Done()
		p.runOrphanWatchdog(ctx)
	}()
}

// Stop signals shutdown and waits for in-flight workflows to finish.
func (p *Pool) Stop() {
	active := p.activeWorkflowIDs()
	if len(active) > 0 {
		p.logger.Info("Waiting for active workflows to complete",
			"count", len(active), "workflow_ids", active)
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// CancelWorkflow cancels a workflow running on this pod. Returns false
// when the workflow is not in-flight here.
func (p *Pool) CancelWorkflow(workflowID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.active[workflowID]; ok {
		cancel()
		return true
	}
	return false
}

func (p *Pool) isActive(workflowID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.active[workflowID]
	return ok
}

// ActiveCount reports in-flight workflows on this pod.
func (p *Pool) ActiveCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.active)
}

func (p *Pool) activeWorkflowIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	return ids
}

func (p *Pool) runPollLoop(ctx context.Context) {
	p.logger.Info("Worker poll loop started")
	for {
		select {
		case <-p.stopCh:
			p.logger.Info("Worker poll loop shutting down")
			return
		case <-ctx.Done():
			p.logger.Info("Context cancelled, worker poll loop shutting down")
			return
		default:
			if err := p.pollAndRun(ctx); err != nil {
				if errors.Is(err, ErrNoWorkflowsAvailable) || errors.Is(err, ErrAtCapacity) {
					p.sleep(p.cfg.PollInterval)
					continue
				}
				p.logger.Error("Error claiming workflow", "error", err)
				p.sleep(time.Second)
			}
		}
	}
}

func (p *Pool) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}

// pollAndRun claims one pending workflow and runs it in a goroutine,
// so the poll loop keeps claiming up to the global cap.
func (p *Pool) pollAndRun(ctx context.Context) error {
	if p.ActiveCount() >= p.cfg.MaxConcurrent {
		return ErrAtCapacity
	}

	wf, err := p.claimNext(ctx)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.active[wf.ID] = cancel
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			cancel()
			p.mu.Lock()
			delete(p.active, wf.ID)
			p.mu.Unlock()
		}()
		p.process(runCtx, wf)
	}()
	return nil
}

// claimNext atomically claims the oldest pending workflow with
// FOR UPDATE SKIP LOCKED.
func (p *Pool) claimNext(ctx context.Context) (*ent.Workflow, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	wf, err := tx.Workflow.Query().
		Where(
			entworkflow.StatusEQ(entworkflow.StatusPending),
			entworkflow.ArchivedAtIsNil(),
		).
		Order(ent.Asc(entworkflow.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWorkflowsAvailable
		}
		return nil, fmt.Errorf("failed to query pending workflow: %w", err)
	}

	now := time.Now()
	wf, err = wf.Update().
		SetStatus(entworkflow.StatusRunning).
		SetPodID(p.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim workflow: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return wf, nil
}

// process runs one claimed workflow to its terminal row.
func (p *Pool) process(ctx context.Context, wf *ent.Workflow) {
	log := p.logger.With("workflow_id", wf.ID)
	log.Info("Workflow claimed")

	p.publishStarted(ctx, wf)

	heartbeatCtx, stopHeartbeat := context.WithCancel(ctx)
	go p.runHeartbeat(heartbeatCtx, wf.ID)

	result := p.engine.Execute(ctx, wf)
	stopHeartbeat()

	if result == nil {
		result = &ExecutionResult{Status: statusFailed, ErrorMessage: "engine returned no result"}
	}
	if ctx.Err() != nil && result.Status != statusCancelled && result.Status != statusCompleted {
		result.Status = statusCancelled
	}

	// Terminal write on a fresh context: the run context may be gone.
	if err := p.writeTerminal(context.Background(), wf, result); err != nil {
		log.Error("Failed to write workflow terminal status", "error", err)
		return
	}
	log.Info("Workflow processing complete", "status", result.Status)
}

func (p *Pool) writeTerminal(ctx context.Context, wf *ent.Workflow, result *ExecutionResult) error {
	update := p.client.Workflow.UpdateOneID(wf.ID).
		SetStatus(entworkflow.Status(result.Status)).
		SetCompletedAt(time.Now())
	if result.FinalOutput != "" {
		update = update.SetFinalOutput(result.FinalOutput)
	}
	if result.ErrorMessage != "" {
		update = update.SetErrorMessage(result.ErrorMessage)
	}
	return update.Exec(ctx)
}

// runHeartbeat bumps last_heartbeat_at while the workflow runs, and
// doubles as the cooperative cancellation observer: a row flipped to
// cancelled by another pod cancels the local run.
func (p *Pool) runHeartbeat(ctx context.Context, workflowID string) {
	ticker := time.NewTicker(p.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			wf, err := p.client.Workflow.Get(ctx, workflowID)
			if err != nil {
				p.logger.Warn("Heartbeat read failed", "workflow_id", workflowID, "error", err)
				continue
			}
			if wf.Status == entworkflow.StatusCancelled {
				p.CancelWorkflow(workflowID)
				return
			}
			if err := wf.Update().SetLastHeartbeatAt(time.Now()).Exec(ctx); err != nil {
				p.logger.Warn("Heartbeat update failed", "workflow_id", workflowID, "error", err)
			}
		}
	}
}

func (p *Pool) publishStarted(ctx context.Context, wf *ent.Workflow) {
	if p.engine.publisher == nil {
		return
	}
	err := p.engine.publisher.PublishWorkflowStarted(ctx, wf.ID, events.WorkflowStartedPayload{
		Type:           events.EventTypeWorkflowStarted,
		WorkflowID:     wf.ID,
		ConversationID: wf.ConversationID,
		TemplateName:   wf.TemplateName,
		Timestamp:      events.Timestamp(time.Now()),
	})
	if err != nil {
		p.logger.Warn("Failed to publish workflow_started", "workflow_id", wf.ID, "error", err)
	}
}
