package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/scriptor-ai/scriptor/ent"
	entstep "github.com/scriptor-ai/scriptor/ent/workflowstep"
	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/checkpoint"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/memory"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

const (
	// DefaultMaxRetries is the per-step retry budget when the plan does
	// not set one.
	DefaultMaxRetries = 2

	// maxSchedulingRounds caps the scheduler loop per workflow. A
	// well-formed plan stays far under this; hitting it means the loop
	// is not converging.
	maxSchedulingRounds = 50
)

// Step and workflow status strings shared by the scheduler. They
// mirror the ent enum values.
const (
	statusPending   = "pending"
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusCancelled = "cancelled"
)

// LLMFactory builds an LLM client for a resolved provider. Injected so
// tests can substitute a scripted client.
type LLMFactory func(provider *config.LLMProviderConfig) (agent.LLMClient, error)

// Engine executes claimed workflows: it resolves the persisted plan
// into a scheduling state, runs ready steps up to max_parallel,
// retries failures, cascades dependency failures, and emits the
// lifecycle event stream.
type Engine struct {
	client      *ent.Client
	cfg         *config.Config
	agents      *agent.Registry
	memory      *memory.Store
	checkpoints *checkpoint.Store
	publisher   *events.EventPublisher
	tools       agent.ToolExecutor
	proposer    EditProposer
	llmFactory  LLMFactory
	logger      *slog.Logger

	// One LLM client per provider endpoint, created lazily.
	llmMu      sync.Mutex
	llmClients map[string]agent.LLMClient
}

// NewEngine wires an engine. publisher, tools, checkpoints, and
// proposer may be nil (disabled, e.g. in tests).
func NewEngine(client *ent.Client, cfg *config.Config, agents *agent.Registry, mem *memory.Store, checkpoints *checkpoint.Store, publisher *events.EventPublisher, tools agent.ToolExecutor, proposer EditProposer, llmFactory LLMFactory) *Engine {
	return &Engine{
		client:      client,
		cfg:         cfg,
		agents:      agents,
		memory:      mem,
		checkpoints: checkpoints,
		publisher:   publisher,
		tools:       tools,
		proposer:    proposer,
		llmFactory:  llmFactory,
		logger:      slog.With("component", "workflow.engine"),
		llmClients:  make(map[string]agent.LLMClient),
	}
}

// ExecutionResult is the terminal outcome the worker persists.
type ExecutionResult struct {
	Status         string
	FinalOutput    string
	ErrorMessage   string
	CompletedSteps int
	FailedSteps    int
}

// stepRun is the scheduling view of one step row. status and
// retryCount are guarded by the owning execution's mutex; cursors have
// their own lock because the step goroutine writes them mid-run.
type stepRun struct {
	row        *ent.WorkflowStep
	status     string
	retryCount int
	failReason string

	cursorMu sync.Mutex
	cursors  map[string]string
}

// checkpointNode records the last completed graph node, so a retry of
// this step resumes instead of replaying.
func (run *stepRun) checkpointNode(_ context.Context, namespace, node string) error {
	run.cursorMu.Lock()
	defer run.cursorMu.Unlock()
	if run.cursors == nil {
		run.cursors = make(map[string]string)
	}
	run.cursors[namespace] = node
	return nil
}

func (run *stepRun) cursorsSnapshot() map[string]string {
	run.cursorMu.Lock()
	defer run.cursorMu.Unlock()
	out := make(map[string]string, len(run.cursors))
	for k, v := range run.cursors {
		out[k] = v
	}
	return out
}

type stepOutcome struct {
	stepID string
	result *agent.Result
	err    error
}

// execution is the live scheduling state of one claimed workflow.
type execution struct {
	engine *Engine
	wf     *ent.Workflow

	mu    sync.Mutex
	steps map[string]*stepRun
	order []string

	// handoffMu serialises read-modify-write cycles on the shared
	// handoff keys; two parallel steps completing together must not
	// overwrite each other's packets.
	handoffMu sync.Mutex
}

// Execute runs a claimed workflow to a terminal state. The caller owns
// the workflow row and persists the returned result.
func (e *Engine) Execute(ctx context.Context, wf *ent.Workflow) *ExecutionResult {
	log := e.logger.With("workflow_id", wf.ID)

	rows, err := e.client.WorkflowStep.Query().
		Where(entstep.WorkflowIDEQ(wf.ID)).
		Order(ent.Asc(entstep.FieldStepID)).
		All(ctx)
	if err != nil {
		return &ExecutionResult{Status: statusFailed, ErrorMessage: fmt.Sprintf("failed to load steps: %v", err)}
	}
	if len(rows) == 0 {
		// An empty plan has nothing to run; complete immediately.
		result := &ExecutionResult{Status: statusCompleted}
		e.publishTerminal(ctx, wf, result)
		return result
	}

	// Shared memory may be empty after a pod restart; registering an
	// existing conversation is a no-op.
	e.memory.Register(wf.ConversationID, wf.UserID)

	exec := &execution{
		engine: e,
		wf:     wf,
		steps:  make(map[string]*stepRun, len(rows)),
	}
	for _, row := range rows {
		exec.steps[row.StepID] = &stepRun{row: row, status: row.Status.String(), retryCount: row.RetryCount}
		exec.order = append(exec.order, row.StepID)
	}

	e.publishPlanned(ctx, wf, exec.order)
	result := exec.run(ctx)
	log.Info("Workflow execution finished",
		"status", result.Status,
		"completed_steps", result.CompletedSteps,
		"failed_steps", result.FailedSteps)
	return result
}

// run is the scheduling loop.
func (x *execution) run(ctx context.Context) *ExecutionResult {
	e := x.engine

	maxParallel := x.wf.MaxParallel
	if maxParallel <= 0 {
		maxParallel = e.cfg.WorkerPool.DefaultMaxParallel
	}

	outcomes := make(chan stepOutcome)
	running := 0

	for rounds := 1; ; rounds++ {
		if rounds > maxSchedulingRounds {
			e.logger.Error("Scheduler round cap exceeded", "workflow_id", x.wf.ID, "rounds", rounds)
			x.cancelPending(statusCancelled, "scheduler_overflow")
			return x.finish(ctx, statusFailed, "scheduler_overflow")
		}

		x.cascadeDependencyFailures(ctx)
		launched := x.launchReady(ctx, maxParallel-running, outcomes)
		running += launched

		if running == 0 {
			break
		}

		select {
		case outcome := <-outcomes:
			running--
			x.applyOutcome(ctx, outcome)
			if ctx.Err() != nil {
				for running > 0 {
					outcome := <-outcomes
					running--
					x.applyOutcome(ctx, outcome)
				}
				x.cancelPending(statusCancelled, "workflow_cancelled")
				return x.finish(ctx, statusCancelled, "")
			}
		case <-ctx.Done():
			// In-flight steps observe ctx at their own suspension
			// points; collect them, then mark the rest cancelled.
			for running > 0 {
				outcome := <-outcomes
				running--
				x.applyOutcome(ctx, outcome)
			}
			x.cancelPending(statusCancelled, "workflow_cancelled")
			return x.finish(ctx, statusCancelled, "")
		}
	}

	status := x.terminalStatus()
	return x.finish(ctx, status, "")
}

// cascadeDependencyFailures fails every pending step whose dependency
// can no longer complete.
func (x *execution) cascadeDependencyFailures(ctx context.Context) {
	e := x.engine
	x.mu.Lock()
	var cascaded []*stepRun
	for _, id := range x.order {
		run := x.steps[id]
		if run.status != statusPending {
			continue
		}
		if failedDep := x.firstFailedDepLocked(run); failedDep != "" {
			run.status = statusFailed
			run.failReason = "dependency_failed"
			cascaded = append(cascaded, run)
		}
	}
	x.mu.Unlock()

	for _, run := range cascaded {
		msg := "dependency failed"
		e.persistStepFailure(ctx, run, msg)
		e.publishStepFailed(ctx, x.wf, run, msg, "dependency_failed", false)
	}
}

// launchReady starts up to slots ready steps and returns how many.
func (x *execution) launchReady(ctx context.Context, slots int, outcomes chan<- stepOutcome) int {
	launched := 0
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, id := range x.order {
		if launched >= slots {
			break
		}
		run := x.steps[id]
		if run.status != statusPending || !x.depsCompletedLocked(run) {
			continue
		}
		run.status = statusRunning
		launched++
		go func(run *stepRun) {
			result, err := x.engine.runStep(ctx, x, run)
			outcomes <- stepOutcome{stepID: run.row.StepID, result: result, err: err}
		}(run)
	}
	return launched
}

// applyOutcome folds one finished step back into the scheduling state.
func (x *execution) applyOutcome(ctx context.Context, outcome stepOutcome) {
	e := x.engine
	x.mu.Lock()
	run := x.steps[outcome.stepID]
	x.mu.Unlock()

	switch {
	case outcome.err == nil && outcome.result != nil && outcome.result.Success:
		x.setStatus(run, statusCompleted)

	case fault.KindOf(outcome.err) == fault.KindCancelled:
		x.setStatus(run, statusCancelled)

	default:
		errMsg := "agent returned failure"
		if outcome.err != nil {
			errMsg = outcome.err.Error()
		} else if outcome.result != nil && outcome.result.ErrorMessage != "" {
			errMsg = outcome.result.ErrorMessage
		}

		// Config errors never succeed on retry.
		retryable := fault.KindOf(outcome.err) != fault.KindFatalConfig
		if retryable && run.retryCount < run.row.MaxRetries {
			x.mu.Lock()
			run.retryCount++
			run.status = statusPending
			x.mu.Unlock()
			e.persistRetry(ctx, run)
			e.publishStepFailed(ctx, x.wf, run, errMsg, "", true)
			e.logger.Warn("Step failed, re-enqueued",
				"workflow_id", x.wf.ID,
				"step_id", run.row.StepID,
				"attempt", run.retryCount,
				"error", errMsg)
			// Backoff before the retry becomes schedulable. Retries are
			// capped at 2 so this blocks the loop a few seconds at most.
			select {
			case <-time.After(fault.Backoff(run.retryCount)):
			case <-ctx.Done():
			}
			return
		}

		x.setStatus(run, statusFailed)
		e.persistStepFailure(ctx, run, errMsg)
		e.publishStepFailed(ctx, x.wf, run, errMsg, run.failReason, false)
	}
}

func (x *execution) setStatus(run *stepRun, status string) {
	x.mu.Lock()
	run.status = status
	x.mu.Unlock()
}

// cancelPending marks still-pending steps without running them.
func (x *execution) cancelPending(status, reason string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, run := range x.steps {
		if run.status == statusPending {
			run.status = status
			run.failReason = reason
		}
	}
}

// finish checkpoints the terminal state and emits the single terminal
// event.
func (x *execution) finish(ctx context.Context, status, errMsg string) *ExecutionResult {
	e := x.engine
	result := &ExecutionResult{Status: status, ErrorMessage: errMsg}

	x.mu.Lock()
	for _, run := range x.steps {
		switch run.status {
		case statusCompleted:
			result.CompletedSteps++
		case statusFailed:
			result.FailedSteps++
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("step %s failed", run.row.StepID)
			}
		}
	}
	x.mu.Unlock()

	if status == statusCompleted {
		result.FinalOutput = x.collectFinalOutput()
	}

	x.writeCheckpoint(ctx, "workflow_"+status)
	e.publishTerminal(ctx, x.wf, result)
	return result
}

// collectFinalOutput aggregates the responses of sink steps (steps no
// other step depends on).
func (x *execution) collectFinalOutput() string {
	x.mu.Lock()
	defer x.mu.Unlock()

	hasDependents := make(map[string]bool)
	for _, run := range x.steps {
		for _, dep := range run.row.DependsOn {
			hasDependents[dep] = true
		}
	}

	principal := models.Principal{UserID: x.wf.UserID}
	var out string
	for _, id := range x.order {
		run := x.steps[id]
		if hasDependents[id] || run.status != statusCompleted {
			continue
		}
		value, ok, err := x.engine.memory.Get(principal, x.wf.ConversationID, id+".response")
		if err != nil || !ok {
			continue
		}
		if text, isString := value.(string); isString && text != "" {
			if out != "" {
				out += "\n\n"
			}
			out += text
		}
	}
	return out
}

// terminalStatus derives the workflow status once nothing is runnable.
func (x *execution) terminalStatus() string {
	x.mu.Lock()
	defer x.mu.Unlock()
	failed, cancelled := 0, 0
	for _, run := range x.steps {
		switch run.status {
		case statusFailed:
			failed++
		case statusCancelled:
			cancelled++
		}
	}
	switch {
	case failed > 0:
		return statusFailed
	case cancelled > 0:
		return statusCancelled
	default:
		return statusCompleted
	}
}

func (x *execution) depsCompletedLocked(run *stepRun) bool {
	for _, dep := range run.row.DependsOn {
		depRun, ok := x.steps[dep]
		if !ok || depRun.status != statusCompleted {
			return false
		}
	}
	return true
}

func (x *execution) firstFailedDepLocked(run *stepRun) string {
	for _, dep := range run.row.DependsOn {
		depRun, ok := x.steps[dep]
		if !ok {
			return dep
		}
		if depRun.status == statusFailed || depRun.status == statusCancelled {
			return dep
		}
	}
	return ""
}

// dependsOf returns the declared dependencies of a step in this
// execution.
func (x *execution) dependsOf(stepID string) []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	if run, ok := x.steps[stepID]; ok {
		return run.row.DependsOn
	}
	return nil
}

// writeCheckpoint snapshots the full scheduling state including
// per-step node cursors. Failures are logged, not fatal: checkpoints
// accelerate recovery, they do not gate progress.
func (x *execution) writeCheckpoint(ctx context.Context, phase string) {
	e := x.engine
	if e.checkpoints == nil {
		return
	}

	x.mu.Lock()
	state := &checkpoint.WorkflowState{
		WorkflowStatus: x.wf.Status.String(),
		Steps:          make(map[string]checkpoint.StepState, len(x.steps)),
		NodeCursors:    make(map[string]string),
	}
	for id, run := range x.steps {
		state.Steps[id] = checkpoint.StepState{
			Status:     run.status,
			RetryCount: run.retryCount,
			Error:      run.failReason,
		}
		for namespace, node := range run.cursorsSnapshot() {
			key := id
			if namespace != "" {
				key = id + "/" + namespace
			}
			state.NodeCursors[key] = node
		}
	}
	x.mu.Unlock()

	// The step ctx may already be cancelled; checkpoints still commit.
	if _, err := e.checkpoints.Put(context.WithoutCancel(ctx), x.wf.ConversationID, x.wf.ID, phase, state); err != nil {
		e.logger.Warn("Checkpoint write failed", "workflow_id", x.wf.ID, "phase", phase, "error", err)
	}
}

func (e *Engine) persistRetry(ctx context.Context, run *stepRun) {
	err := e.client.WorkflowStep.UpdateOneID(run.row.ID).
		SetStatus(entstep.StatusPending).
		SetRetryCount(run.retryCount).
		Exec(context.WithoutCancel(ctx))
	if err != nil {
		e.logger.Error("Failed to persist step retry", "step_id", run.row.StepID, "error", err)
	}
}

func (e *Engine) persistStepFailure(ctx context.Context, run *stepRun, errMsg string) {
	err := e.client.WorkflowStep.UpdateOneID(run.row.ID).
		SetStatus(entstep.Status(run.status)).
		SetErrorMessage(errMsg).
		SetCompletedAt(time.Now()).
		Exec(context.WithoutCancel(ctx))
	if err != nil {
		e.logger.Error("Failed to persist step failure", "step_id", run.row.StepID, "error", err)
	}
}

func (e *Engine) publishPlanned(ctx context.Context, wf *ent.Workflow, stepIDs []string) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishWorkflowPlanned(ctx, wf.ID, events.WorkflowPlannedPayload{
		Type:       events.EventTypeWorkflowPlanned,
		WorkflowID: wf.ID,
		TotalSteps: len(stepIDs),
		StepIDs:    stepIDs,
		Timestamp:  events.Timestamp(time.Now()),
	})
	if err != nil {
		e.logger.Warn("Failed to publish workflow_planned", "workflow_id", wf.ID, "error", err)
	}
}

func (e *Engine) publishStepFailed(ctx context.Context, wf *ent.Workflow, run *stepRun, errMsg, reason string, willRetry bool) {
	if e.publisher == nil {
		return
	}
	eventType := events.EventTypeStepFailed
	if run.status == statusCancelled {
		eventType = events.EventTypeStepCancelled
	}
	err := e.publisher.PublishStepFailed(context.WithoutCancel(ctx), wf.ID, events.StepFailedPayload{
		Type:         eventType,
		WorkflowID:   wf.ID,
		StepID:       run.row.StepID,
		AgentType:    run.row.AgentType,
		ErrorMessage: errMsg,
		Reason:       reason,
		WillRetry:    willRetry,
		Timestamp:    events.Timestamp(time.Now()),
	})
	if err != nil {
		e.logger.Warn("Failed to publish step_failed", "step_id", run.row.StepID, "error", err)
	}
}

func (e *Engine) publishTerminal(ctx context.Context, wf *ent.Workflow, result *ExecutionResult) {
	if e.publisher == nil {
		return
	}
	eventType := events.EventTypeWorkflowCompleted
	switch result.Status {
	case statusFailed:
		eventType = events.EventTypeWorkflowError
	case statusCancelled:
		eventType = events.EventTypeWorkflowCancelled
	}
	// The workflow ctx may already be cancelled and the terminal event
	// must still go out.
	err := e.publisher.PublishWorkflowTerminal(context.WithoutCancel(ctx), wf.ID, events.WorkflowTerminalPayload{
		Type:           eventType,
		WorkflowID:     wf.ID,
		ConversationID: wf.ConversationID,
		Status:         result.Status,
		CompletedSteps: result.CompletedSteps,
		FailedSteps:    result.FailedSteps,
		ErrorMessage:   result.ErrorMessage,
		Timestamp:      events.Timestamp(time.Now()),
	})
	if err != nil {
		e.logger.Error("Failed to publish workflow terminal event", "workflow_id", wf.ID, "error", err)
	}
}

// llmFor returns the (cached) LLM client for a provider.
func (e *Engine) llmFor(provider *config.LLMProviderConfig) (agent.LLMClient, error) {
	e.llmMu.Lock()
	defer e.llmMu.Unlock()
	if client, ok := e.llmClients[provider.Endpoint]; ok {
		return client, nil
	}
	client, err := e.llmFactory(provider)
	if err != nil {
		return nil, err
	}
	e.llmClients[provider.Endpoint] = client
	return client, nil
}

// Close releases cached LLM clients.
func (e *Engine) Close() {
	e.llmMu.Lock()
	defer e.llmMu.Unlock()
	for _, client := range e.llmClients {
		client.Close()
	}
	e.llmClients = make(map[string]agent.LLMClient)
}
