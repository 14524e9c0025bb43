package workflow

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entstep "github.com/scriptor-ai/scriptor/ent/workflowstep"
	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// runStep executes one step: mark running, prepare inputs from
// completed ancestors, invoke the agent, write outputs to shared
// memory, create handoffs, checkpoint, and emit step events in order.
func (e *Engine) runStep(ctx context.Context, x *execution, run *stepRun) (*agent.Result, error) {
	wf := x.wf
	row := run.row
	log := e.logger.With("workflow_id", wf.ID, "step_id", row.StepID, "agent_type", row.AgentType)
	started := time.Now()

	e.publishStepStatus(ctx, wf, run, events.EventTypeStepStarting)

	if err := e.client.WorkflowStep.UpdateOneID(row.ID).
		SetStatus(entstep.StatusRunning).
		SetStartedAt(started).
		Exec(ctx); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to mark step running")
	}
	x.writeCheckpoint(ctx, "step_started:"+row.StepID)

	execCtx, err := e.buildExecutionContext(x, run)
	if err != nil {
		return nil, err
	}
	e.consumeHandoffs(execCtx.Principal, x, row.StepID)
	e.publishStepStatus(ctx, wf, run, events.EventTypeStepPrepared)

	instance, err := e.agents.Create(row.AgentType)
	if err != nil {
		return nil, err
	}

	e.publishStepStatus(ctx, wf, run, events.EventTypeStepExecuting)

	heartbeatCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go e.runStepHeartbeat(heartbeatCtx, wf.ID, row.StepID)

	result, err := instance.Process(ctx, execCtx)
	if err != nil {
		if ctx.Err() != nil && fault.KindOf(err) != fault.KindCancelled {
			err = fault.Wrap(fault.KindCancelled, err, "step interrupted")
		}
		return nil, err
	}
	if result == nil {
		return nil, fault.New(fault.KindAgentFailed, "agent %s returned no result", row.AgentType)
	}
	if !result.Success {
		return result, nil
	}

	if err := e.commitStepSuccess(ctx, x, run, execCtx, result, started); err != nil {
		return nil, err
	}

	log.Info("Step completed",
		"execution_ms", time.Since(started).Milliseconds(),
		"outputs", len(result.DataOutputs),
		"tools_used", len(result.ToolsUsed))
	return result, nil
}

// buildExecutionContext resolves the agent definition, provider, LLM
// client, ancestor outputs, and editor snapshot for one step run.
func (e *Engine) buildExecutionContext(x *execution, run *stepRun) (*agent.ExecutionContext, error) {
	wf := x.wf
	row := run.row

	def, err := e.cfg.Agents.Get(row.AgentType)
	if err != nil {
		return nil, fault.Wrap(fault.KindFatalConfig, err, "unknown agent type %q", row.AgentType)
	}

	providerName := def.LLMProvider
	if providerName == "" {
		providerName = e.cfg.Defaults.LLMProvider
	}
	provider, err := e.cfg.LLMProviders.Get(providerName)
	if err != nil {
		return nil, fault.Wrap(fault.KindFatalConfig, err, "unknown LLM provider %q", providerName)
	}

	llm, err := e.llmFor(provider)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to build LLM client for %q", providerName)
	}

	principal := models.Principal{UserID: wf.UserID}
	ancestors, err := e.ancestorOutputs(principal, x, row)
	if err != nil {
		return nil, err
	}

	persona := e.cfg.Defaults.Persona
	if p, ok := wf.UserContext["persona"].(string); ok && p != "" {
		persona = p
	}

	return &agent.ExecutionContext{
		WorkflowID:           wf.ID,
		StepID:               row.StepID,
		ExecutionID:          uuid.NewString(),
		ConversationID:       wf.ConversationID,
		AgentType:            row.AgentType,
		Principal:            principal,
		TaskDescription:      row.TaskDescription,
		InputRequirements:    row.InputRequirements,
		OutputSpecifications: row.OutputSpecifications,
		Definition:           def,
		Provider:             provider,
		Persona:              persona,
		Memory:               e.memory,
		AncestorOutputs:      ancestors,
		ActiveEditor:         decodeActiveEditor(wf.UserContext),
		LLM:                  llm,
		Tools:                e.tools,
		Publisher:            e.publisher,
		Logger:               e.logger.With("workflow_id", wf.ID, "step_id", row.StepID),
		ResumeCursors:        run.cursorsSnapshot(),
		Checkpoint:           run.checkpointNode,
	}, nil
}

// ancestorOutputs gathers data_outputs of every completed transitive
// ancestor, namespaced by step id. The scheduler guarantees direct
// dependencies completed before this step became ready; transitive
// ones completed before those.
func (e *Engine) ancestorOutputs(principal models.Principal, x *execution, row *ent.WorkflowStep) (map[string]map[string]any, error) {
	snapshot, err := e.memory.Snapshot(principal, x.wf.ConversationID)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to snapshot shared memory")
	}

	outputs := make(map[string]map[string]any)
	seen := map[string]bool{}
	var walk func(stepID string)
	walk = func(stepID string) {
		if seen[stepID] {
			return
		}
		seen[stepID] = true
		if ns, ok := snapshot[stepID].(map[string]any); ok {
			outputs[stepID] = ns
		}
		for _, dep := range x.dependsOf(stepID) {
			walk(dep)
		}
	}
	for _, dep := range row.DependsOn {
		walk(dep)
	}
	return outputs, nil
}

// commitStepSuccess writes outputs to shared memory, persists the step
// row, creates handoffs, files any emitted edit operations as a
// proposal, checkpoints, and emits step_completed.
func (e *Engine) commitStepSuccess(ctx context.Context, x *execution, run *stepRun, execCtx *agent.ExecutionContext, result *agent.Result, started time.Time) error {
	wf := x.wf
	row := run.row

	// Outputs live under the step's namespace; the response rides
	// along for sink aggregation and downstream prompts.
	namespace := make(map[string]any, len(result.DataOutputs)+1)
	for k, v := range result.DataOutputs {
		namespace[k] = v
	}
	if result.Response != "" {
		namespace["response"] = result.Response
	}
	if err := e.memory.Merge(execCtx.Principal, wf.ConversationID, map[string]any{row.StepID: namespace}); err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to write step outputs to shared memory")
	}
	if result.Response != "" {
		if err := e.memory.Put(execCtx.Principal, wf.ConversationID, row.StepID+".response", result.Response); err != nil {
			return fault.Wrap(fault.KindTransient, err, "failed to record step response")
		}
	}

	e.createHandoffs(execCtx.Principal, x, row, result)
	e.fileEditProposal(ctx, x, row, execCtx, result)

	executionMS := time.Since(started).Milliseconds()
	summary := map[string]interface{}{
		"success":      true,
		"execution_id": execCtx.ExecutionID,
		"tools_used":   len(result.ToolsUsed),
		"operations":   len(result.Operations),
	}
	if len(result.Warnings) > 0 {
		summary["warnings"] = result.Warnings
	}
	if result.ConfidenceScore != nil {
		summary["confidence_score"] = *result.ConfidenceScore
	}
	if err := e.client.WorkflowStep.UpdateOneID(row.ID).
		SetStatus(entstep.StatusCompleted).
		SetResult(summary).
		SetCompletedAt(time.Now()).
		SetExecutionMs(executionMS).
		Exec(context.WithoutCancel(ctx)); err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to persist step completion")
	}

	x.writeCheckpoint(ctx, "step_completed:"+row.StepID)

	if e.publisher != nil {
		err := e.publisher.PublishStepCompleted(ctx, wf.ID, events.StepCompletedPayload{
			Type:        events.EventTypeStepCompleted,
			WorkflowID:  wf.ID,
			StepID:      row.StepID,
			AgentType:   row.AgentType,
			ExecutionMS: executionMS,
			Confidence:  result.ConfidenceScore,
			Timestamp:   events.Timestamp(time.Now()),
		})
		if err != nil {
			e.logger.Warn("Failed to publish step_completed", "step_id", row.StepID, "error", err)
		}
	}
	return nil
}

// runStepHeartbeat emits the transient liveness event for an in-flight
// step.
func (e *Engine) runStepHeartbeat(ctx context.Context, workflowID, stepID string) {
	if e.publisher == nil {
		return
	}
	interval := e.cfg.WorkerPool.HeartbeatInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := e.publisher.PublishStepHeartbeat(ctx, workflowID, events.StepHeartbeatPayload{
				Type:       events.EventTypeStepHeartbeat,
				WorkflowID: workflowID,
				StepID:     stepID,
				Timestamp:  events.Timestamp(time.Now()),
			})
			if err != nil {
				e.logger.Debug("Step heartbeat publish failed", "step_id", stepID, "error", err)
			}
		}
	}
}

func (e *Engine) publishStepStatus(ctx context.Context, wf *ent.Workflow, run *stepRun, eventType string) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishStepStatus(ctx, wf.ID, events.StepStatusPayload{
		Type:       eventType,
		WorkflowID: wf.ID,
		StepID:     run.row.StepID,
		AgentType:  run.row.AgentType,
		Attempt:    run.retryCount,
		Timestamp:  events.Timestamp(time.Now()),
	})
	if err != nil {
		e.logger.Warn("Failed to publish step status", "step_id", run.row.StepID, "type", eventType, "error", err)
	}
}

// decodeActiveEditor extracts the editor snapshot from the workflow's
// user context, if the request carried one.
func decodeActiveEditor(userContext map[string]interface{}) *models.ActiveEditor {
	raw, ok := userContext["active_editor"]
	if !ok {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var editor models.ActiveEditor
	if err := json.Unmarshal(data, &editor); err != nil {
		return nil
	}
	if editor.DocumentID == "" && editor.Content == "" {
		return nil
	}
	return &editor
}
