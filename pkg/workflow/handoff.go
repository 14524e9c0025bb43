package workflow

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// handoffKey is the shared-memory key carrying the pending handoffs of
// one destination step.
func handoffKey(toStepID string) string {
	return "handoffs." + toStepID
}

// createHandoffs writes one typed handoff packet per dependent step
// into shared memory. Dependents consume them when they start.
func (e *Engine) createHandoffs(principal models.Principal, x *execution, row *ent.WorkflowStep, result *agent.Result) {
	x.mu.Lock()
	var dependents []*ent.WorkflowStep
	for _, run := range x.steps {
		for _, dep := range run.row.DependsOn {
			if dep == row.StepID {
				dependents = append(dependents, run.row)
				break
			}
		}
	}
	x.mu.Unlock()

	// Parallel steps sharing a dependent complete concurrently; the
	// get-append-put below must not interleave or a packet is lost.
	x.handoffMu.Lock()
	defer x.handoffMu.Unlock()

	for _, dependent := range dependents {
		handoff := models.DataHandoff{
			HandoffID:   uuid.NewString(),
			Type:        classifyHandoff(row.AgentType, dependent.AgentType),
			FromAgent:   row.AgentType,
			ToAgent:     dependent.AgentType,
			FromStepID:  row.StepID,
			ToStepID:    dependent.StepID,
			DataPackage: result.DataOutputs,
			CreatedAt:   time.Now().UTC(),
		}
		if data, err := json.Marshal(handoff.DataPackage); err == nil {
			handoff.SizeBytes = len(data)
		}

		key := handoffKey(dependent.StepID)
		var pending []any
		if existing, ok, err := e.memory.Get(principal, x.wf.ConversationID, key); err == nil && ok {
			if list, isList := existing.([]any); isList {
				pending = list
			}
		}
		pending = append(pending, handoff)
		if err := e.memory.Put(principal, x.wf.ConversationID, key, pending); err != nil {
			e.logger.Warn("Failed to record handoff",
				"from_step", row.StepID,
				"to_step", dependent.StepID,
				"error", err)
		}
	}
}

// consumeHandoffs marks the pending handoffs of a starting step as
// consumed. The packets stay in memory until workflow archival.
func (e *Engine) consumeHandoffs(principal models.Principal, x *execution, stepID string) {
	x.handoffMu.Lock()
	defer x.handoffMu.Unlock()

	key := handoffKey(stepID)
	existing, ok, err := e.memory.Get(principal, x.wf.ConversationID, key)
	if err != nil || !ok {
		return
	}
	list, isList := existing.([]any)
	if !isList {
		return
	}
	for i, item := range list {
		if handoff, isHandoff := item.(models.DataHandoff); isHandoff {
			handoff.Consumed = true
			list[i] = handoff
		}
	}
	if err := e.memory.Put(principal, x.wf.ConversationID, key, list); err != nil {
		e.logger.Warn("Failed to mark handoffs consumed", "step_id", stepID, "error", err)
	}
}

// classifyHandoff maps an (origin, destination) agent pair onto the
// typed handoff taxonomy.
func classifyHandoff(fromAgent, toAgent string) models.HandoffType {
	switch {
	case fromAgent == "research" && toAgent == "analysis":
		return models.HandoffResearchToAnalysis
	case fromAgent == "analysis" && toAgent == "coding":
		return models.HandoffAnalysisToCoding
	case fromAgent == "research" && toAgent == "coding":
		return models.HandoffResearchToCoding
	case fromAgent == "coding" && toAgent == "validation":
		return models.HandoffCodingToValidation
	case toAgent == "synthesis":
		return models.HandoffMultiResearchSynthesis
	default:
		return models.HandoffIterativeRefinement
	}
}
