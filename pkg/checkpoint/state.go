// Package checkpoint persists workflow execution snapshots. Each
// checkpoint carries a self-contained state payload so a new pod can
// resume an orphaned workflow without replaying events.
package checkpoint

import (
	"encoding/json"
	"fmt"
)

// StepState is the per-step slice of a snapshot.
type StepState struct {
	Status     string         `json:"status"`
	RetryCount int            `json:"retry_count"`
	Result     map[string]any `json:"result,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// WorkflowState is the checkpoint payload. It holds everything needed
// to resume: workflow status, per-step progress, the shared-memory
// patch written so far (namespaced by step id), and per-agent node
// cursors so a resumed agent skips nodes it already completed.
type WorkflowState struct {
	WorkflowStatus string               `json:"workflow_status"`
	Steps          map[string]StepState `json:"steps,omitempty"`
	// SharedMemory is the namespaced patch of step outputs, keyed
	// step_id -> output name -> value.
	SharedMemory map[string]map[string]any `json:"shared_memory,omitempty"`
	// NodeCursors maps step_id (or step_id/subgraph for nested graphs)
	// to the last completed node name.
	NodeCursors map[string]string `json:"node_cursors,omitempty"`
	// ParentCheckpointID is the checkpoint this state derives from.
	ParentCheckpointID string `json:"parent_checkpoint_id,omitempty"`
}

// encodeState converts the payload into the generic JSON map ent stores.
func encodeState(state *WorkflowState) (map[string]interface{}, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkpoint state: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to convert checkpoint state: %w", err)
	}
	return m, nil
}

// DecodeState converts a stored JSON map back into the typed payload.
func DecodeState(raw map[string]interface{}) (*WorkflowState, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stored state: %w", err)
	}
	var state WorkflowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint state: %w", err)
	}
	return &state, nil
}
