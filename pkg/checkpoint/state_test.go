package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	state := &WorkflowState{
		WorkflowStatus: "running",
		Steps: map[string]StepState{
			"research_phase": {Status: "completed", Result: map[string]any{"response": "findings"}},
			"analysis_phase": {Status: "running", RetryCount: 1},
		},
		SharedMemory: map[string]map[string]any{
			"research_phase": {"response": "findings", "sources": []any{"a", "b"}},
		},
		NodeCursors: map[string]string{
			"analysis_phase":                "extract_content",
			"analysis_phase/proofreading":   "critique",
		},
		ParentCheckpointID: "cp-1",
	}

	encoded, err := encodeState(state)
	require.NoError(t, err)

	decoded, err := DecodeState(encoded)
	require.NoError(t, err)

	assert.Equal(t, "running", decoded.WorkflowStatus)
	assert.Equal(t, "completed", decoded.Steps["research_phase"].Status)
	assert.Equal(t, 1, decoded.Steps["analysis_phase"].RetryCount)
	assert.Equal(t, "findings", decoded.SharedMemory["research_phase"]["response"])
	assert.Equal(t, "extract_content", decoded.NodeCursors["analysis_phase"])
	assert.Equal(t, "cp-1", decoded.ParentCheckpointID)
}

func TestDecodeState_Empty(t *testing.T) {
	decoded, err := DecodeState(map[string]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, decoded.WorkflowStatus)
	assert.Empty(t, decoded.Steps)
}
