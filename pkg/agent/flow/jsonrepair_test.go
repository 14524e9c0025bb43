package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/models"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "fenced array",
			text:  "Here you go:\n```json\n[{\"op_type\": \"delete_range\"}]\n```",
			want:  `[{"op_type": "delete_range"}]`,
			found: true,
		},
		{
			name:  "bare array at end",
			text:  `Done. [{"op_type": "insert_after"}]`,
			want:  `[{"op_type": "insert_after"}]`,
			found: true,
		},
		{
			name:  "nested arrays",
			text:  `[{"a": [1, 2]}]`,
			want:  `[{"a": [1, 2]}]`,
			found: true,
		},
		{
			name:  "no array",
			text:  "Just prose, nothing else.",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractJSONArray(tt.text)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	got, found := extractJSONObject(`The answer: {"response": "done", "sources": ["a"]}`)
	require.True(t, found)
	assert.JSONEq(t, `{"response": "done", "sources": ["a"]}`, got)

	_, found = extractJSONObject("no json here")
	assert.False(t, found)
}

func TestParseOperationsJSON_RepairsOnce(t *testing.T) {
	var ops []models.EditorOperation

	// Trailing comma inside a fence: one repair pass fixes it.
	raw := "```json\n[{\"op_type\": \"delete_range\", \"original_text\": \"x\",}]\n```"
	require.True(t, parseOperationsJSON(raw, &ops))
	require.Len(t, ops, 1)
	assert.Equal(t, models.OpDeleteRange, ops[0].OpType)

	// Genuinely broken stays broken.
	ops = nil
	assert.False(t, parseOperationsJSON(`[{"op_type": `, &ops))
}
