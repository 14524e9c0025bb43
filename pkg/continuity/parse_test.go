package continuity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePatch_CleanJSON(t *testing.T) {
	raw := `{
		"chapter_number": 7,
		"chapter_summary": "Mara finds the forged ledger.",
		"character_states": {
			"Mara": {"location": "old town", "knows_about": ["the forgery"]}
		},
		"plot_threads": {
			"heist": {"name": "The Vault Heist", "status": "active", "introduced_chapter": 1}
		}
	}`

	patch, warnings, err := ParsePatch(raw, 7)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 7, patch.ChapterNumber)
	assert.Equal(t, 7, patch.CharacterStates["Mara"].UpdatedChapter)
	assert.Equal(t, 7, patch.PlotThreads["heist"].LastMentionedChapter)
}

func TestParsePatch_RepairsFencesAndCommas(t *testing.T) {
	raw := "Here is the patch:\n```json\n{\"chapter_number\": 3, \"timeline\": [{\"chapter\": 3, \"description\": \"dawn\"},]}\n```"

	patch, _, err := ParsePatch(raw, 3)
	require.NoError(t, err)
	require.Len(t, patch.Timeline, 1)
	assert.Equal(t, "dawn", patch.Timeline[0].Description)
}

func TestParsePatch_UnparseableAfterRepair(t *testing.T) {
	_, _, err := ParsePatch(`{"chapter_number": `, 3)
	require.Error(t, err)

	_, _, err = ParsePatch("no json here at all", 3)
	require.Error(t, err)
}

func TestParsePatch_EnumRepair(t *testing.T) {
	raw := `{
		"chapter_number": 2,
		"plot_threads": {"heist": {"status": "Ongoing"}},
		"world_state_changes": [{"change_type": "War", "description": "border skirmish"}],
		"unresolved_tensions": [{"description": "who is the mole", "tension_type": "Secret"}]
	}`

	patch, warnings, err := ParsePatch(raw, 2)
	require.NoError(t, err)
	assert.Len(t, warnings, 3)
	assert.Equal(t, ThreadActive, patch.PlotThreads["heist"].Status)
	assert.Equal(t, ChangePolitical, patch.WorldStateChanges[0].ChangeType)
	assert.Equal(t, TensionMystery, patch.UnresolvedTensions[0].TensionType)
	assert.Equal(t, "who_is_the_mole", patch.UnresolvedTensions[0].ID, "missing id derived from description")
}

func TestCanonicalThreadStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
		clean bool
	}{
		{"active", ThreadActive, true},
		{"  Resolved ", ThreadResolved, true},
		{"closed", ThreadResolved, false},
		{"dropped", ThreadAbandoned, false},
		{"dormant", ThreadBackground, false},
		{"garbage", ThreadActive, false},
	}
	for _, tt := range tests {
		got, ok := canonicalThreadStatus(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, tt.clean, ok, "input %q", tt.input)
	}
}
