package continuity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseState() *State {
	state := NewState("user-1", "novel.md")
	state.LastAnalyzedChapter = 10
	state.CharacterStates["Mara"] = &CharacterState{
		Location:       "harbor",
		KnowsAbout:     []string{"the forgery", "lost: brass key"},
		HasItems:       []string{"lantern"},
		UpdatedChapter: 10,
	}
	state.PlotThreads["heist"] = &PlotThread{
		Name:                 "The Vault Heist",
		Status:               ThreadResolved,
		LastMentionedChapter: 9,
	}
	return state
}

func TestValidate_Clean(t *testing.T) {
	result := Validate(baseState(), &Patch{
		ChapterNumber: 11,
		CharacterStates: map[string]*CharacterState{
			"Mara": {EmotionalState: "resolute", UpdatedChapter: 11},
		},
	})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestValidate_TimelineRegression(t *testing.T) {
	result := Validate(baseState(), &Patch{ChapterNumber: 4})

	assert.False(t, result.IsValid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "timeline_regression", result.Violations[0].Type)
	assert.Equal(t, SeverityCritical, result.Violations[0].Severity)
	assert.InDelta(t, 0.7, result.Confidence, 0.001)
}

func TestValidate_LocationDiscontinuity(t *testing.T) {
	// Same-chapter move is high severity; a later chapter only low.
	result := Validate(baseState(), &Patch{
		ChapterNumber: 10,
		CharacterStates: map[string]*CharacterState{
			"Mara": {Location: "mountains", UpdatedChapter: 10},
		},
	})
	require.Len(t, result.Violations, 1)
	assert.Equal(t, SeverityHigh, result.Violations[0].Severity)
	assert.Equal(t, "Mara", result.Violations[0].AffectedCharacter)
	assert.False(t, result.IsValid)

	result = Validate(baseState(), &Patch{
		ChapterNumber: 12,
		CharacterStates: map[string]*CharacterState{
			"Mara": {Location: "mountains", UpdatedChapter: 12},
		},
	})
	require.Len(t, result.Violations, 1)
	assert.Equal(t, SeverityLow, result.Violations[0].Severity)
	assert.True(t, result.IsValid)
}

func TestValidate_LostItemReappears(t *testing.T) {
	result := Validate(baseState(), &Patch{
		ChapterNumber: 11,
		CharacterStates: map[string]*CharacterState{
			"Mara": {HasItems: []string{"brass key"}, UpdatedChapter: 11},
		},
	})

	require.Len(t, result.Violations, 1)
	assert.Equal(t, "item_conflict", result.Violations[0].Type)
	assert.Equal(t, SeverityMedium, result.Violations[0].Severity)
	assert.True(t, result.IsValid, "medium violations lower confidence but stay valid")
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
}

func TestValidate_ResolvedThreadActivity(t *testing.T) {
	result := Validate(baseState(), &Patch{
		ChapterNumber: 11,
		PlotThreads: map[string]*PlotThread{
			"heist": {Status: ThreadActive, LastMentionedChapter: 11},
		},
	})

	require.Len(t, result.Violations, 1)
	assert.Equal(t, "resolved_thread_activity", result.Violations[0].Type)
	assert.False(t, result.IsValid)
}

func TestValidate_NewEntitiesAreWarnings(t *testing.T) {
	result := Validate(baseState(), &Patch{
		ChapterNumber: 11,
		CharacterStates: map[string]*CharacterState{
			"Ilka": {Location: "harbor", UpdatedChapter: 11},
		},
		PlotThreads: map[string]*PlotThread{
			"smuggling": {Name: "Smuggling Ring", Status: ThreadActive},
		},
	})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Violations)
	assert.Len(t, result.Warnings, 2)
}

func TestValidate_ConfidenceFloor(t *testing.T) {
	state := baseState()
	patch := &Patch{ChapterNumber: 4, CharacterStates: map[string]*CharacterState{}}
	// Pile on same-chapter location conflicts to drive confidence down.
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		state.CharacterStates[name] = &CharacterState{Location: "here", UpdatedChapter: 4}
		patch.CharacterStates[name] = &CharacterState{Location: "there", UpdatedChapter: 4}
	}

	result := Validate(state, patch)
	assert.False(t, result.IsValid)
	assert.Equal(t, 0.1, result.Confidence)
}
