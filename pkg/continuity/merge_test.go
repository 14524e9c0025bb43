package continuity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_CharacterFields(t *testing.T) {
	state := NewState("user-1", "novel.md")
	state.CharacterStates["Mara"] = &CharacterState{
		Location:       "harbor",
		EmotionalState: "wary",
		KnowsAbout:     []string{"the ledger"},
		HasItems:       []string{"brass key"},
		Relationships:  map[string]string{"Tomas": "ally"},
		UpdatedChapter: 3,
	}

	Merge(state, &Patch{
		ChapterNumber: 4,
		CharacterStates: map[string]*CharacterState{
			"Mara": {
				Location:       "old town",
				KnowsAbout:     []string{"the ledger", "the forgery"},
				HasItems:       []string{"lantern"},
				Relationships:  map[string]string{"Tomas": "rival"},
				UpdatedChapter: 4,
			},
		},
	})

	mara := state.CharacterStates["Mara"]
	assert.Equal(t, "old town", mara.Location)
	assert.Equal(t, "wary", mara.EmotionalState, "empty incoming field keeps current value")
	assert.Equal(t, []string{"the ledger", "the forgery"}, mara.KnowsAbout)
	assert.Equal(t, []string{"brass key", "lantern"}, mara.HasItems)
	assert.Equal(t, "rival", mara.Relationships["Tomas"])
	assert.Equal(t, 4, mara.UpdatedChapter)
	assert.Equal(t, 4, state.LastAnalyzedChapter)
}

func TestMerge_ResolvedThreadClearsQuestions(t *testing.T) {
	state := NewState("user-1", "novel.md")
	state.PlotThreads["heist"] = &PlotThread{
		Name:                 "The Vault Heist",
		Status:               ThreadActive,
		IntroducedChapter:    1,
		LastMentionedChapter: 2,
		UnresolvedQuestions:  []string{"who tipped off the guards?"},
	}

	Merge(state, &Patch{
		ChapterNumber: 5,
		PlotThreads: map[string]*PlotThread{
			"heist": {
				Status:               ThreadResolved,
				LastMentionedChapter: 5,
				KeyEvents:            []string{"vault opened"},
			},
		},
	})

	heist := state.PlotThreads["heist"]
	assert.Equal(t, ThreadResolved, heist.Status)
	assert.Empty(t, heist.UnresolvedQuestions)
	assert.Equal(t, []string{"vault opened"}, heist.KeyEvents)
	assert.Equal(t, 5, heist.LastMentionedChapter)
	assert.Equal(t, 1, heist.IntroducedChapter)
}

func TestMerge_TensionEscalation(t *testing.T) {
	state := NewState("user-1", "novel.md")
	state.UnresolvedTensions = []Tension{
		{ID: "debt", Description: "Mara owes the guild", TensionType: TensionConflict, IntroducedChapter: 1, LastEscalatedChapter: 1},
	}

	Merge(state, &Patch{
		ChapterNumber: 6,
		UnresolvedTensions: []Tension{
			{ID: "debt", LastEscalatedChapter: 6},
			{ID: "spy", Description: "someone watches the shop", TensionType: TensionMystery, IntroducedChapter: 6, LastEscalatedChapter: 6},
		},
	})

	require.Len(t, state.UnresolvedTensions, 2)
	assert.Equal(t, 6, state.UnresolvedTensions[0].LastEscalatedChapter)
	assert.Equal(t, "Mara owes the guild", state.UnresolvedTensions[0].Description)
	assert.Equal(t, "spy", state.UnresolvedTensions[1].ID)
}

func TestPrune_Caps(t *testing.T) {
	state := NewState("user-1", "novel.md")
	state.LastAnalyzedChapter = 40

	char := &CharacterState{UpdatedChapter: 40}
	for i := 0; i < 30; i++ {
		char.KnowsAbout = append(char.KnowsAbout, fmt.Sprintf("fact-%d", i))
		char.HasItems = append(char.HasItems, fmt.Sprintf("item-%d", i))
		char.InjuriesOrConditions = append(char.InjuriesOrConditions, fmt.Sprintf("injury-%d", i))
	}
	state.CharacterStates["Mara"] = char

	state.PlotThreads["old"] = &PlotThread{Status: ThreadResolved, LastMentionedChapter: 30}
	state.PlotThreads["recent"] = &PlotThread{Status: ThreadResolved, LastMentionedChapter: 38}
	thread := &PlotThread{Status: ThreadActive, LastMentionedChapter: 40}
	for i := 0; i < 20; i++ {
		thread.KeyEvents = append(thread.KeyEvents, fmt.Sprintf("event-%d", i))
		thread.UnresolvedQuestions = append(thread.UnresolvedQuestions, fmt.Sprintf("question-%d", i))
	}
	state.PlotThreads["busy"] = thread

	for ch := 1; ch <= 40; ch++ {
		state.Timeline = append(state.Timeline, TimelineMarker{Chapter: ch, Description: fmt.Sprintf("marker-%d", ch)})
	}
	state.UnresolvedTensions = []Tension{
		{ID: "stale", LastEscalatedChapter: 25},
		{ID: "live", LastEscalatedChapter: 35},
	}

	Prune(state)

	assert.Len(t, char.KnowsAbout, MaxKnowsAbout)
	assert.Equal(t, "fact-29", char.KnowsAbout[len(char.KnowsAbout)-1], "newest facts survive")
	assert.Len(t, char.HasItems, MaxHasItems)
	assert.Len(t, char.InjuriesOrConditions, MaxInjuries)

	assert.NotContains(t, state.PlotThreads, "old", "resolved thread past grace window dropped")
	assert.Contains(t, state.PlotThreads, "recent", "recently resolved thread kept")
	assert.Len(t, thread.KeyEvents, MaxKeyEvents)
	assert.Len(t, thread.UnresolvedQuestions, MaxUnresolvedQuestions)

	for _, marker := range state.Timeline {
		assert.GreaterOrEqual(t, marker.Chapter, 40-TimelineWindow)
	}
	assert.LessOrEqual(t, len(state.Timeline), MaxTimelineMarkers)

	require.Len(t, state.UnresolvedTensions, 1)
	assert.Equal(t, "live", state.UnresolvedTensions[0].ID)
}

func TestPrune_WorldChanges(t *testing.T) {
	state := NewState("user-1", "novel.md")
	state.LastAnalyzedChapter = 60

	for ch := 1; ch <= 60; ch++ {
		state.WorldStateChanges = append(state.WorldStateChanges,
			WorldStateChange{Chapter: ch, ChangeType: ChangePhysical, Description: fmt.Sprintf("change-%d", ch)})
	}
	// Permanent changes from chapter 1 must survive the window.
	state.WorldStateChanges = append(state.WorldStateChanges,
		WorldStateChange{Chapter: 1, ChangeType: ChangePolitical, Description: "the old king fell", IsPermanent: true})

	Prune(state)

	assert.LessOrEqual(t, len(state.WorldStateChanges), MaxWorldChanges)
	foundPermanent := false
	for _, change := range state.WorldStateChanges {
		if change.IsPermanent {
			foundPermanent = true
			continue
		}
		assert.GreaterOrEqual(t, change.Chapter, 60-WorldChangeWindow)
	}
	assert.True(t, foundPermanent, "permanent change kept despite age")
}
