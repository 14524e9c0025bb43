package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/continuity"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

func TestContinuityService_LoadMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContinuityService(client.Client)

	_, err := svc.Load(context.Background(), "alice", "novel.md")
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestContinuityService_SaveRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContinuityService(client.Client)
	ctx := context.Background()

	state := continuity.NewState("alice", "novel.md")
	state.LastAnalyzedChapter = 3
	state.CurrentChapterSummary = "the heist goes wrong"
	state.CharacterStates["mara"] = &continuity.CharacterState{
		Location:       "the docks",
		EmotionalState: "desperate",
		KnowsAbout:     []string{"the double-cross"},
		UpdatedChapter: 3,
	}
	state.PlotThreads["heist"] = &continuity.PlotThread{
		Name:                 "heist",
		Status:               continuity.ThreadActive,
		IntroducedChapter:    1,
		LastMentionedChapter: 3,
	}
	state.Timeline = []continuity.TimelineMarker{
		{Chapter: 3, Description: "three days after the festival"},
	}
	state.UnresolvedTensions = []continuity.Tension{
		{ID: "t1", Description: "who tipped off the guards", TensionType: continuity.TensionMystery, IntroducedChapter: 2, LastEscalatedChapter: 3},
	}

	require.NoError(t, svc.Save(ctx, state))

	got, err := svc.Load(ctx, "alice", "novel.md")
	require.NoError(t, err)
	assert.Equal(t, 3, got.LastAnalyzedChapter)
	assert.Equal(t, "the heist goes wrong", got.CurrentChapterSummary)
	require.Contains(t, got.CharacterStates, "mara")
	assert.Equal(t, "the docks", got.CharacterStates["mara"].Location)
	require.Contains(t, got.PlotThreads, "heist")
	assert.Equal(t, continuity.ThreadActive, got.PlotThreads["heist"].Status)
	require.Len(t, got.Timeline, 1)
	require.Len(t, got.UnresolvedTensions, 1)
	assert.Equal(t, continuity.TensionMystery, got.UnresolvedTensions[0].TensionType)
}

func TestContinuityService_SaveUpserts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewContinuityService(client.Client)
	ctx := context.Background()

	state := continuity.NewState("alice", "novel.md")
	state.LastAnalyzedChapter = 1
	require.NoError(t, svc.Save(ctx, state))

	state.LastAnalyzedChapter = 2
	require.NoError(t, svc.Save(ctx, state))

	got, err := svc.Load(ctx, "alice", "novel.md")
	require.NoError(t, err)
	assert.Equal(t, 2, got.LastAnalyzedChapter)

	rows, err := client.Client.ContinuityState.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rows, "save must upsert, not duplicate")
}

func TestContinuityService_TrackerIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	tracker := continuity.NewTracker(NewContinuityService(client.Client))
	ctx := context.Background()

	patch := `{"chapter_number": 1, "chapter_summary": "an arrival",
		"character_states": {"mara": {"location": "the city gates"}}}`
	state, warnings, err := tracker.ApplyPatch(ctx, "alice", "novel.md", 1, patch)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 1, state.LastAnalyzedChapter)

	// The merge persisted through the store.
	got, err := tracker.Get(ctx, "alice", "novel.md")
	require.NoError(t, err)
	require.Contains(t, got.CharacterStates, "mara")
	assert.Equal(t, "the city gates", got.CharacterStates["mara"].Location)
}
