package continuity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/fault"
)

type memStore struct {
	states map[string]*State
	saves  int
}

func newMemStore() *memStore {
	return &memStore{states: make(map[string]*State)}
}

func (s *memStore) Load(_ context.Context, userID, manuscript string) (*State, error) {
	state, ok := s.states[userID+"/"+manuscript]
	if !ok {
		return nil, fault.New(fault.KindNotFound, "continuity state not found")
	}
	return state, nil
}

func (s *memStore) Save(_ context.Context, state *State) error {
	s.saves++
	s.states[state.UserID+"/"+state.ManuscriptFilename] = state
	return nil
}

func TestTracker_ApplyPatchCreatesState(t *testing.T) {
	store := newMemStore()
	tracker := NewTracker(store)

	raw := `{"chapter_number": 1, "character_states": {"Mara": {"location": "harbor"}}}`
	state, warnings, err := tracker.ApplyPatch(context.Background(), "user-1", "novel.md", 1, raw)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 1, state.LastAnalyzedChapter)
	assert.Equal(t, 1, store.saves)

	// Second chapter merges into the same row.
	raw = `{"chapter_number": 2, "character_states": {"Mara": {"location": "old town"}}}`
	state, _, err = tracker.ApplyPatch(context.Background(), "user-1", "novel.md", 2, raw)
	require.NoError(t, err)
	assert.Equal(t, 2, state.LastAnalyzedChapter)
	assert.Equal(t, "old town", state.CharacterStates["Mara"].Location)
	require.Len(t, store.states, 1)
}

func TestTracker_UnparseablePatchPreservesState(t *testing.T) {
	store := newMemStore()
	tracker := NewTracker(store)

	_, _, err := tracker.ApplyPatch(context.Background(), "user-1", "novel.md", 1,
		`{"chapter_number": 1, "character_states": {"Mara": {"location": "harbor"}}}`)
	require.NoError(t, err)

	state, warnings, err := tracker.ApplyPatch(context.Background(), "user-1", "novel.md", 2, "total garbage")
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, 1, state.LastAnalyzedChapter, "state unchanged")
	assert.Equal(t, 1, store.saves, "no save on unparseable patch")
}

func TestTracker_ValidateChapterReadOnly(t *testing.T) {
	store := newMemStore()
	tracker := NewTracker(store)

	_, _, err := tracker.ApplyPatch(context.Background(), "user-1", "novel.md", 5,
		`{"chapter_number": 5, "character_states": {"Mara": {"location": "harbor"}}}`)
	require.NoError(t, err)

	result, err := tracker.ValidateChapter(context.Background(), "user-1", "novel.md", 3,
		`{"chapter_number": 3}`)
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Equal(t, 1, store.saves, "validation never writes")

	_, err = tracker.ValidateChapter(context.Background(), "user-1", "novel.md", 6, "not json")
	require.Error(t, err)
	assert.Equal(t, fault.KindContinuityInvalid, fault.KindOf(err))
}

func TestTracker_GetUnknownPair(t *testing.T) {
	tracker := NewTracker(newMemStore())
	_, err := tracker.Get(context.Background(), "user-1", "missing.md")
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}
