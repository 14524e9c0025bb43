package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

var (
	owner = models.Principal{UserID: "user-1", Role: models.RoleUser}
	other = models.Principal{UserID: "user-2", Role: models.RoleUser}
	admin = models.Principal{UserID: "admin-1", Role: models.RoleAdmin}
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.Register("conv-1", owner.UserID)
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(owner, "conv-1", "confidence_level", 0.8))
	v, ok, err := s.Get(owner, "conv-1", "confidence_level")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.8, v)

	_, ok, err = s.Get(owner, "conv-1", "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccessChecks(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.Get(owner, "conv-unknown", "k")
	assert.True(t, fault.IsKind(err, fault.KindNotFound))

	err = s.Put(other, "conv-1", "k", "v")
	assert.True(t, fault.IsKind(err, fault.KindAccessDenied))

	// Admin bypasses ownership.
	require.NoError(t, s.Put(admin, "conv-1", "k", "v"))
}

func TestMergeReplaceAndAppendSemantics(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Merge(owner, "conv-1", map[string]any{
		"search_history": []any{"query one"},
		"topics":         []any{"a", "b"},
	}))
	require.NoError(t, s.Merge(owner, "conv-1", map[string]any{
		"search_history": []any{"query two"},
		"topics":         []any{"c"},
	}))

	hist, ok, err := s.Get(owner, "conv-1", "search_history")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []any{"query one", "query two"}, hist)

	// Non-allow-listed lists are replaced, not appended.
	topics, ok, err := s.Get(owner, "conv-1", "topics")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []any{"c"}, topics)
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestStore(t)

	editor := map[string]any{"document_id": "doc-1", "content": "original body"}
	require.NoError(t, s.Put(owner, "conv-1", KeyActiveEditor, editor))

	snap, err := s.Snapshot(owner, "conv-1")
	require.NoError(t, err)

	// A write after the snapshot must not show through.
	require.NoError(t, s.Put(owner, "conv-1", KeyActiveEditor,
		map[string]any{"document_id": "doc-1", "content": "mutated"}))

	got := snap[KeyActiveEditor].(map[string]any)
	assert.Equal(t, "original body", got["content"])

	// Mutating the snapshot must not corrupt the store.
	got["content"] = "snapshot tampering"
	v, _, err := s.Get(owner, "conv-1", KeyActiveEditor)
	require.NoError(t, err)
	assert.Equal(t, "mutated", v.(map[string]any)["content"])
}

func TestDeepCopyOnPut(t *testing.T) {
	s := newTestStore(t)

	value := map[string]any{"nested": []any{"x"}}
	require.NoError(t, s.Put(owner, "conv-1", "k", value))
	value["nested"] = []any{"mutated"}

	v, _, err := s.Get(owner, "conv-1", "k")
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, v.(map[string]any)["nested"])
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Put(owner, "conv-1", "k", "v"))
	require.NoError(t, s.Delete(owner, "conv-1", "k"))
	_, ok, err := s.Get(owner, "conv-1", "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting twice is a no-op.
	require.NoError(t, s.Delete(owner, "conv-1", "k"))
}

func TestConcurrentMergesSerialise(t *testing.T) {
	s := newTestStore(t)

	const writers = 8
	const perWriter = 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				err := s.Merge(owner, "conv-1", map[string]any{
					"search_history": []any{fmt.Sprintf("w%d-%d", w, i)},
				})
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	hist, ok, err := s.Get(owner, "conv-1", "search_history")
	require.NoError(t, err)
	require.True(t, ok)
	// Every appended element survives: merges are atomic, no lost updates.
	assert.Len(t, hist, writers*perWriter)
}

func TestConcurrentConversationsIndependent(t *testing.T) {
	s := NewStore()
	for i := 0; i < 4; i++ {
		s.Register(fmt.Sprintf("conv-%d", i), owner.UserID)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conv := fmt.Sprintf("conv-%d", i)
			for j := 0; j < 50; j++ {
				assert.NoError(t, s.Put(owner, conv, "counter", j))
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		v, ok, err := s.Get(owner, fmt.Sprintf("conv-%d", i), "counter")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 49, v)
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Put(owner, "conv-1", "k", "v"))
	_, _, _ = s.Get(owner, "conv-1", "k")
	_, _, _ = s.Get(owner, "conv-1", "absent")

	st := s.Stats()
	assert.Equal(t, 1, st.Conversations)
	assert.Equal(t, int64(1), st.Hits)
	assert.Equal(t, int64(1), st.Misses)
	assert.Equal(t, int64(1), st.Writes)
}
