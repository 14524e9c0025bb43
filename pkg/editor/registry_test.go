package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

type fakeDocs struct {
	mu         sync.Mutex
	bodies     map[string]string
	sizes      map[string]int
	writeCount int
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{bodies: map[string]string{}, sizes: map[string]int{}}
}

func (f *fakeDocs) GetDocument(_ context.Context, id string) (*Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.bodies[id]
	if !ok {
		return nil, fault.New(fault.KindNotFound, "document %s", id)
	}
	return &Document{DocumentID: id, SizeBytes: len(body)}, nil
}

func (f *fakeDocs) ReadBody(_ context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.bodies[id]
	if !ok {
		return "", fault.New(fault.KindNotFound, "document %s", id)
	}
	return body, nil
}

func (f *fakeDocs) WriteBody(_ context.Context, id, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies[id] = body
	f.writeCount++
	return nil
}

func (f *fakeDocs) UpdateFileSize(_ context.Context, id string, n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sizes[id] = n
	return nil
}

func (f *fakeDocs) UpdateStatus(context.Context, string, string) error { return nil }
func (f *fakeDocs) DeleteChunks(context.Context, string) error         { return nil }
func (f *fakeDocs) FindByPath(context.Context, string, string) (*Document, error) {
	return nil, fault.New(fault.KindNotFound, "not implemented")
}

type fakeVector struct {
	mu      sync.Mutex
	embeds  int
	deletes int
}

func (f *fakeVector) EmbedAndStoreChunks(_ context.Context, _ []string, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embeds++
	return nil
}

func (f *fakeVector) DeleteDocumentChunks(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	return nil
}

type fakeGraph struct{ fail bool }

func (f *fakeGraph) DeleteDocumentEntities(context.Context, string) error {
	if f.fail {
		return errors.New("graph store unreachable")
	}
	return nil
}

type fakeProposalStore struct {
	mu        sync.Mutex
	proposals map[string]*Proposal
	results   map[string]models.ApplyResult
}

func newFakeProposalStore() *fakeProposalStore {
	return &fakeProposalStore{proposals: map[string]*Proposal{}, results: map[string]models.ApplyResult{}}
}

func (f *fakeProposalStore) SaveProposal(_ context.Context, p *Proposal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.proposals[p.ProposalID] = &cp
	return nil
}

func (f *fakeProposalStore) GetProposal(_ context.Context, id string) (*Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proposals[id]
	if !ok {
		return nil, fault.New(fault.KindNotFound, "proposal %s", id)
	}
	cp := *p
	if r, ok := f.results[id]; ok {
		cp.Applied = true
		cp.ApplyOutput = &r
	}
	return &cp, nil
}

func (f *fakeProposalStore) MarkApplied(_ context.Context, id string, result models.ApplyResult) (models.ApplyResult, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stored, ok := f.results[id]; ok {
		return stored, false, nil
	}
	f.results[id] = result
	return result, true, nil
}

func (f *fakeProposalStore) DeleteExpired(_ context.Context, before time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for id, p := range f.proposals {
		if before.After(p.ExpiresAt) {
			delete(f.proposals, id)
			delete(f.results, id)
			n++
		}
	}
	return n, nil
}

func newTestRegistry(t *testing.T) (*Registry, *fakeDocs, *fakeVector, *fakeProposalStore) {
	t.Helper()
	docs := newFakeDocs()
	vector := &fakeVector{}
	store := newFakeProposalStore()
	reg := NewRegistry(slog.Default(), store, docs, vector, &fakeGraph{})
	return reg, docs, vector, store
}

func proposeReplace(t *testing.T, reg *Registry, docs *fakeDocs) *Proposal {
	t.Helper()
	docs.bodies["doc-1"] = "hello old world"
	p, err := reg.Propose(context.Background(), owner, models.ProposeEditRequest{
		DocumentID: "doc-1",
		EditType:   models.EditTypeOperations,
		Operations: []models.ResolvedOperation{
			{Start: 6, End: 9, Text: "new", Confidence: 0.9},
		},
		AgentName: "article_writer",
		Summary:   "replace old with new",
	})
	require.NoError(t, err)
	return p
}

var owner = models.Principal{UserID: "user-1", Role: models.RoleUser}

func TestApplyTwiceIsIdempotent(t *testing.T) {
	reg, docs, vector, _ := newTestRegistry(t)
	p := proposeReplace(t, reg, docs)

	first, err := reg.Apply(context.Background(), owner, p.ProposalID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.AppliedCount)
	assert.False(t, first.Idempotent)
	assert.Equal(t, "hello new world", docs.bodies["doc-1"])
	assert.Equal(t, 1, docs.writeCount)
	assert.Equal(t, 1, vector.embeds)

	second, err := reg.Apply(context.Background(), owner, p.ProposalID, nil)
	require.NoError(t, err)
	assert.True(t, second.Idempotent)
	assert.Equal(t, first.AppliedCount, second.AppliedCount)
	assert.Equal(t, first.DocumentID, second.DocumentID)
	// No additional writes happened.
	assert.Equal(t, 1, docs.writeCount)
	assert.Equal(t, 1, vector.embeds)
	assert.Equal(t, "hello new world", docs.bodies["doc-1"])
}

func TestApplySurvivesRegistryRestart(t *testing.T) {
	reg, docs, _, store := newTestRegistry(t)
	p := proposeReplace(t, reg, docs)

	_, err := reg.Apply(context.Background(), owner, p.ProposalID, nil)
	require.NoError(t, err)

	// A fresh registry over the same store simulates a restart.
	reg2 := NewRegistry(slog.Default(), store, docs, &fakeVector{}, &fakeGraph{})
	result, err := reg2.Apply(context.Background(), owner, p.ProposalID, nil)
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Equal(t, 1, docs.writeCount)
}

func TestApplyAccessDenied(t *testing.T) {
	reg, docs, _, _ := newTestRegistry(t)
	p := proposeReplace(t, reg, docs)

	stranger := models.Principal{UserID: "user-2", Role: models.RoleUser}
	_, err := reg.Apply(context.Background(), stranger, p.ProposalID, nil)
	assert.True(t, fault.IsKind(err, fault.KindAccessDenied))
}

func TestApplySelectedIndices(t *testing.T) {
	reg, docs, _, _ := newTestRegistry(t)
	docs.bodies["doc-1"] = "aaa bbb ccc"
	p, err := reg.Propose(context.Background(), owner, models.ProposeEditRequest{
		DocumentID: "doc-1",
		EditType:   models.EditTypeOperations,
		Operations: []models.ResolvedOperation{
			{Start: 0, End: 3, Text: "AAA"},
			{Start: 8, End: 11, Text: "CCC"},
		},
		AgentName: "article_writer",
		Summary:   "two edits",
	})
	require.NoError(t, err)

	result, err := reg.Apply(context.Background(), owner, p.ProposalID, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AppliedCount)
	assert.Equal(t, "aaa bbb CCC", docs.bodies["doc-1"])
}

func TestGraphFailureDoesNotFailApply(t *testing.T) {
	docs := newFakeDocs()
	store := newFakeProposalStore()
	reg := NewRegistry(slog.Default(), store, docs, &fakeVector{}, &fakeGraph{fail: true})
	p := proposeReplace(t, reg, docs)

	result, err := reg.Apply(context.Background(), owner, p.ProposalID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AppliedCount)
}

func TestSweepExpiresProposals(t *testing.T) {
	reg, docs, _, store := newTestRegistry(t)
	p := proposeReplace(t, reg, docs)

	// Force expiry.
	store.mu.Lock()
	stored := store.proposals[p.ProposalID]
	stored.ExpiresAt = time.Now().Add(-time.Minute)
	store.mu.Unlock()
	reg.mu.Lock()
	reg.proposals[p.ProposalID].ExpiresAt = time.Now().Add(-time.Minute)
	reg.mu.Unlock()

	n, err := reg.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = reg.Apply(context.Background(), owner, p.ProposalID, nil)
	assert.True(t, fault.IsKind(err, fault.KindNotFound))
}

// A registry wired only to the proposal store (the daemon's
// configuration) still files proposals; applying needs the document
// backends and fails loudly without them.
func TestProposeWithoutDocumentBackends(t *testing.T) {
	store := newFakeProposalStore()
	reg := NewRegistry(slog.Default(), store, nil, nil, nil)

	p, err := reg.Propose(context.Background(), owner, models.ProposeEditRequest{
		DocumentID: "doc-1",
		EditType:   models.EditTypeOperations,
		Operations: []models.ResolvedOperation{
			{Start: 6, End: 9, Text: "new", Confidence: 0.9},
		},
		AgentName:       "article_writer",
		Summary:         "replace old with new",
		RequiresPreview: true,
	})
	require.NoError(t, err)
	assert.Empty(t, p.Preview, "no document repository, no preview")

	stored, err := store.GetProposal(context.Background(), p.ProposalID)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", stored.DocumentID)

	_, err = reg.Apply(context.Background(), owner, p.ProposalID, nil)
	assert.True(t, fault.IsKind(err, fault.KindFatalConfig))
}

func TestProposeValidation(t *testing.T) {
	reg, _, _, _ := newTestRegistry(t)

	_, err := reg.Propose(context.Background(), owner, models.ProposeEditRequest{
		EditType: models.EditTypeOperations,
	})
	assert.True(t, fault.IsKind(err, fault.KindBadInput))

	_, err = reg.Propose(context.Background(), owner, models.ProposeEditRequest{
		DocumentID: "doc-1",
		EditType:   models.EditTypeOperations,
	})
	assert.True(t, fault.IsKind(err, fault.KindBadInput))

	_, err = reg.Propose(context.Background(), owner, models.ProposeEditRequest{
		DocumentID: "doc-1",
		EditType:   models.EditTypeContent,
	})
	assert.True(t, fault.IsKind(err, fault.KindBadInput))
}
