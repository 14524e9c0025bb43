package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/editor"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

func sampleProposal() *editor.Proposal {
	now := time.Now().Truncate(time.Millisecond)
	return &editor.Proposal{
		ProposalID: uuid.New().String(),
		UserID:     "alice",
		DocumentID: "doc-1",
		EditType:   models.EditTypeOperations,
		Operations: []models.ResolvedOperation{
			{Start: 10, End: 20, Text: "revised", Confidence: 0.9, Strategy: "exact_offsets"},
		},
		AgentName: "editorial",
		Summary:   "tighten the opening paragraph",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func TestProposalService_SaveAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProposalService(client.Client)
	ctx := context.Background()

	p := sampleProposal()
	require.NoError(t, svc.SaveProposal(ctx, p))

	got, err := svc.GetProposal(ctx, p.ProposalID)
	require.NoError(t, err)
	assert.Equal(t, p.UserID, got.UserID)
	assert.Equal(t, p.EditType, got.EditType)
	require.Len(t, got.Operations, 1)
	assert.Equal(t, "exact_offsets", got.Operations[0].Strategy)
	assert.Equal(t, 10, got.Operations[0].Start)
	assert.False(t, got.Applied)

	_, err = svc.GetProposal(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestProposalService_ContentEditRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProposalService(client.Client)
	ctx := context.Background()

	p := sampleProposal()
	p.EditType = models.EditTypeContent
	p.Operations = nil
	p.ContentEdit = &models.ContentEdit{Mode: models.ContentAppend, Content: "a closing scene"}
	require.NoError(t, svc.SaveProposal(ctx, p))

	got, err := svc.GetProposal(ctx, p.ProposalID)
	require.NoError(t, err)
	require.NotNil(t, got.ContentEdit)
	assert.Equal(t, models.ContentAppend, got.ContentEdit.Mode)
	assert.Equal(t, "a closing scene", got.ContentEdit.Content)
}

func TestProposalService_MarkAppliedOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProposalService(client.Client)
	ctx := context.Background()

	p := sampleProposal()
	require.NoError(t, svc.SaveProposal(ctx, p))

	first := models.ApplyResult{
		ProposalID:   p.ProposalID,
		DocumentID:   p.DocumentID,
		AppliedCount: 1,
		AppliedAt:    time.Now().Truncate(time.Millisecond),
	}
	stored, won, err := svc.MarkApplied(ctx, p.ProposalID, first)
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, first.AppliedCount, stored.AppliedCount)

	// A second apply loses the CAS and gets the stored result back.
	second := first
	second.AppliedCount = 99
	stored, won, err = svc.MarkApplied(ctx, p.ProposalID, second)
	require.NoError(t, err)
	assert.False(t, won)
	assert.Equal(t, 1, stored.AppliedCount)

	got, err := svc.GetProposal(ctx, p.ProposalID)
	require.NoError(t, err)
	assert.True(t, got.Applied)
	require.NotNil(t, got.ApplyOutput)
	assert.Equal(t, 1, got.ApplyOutput.AppliedCount)

	_, _, err = svc.MarkApplied(ctx, "missing", first)
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestProposalService_DeleteExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProposalService(client.Client)
	ctx := context.Background()

	expired := sampleProposal()
	expired.CreatedAt = time.Now().Add(-48 * time.Hour)
	expired.ExpiresAt = time.Now().Add(-24 * time.Hour)
	require.NoError(t, svc.SaveProposal(ctx, expired))

	fresh := sampleProposal()
	require.NoError(t, svc.SaveProposal(ctx, fresh))

	n, err := svc.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.GetProposal(ctx, expired.ProposalID)
	require.Error(t, err)
	_, err = svc.GetProposal(ctx, fresh.ProposalID)
	require.NoError(t, err)
}
