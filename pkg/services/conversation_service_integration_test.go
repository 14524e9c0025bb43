package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/database"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/memory"
	"github.com/scriptor-ai/scriptor/pkg/models"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

var (
	alice = models.Principal{UserID: "alice"}
	bob   = models.Principal{UserID: "bob"}
)

func newConversationService(t *testing.T) (*ConversationService, *memory.Store, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	mem := memory.NewStore()
	return NewConversationService(client.Client, mem), mem, client
}

func TestConversationLifecycle(t *testing.T) {
	svc, mem, _ := newConversationService(t)
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, alice, "draft review")
	require.NoError(t, err)
	require.NotNil(t, conv.Title)
	assert.Equal(t, "draft review", *conv.Title)

	// Creation registers the shared memory scope.
	require.NoError(t, mem.Put(alice, conv.ID, "k", "v"))

	got, err := svc.GetConversation(ctx, alice, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, got.ID)

	_, err = svc.GetConversation(ctx, bob, conv.ID)
	require.Error(t, err)
	assert.Equal(t, fault.KindAccessDenied, fault.KindOf(err))

	_, err = svc.GetConversation(ctx, alice, "missing")
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestListConversations_ScopedToOwner(t *testing.T) {
	svc, _, _ := newConversationService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateConversation(ctx, alice, "")
		require.NoError(t, err)
	}
	_, err := svc.CreateConversation(ctx, bob, "")
	require.NoError(t, err)

	rows, err := svc.ListConversations(ctx, alice, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestDeleteConversation_SoftDelete(t *testing.T) {
	svc, mem, _ := newConversationService(t)
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, alice, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteConversation(ctx, alice, conv.ID))
	// Idempotent.
	require.NoError(t, svc.DeleteConversation(ctx, alice, conv.ID))

	_, err = svc.GetConversation(ctx, alice, conv.ID)
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))

	rows, err := svc.ListConversations(ctx, alice, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Shared memory is released with the conversation.
	err = mem.Put(alice, conv.ID, "k", "v")
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}
