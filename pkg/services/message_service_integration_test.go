package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/scriptor-ai/scriptor/ent"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/memory"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

func newMessageService(t *testing.T) (*MessageService, *ent.Conversation) {
	t.Helper()
	client := testdb.NewTestClient(t)
	convSvc := NewConversationService(client.Client, memory.NewStore())
	conv, err := convSvc.CreateConversation(context.Background(), alice, "")
	require.NoError(t, err)
	return NewMessageService(client.Client, nil), conv
}

func TestAppendMessage(t *testing.T) {
	svc, conv := newMessageService(t)
	ctx := context.Background()

	msg, err := svc.AppendMessage(ctx, alice, conv.ID, "human", "hello", map[string]any{"source": "test"})
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Content)

	_, err = svc.AppendMessage(ctx, alice, conv.ID, "ai", "hi there", nil)
	require.NoError(t, err)

	messages, err := svc.ListMessages(ctx, alice, conv.ID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, "hi there", messages[1].Content)
}

func TestAppendMessage_Validation(t *testing.T) {
	svc, conv := newMessageService(t)
	ctx := context.Background()

	_, err := svc.AppendMessage(ctx, alice, conv.ID, "human", "", nil)
	require.Error(t, err)
	assert.Equal(t, fault.KindBadInput, fault.KindOf(err))

	_, err = svc.AppendMessage(ctx, alice, conv.ID, "narrator", "content", nil)
	require.Error(t, err)
	assert.Equal(t, fault.KindBadInput, fault.KindOf(err))

	_, err = svc.AppendMessage(ctx, bob, conv.ID, "human", "content", nil)
	require.Error(t, err)
	assert.Equal(t, fault.KindAccessDenied, fault.KindOf(err))

	_, err = svc.AppendMessage(ctx, alice, "missing", "human", "content", nil)
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestAppendMessage_MonotonicTimestamps(t *testing.T) {
	svc, conv := newMessageService(t)
	ctx := context.Background()

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, err := svc.AppendMessage(ctx, alice, conv.ID, "human", fmt.Sprintf("message %d", i), nil)
			return err
		})
	}
	require.NoError(t, g.Wait())

	messages, err := svc.ListMessages(ctx, alice, conv.ID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 8)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt),
			"timestamps must be monotonic within the conversation")
	}
}

func TestDeleteMessage_Tombstones(t *testing.T) {
	svc, conv := newMessageService(t)
	ctx := context.Background()

	first, err := svc.AppendMessage(ctx, alice, conv.ID, "human", "delete me", nil)
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, alice, conv.ID, "ai", "keep me", nil)
	require.NoError(t, err)

	err = svc.DeleteMessage(ctx, bob, first.ID)
	require.Error(t, err)
	assert.Equal(t, fault.KindAccessDenied, fault.KindOf(err))

	require.NoError(t, svc.DeleteMessage(ctx, alice, first.ID))
	// Idempotent.
	require.NoError(t, svc.DeleteMessage(ctx, alice, first.ID))

	messages, err := svc.ListMessages(ctx, alice, conv.ID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2, "tombstoned messages keep their slot")
	assert.Empty(t, messages[0].Content)
	assert.NotNil(t, messages[0].DeletedAt)
	assert.Equal(t, "keep me", messages[1].Content)
}
