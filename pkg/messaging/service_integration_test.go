package messaging

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	entmsg "github.com/scriptor-ai/scriptor/ent/roommessage"
	"github.com/scriptor-ai/scriptor/pkg/database"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

var (
	alice = models.Principal{UserID: "alice"}
	bob   = models.Principal{UserID: "bob"}
	eve   = models.Principal{UserID: "eve"}
)

func newTestService(t *testing.T) (*Service, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cipher, err := NewCipher(testKey(t), 1)
	require.NoError(t, err)
	return NewService(client.Client, cipher, nil), client
}

func TestRoomLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, alice, "plot discussions")
	require.NoError(t, err)
	require.NoError(t, svc.JoinRoom(ctx, alice, room.ID, bob.UserID))
	// Joining twice is a no-op.
	require.NoError(t, svc.JoinRoom(ctx, alice, room.ID, bob.UserID))

	sent, err := svc.SendMessage(ctx, alice, room.ID, "chapter three needs work")
	require.NoError(t, err)
	assert.Equal(t, int64(1), sent.Seq)

	sent, err = svc.SendMessage(ctx, bob, room.ID, "agreed, the pacing drags")
	require.NoError(t, err)
	assert.Equal(t, int64(2), sent.Seq)

	messages, err := svc.ListMessages(ctx, bob, room.ID, 0, 50)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "chapter three needs work", messages[0].Body)
	assert.Equal(t, "agreed, the pacing drags", messages[1].Body)

	// Non-participants can neither read nor write.
	_, err = svc.ListMessages(ctx, eve, room.ID, 0, 50)
	require.Error(t, err)
	assert.Equal(t, fault.KindAccessDenied, fault.KindOf(err))
	_, err = svc.SendMessage(ctx, eve, room.ID, "let me in")
	require.Error(t, err)
	assert.Equal(t, fault.KindAccessDenied, fault.KindOf(err))
}

func TestSendMessage_GaplessSequenceUnderContention(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, alice, "busy room")
	require.NoError(t, err)

	const senders = 10
	var g errgroup.Group
	for i := 0; i < senders; i++ {
		g.Go(func() error {
			_, err := svc.SendMessage(ctx, alice, room.ID, fmt.Sprintf("message %d", i))
			return err
		})
	}
	require.NoError(t, g.Wait())

	messages, err := svc.ListMessages(ctx, alice, room.ID, 0, 50)
	require.NoError(t, err)
	require.Len(t, messages, senders)
	for i, msg := range messages {
		assert.Equal(t, int64(i+1), msg.Seq, "sequence must be gapless")
		if i > 0 {
			assert.False(t, msg.CreatedAt.Before(messages[i-1].CreatedAt),
				"timestamps must be monotonic within the room")
		}
	}
}

func TestMessagesEncryptedAtRest(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, alice, "private")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, alice, room.ID, "the treasure is buried under the oak")
	require.NoError(t, err)

	row, err := client.Client.RoomMessage.Query().
		Where(entmsg.RoomIDEQ(room.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, row.Ciphertext)
	assert.NotEmpty(t, row.WrappedDek)
	assert.NotContains(t, string(row.Ciphertext), "treasure")
	assert.Equal(t, 1, row.KeyVersion)
}

func TestDeleteMessage_Tombstones(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, alice, "room")
	require.NoError(t, err)
	require.NoError(t, svc.JoinRoom(ctx, alice, room.ID, bob.UserID))

	first, err := svc.SendMessage(ctx, alice, room.ID, "delete me")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, bob, room.ID, "keep me")
	require.NoError(t, err)

	// Only the sender may delete.
	err = svc.DeleteMessage(ctx, bob, first.ID)
	require.Error(t, err)
	assert.Equal(t, fault.KindAccessDenied, fault.KindOf(err))

	require.NoError(t, svc.DeleteMessage(ctx, alice, first.ID))
	// Idempotent.
	require.NoError(t, svc.DeleteMessage(ctx, alice, first.ID))

	messages, err := svc.ListMessages(ctx, alice, room.ID, 0, 50)
	require.NoError(t, err)
	require.Len(t, messages, 2, "tombstoned messages keep their slot")
	assert.True(t, messages[0].Deleted)
	assert.Empty(t, messages[0].Body)
	assert.Equal(t, int64(1), messages[0].Seq)
	assert.Equal(t, "keep me", messages[1].Body)

	row, err := client.Client.RoomMessage.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, row.Ciphertext, "envelope must be blanked on delete")
	assert.Empty(t, row.WrappedDek)
}

func TestReactions_Idempotent(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, alice, "room")
	require.NoError(t, err)
	msg, err := svc.SendMessage(ctx, alice, room.ID, "great chapter")
	require.NoError(t, err)

	require.NoError(t, svc.AddReaction(ctx, alice, msg.ID, "👍"))
	require.NoError(t, svc.AddReaction(ctx, alice, msg.ID, "👍"))
	require.NoError(t, svc.AddReaction(ctx, alice, msg.ID, "🎉"))

	count, err := client.Client.MessageReaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.RemoveReaction(ctx, alice, msg.ID, "👍"))
	require.NoError(t, svc.RemoveReaction(ctx, alice, msg.ID, "👍"))
	count, err = client.Client.MessageReaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReadMarkersAndUnread(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, alice, "room")
	require.NoError(t, err)
	require.NoError(t, svc.JoinRoom(ctx, alice, room.ID, bob.UserID))

	for i := 0; i < 5; i++ {
		_, err := svc.SendMessage(ctx, alice, room.ID, fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	unread, err := svc.UnreadCount(ctx, bob, room.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), unread)

	require.NoError(t, svc.MarkRead(ctx, bob, room.ID, 3))
	unread, err = svc.UnreadCount(ctx, bob, room.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	// Markers never move backwards.
	require.NoError(t, svc.MarkRead(ctx, bob, room.ID, 1))
	unread, err = svc.UnreadCount(ctx, bob, room.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	_, err = svc.UnreadCount(ctx, eve, room.ID)
	require.Error(t, err)
	assert.Equal(t, fault.KindAccessDenied, fault.KindOf(err))
}

func TestPresenceHeartbeat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	status, _, err := svc.GetPresence(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "offline", string(status))

	require.NoError(t, svc.Heartbeat(ctx, "alice", "online"))
	status, lastSeen, err := svc.GetPresence(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "online", string(status))
	assert.WithinDuration(t, time.Now(), lastSeen, 5*time.Second)

	// Upsert: a second heartbeat updates the same row.
	require.NoError(t, svc.Heartbeat(ctx, "alice", "away"))
	status, _, err = svc.GetPresence(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "away", string(status))

	err = svc.Heartbeat(ctx, "alice", "invisible")
	require.Error(t, err)
	assert.Equal(t, fault.KindBadInput, fault.KindOf(err))
}
