package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/ent"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

func seedEvent(t *testing.T, client *ent.Client, channel, payload string) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetChannel(channel).
		SetPayload(payload).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func TestGetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	first := seedEvent(t, client.Client, "workflow:wf-1", `{"type":"workflow_started"}`)
	seedEvent(t, client.Client, "workflow:wf-1", `{"type":"step_status"}`)
	seedEvent(t, client.Client, "workflow:wf-2", `{"type":"workflow_started"}`)

	// From the beginning: only the requested channel, in id order.
	events, err := svc.GetEventsSince(ctx, "workflow:wf-1", 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(first.ID), events[0].ID)
	assert.Contains(t, events[0].Payload, "workflow_started")

	// Cursor past the first event.
	events, err = svc.GetEventsSince(ctx, "workflow:wf-1", int64(first.ID), 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Payload, "step_status")

	// Unknown channel is empty, not an error.
	events, err = svc.GetEventsSince(ctx, "workflow:unknown", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetEventsSince_Limit(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)

	for i := 0; i < 5; i++ {
		seedEvent(t, client.Client, "workflow:wf-1", `{}`)
	}

	events, err := svc.GetEventsSince(context.Background(), "workflow:wf-1", 0, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestDeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	_, err := client.Client.Event.Create().
		SetChannel("workflow:wf-1").
		SetPayload(`{}`).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	fresh := seedEvent(t, client.Client, "workflow:wf-1", `{}`)

	n, err := svc.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	events, err := svc.GetEventsSince(ctx, "workflow:wf-1", 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(fresh.ID), events[0].ID)
}
