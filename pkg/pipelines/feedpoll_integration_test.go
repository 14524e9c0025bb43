package pipelines

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/ent"
	entfeed "github.com/scriptor-ai/scriptor/ent/feed"
	entpresence "github.com/scriptor-ai/scriptor/ent/presence"
	entworkflow "github.com/scriptor-ai/scriptor/ent/workflow"
	"github.com/scriptor-ai/scriptor/pkg/checkpoint"
	"github.com/scriptor-ai/scriptor/pkg/config"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

func createFeed(t *testing.T, client *ent.Client, url string) *ent.Feed {
	t.Helper()
	feed, err := client.Feed.Create().
		SetID(uuid.NewString()).
		SetURL(url).
		Save(context.Background())
	require.NoError(t, err)
	return feed
}

func TestClaimFeed_Atomic(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	feed := createFeed(t, client.Client, "https://example.com/feed.xml")

	claimed, err := claimFeed(ctx, client.Client, feed.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = claimFeed(ctx, client.Client, feed.ID)
	require.NoError(t, err)
	assert.False(t, claimed, "second claim must lose")

	releaseFeed(ctx, client.Client, feed.ID)

	claimed, err = claimFeed(ctx, client.Client, feed.ID)
	require.NoError(t, err)
	assert.True(t, claimed, "claim must be available again after release")
}

func TestClearStalePollingFlags(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stale := createFeed(t, client.Client, "https://example.com/stale.xml")
	fresh := createFeed(t, client.Client, "https://example.com/fresh.xml")

	_, err := client.Client.Feed.Update().
		Where(entfeed.IDEQ(stale.ID)).
		SetIsPolling(true).
		SetPollingStartedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Client.Feed.Update().
		Where(entfeed.IDEQ(fresh.ID)).
		SetIsPolling(true).
		SetPollingStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	n, err := ClearStalePollingFlags(ctx, client.Client, 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	row, err := client.Client.Feed.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.False(t, row.IsPolling)
	row, err = client.Client.Feed.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.True(t, row.IsPolling, "live claim must survive the watchdog")

	n, err = ClearStartupPollingFlags(ctx, client.Client)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFeedPollPipeline_DiscoverEligibility(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := config.DefaultPipelinesConfig()

	never := createFeed(t, client.Client, "https://example.com/never.xml")

	due := createFeed(t, client.Client, "https://example.com/due.xml")
	_, err := client.Client.Feed.Update().
		Where(entfeed.IDEQ(due.ID)).
		SetLastCheck(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	recent := createFeed(t, client.Client, "https://example.com/recent.xml")
	_, err = client.Client.Feed.Update().
		Where(entfeed.IDEQ(recent.ID)).
		SetLastCheck(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	claimed := createFeed(t, client.Client, "https://example.com/claimed.xml")
	_, err = client.Client.Feed.Update().
		Where(entfeed.IDEQ(claimed.ID)).
		SetIsPolling(true).
		SetPollingStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pipeline := NewFeedPollPipeline(client.Client, nil, cfg)
	targets, err := pipeline.Discover(ctx)
	require.NoError(t, err)

	ids := make(map[string]bool, len(targets))
	for _, target := range targets {
		ids[target.ID] = true
	}
	assert.True(t, ids[never.ID], "never-checked feeds are due")
	assert.True(t, ids[due.ID])
	assert.False(t, ids[recent.ID], "recently checked feeds wait their interval")
	assert.False(t, ids[claimed.ID], "claimed feeds are skipped")
}

func TestPresenceReaperPipeline(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := config.DefaultPipelinesConfig()

	_, err := client.Client.Presence.Create().
		SetID(uuid.NewString()).
		SetUserID("user-stale").
		SetStatus(entpresence.StatusOnline).
		SetLastSeenAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Client.Presence.Create().
		SetID(uuid.NewString()).
		SetUserID("user-live").
		SetStatus(entpresence.StatusOnline).
		SetLastSeenAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pipeline := NewPresenceReaperPipeline(client.Client, cfg)
	require.NoError(t, pipeline.Handle(ctx, Target{ID: "stale_presence"}))

	rows, err := client.Client.Presence.Query().All(ctx)
	require.NoError(t, err)
	byUser := map[string]entpresence.Status{}
	for _, row := range rows {
		byUser[row.UserID] = row.Status
	}
	assert.Equal(t, entpresence.StatusOffline, byUser["user-stale"])
	assert.Equal(t, entpresence.StatusOnline, byUser["user-live"])
}

func TestRetentionPipeline_ArchivesAndCollects(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := config.DefaultPipelinesConfig()

	conversationID := uuid.NewString()
	_, err := client.Client.Conversation.Create().
		SetID(conversationID).
		SetUserID("user-1").
		SetTitle("retention test").
		Save(ctx)
	require.NoError(t, err)

	old, err := client.Client.Workflow.Create().
		SetID(uuid.NewString()).
		SetConversationID(conversationID).
		SetUserID("user-1").
		SetTemplateName("dynamic").
		SetStatus(entworkflow.StatusCompleted).
		SetCompletedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := client.Client.Workflow.Create().
		SetID(uuid.NewString()).
		SetConversationID(conversationID).
		SetUserID("user-1").
		SetTemplateName("dynamic").
		SetStatus(entworkflow.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	store := checkpoint.NewStore(client.Client)
	_, err = store.Put(ctx, conversationID, old.ID, "workflow_completed", &checkpoint.WorkflowState{WorkflowStatus: "completed"})
	require.NoError(t, err)

	pipeline := NewRetentionPipeline(client.Client, store, nil, cfg)
	require.NoError(t, pipeline.Handle(ctx, Target{ID: "retention"}))

	row, err := client.Client.Workflow.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.NotNil(t, row.ArchivedAt)

	row, err = client.Client.Workflow.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Nil(t, row.ArchivedAt, "workflows inside the retention window stay")

	_, err = store.Latest(ctx, old.ID)
	require.Error(t, err, "old workflow's checkpoints are collected")
}
