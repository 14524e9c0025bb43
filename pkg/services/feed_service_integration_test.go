package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/fault"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

func TestFeedSubscribe(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedService(client.Client)
	ctx := context.Background()

	feed, err := svc.Subscribe(ctx, "https://example.com/feed.xml", 0)
	require.NoError(t, err)
	assert.Equal(t, 1800, feed.CheckIntervalSeconds, "default interval")

	// Re-subscribing to the same URL returns the existing row.
	again, err := svc.Subscribe(ctx, "https://example.com/feed.xml", 600)
	require.NoError(t, err)
	assert.Equal(t, feed.ID, again.ID)

	_, err = svc.Subscribe(ctx, "not a url", 0)
	require.Error(t, err)
	assert.Equal(t, fault.KindBadInput, fault.KindOf(err))

	feeds, err := svc.ListFeeds(ctx)
	require.NoError(t, err)
	assert.Len(t, feeds, 1)
}

func TestFeedUnsubscribe_CascadesArticles(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedService(client.Client)
	ctx := context.Background()

	feed, err := svc.Subscribe(ctx, "https://example.com/feed.xml", 0)
	require.NoError(t, err)

	_, err = client.Client.FeedArticle.Create().
		SetID(uuid.New().String()).
		SetFeedID(feed.ID).
		SetTitle("first post").
		SetURL("https://example.com/1").
		SetContent("body").
		SetContentHash("hash-1").
		SetPublishedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, feed.ID))
	// Idempotent.
	require.NoError(t, svc.Unsubscribe(ctx, feed.ID))

	_, err = svc.GetFeed(ctx, feed.ID)
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))

	count, err := client.Client.FeedArticle.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "articles are removed with their feed")
}

func TestListArticles_NewestFirst(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFeedService(client.Client)
	ctx := context.Background()

	feed, err := svc.Subscribe(ctx, "https://example.com/feed.xml", 0)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"oldest", "middle", "newest"} {
		_, err := client.Client.FeedArticle.Create().
			SetID(uuid.New().String()).
			SetFeedID(feed.ID).
			SetTitle(title).
			SetURL("https://example.com/" + title).
			SetContent("body").
			SetContentHash("hash-" + title).
			SetPublishedAt(base.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	articles, err := svc.ListArticles(ctx, feed.ID, 2)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "newest", articles[0].Title)
	assert.Equal(t, "middle", articles[1].Title)

	_, err = svc.ListArticles(ctx, "missing", 10)
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}
