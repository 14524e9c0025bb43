package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/ent"
	entarticle "github.com/scriptor-ai/scriptor/ent/feedarticle"
	testdb "github.com/scriptor-ai/scriptor/test/database"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <link>https://example.com</link>
    <item>
      <title>First Post</title>
      <link>https://example.com/posts/1</link>
      <guid>post-1</guid>
      <description>A short teaser.</description>
    </item>
    <item>
      <title>Second Post</title>
      <link>https://example.com/posts/2</link>
      <guid>post-2</guid>
      <description>Another teaser.</description>
    </item>
  </channel>
</rss>`

func seedFeed(t *testing.T, client *ent.Client, url string) *ent.Feed {
	t.Helper()
	feed, err := client.Feed.Create().
		SetID(uuid.NewString()).
		SetURL(url).
		Save(context.Background())
	require.NoError(t, err)
	return feed
}

func TestPollFeed_IngestAndConditionalGet(t *testing.T) {
	client := testdb.NewTestClient(t)

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Contains(t, r.Header.Get("User-Agent"), "scriptor/")
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssBody))
	}))
	defer server.Close()

	poller := NewPoller(client.Client, NewFetcher("test"), nil)
	feed := seedFeed(t, client.Client, server.URL)
	ctx := context.Background()

	stats, err := poller.PollFeed(ctx, feed)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.NewArticles)
	assert.Zero(t, stats.Duplicates)

	articles, err := client.Client.FeedArticle.Query().
		Where(entarticle.FeedIDEQ(feed.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	for _, article := range articles {
		assert.NotEmpty(t, article.ContentHash)
		assert.False(t, article.Enriched)
	}

	// Feed row carries the validator and the channel title.
	feed, err = client.Client.Feed.Get(ctx, feed.ID)
	require.NoError(t, err)
	require.NotNil(t, feed.Etag)
	assert.Equal(t, `"v1"`, *feed.Etag)
	require.NotNil(t, feed.Title)
	assert.Equal(t, "Example Feed", *feed.Title)
	require.NotNil(t, feed.LastCheck)

	// Second poll sends If-None-Match and short-circuits on 304.
	stats, err = poller.PollFeed(ctx, feed)
	require.NoError(t, err)
	assert.True(t, stats.NotModified)
	assert.Zero(t, stats.NewArticles)
	assert.Equal(t, int32(2), requests.Load())
}

func TestPollFeed_DeduplicatesByContentHash(t *testing.T) {
	client := testdb.NewTestClient(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No validators: every poll returns the full body again.
		_, _ = w.Write([]byte(rssBody))
	}))
	defer server.Close()

	poller := NewPoller(client.Client, NewFetcher("test"), nil)
	feed := seedFeed(t, client.Client, server.URL)
	ctx := context.Background()

	stats, err := poller.PollFeed(ctx, feed)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.NewArticles)

	stats, err = poller.PollFeed(ctx, feed)
	require.NoError(t, err)
	assert.Zero(t, stats.NewArticles)
	assert.Equal(t, 2, stats.Duplicates)

	count, err := client.Client.FeedArticle.Query().
		Where(entarticle.FeedIDEQ(feed.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPollFeed_RecordsFailures(t *testing.T) {
	client := testdb.NewTestClient(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	poller := NewPoller(client.Client, NewFetcher("test"), nil)
	feed := seedFeed(t, client.Client, server.URL)
	ctx := context.Background()

	_, err := poller.PollFeed(ctx, feed)
	require.Error(t, err)

	feed, err = client.Client.Feed.Get(ctx, feed.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, feed.ConsecutiveFailures)
	require.NotNil(t, feed.LastError)
	assert.Contains(t, *feed.LastError, "500")

	_, err = poller.PollFeed(ctx, feed)
	require.Error(t, err)
	feed, err = client.Client.Feed.Get(ctx, feed.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, feed.ConsecutiveFailures)
}
