package feeds

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/scriptor-ai/scriptor/ent"
	entarticle "github.com/scriptor-ai/scriptor/ent/feedarticle"
)

// Poller runs one fetch-parse-ingest cycle per feed. Claiming and
// fan-out live in the pipeline runner; the poller assumes it owns the
// feed for the duration of the call.
type Poller struct {
	client   *ent.Client
	fetcher  *Fetcher
	enricher *Enricher
	logger   *slog.Logger
}

// NewPoller creates a poller. enricher may be nil to disable
// full-content extraction.
func NewPoller(client *ent.Client, fetcher *Fetcher, enricher *Enricher) *Poller {
	return &Poller{
		client:   client,
		fetcher:  fetcher,
		enricher: enricher,
		logger:   slog.With("component", "feeds.poller"),
	}
}

// PollStats summarises one poll cycle.
type PollStats struct {
	NotModified bool
	NewArticles int
	Duplicates  int
	Enriched    int
}

// PollFeed fetches the feed and ingests unseen articles. The feed row
// is updated with the fetch outcome either way.
func (p *Poller) PollFeed(ctx context.Context, feed *ent.Feed) (*PollStats, error) {
	log := p.logger.With("feed_id", feed.ID, "url", feed.URL)

	result, err := p.fetcher.Fetch(ctx, feed)
	if err != nil {
		p.markFailure(ctx, feed, err)
		return nil, err
	}

	stats := &PollStats{}
	if result.NotModified {
		stats.NotModified = true
		p.markSuccess(ctx, feed, result, nil)
		return stats, nil
	}

	for _, item := range result.Parsed.Items {
		if item == nil || item.Title == "" || item.Link == "" {
			continue
		}
		inserted, enriched, err := p.ingestItem(ctx, feed, item)
		if err != nil {
			if ctx.Err() != nil {
				return stats, err
			}
			log.Warn("Failed to ingest feed item", "item_url", item.Link, "error", err)
			continue
		}
		if inserted {
			stats.NewArticles++
		} else {
			stats.Duplicates++
		}
		if enriched {
			stats.Enriched++
		}
	}

	p.markSuccess(ctx, feed, result, result.Parsed)
	log.Info("Feed polled",
		"new_articles", stats.NewArticles,
		"duplicates", stats.Duplicates,
		"enriched", stats.Enriched)
	return stats, nil
}

// ingestItem deduplicates by content hash, enriches truncated entries,
// and inserts the article. A concurrent insert of the same hash loses
// the unique-constraint race and counts as a duplicate.
func (p *Poller) ingestItem(ctx context.Context, feed *ent.Feed, item *gofeed.Item) (inserted, enriched bool, err error) {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	hash := ContentHash(item.Title, item.Link, content)
	exists, err := p.client.FeedArticle.Query().
		Where(entarticle.FeedIDEQ(feed.ID), entarticle.ContentHashEQ(hash)).
		Exist(ctx)
	if err != nil {
		return false, false, err
	}
	if exists {
		return false, false, nil
	}

	if p.enricher != nil && NeedsEnrichment(content) {
		full, enrichErr := p.enricher.Enrich(ctx, item.Link)
		if enrichErr != nil {
			// Keep the excerpt; enrichment is best-effort.
			p.logger.Debug("Enrichment failed", "item_url", item.Link, "error", enrichErr)
		} else {
			content = full
			enriched = true
		}
	}

	create := p.client.FeedArticle.Create().
		SetID(uuid.NewString()).
		SetFeedID(feed.ID).
		SetTitle(item.Title).
		SetURL(item.Link).
		SetContent(content).
		SetSummary(item.Description).
		SetContentHash(hash).
		SetEnriched(enriched)
	if item.GUID != "" {
		create = create.SetGUID(item.GUID)
	}
	if item.Author != nil && item.Author.Name != "" {
		create = create.SetAuthor(item.Author.Name)
	}
	if item.PublishedParsed != nil {
		create = create.SetPublishedAt(*item.PublishedParsed)
	}

	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, false, nil
		}
		return false, false, err
	}
	return true, enriched, nil
}

func (p *Poller) markSuccess(ctx context.Context, feed *ent.Feed, result *FetchResult, parsed *gofeed.Feed) {
	update := feed.Update().
		SetLastCheck(time.Now()).
		SetConsecutiveFailures(0).
		ClearLastError()
	if result.ETag != "" {
		update = update.SetEtag(result.ETag)
	}
	if result.LastModified != "" {
		update = update.SetLastModified(result.LastModified)
	}
	if parsed != nil && parsed.Title != "" && (feed.Title == nil || *feed.Title == "") {
		update = update.SetTitle(parsed.Title)
	}
	if err := update.Exec(context.WithoutCancel(ctx)); err != nil {
		p.logger.Error("Failed to record feed success", "feed_id", feed.ID, "error", err)
	}
}

func (p *Poller) markFailure(ctx context.Context, feed *ent.Feed, cause error) {
	msg := cause.Error()
	if len(msg) > 500 {
		msg = msg[:500]
	}
	err := feed.Update().
		SetLastCheck(time.Now()).
		SetConsecutiveFailures(feed.ConsecutiveFailures + 1).
		SetLastError(msg).
		Exec(context.WithoutCancel(ctx))
	if err != nil {
		p.logger.Error("Failed to record feed failure", "feed_id", feed.ID, "error", err)
	}
}
