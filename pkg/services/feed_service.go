package services

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entfeed "github.com/scriptor-ai/scriptor/ent/feed"
	entfeedarticle "github.com/scriptor-ai/scriptor/ent/feedarticle"
	"github.com/scriptor-ai/scriptor/pkg/fault"
)

// FeedService manages the feed subscription list. Polling itself lives
// in pkg/feeds and pkg/pipelines; this service only owns the rows.
type FeedService struct {
	client *ent.Client
}

// NewFeedService creates a new FeedService.
func NewFeedService(client *ent.Client) *FeedService {
	return &FeedService{client: client}
}

// Subscribe adds a feed. Subscribing to an already-known URL returns
// the existing row.
func (s *FeedService) Subscribe(ctx context.Context, feedURL string, checkIntervalSeconds int) (*ent.Feed, error) {
	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fault.New(fault.KindBadInput, "invalid feed url %q", feedURL)
	}

	create := s.client.Feed.Create().
		SetID(uuid.New().String()).
		SetURL(feedURL)
	if checkIntervalSeconds > 0 {
		create.SetCheckIntervalSeconds(checkIntervalSeconds)
	}
	feed, err := create.Save(ctx)
	if err == nil {
		return feed, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to create feed")
	}

	existing, qerr := s.client.Feed.Query().
		Where(entfeed.URLEQ(feedURL)).
		Only(ctx)
	if qerr != nil {
		return nil, fault.Wrap(fault.KindTransient, qerr, "failed to load existing feed")
	}
	return existing, nil
}

// Unsubscribe removes a feed and, via cascade, its articles.
// Idempotent.
func (s *FeedService) Unsubscribe(ctx context.Context, feedID string) error {
	err := s.client.Feed.DeleteOneID(feedID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fault.Wrap(fault.KindTransient, err, "failed to delete feed")
	}
	return nil
}

// GetFeed returns one feed row.
func (s *FeedService) GetFeed(ctx context.Context, feedID string) (*ent.Feed, error) {
	feed, err := s.client.Feed.Get(ctx, feedID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "feed %s not found", feedID)
		}
		return nil, fault.Wrap(fault.KindTransient, err, "failed to load feed")
	}
	return feed, nil
}

// ListFeeds returns all subscribed feeds, oldest subscription first.
func (s *FeedService) ListFeeds(ctx context.Context) ([]*ent.Feed, error) {
	rows, err := s.client.Feed.Query().
		Order(ent.Asc(entfeed.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to list feeds")
	}
	return rows, nil
}

// ListArticles returns a feed's articles, newest published first.
func (s *FeedService) ListArticles(ctx context.Context, feedID string, limit int) ([]*ent.FeedArticle, error) {
	if _, err := s.GetFeed(ctx, feedID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 500
	}
	rows, err := s.client.FeedArticle.Query().
		Where(entfeedarticle.FeedIDEQ(feedID)).
		Order(ent.Desc(entfeedarticle.FieldPublishedAt), ent.Desc(entfeedarticle.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to list articles")
	}
	return rows, nil
}
