package pipelines

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scriptor-ai/scriptor/ent"
	entfeed "github.com/scriptor-ai/scriptor/ent/feed"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/feeds"
)

// NewFeedPollPipeline builds the canonical feed polling pipeline:
// eligibility query, atomic is_polling claim per feed, bounded fan-out,
// release in a defer.
func NewFeedPollPipeline(client *ent.Client, poller *feeds.Poller, cfg *config.PipelinesConfig) Pipeline {
	return Pipeline{
		Name:           "feed_poll",
		Interval:       cfg.FeedPollInterval,
		ConcurrencyCap: cfg.FeedConcurrency,
		TargetTimeout:  cfg.FeedTargetTimeout,
		Discover: func(ctx context.Context) ([]Target, error) {
			rows, err := client.Feed.Query().
				Where(entfeed.IsPollingEQ(false)).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to query feeds: %w", err)
			}
			now := time.Now()
			var due []Target
			for _, feed := range rows {
				if feed.LastCheck != nil {
					next := feed.LastCheck.Add(time.Duration(feed.CheckIntervalSeconds) * time.Second)
					if next.After(now) {
						continue
					}
				}
				due = append(due, Target{ID: feed.ID})
			}
			return due, nil
		},
		Handle: func(ctx context.Context, target Target) error {
			claimed, err := claimFeed(ctx, client, target.ID)
			if err != nil {
				return err
			}
			if !claimed {
				// Another pod holds the claim; not a failure.
				return nil
			}
			defer releaseFeed(ctx, client, target.ID)

			feed, err := client.Feed.Get(ctx, target.ID)
			if err != nil {
				return fmt.Errorf("failed to load claimed feed: %w", err)
			}
			_, err = poller.PollFeed(ctx, feed)
			return err
		},
	}
}

// claimFeed atomically flips is_polling. Zero rows updated means the
// claim is already held elsewhere.
func claimFeed(ctx context.Context, client *ent.Client, feedID string) (bool, error) {
	n, err := client.Feed.Update().
		Where(entfeed.IDEQ(feedID), entfeed.IsPollingEQ(false)).
		SetIsPolling(true).
		SetPollingStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim feed: %w", err)
	}
	return n > 0, nil
}

// releaseFeed clears the claim. Runs in a defer so it fires on
// success, failure, and timeout; releasing an unclaimed feed is a
// no-op.
func releaseFeed(ctx context.Context, client *ent.Client, feedID string) {
	_, err := client.Feed.Update().
		Where(entfeed.IDEQ(feedID)).
		SetIsPolling(false).
		ClearPollingStartedAt().
		Save(context.WithoutCancel(ctx))
	if err != nil {
		slog.Error("Failed to release feed polling claim", "feed_id", feedID, "error", err)
	}
}

// NewFeedFlagWatchdogPipeline clears is_polling claims whose
// polling_started_at went stale, e.g. after a pod died mid-poll.
func NewFeedFlagWatchdogPipeline(client *ent.Client, cfg *config.PipelinesConfig) Pipeline {
	return Pipeline{
		Name:     "feed_flag_watchdog",
		Interval: cfg.FeedFlagWatchdogAge,
		Discover: singleTarget("stale_flags"),
		Handle: func(ctx context.Context, _ Target) error {
			n, err := ClearStalePollingFlags(ctx, client, cfg.FeedFlagWatchdogAge)
			if err != nil {
				return err
			}
			if n > 0 {
				slog.Warn("Cleared stale feed polling flags", "count", n)
			}
			return nil
		},
	}
}

// ClearStalePollingFlags releases claims older than maxAge.
func ClearStalePollingFlags(ctx context.Context, client *ent.Client, maxAge time.Duration) (int, error) {
	n, err := client.Feed.Update().
		Where(
			entfeed.IsPollingEQ(true),
			entfeed.PollingStartedAtLT(time.Now().Add(-maxAge)),
		).
		SetIsPolling(false).
		ClearPollingStartedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear stale polling flags: %w", err)
	}
	return n, nil
}

// ClearStartupPollingFlags releases every claim. Called once at boot:
// any flag set before this process started belongs to a previous run.
func ClearStartupPollingFlags(ctx context.Context, client *ent.Client) (int, error) {
	n, err := client.Feed.Update().
		Where(entfeed.IsPollingEQ(true)).
		SetIsPolling(false).
		ClearPollingStartedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear startup polling flags: %w", err)
	}
	return n, nil
}
