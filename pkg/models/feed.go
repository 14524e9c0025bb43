package models

import "time"

// CreateFeedRequest registers an RSS/Atom feed for periodic polling.
type CreateFeedRequest struct {
	URL                  string `json:"url"`
	Title                string `json:"title,omitempty"`
	CheckIntervalSeconds int    `json:"check_interval_seconds,omitempty"`
}

// FeedItem is one parsed entry ready for persistence. ContentHash is
// the dedup key; entries whose hash already exists are skipped.
type FeedItem struct {
	GUID        string     `json:"guid,omitempty"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Content     string     `json:"content,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Author      string     `json:"author,omitempty"`
	ContentHash string     `json:"content_hash"`
	Enriched    bool       `json:"enriched"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// FeedPollResult summarises one feed's polling outcome.
type FeedPollResult struct {
	FeedID      string `json:"feed_id"`
	URL         string `json:"url"`
	NotModified bool   `json:"not_modified"`
	NewItems    int    `json:"new_items"`
	Duplicates  int    `json:"duplicates"`
	Enriched    int    `json:"enriched"`
	Error       string `json:"error,omitempty"`
}

// FeedBatchSummary collates one polling cycle across all eligible feeds.
type FeedBatchSummary struct {
	FeedsPolled int              `json:"feeds_polled"`
	NewItems    int              `json:"new_items"`
	Failures    int              `json:"failures"`
	Skipped     int              `json:"skipped"`
	Results     []FeedPollResult `json:"results"`
	Elapsed     time.Duration    `json:"elapsed"`
}
