// Package feeds fetches and ingests RSS/Atom feeds: polite conditional
// GET fetching, content-hash deduplication, and readability enrichment
// of truncated entries.
package feeds

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/scriptor-ai/scriptor/ent"
	"github.com/scriptor-ai/scriptor/pkg/fault"
)

const fetchTimeout = 30 * time.Second

// Fetcher performs conditional GET requests against feed endpoints and
// parses the responses.
type Fetcher struct {
	client    *http.Client
	userAgent string
	parser    *gofeed.Parser
}

// NewFetcher creates a fetcher identifying itself with the given
// version string.
func NewFetcher(version string) *Fetcher {
	if version == "" {
		version = "dev"
	}
	return &Fetcher{
		client:    &http.Client{Timeout: fetchTimeout},
		userAgent: fmt.Sprintf("scriptor/%s (+https://github.com/scriptor-ai/scriptor)", version),
		parser:    gofeed.NewParser(),
	}
}

// FetchResult is the outcome of one fetch.
type FetchResult struct {
	// Parsed is nil when NotModified is set.
	Parsed      *gofeed.Feed
	NotModified bool

	// Validators from the response, to persist for the next fetch.
	ETag         string
	LastModified string
}

// Fetch requests the feed URL, sending the stored cache validators. A
// 304 response short-circuits with NotModified.
func (f *Fetcher) Fetch(ctx context.Context, feed *ent.Feed) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, fault.Wrap(fault.KindBadInput, err, "invalid feed url %q", feed.URL)
	}
	req.Header.Set("User-Agent", f.userAgent)
	if feed.Etag != nil && *feed.Etag != "" {
		req.Header.Set("If-None-Match", *feed.Etag)
	}
	if feed.LastModified != nil && *feed.LastModified != "" {
		req.Header.Set("If-Modified-Since", *feed.LastModified)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "feed fetch failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified:
		return &FetchResult{NotModified: true}, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fault.New(fault.KindTransient, "feed fetch returned status %d", resp.StatusCode)
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fault.Wrap(fault.KindBadInput, err, "feed parse failed")
	}
	return &FetchResult{
		Parsed:       parsed,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}
