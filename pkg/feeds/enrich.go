package feeds

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"

	"github.com/scriptor-ai/scriptor/pkg/fault"
)

const (
	// Entries shorter than this are treated as excerpts worth
	// enriching from the article page.
	enrichMinChars = 500

	enrichTimeout = 45 * time.Second
)

// truncationMarkers are suffixes feed generators append to cut-off
// excerpts.
var truncationMarkers = []string{
	"...",
	"…",
	"[…]",
	"read more",
	"continue reading",
}

// NeedsEnrichment reports whether the feed entry body looks like a
// truncated excerpt rather than the full article.
func NeedsEnrichment(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return true
	}
	if utf8.RuneCountInString(trimmed) < enrichMinChars {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, marker := range truncationMarkers {
		if strings.HasSuffix(lower, marker) {
			return true
		}
	}
	return false
}

// Enricher extracts full article bodies with readability.
type Enricher struct {
	timeout time.Duration
}

// NewEnricher creates an enricher with the default per-page timeout.
func NewEnricher() *Enricher {
	return &Enricher{timeout: enrichTimeout}
}

// Enrich fetches the article page and returns its extracted text. The
// caller decides whether to keep the original excerpt on failure.
func (e *Enricher) Enrich(ctx context.Context, pageURL string) (string, error) {
	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	article, err := readability.FromURL(pageURL, timeout)
	if err != nil {
		return "", fault.Wrap(fault.KindTransient, err, "readability extraction failed for %q", pageURL)
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fault.New(fault.KindTransient, "readability produced no text for %q", pageURL)
	}
	return text, nil
}
