package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHash_NormalisesWhitespaceAndCase(t *testing.T) {
	a := ContentHash("Breaking News", "https://example.com/a", "The   body\n\ttext")
	b := ContentHash("breaking  news", "HTTPS://EXAMPLE.COM/A", "the body text")
	assert.Equal(t, a, b)
}

func TestContentHash_DistinguishesFields(t *testing.T) {
	base := ContentHash("title", "url", "body")
	assert.NotEqual(t, base, ContentHash("title", "urlbody", ""))
	assert.NotEqual(t, base, ContentHash("titleurl", "", "body"))
	assert.NotEqual(t, base, ContentHash("title", "url", "other body"))
}

func TestNeedsEnrichment(t *testing.T) {
	long := make([]byte, 0, 600)
	for i := 0; i < 600; i++ {
		long = append(long, 'x')
	}

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"empty", "", true},
		{"short excerpt", "Just a teaser.", true},
		{"full article", string(long), false},
		{"ellipsis suffix", string(long) + "...", true},
		{"unicode ellipsis", string(long) + "…", true},
		{"read more suffix", string(long) + " Read More", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsEnrichment(tt.content))
		})
	}
}
