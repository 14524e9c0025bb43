package tools

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// charsPerToken approximates tokens for English text. The limit is a
// soft budget, not an exact count, so a tokenizer dependency is not
// worth it.
const charsPerToken = 4

// DefaultResultMaxTokens caps stored tool results when the server
// config does not set one.
const DefaultResultMaxTokens = 8000

// EstimateTokens returns an approximate token count. len() counts
// bytes, so multi-byte content overestimates slightly, which errs in
// the safe direction.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken
}

// TruncateResult cuts tool output at the last line boundary under the
// token budget, so indented JSON, YAML, and logs keep whole lines.
func TruncateResult(content string, maxTokens int) string {
	if maxTokens <= 0 {
		maxTokens = DefaultResultMaxTokens
	}
	maxChars := maxTokens * charsPerToken
	if len(content) <= maxChars {
		return content
	}

	// Never split a multi-byte UTF-8 character.
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	truncated := content[:cut]
	if idx := strings.LastIndex(truncated, "\n"); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + fmt.Sprintf(
		"\n\n[TRUNCATED: tool result exceeded limit — original %s, limit %s]",
		formatSize(len(content)), formatSize(maxChars))
}

func formatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	return fmt.Sprintf("%dKB", bytes/1024)
}
