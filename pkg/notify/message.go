package notify

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"
)

const (
	maxBlockTextLength = 2900

	// dedupWindow bounds how far back the fingerprint search looks.
	dedupWindow = 24 * time.Hour
)

// BuildAlertMessage creates Block Kit blocks for an operator alert.
// The title doubles as the dedup fingerprint, so it must appear
// verbatim in the rendered text.
func BuildAlertMessage(title, message string) []goslack.Block {
	headerText := fmt.Sprintf(":warning: *%s*", title)
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}
	if message != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(message), false, false),
			nil, nil,
		))
	}
	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — see server logs for the full message)_"
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func collectMessageText(msg goslack.Message) string {
	var parts []string
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	return strings.Join(parts, " ")
}
