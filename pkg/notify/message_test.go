package notify

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAlertMessage(t *testing.T) {
	blocks := BuildAlertMessage("pipeline feed_poll", "3/8 targets failed")

	require.Len(t, blocks, 2)

	header, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, ":warning:")
	assert.Contains(t, header.Text.Text, "pipeline feed_poll")

	body, ok := blocks[1].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, body.Text.Text, "3/8 targets failed")
}

func TestBuildAlertMessage_TitleOnly(t *testing.T) {
	blocks := BuildAlertMessage("orphan recovery", "")
	require.Len(t, blocks, 1)
}

func TestTruncateForSlack(t *testing.T) {
	long := strings.Repeat("x", maxBlockTextLength+100)
	got := truncateForSlack(long)

	assert.Less(t, len(got), len(long))
	assert.Contains(t, got, "truncated")

	short := "short message"
	assert.Equal(t, short, truncateForSlack(short))
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Feed POLL failed", "feed poll failed"},
		{"collapse whitespace", "feed   poll\t\tfailed", "feed poll failed"},
		{"trim", "  hello  ", "hello"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	msg := goslack.Message{
		Msg: goslack.Msg{
			Text: "alert",
			Attachments: []goslack.Attachment{
				{Text: "att text", Fallback: "att fallback"},
			},
		},
	}
	assert.Equal(t, "alert att text att fallback", collectMessageText(msg))
}
