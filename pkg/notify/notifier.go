// Package notify delivers best-effort operator alerts to Slack.
// Repeat alerts with the same title are threaded under the first
// occurrence instead of flooding the channel. All delivery is
// fail-open: errors are logged, never returned to callers.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/scriptor-ai/scriptor/pkg/config"
)

// postTimeout bounds one chat.postMessage call so a wedged Slack API
// cannot stall the pipeline runner.
const postTimeout = 10 * time.Second

// historyLimit is how many recent channel messages the thread search
// scans for an earlier occurrence of the same alert.
const historyLimit = 50

// Notifier posts operator alerts to a Slack channel.
// Nil-safe: all methods are no-ops when the notifier is nil, so callers
// never need to guard the disabled case.
type Notifier struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

// NewNotifier builds a Notifier from configuration.
// Returns nil when notifications are disabled or the token is absent,
// which callers treat as "notifications off".
func NewNotifier(cfg *config.SlackConfig) *Notifier {
	if cfg == nil || !cfg.Enabled || cfg.Channel == "" {
		return nil
	}
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		slog.Default().Warn("Slack notifications enabled but token env is empty; notifications disabled",
			"token_env", cfg.TokenEnv)
		return nil
	}
	return newNotifier(goslack.New(token), cfg.Channel)
}

func newNotifier(api *goslack.Client, channelID string) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		logger:    slog.Default().With("component", "notifier"),
	}
}

// Notify posts an alert. Repeats of the same title within the dedup
// window are threaded under the first occurrence. Fail-open: errors are
// logged, never returned.
func (n *Notifier) Notify(ctx context.Context, title, message string) {
	if n == nil {
		return
	}

	threadTS, err := n.findAlertThread(ctx, title)
	if err != nil {
		n.logger.Warn("Failed to search for existing alert thread",
			"title", title,
			"error", err)
	}

	if err := n.post(ctx, BuildAlertMessage(title, message), threadTS); err != nil {
		n.logger.Error("Failed to send alert",
			"title", title,
			"error", err)
	}
}

// post sends the alert blocks, threaded under threadTS when non-empty.
func (n *Notifier) post(ctx context.Context, blocks []goslack.Block, threadTS string) error {
	ctx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()

	opts := []goslack.MsgOption{
		goslack.MsgOptionBlocks(blocks...),
	}
	if threadTS != "" {
		opts = append(opts, goslack.MsgOptionTS(threadTS))
	}

	if _, _, err := n.api.PostMessageContext(ctx, n.channelID, opts...); err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// findAlertThread scans recent channel history for an earlier alert
// carrying the same title and returns its timestamp for threading, or
// empty when this title has not fired within the dedup window.
func (n *Notifier) findAlertThread(ctx context.Context, title string) (string, error) {
	history, err := n.api.GetConversationHistoryContext(ctx, &goslack.GetConversationHistoryParameters{
		ChannelID: n.channelID,
		Oldest:    fmt.Sprintf("%d", time.Now().Add(-dedupWindow).Unix()),
		Limit:     historyLimit,
	})
	if err != nil {
		return "", fmt.Errorf("conversations.history failed: %w", err)
	}

	needle := normalizeText(title)
	for _, msg := range history.Messages {
		if strings.Contains(normalizeText(collectMessageText(msg)), needle) {
			return msg.Timestamp, nil
		}
	}
	return "", nil
}
