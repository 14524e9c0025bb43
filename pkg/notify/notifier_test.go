package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/config"
)

// mockSlack records chat.postMessage calls and serves canned
// conversation history.
type mockSlack struct {
	history []map[string]any

	posted []postedMessage
}

type postedMessage struct {
	threadTS string
	blocks   string
}

func (m *mockSlack) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/conversations.history", func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"ok":       true,
			"messages": m.history,
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		m.posted = append(m.posted, postedMessage{
			threadTS: r.FormValue("thread_ts"),
			blocks:   r.FormValue("blocks"),
		})
		resp := map[string]any{"ok": true, "channel": "C123", "ts": "1.23"}
		_ = json.NewEncoder(w).Encode(resp)
	})
	return mux
}

func newMockNotifier(t *testing.T, mock *mockSlack) *Notifier {
	t.Helper()
	srv := httptest.NewServer(mock.handler())
	t.Cleanup(srv.Close)
	return newNotifier(goslack.New("xoxb-test", goslack.OptionAPIURL(srv.URL+"/")), "C123")
}

func TestNewNotifier(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		assert.Nil(t, NewNotifier(nil))
	})

	t.Run("disabled", func(t *testing.T) {
		assert.Nil(t, NewNotifier(&config.SlackConfig{Enabled: false, Channel: "C123"}))
	})

	t.Run("missing channel", func(t *testing.T) {
		assert.Nil(t, NewNotifier(&config.SlackConfig{Enabled: true}))
	})

	t.Run("empty token env", func(t *testing.T) {
		t.Setenv("SCRIPTOR_TEST_SLACK_TOKEN", "")
		cfg := &config.SlackConfig{Enabled: true, Channel: "C123", TokenEnv: "SCRIPTOR_TEST_SLACK_TOKEN"}
		assert.Nil(t, NewNotifier(cfg))
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv("SCRIPTOR_TEST_SLACK_TOKEN", "xoxb-test")
		cfg := &config.SlackConfig{Enabled: true, Channel: "C123", TokenEnv: "SCRIPTOR_TEST_SLACK_TOKEN"}
		assert.NotNil(t, NewNotifier(cfg))
	})
}

func TestNotifier_NilReceiver(t *testing.T) {
	var n *Notifier
	// Should not panic.
	n.Notify(context.Background(), "feed poll", "1/3 targets failed")
}

func TestNotify_PostsAlert(t *testing.T) {
	mock := &mockSlack{}
	n := newMockNotifier(t, mock)

	n.Notify(context.Background(), "pipeline feed_poll", "2/8 targets failed")

	require.Len(t, mock.posted, 1)
	assert.Empty(t, mock.posted[0].threadTS, "first alert starts a new thread")
	assert.Contains(t, mock.posted[0].blocks, "pipeline feed_poll")
	assert.Contains(t, mock.posted[0].blocks, "2/8 targets failed")
}

func TestNotify_ThreadsRepeatAlerts(t *testing.T) {
	mock := &mockSlack{
		history: []map[string]any{
			{"ts": "111.222", "text": ":warning: *pipeline feed_poll*"},
			{"ts": "333.444", "text": ":warning: *pipeline retention*"},
		},
	}
	n := newMockNotifier(t, mock)

	n.Notify(context.Background(), "pipeline feed_poll", "1/8 targets failed")

	require.Len(t, mock.posted, 1)
	assert.Equal(t, "111.222", mock.posted[0].threadTS,
		"repeat alert must thread under the earlier one")
}

func TestNotify_DeliveryFailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	n := newNotifier(goslack.New("xoxb-test", goslack.OptionAPIURL(srv.URL+"/")), "C123")

	// Must not panic and must not block the caller.
	n.Notify(context.Background(), "pipeline feed_poll", "boom")
}
