package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatchup struct {
	events map[string][]CatchupEvent
}

func (f *fakeCatchup) GetEventsSince(_ context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	var out []CatchupEvent
	for _, e := range f.events[channel] {
		if e.ID > sinceID {
			out = append(out, e)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func persistedPayload(t *testing.T, eventType string, id int64) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{"type": eventType, "db_event_id": id})
	require.NoError(t, err)
	return b
}

func TestHubBroadcastDeliversInOrder(t *testing.T) {
	hub := NewHub(slog.Default(), nil)
	ch, cancel, err := hub.Subscribe(context.Background(), "workflow:w1", nil)
	require.NoError(t, err)
	defer cancel()

	for i := int64(1); i <= 5; i++ {
		hub.Broadcast("workflow:w1", persistedPayload(t, "step_completed", i))
	}

	for i := int64(1); i <= 5; i++ {
		select {
		case env := <-ch:
			assert.Equal(t, i, env.DBEventID)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestHubChannelIsolation(t *testing.T) {
	hub := NewHub(slog.Default(), nil)
	ch1, cancel1, err := hub.Subscribe(context.Background(), "workflow:w1", nil)
	require.NoError(t, err)
	defer cancel1()
	ch2, cancel2, err := hub.Subscribe(context.Background(), "workflow:w2", nil)
	require.NoError(t, err)
	defer cancel2()

	hub.Broadcast("workflow:w1", persistedPayload(t, "workflow_started", 1))

	select {
	case env := <-ch1:
		assert.Equal(t, int64(1), env.DBEventID)
	case <-time.After(time.Second):
		t.Fatal("subscriber on w1 got nothing")
	}
	select {
	case <-ch2:
		t.Fatal("subscriber on w2 received a w1 event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubCatchupThenDedup(t *testing.T) {
	catchup := &fakeCatchup{events: map[string][]CatchupEvent{
		"workflow:w1": {
			{ID: 1, Payload: `{"type":"workflow_started","db_event_id":1}`},
			{ID: 2, Payload: `{"type":"step_starting","db_event_id":2}`},
			{ID: 3, Payload: `{"type":"step_completed","db_event_id":3}`},
		},
	}}
	hub := NewHub(slog.Default(), catchup)

	since := int64(1)
	ch, cancel, err := hub.Subscribe(context.Background(), "workflow:w1", &since)
	require.NoError(t, err)
	defer cancel()

	// A live notification for an event already replayed must be
	// suppressed; a new one must pass.
	hub.Broadcast("workflow:w1", persistedPayload(t, "step_completed", 3))
	hub.Broadcast("workflow:w1", persistedPayload(t, "workflow_completed", 4))

	var got []int64
	deadline := time.After(time.Second)
	for len(got) < 3 {
		select {
		case env := <-ch:
			got = append(got, env.DBEventID)
		case <-deadline:
			t.Fatalf("timed out, got %v", got)
		}
	}
	assert.Equal(t, []int64{2, 3, 4}, got)
}

func TestHubCatchupOverflow(t *testing.T) {
	events := make([]CatchupEvent, catchupLimit+10)
	for i := range events {
		id := int64(i + 1)
		events[i] = CatchupEvent{ID: id, Payload: fmt.Sprintf(`{"type":"step_completed","db_event_id":%d}`, id)}
	}
	hub := NewHub(slog.Default(), &fakeCatchup{events: map[string][]CatchupEvent{"workflow:w1": events}})

	since := int64(0)
	ch, cancel, err := hub.Subscribe(context.Background(), "workflow:w1", &since)
	require.NoError(t, err)
	defer cancel()

	seen := 0
	var sawOverflow bool
	deadline := time.After(2 * time.Second)
	for !sawOverflow {
		select {
		case env := <-ch:
			var m map[string]any
			require.NoError(t, json.Unmarshal(env.Payload, &m))
			if m["type"] == "catchup_overflow" {
				sawOverflow = true
				break
			}
			seen++
		case <-deadline:
			t.Fatal("never saw overflow marker")
		}
	}
	assert.Equal(t, catchupLimit, seen)
}

func TestHubCancelRemovesSubscriber(t *testing.T) {
	hub := NewHub(slog.Default(), nil)
	_, cancel, err := hub.Subscribe(context.Background(), "workflow:w1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, hub.SubscriberCount("workflow:w1"))
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount("workflow:w1"))
}

func TestTruncateIfNeeded(t *testing.T) {
	small := `{"type":"step_completed","workflow_id":"w1"}`
	out, err := truncateIfNeeded(small)
	require.NoError(t, err)
	assert.Equal(t, small, out)

	big := map[string]any{
		"type":        "step_completed",
		"workflow_id": "w1",
		"step_id":     "s1",
		"db_event_id": int64(42),
		"content":     string(make([]byte, 9000)),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)
	out, err = truncateIfNeeded(string(bigJSON))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "w1", m["workflow_id"])
	assert.Equal(t, "s1", m["step_id"])
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.NotContains(t, m, "content")
	assert.LessOrEqual(t, len(out), 7900)
}

func TestInjectDBEventID(t *testing.T) {
	out, err := injectDBEventIDAndTruncate([]byte(`{"type":"workflow_started"}`), 7)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(7), m["db_event_id"])
}
