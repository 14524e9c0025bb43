package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// catchupLimit caps how many missed events one Subscribe replays. A
// subscriber further behind than this receives an overflow envelope
// and should reload through the owning service instead.
const catchupLimit = 200

// subscriberBuffer is the per-subscriber queue depth. A subscriber
// that falls this far behind starts losing events (with a logged
// warning); delivered events stay in order.
const subscriberBuffer = 256

// Envelope is one delivered event. DBEventID is zero for transient
// events and for envelopes synthesised locally (overflow markers).
type Envelope struct {
	Channel   string
	DBEventID int64
	Payload   []byte
}

// CatchupEvent is one persisted event row replayed on subscribe.
type CatchupEvent struct {
	ID      int64
	Payload string
}

// CatchupQuerier pages persisted events for reconnect catchup.
// Implemented by services.EventService.
type CatchupQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error)
}

type subscriber struct {
	id int
	ch chan Envelope
	// lastDelivered suppresses duplicates when catchup replay and live
	// notifications overlap.
	lastDelivered int64
	mu            sync.Mutex
}

// deliver enqueues an envelope, dropping persisted duplicates and, on
// a full buffer, the event itself.
func (s *subscriber) deliver(env Envelope, logger *slog.Logger) {
	s.mu.Lock()
	if env.DBEventID > 0 {
		if env.DBEventID <= s.lastDelivered {
			s.mu.Unlock()
			return
		}
		s.lastDelivered = env.DBEventID
	}
	s.mu.Unlock()

	select {
	case s.ch <- env:
	default:
		logger.Warn("subscriber buffer full, dropping event",
			"channel", env.Channel, "db_event_id", env.DBEventID)
	}
}

// Hub fans NOTIFY payloads out to in-process subscribers with ordered
// per-channel delivery. The transport layer that would forward these
// to browsers subscribes here like any other consumer.
type Hub struct {
	logger  *slog.Logger
	catchup CatchupQuerier

	mu     sync.RWMutex
	subs   map[string]map[int]*subscriber // channel → id → subscriber
	nextID int

	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// NewHub creates a hub. The catchup querier may be nil when replay is
// not needed (tests).
func NewHub(logger *slog.Logger, catchup CatchupQuerier) *Hub {
	return &Hub{
		logger:  logger.With("component", "event_hub"),
		catchup: catchup,
		subs:    make(map[string]map[int]*subscriber),
	}
}

// SetListener wires the NOTIFY listener for dynamic LISTEN/UNLISTEN.
// Called once at startup after both sides exist.
func (h *Hub) SetListener(l *NotifyListener) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listener = l
}

// Broadcast dispatches one NOTIFY payload to every local subscriber of
// the channel. Called by the NotifyListener receive loop, so delivery
// order per channel follows notification order.
func (h *Hub) Broadcast(channel string, payload []byte) {
	var cursor struct {
		DBEventID int64 `json:"db_event_id"`
	}
	_ = json.Unmarshal(payload, &cursor)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs[channel] {
		sub.deliver(Envelope{Channel: channel, DBEventID: cursor.DBEventID, Payload: payload}, h.logger)
	}
}

// Subscribe registers a consumer on a channel and returns its event
// stream plus a cancel function. When sinceEventID is non-nil, the
// persisted events after that id are replayed first; live events that
// raced in during replay are deduplicated by db_event_id.
func (h *Hub) Subscribe(ctx context.Context, channel string, sinceEventID *int64) (<-chan Envelope, func(), error) {
	h.listenerMu.RLock()
	listener := h.listener
	h.listenerMu.RUnlock()
	if listener != nil {
		if err := listener.Listen(ctx, channel); err != nil {
			return nil, nil, err
		}
	}

	sub := &subscriber{ch: make(chan Envelope, subscriberBuffer)}

	h.mu.Lock()
	h.nextID++
	sub.id = h.nextID
	if h.subs[channel] == nil {
		h.subs[channel] = make(map[int]*subscriber)
	}
	h.subs[channel][sub.id] = sub
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if m, ok := h.subs[channel]; ok {
			delete(m, sub.id)
			if len(m) == 0 {
				delete(h.subs, channel)
			}
		}
		lastOnChannel := h.subs[channel] == nil
		h.mu.Unlock()

		if lastOnChannel && listener != nil {
			// Bounded so a stalled connection cannot hang the caller.
			unlistenCtx, unlistenCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer unlistenCancel()
			if err := listener.Unlisten(unlistenCtx, channel); err != nil {
				h.logger.Warn("UNLISTEN failed", "channel", channel, "error", err)
			}
		}
	}

	if sinceEventID != nil && h.catchup != nil {
		if err := h.replayCatchup(ctx, channel, *sinceEventID, sub); err != nil {
			cancel()
			return nil, nil, err
		}
	}

	return sub.ch, cancel, nil
}

// replayCatchup loads missed persisted events into the subscriber's
// queue. The subscriber is already registered, so the db_event_id
// dedup in deliver keeps replay and live delivery from double-sending.
func (h *Hub) replayCatchup(ctx context.Context, channel string, sinceID int64, sub *subscriber) error {
	rows, err := h.catchup.GetEventsSince(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		return err
	}

	overflow := len(rows) > catchupLimit
	if overflow {
		rows = rows[:catchupLimit]
	}
	for _, row := range rows {
		sub.deliver(Envelope{Channel: channel, DBEventID: row.ID, Payload: []byte(row.Payload)}, h.logger)
	}
	if overflow {
		marker, _ := json.Marshal(map[string]any{
			"type":    "catchup_overflow",
			"channel": channel,
		})
		sub.deliver(Envelope{Channel: channel, Payload: marker}, h.logger)
	}
	return nil
}

// SubscriberCount reports active subscribers on a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[channel])
}
