package services

import (
	"context"
	"time"

	"github.com/scriptor-ai/scriptor/ent"
	entevent "github.com/scriptor-ai/scriptor/ent/event"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/fault"
)

// EventService pages persisted events for reconnect catchup. Writes go
// through the publisher, which persists and notifies in the same
// transaction; this service only reads and garbage-collects.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince returns persisted events on the channel with id >
// sinceID, oldest first. Implements events.CatchupQuerier.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]events.CatchupEvent, error) {
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	rows, err := s.client.Event.Query().
		Where(
			entevent.ChannelEQ(channel),
			entevent.IDGT(int(sinceID)),
		).
		Order(ent.Asc(entevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to page events")
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.CatchupEvent{
			ID:      int64(row.ID),
			Payload: row.Payload,
		})
	}
	return out, nil
}

// DeleteOlderThan removes persisted events created before the cutoff.
// Catchup only serves recent history; old rows are dead weight.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(entevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fault.Wrap(fault.KindTransient, err, "failed to delete old events")
	}
	return n, nil
}
