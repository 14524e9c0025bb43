package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entpresence "github.com/scriptor-ai/scriptor/ent/presence"
	"github.com/scriptor-ai/scriptor/pkg/fault"
)

// Heartbeat upserts the user's presence row: status and last_seen_at.
// The reaper pipeline demotes rows whose heartbeats stop.
func (s *Service) Heartbeat(ctx context.Context, userID string, status entpresence.Status) error {
	if userID == "" {
		return fault.New(fault.KindBadInput, "user_id is required")
	}
	if err := entpresence.StatusValidator(status); err != nil {
		return fault.Wrap(fault.KindBadInput, err, "invalid presence status")
	}

	n, err := s.client.Presence.Update().
		Where(entpresence.UserIDEQ(userID)).
		SetStatus(status).
		SetLastSeenAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to update presence")
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.Presence.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetStatus(status).
		SetLastSeenAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the insert race; the winner's heartbeat stands until
			// the next tick.
			return nil
		}
		return fault.Wrap(fault.KindTransient, err, "failed to create presence")
	}
	return nil
}

// GetPresence returns the user's presence row, defaulting to offline
// for users who never sent a heartbeat.
func (s *Service) GetPresence(ctx context.Context, userID string) (entpresence.Status, time.Time, error) {
	row, err := s.client.Presence.Query().
		Where(entpresence.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return entpresence.StatusOffline, time.Time{}, nil
		}
		return "", time.Time{}, fault.Wrap(fault.KindTransient, err, "failed to load presence")
	}
	return row.Status, row.LastSeenAt, nil
}
