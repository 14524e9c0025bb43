package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entreaction "github.com/scriptor-ai/scriptor/ent/messagereaction"
	entroom "github.com/scriptor-ai/scriptor/ent/room"
	entmsg "github.com/scriptor-ai/scriptor/ent/roommessage"
	entpart "github.com/scriptor-ai/scriptor/ent/roomparticipant"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// Message is the decrypted read-model of a room message. Deleted
// messages keep their position with an empty body.
type Message struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	SenderID  string    `json:"sender_id"`
	Seq       int64     `json:"seq"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Deleted   bool      `json:"deleted"`
}

// Service is the room API: membership, the encrypted append-only log,
// reactions, and read markers.
type Service struct {
	client    *ent.Client
	cipher    *Cipher
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// NewService creates the messaging service. publisher may be nil.
func NewService(client *ent.Client, cipher *Cipher, publisher *events.EventPublisher) *Service {
	return &Service{
		client:    client,
		cipher:    cipher,
		publisher: publisher,
		logger:    slog.With("component", "messaging"),
	}
}

// CreateRoom creates a room with the caller as its first participant.
func (s *Service) CreateRoom(ctx context.Context, principal models.Principal, name string) (*ent.Room, error) {
	if name == "" {
		return nil, fault.New(fault.KindBadInput, "room name is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to start transaction")
	}
	defer func() { _ = tx.Rollback() }()

	room, err := tx.Room.Create().
		SetID(uuid.NewString()).
		SetName(name).
		SetCreatedBy(principal.UserID).
		Save(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to create room")
	}
	_, err = tx.RoomParticipant.Create().
		SetID(uuid.NewString()).
		SetRoomID(room.ID).
		SetUserID(principal.UserID).
		Save(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to add creator to room")
	}
	if err := tx.Commit(); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to commit room")
	}

	s.logger.Info("Room created", "room_id", room.ID, "created_by", principal.UserID)
	return room, nil
}

// JoinRoom adds a user to the room. Joining twice is a no-op.
func (s *Service) JoinRoom(ctx context.Context, principal models.Principal, roomID, userID string) error {
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room.CreatedBy != principal.UserID && !principal.CanAccess(userID) {
		return fault.New(fault.KindAccessDenied, "only the room creator may add other users")
	}

	_, err = s.client.RoomParticipant.Create().
		SetID(uuid.NewString()).
		SetRoomID(roomID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fault.Wrap(fault.KindTransient, err, "failed to join room")
	}
	return nil
}

// SendMessage appends an encrypted message. The sequence number is
// allocated under the room row lock so it is gapless per room, and
// created_at is clamped to never run backwards within the room.
func (s *Service) SendMessage(ctx context.Context, principal models.Principal, roomID, body string) (*Message, error) {
	if body == "" {
		return nil, fault.New(fault.KindBadInput, "message body is required")
	}
	if err := s.requireParticipant(ctx, roomID, principal.UserID); err != nil {
		return nil, err
	}

	envelope, err := s.cipher.Encrypt([]byte(body))
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to start transaction")
	}
	defer func() { _ = tx.Rollback() }()

	room, err := tx.Room.Query().
		Where(entroom.IDEQ(roomID), entroom.DeletedAtIsNil()).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "room %s not found", roomID)
		}
		return nil, fault.Wrap(fault.KindTransient, err, "failed to lock room")
	}

	seq := room.LastSeq + 1
	createdAt := time.Now()
	if room.LastMessageAt != nil && createdAt.Before(*room.LastMessageAt) {
		createdAt = *room.LastMessageAt
	}

	msg, err := tx.RoomMessage.Create().
		SetID(uuid.NewString()).
		SetRoomID(roomID).
		SetSenderID(principal.UserID).
		SetSeq(seq).
		SetCiphertext(envelope.Ciphertext).
		SetNonce(envelope.Nonce).
		SetWrappedDek(envelope.WrappedDEK).
		SetDekNonce(envelope.DEKNonce).
		SetKeyVersion(envelope.KeyVersion).
		SetCreatedAt(createdAt).
		Save(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to append message")
	}

	if err := tx.Room.UpdateOneID(roomID).
		SetLastSeq(seq).
		SetLastMessageAt(createdAt).
		Exec(ctx); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to advance room sequence")
	}
	if err := tx.Commit(); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to commit message")
	}

	s.publishRoomMessage(ctx, msg)
	return &Message{
		ID:        msg.ID,
		RoomID:    roomID,
		SenderID:  principal.UserID,
		Seq:       seq,
		Body:      body,
		CreatedAt: msg.CreatedAt,
	}, nil
}

// ListMessages returns decrypted messages with seq > afterSeq, oldest
// first. Tombstoned messages keep their slot with an empty body.
func (s *Service) ListMessages(ctx context.Context, principal models.Principal, roomID string, afterSeq int64, limit int) ([]Message, error) {
	if err := s.requireParticipant(ctx, roomID, principal.UserID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 200
	}

	rows, err := s.client.RoomMessage.Query().
		Where(entmsg.RoomIDEQ(roomID), entmsg.SeqGT(afterSeq)).
		Order(ent.Asc(entmsg.FieldSeq)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to list messages")
	}

	out := make([]Message, 0, len(rows))
	for _, row := range rows {
		msg := Message{
			ID:        row.ID,
			RoomID:    row.RoomID,
			SenderID:  row.SenderID,
			Seq:       row.Seq,
			CreatedAt: row.CreatedAt,
			Deleted:   row.DeletedAt != nil,
		}
		if !msg.Deleted {
			plaintext, err := s.cipher.Decrypt(&Envelope{
				Ciphertext: row.Ciphertext,
				Nonce:      row.Nonce,
				WrappedDEK: row.WrappedDek,
				DEKNonce:   row.DekNonce,
				KeyVersion: row.KeyVersion,
			})
			if err != nil {
				s.logger.Error("Failed to decrypt message", "message_id", row.ID, "error", err)
				return nil, err
			}
			msg.Body = string(plaintext)
		}
		out = append(out, msg)
	}
	return out, nil
}

// DeleteMessage tombstones a message: the row keeps its sequence slot
// and the envelope is blanked. Only the sender may delete.
func (s *Service) DeleteMessage(ctx context.Context, principal models.Principal, messageID string) error {
	msg, err := s.client.RoomMessage.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fault.New(fault.KindNotFound, "message %s not found", messageID)
		}
		return fault.Wrap(fault.KindTransient, err, "failed to load message")
	}
	if !principal.CanAccess(msg.SenderID) {
		return fault.New(fault.KindAccessDenied, "only the sender may delete a message")
	}
	if msg.DeletedAt != nil {
		return nil
	}

	err = s.client.RoomMessage.UpdateOneID(messageID).
		SetDeletedAt(time.Now()).
		ClearCiphertext().
		ClearNonce().
		ClearWrappedDek().
		ClearDekNonce().
		Exec(ctx)
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to tombstone message")
	}
	return nil
}

// AddReaction records an emoji reaction. Duplicate reactions are
// no-ops via the unique constraint.
func (s *Service) AddReaction(ctx context.Context, principal models.Principal, messageID, emoji string) error {
	if emoji == "" {
		return fault.New(fault.KindBadInput, "emoji is required")
	}
	msg, err := s.client.RoomMessage.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fault.New(fault.KindNotFound, "message %s not found", messageID)
		}
		return fault.Wrap(fault.KindTransient, err, "failed to load message")
	}
	if err := s.requireParticipant(ctx, msg.RoomID, principal.UserID); err != nil {
		return err
	}

	_, err = s.client.MessageReaction.Create().
		SetID(uuid.NewString()).
		SetMessageID(messageID).
		SetUserID(principal.UserID).
		SetEmoji(emoji).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fault.Wrap(fault.KindTransient, err, "failed to add reaction")
	}
	return nil
}

// RemoveReaction removes the caller's reaction. Removing a missing
// reaction is a no-op.
func (s *Service) RemoveReaction(ctx context.Context, principal models.Principal, messageID, emoji string) error {
	_, err := s.client.MessageReaction.Delete().
		Where(
			entreaction.MessageIDEQ(messageID),
			entreaction.UserIDEQ(principal.UserID),
			entreaction.EmojiEQ(emoji),
		).
		Exec(ctx)
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to remove reaction")
	}
	return nil
}

// MarkRead advances the caller's read marker. Markers never move
// backwards.
func (s *Service) MarkRead(ctx context.Context, principal models.Principal, roomID string, seq int64) error {
	n, err := s.client.RoomParticipant.Update().
		Where(
			entpart.RoomIDEQ(roomID),
			entpart.UserIDEQ(principal.UserID),
			entpart.LastReadSeqLT(seq),
		).
		SetLastReadSeq(seq).
		SetLastReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to advance read marker")
	}
	if n == 0 {
		// Either not a participant, or the marker is already ahead.
		if err := s.requireParticipant(ctx, roomID, principal.UserID); err != nil {
			return err
		}
	}
	return nil
}

// UnreadCount reports messages past the caller's read marker.
func (s *Service) UnreadCount(ctx context.Context, principal models.Principal, roomID string) (int64, error) {
	participant, err := s.client.RoomParticipant.Query().
		Where(entpart.RoomIDEQ(roomID), entpart.UserIDEQ(principal.UserID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fault.New(fault.KindAccessDenied, "user is not a participant of room %s", roomID)
		}
		return 0, fault.Wrap(fault.KindTransient, err, "failed to load participant")
	}
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return 0, err
	}
	unread := room.LastSeq - participant.LastReadSeq
	if unread < 0 {
		unread = 0
	}
	return unread, nil
}

func (s *Service) loadRoom(ctx context.Context, roomID string) (*ent.Room, error) {
	room, err := s.client.Room.Query().
		Where(entroom.IDEQ(roomID), entroom.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "room %s not found", roomID)
		}
		return nil, fault.Wrap(fault.KindTransient, err, "failed to load room")
	}
	return room, nil
}

func (s *Service) requireParticipant(ctx context.Context, roomID, userID string) error {
	exists, err := s.client.RoomParticipant.Query().
		Where(entpart.RoomIDEQ(roomID), entpart.UserIDEQ(userID)).
		Exist(ctx)
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to check room membership")
	}
	if !exists {
		return fault.New(fault.KindAccessDenied, "user is not a participant of room %s", roomID)
	}
	return nil
}

func (s *Service) publishRoomMessage(ctx context.Context, msg *ent.RoomMessage) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishRoomMessage(ctx, msg.RoomID, events.RoomMessagePayload{
		Type:      events.EventTypeRoomMessage,
		RoomID:    msg.RoomID,
		MessageID: msg.ID,
		SenderID:  msg.SenderID,
		Seq:       msg.Seq,
		Timestamp: events.Timestamp(msg.CreatedAt),
	})
	if err != nil {
		s.logger.Warn("Failed to publish room message event", "message_id", msg.ID, "error", err)
	}
}
