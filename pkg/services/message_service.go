package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entmessage "github.com/scriptor-ai/scriptor/ent/chatmessage"
	entconversation "github.com/scriptor-ai/scriptor/ent/conversation"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// MessageService manages the append-only chat message log of a
// conversation. Timestamps are clamped monotonic per conversation
// under the conversation row lock.
type MessageService struct {
	client    *ent.Client
	publisher *events.EventPublisher
}

// NewMessageService creates a new MessageService. publisher may be nil
// in tests.
func NewMessageService(client *ent.Client, publisher *events.EventPublisher) *MessageService {
	return &MessageService{client: client, publisher: publisher}
}

// AppendMessage appends a message to the conversation log and
// broadcasts it to subscribers.
func (s *MessageService) AppendMessage(ctx context.Context, principal models.Principal, conversationID, role, content string, metadata map[string]any) (*ent.ChatMessage, error) {
	if content == "" {
		return nil, fault.New(fault.KindBadInput, "message content is required")
	}
	if err := entmessage.RoleValidator(entmessage.Role(role)); err != nil {
		return nil, fault.Wrap(fault.KindBadInput, err, "invalid message role")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to open transaction")
	}
	defer func() { _ = tx.Rollback() }()

	conv, err := tx.Conversation.Query().
		Where(
			entconversation.IDEQ(conversationID),
			entconversation.DeletedAtIsNil(),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "conversation %s not found", conversationID)
		}
		return nil, fault.Wrap(fault.KindTransient, err, "failed to lock conversation")
	}
	if !principal.CanAccess(conv.UserID) {
		return nil, fault.New(fault.KindAccessDenied, "conversation %s belongs to another user", conversationID)
	}

	// Monotonic timestamps: never insert behind the newest message,
	// even when the wall clock steps backwards.
	createdAt := time.Now()
	last, err := tx.ChatMessage.Query().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Order(ent.Desc(entmessage.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to read newest message")
	}
	if last != nil && createdAt.Before(last.CreatedAt) {
		createdAt = last.CreatedAt
	}

	create := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetRole(entmessage.Role(role)).
		SetContent(content).
		SetCreatedAt(createdAt)
	if metadata != nil {
		create.SetMetadata(metadata)
	}
	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to create message")
	}

	if err := tx.Commit(); err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to commit message")
	}

	s.publishMessage(ctx, msg)
	return msg, nil
}

// ListMessages returns messages in insertion order. Tombstoned
// messages keep their slot with blank content.
func (s *MessageService) ListMessages(ctx context.Context, principal models.Principal, conversationID string, limit int) ([]*ent.ChatMessage, error) {
	if err := s.requireOwned(ctx, principal, conversationID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 500
	}
	rows, err := s.client.ChatMessage.Query().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Order(ent.Asc(entmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to list messages")
	}
	return rows, nil
}

// DeleteMessage tombstones a message: content is blanked in place, the
// row keeps its position in the log. Idempotent.
func (s *MessageService) DeleteMessage(ctx context.Context, principal models.Principal, messageID string) error {
	msg, err := s.client.ChatMessage.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fault.New(fault.KindNotFound, "message %s not found", messageID)
		}
		return fault.Wrap(fault.KindTransient, err, "failed to load message")
	}
	if err := s.requireOwned(ctx, principal, msg.ConversationID); err != nil {
		return err
	}
	if msg.DeletedAt != nil {
		return nil
	}

	err = s.client.ChatMessage.UpdateOne(msg).
		SetDeletedAt(time.Now()).
		SetContent("").
		Exec(ctx)
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to tombstone message")
	}
	return nil
}

func (s *MessageService) requireOwned(ctx context.Context, principal models.Principal, conversationID string) error {
	conv, err := s.client.Conversation.Query().
		Where(
			entconversation.IDEQ(conversationID),
			entconversation.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fault.New(fault.KindNotFound, "conversation %s not found", conversationID)
		}
		return fault.Wrap(fault.KindTransient, err, "failed to load conversation")
	}
	if !principal.CanAccess(conv.UserID) {
		return fault.New(fault.KindAccessDenied, "conversation %s belongs to another user", conversationID)
	}
	return nil
}

func (s *MessageService) publishMessage(ctx context.Context, msg *ent.ChatMessage) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishMessage(ctx, msg.ConversationID, events.MessagePayload{
		Type:           events.EventTypeMessage,
		ConversationID: msg.ConversationID,
		MessageID:      msg.ID,
		Role:           string(msg.Role),
		Content:        msg.Content,
		Timestamp:      events.Timestamp(msg.CreatedAt),
	})
}
