// Package services contains the ent-backed persistence layer: thin
// services that own the row shapes and map database errors to fault
// kinds, leaving policy to the packages that call them.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scriptor-ai/scriptor/ent"
	entconversation "github.com/scriptor-ai/scriptor/ent/conversation"
	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/memory"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// ConversationService manages conversation rows and keeps the shared
// memory registry in step with them.
type ConversationService struct {
	client *ent.Client
	memory *memory.Store
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client, mem *memory.Store) *ConversationService {
	return &ConversationService{client: client, memory: mem}
}

// CreateConversation creates a conversation owned by the principal and
// registers its shared memory scope.
func (s *ConversationService) CreateConversation(ctx context.Context, principal models.Principal, title string) (*ent.Conversation, error) {
	create := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetUserID(principal.UserID)
	if title != "" {
		create.SetTitle(title)
	}
	conv, err := create.Save(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to create conversation")
	}

	s.memory.Register(conv.ID, conv.UserID)
	return conv, nil
}

// GetConversation returns the conversation when the principal owns it.
func (s *ConversationService) GetConversation(ctx context.Context, principal models.Principal, conversationID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.New(fault.KindNotFound, "conversation %s not found", conversationID)
		}
		return nil, fault.Wrap(fault.KindTransient, err, "failed to load conversation")
	}
	if conv.DeletedAt != nil {
		return nil, fault.New(fault.KindNotFound, "conversation %s not found", conversationID)
	}
	if !principal.CanAccess(conv.UserID) {
		return nil, fault.New(fault.KindAccessDenied, "conversation %s belongs to another user", conversationID)
	}
	return conv, nil
}

// ListConversations returns the principal's live conversations, newest
// first.
func (s *ConversationService) ListConversations(ctx context.Context, principal models.Principal, limit int) ([]*ent.Conversation, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	rows, err := s.client.Conversation.Query().
		Where(
			entconversation.UserIDEQ(principal.UserID),
			entconversation.DeletedAtIsNil(),
		).
		Order(ent.Desc(entconversation.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.KindTransient, err, "failed to list conversations")
	}
	return rows, nil
}

// DeleteConversation soft-deletes the conversation and releases its
// shared memory. Idempotent: deleting a deleted conversation is a
// no-op.
func (s *ConversationService) DeleteConversation(ctx context.Context, principal models.Principal, conversationID string) error {
	conv, err := s.GetConversation(ctx, principal, conversationID)
	if err != nil {
		if fault.KindOf(err) == fault.KindNotFound {
			return nil
		}
		return err
	}

	err = s.client.Conversation.UpdateOne(conv).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fault.Wrap(fault.KindTransient, err, "failed to delete conversation")
	}

	s.memory.Unregister(conversationID)
	return nil
}
