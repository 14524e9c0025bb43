package models

import "time"

// MessageRole is the author slot of a conversation message.
type MessageRole string

const (
	MessageRoleHuman  MessageRole = "human"
	MessageRoleAI     MessageRole = "ai"
	MessageRoleSystem MessageRole = "system"
	MessageRoleTool   MessageRole = "tool"
)

// CreateConversationRequest opens a new conversation for a principal.
type CreateConversationRequest struct {
	Title string `json:"title,omitempty"`
}

// AppendMessageRequest appends one message to a conversation log.
type AppendMessageRequest struct {
	ConversationID string         `json:"conversation_id"`
	Role           MessageRole    `json:"role"`
	Content        string         `json:"content"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// MessageFilters pages through a conversation's message log.
type MessageFilters struct {
	Since  *time.Time `json:"since,omitempty"`
	Limit  int        `json:"limit,omitempty"`
	Offset int        `json:"offset,omitempty"`
	// Tombstoned messages are included by default so ordering is
	// stable; set to true to drop them from the page.
	ExcludeDeleted bool `json:"exclude_deleted,omitempty"`
}
