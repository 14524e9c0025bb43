package models

import "time"

// CreateRoomRequest opens a messaging room. The creator joins as the
// first participant.
type CreateRoomRequest struct {
	Name         string   `json:"name"`
	Participants []string `json:"participants,omitempty"`
}

// SendRoomMessageRequest appends one message to a room log. The body
// is encrypted before it reaches storage.
type SendRoomMessageRequest struct {
	RoomID string `json:"room_id"`
	Body   string `json:"body"`
}

// RoomMessageView is a decrypted message returned to a participant.
type RoomMessageView struct {
	MessageID string    `json:"message_id"`
	RoomID    string    `json:"room_id"`
	SenderID  string    `json:"sender_id"`
	Seq       int64     `json:"seq"`
	Body      string    `json:"body"`
	Deleted   bool      `json:"deleted"`
	Reactions map[string][]string `json:"reactions,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCount pairs a room with the caller's unread message count.
type UnreadCount struct {
	RoomID string `json:"room_id"`
	Unread int64  `json:"unread"`
}
