package domain

import "time"

// Session is one chat conversation. Documents are owned by a session.
type Session struct {
	// ID is the unique identifier for the session.
	ID string

	// Title is the display title, derived from the first user message.
	Title string

	// CreatedAt is when the session was opened.
	CreatedAt time.Time
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	// SessionID links to the owning session.
	SessionID string

	// Role is RoleUser or RoleAssistant.
	Role string

	// Content is the message text.
	Content string

	// CreatedAt is when the message was recorded.
	CreatedAt time.Time
}
