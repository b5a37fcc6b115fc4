package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single chat message. Messages are plain data: there is no
// realtime transport, the messaging UI renders static arrays.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
	Read           bool      `json:"read"`
}

// Conversation is a two-party message thread.
type Conversation struct {
	ID           uuid.UUID `json:"id"`
	Participants []Party   `json:"participants"`
	Messages     []Message `json:"messages"`
}

// LastMessageAt returns the timestamp of the most recent message, or the zero
// time for an empty thread.
func (c *Conversation) LastMessageAt() time.Time {
	var last time.Time
	for _, m := range c.Messages {
		if m.SentAt.After(last) {
			last = m.SentAt
		}
	}
	return last
}

// UnreadCount counts messages not yet read by the given participant.
func (c *Conversation) UnreadCount(participantID uuid.UUID) int {
	n := 0
	for _, m := range c.Messages {
		if !m.Read && m.SenderID != participantID {
			n++
		}
	}
	return n
}
