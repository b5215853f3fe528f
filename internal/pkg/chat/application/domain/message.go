package chat

import (
	"errors"
	"strings"
	"time"
)

// Message is an immutable entry in a conversation's ordered sequence.
// Its position in the sequence is its ordering.
type Message struct {
	SenderID string    `bson:"senderId" json:"senderId"`
	Text     string    `bson:"message" json:"message"`
	SentAt   time.Time `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
}

// NewMessage validates and normalizes an inbound message body.
func NewMessage(senderID, text string) (*Message, error) {
	if senderID == "" {
		return nil, errors.New("senderId is required")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New("message body is required")
	}
	return &Message{
		SenderID: senderID,
		Text:     trimmed,
		SentAt:   time.Now().UTC(),
	}, nil
}
