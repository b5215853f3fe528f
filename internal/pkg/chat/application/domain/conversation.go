package chat

import "time"

// Conversation is the document stored per private room. It is created lazily
// on the first message between a pair of users and only ever grows: messages
// are appended, sender/receiver/seenStatus are overwritten on every inbound
// message.
type Conversation struct {
	RoomID     string          `bson:"roomId" json:"roomId"`
	Messages   []Message       `bson:"messages" json:"messages"`
	SenderID   string          `bson:"senderId" json:"senderId"`
	ReceiverID string          `bson:"receiverId" json:"receiverId"`
	SeenStatus map[string]bool `bson:"seenStatus" json:"seenStatus"`
	CreatedAt  time.Time       `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt  time.Time       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// LastMessage returns the final entry of the message sequence, or nil for an
// empty conversation.
func (c *Conversation) LastMessage() *Message {
	if c == nil || len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
