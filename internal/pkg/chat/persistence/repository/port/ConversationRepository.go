package repository

import (
	"context"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
)

// ConversationRepository defines persistence operations for conversation documents.
// Absent conversations are reported as (nil, nil); errors are reserved for
// store-level failures, which propagate to callers untouched.
type ConversationRepository interface {
	// FindByRoomID fetches the conversation stored under exactly roomID.
	FindByRoomID(ctx context.Context, roomID string) (*chat.Conversation, error)

	// FindByParticipants fetches the conversation for the pair regardless of
	// which ordering its roomId was stored under.
	FindByParticipants(ctx context.Context, uid1, uid2 string) (*chat.Conversation, error)

	// AppendMessage upserts the conversation for roomID: creates it when absent,
	// appends msg to the ordered sequence, and overwrites senderId, receiverId
	// and seenStatus (sender true, receiver false). Returns the updated document.
	AppendMessage(ctx context.Context, roomID, senderID, receiverID string, msg chat.Message) (*chat.Conversation, error)

	// FindAllForUser returns every conversation where uid is the most recent
	// sender or receiver, in store order.
	FindAllForUser(ctx context.Context, uid string) ([]chat.Conversation, error)
}

// NotificationRepository records offline-message notifications produced by the
// background worker.
type NotificationRepository interface {
	Record(ctx context.Context, n Notification) error
}

// Notification is the document written for a receiver with no live handle.
type Notification struct {
	UID      string `bson:"uid" json:"uid"`
	RoomID   string `bson:"roomId" json:"roomId"`
	SenderID string `bson:"senderId" json:"senderId"`
	Message  string `bson:"message" json:"message"`
	Read     bool   `bson:"read" json:"read"`
}
