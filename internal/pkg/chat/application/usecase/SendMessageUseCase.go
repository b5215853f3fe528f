package usecase

import (
	"context"
	"fmt"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
	repository "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/port"
)

// SendMessageInput carries the data needed to persist a new private message.
type SendMessageInput struct {
	RoomID     string
	SenderID   string
	ReceiverID string
	Text       string
}

// SendMessageUseCase persists a message into its conversation document.
// Persistence is the durability point: callers must not deliver a message
// whose Execute returned an error.
// Hexagonal: depends on repository port, returns domain entity
// One class per use case (own file)
type SendMessageUseCase struct {
	Repo repository.ConversationRepository
}

func NewSendMessageUseCase(repo repository.ConversationRepository) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo}
}

// Execute appends the message to the conversation, creating the document on
// first contact. Returns the persisted message and the updated conversation.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, *chat.Conversation, error) {
	if in.RoomID == "" || in.SenderID == "" || in.ReceiverID == "" {
		return nil, nil, fmt.Errorf("roomId, senderId and receiverId are required")
	}

	msg, err := chat.NewMessage(in.SenderID, in.Text)
	if err != nil {
		return nil, nil, err
	}

	conv, err := uc.Repo.AppendMessage(ctx, in.RoomID, in.SenderID, in.ReceiverID, *msg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msg, conv, nil
}
