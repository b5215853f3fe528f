package usecase

import (
	"context"
	"fmt"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
	repository "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/port"
)

// GetConversationUseCase fetches the stored history for a room.
// One class per use case (own file)
type GetConversationUseCase struct {
	Repo repository.ConversationRepository
}

func NewGetConversationUseCase(repo repository.ConversationRepository) *GetConversationUseCase {
	return &GetConversationUseCase{Repo: repo}
}

// Execute returns the conversation for roomID. An absent room is not an
// error: callers receive an empty conversation with no messages.
func (uc *GetConversationUseCase) Execute(ctx context.Context, roomID string) (*chat.Conversation, error) {
	if roomID == "" {
		return nil, fmt.Errorf("roomId is required")
	}

	conv, err := uc.Repo.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if conv == nil {
		return &chat.Conversation{RoomID: roomID, Messages: []chat.Message{}}, nil
	}
	if conv.Messages == nil {
		conv.Messages = []chat.Message{}
	}
	return conv, nil
}
