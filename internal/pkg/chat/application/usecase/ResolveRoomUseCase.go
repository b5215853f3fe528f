package usecase

import (
	"context"
	"fmt"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
	repository "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/port"
)

// ResolveRoomUseCase derives the authoritative room identifier for a pair of
// participants. Repeated calls yield the same roomId regardless of which
// participant initiated contact.
// Hexagonal: depends on repository port
// One class per use case (own file)
type ResolveRoomUseCase struct {
	Repo repository.ConversationRepository
}

func NewResolveRoomUseCase(repo repository.ConversationRepository) *ResolveRoomUseCase {
	return &ResolveRoomUseCase{Repo: repo}
}

// Execute returns the canonical roomId for the pair. A conversation stored
// under either ordering takes precedence over the derived key, so rooms
// created before canonicalization keep their historical identifier.
func (uc *ResolveRoomUseCase) Execute(ctx context.Context, uid1, uid2 string) (string, error) {
	if uid1 == "" || uid2 == "" {
		return "", fmt.Errorf("uid1 and uid2 are required")
	}

	existing, err := uc.Repo.FindByParticipants(ctx, uid1, uid2)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing != nil {
		return existing.RoomID, nil
	}

	return chat.RoomID(uid1, uid2), nil
}
