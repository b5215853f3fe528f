package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
)

func TestResolveRoomFreshPair(t *testing.T) {
	uc := NewResolveRoomUseCase(newFakeConversationRepo())

	roomID, err := uc.Execute(context.Background(), "u9", "u5")
	require.NoError(t, err)
	assert.Equal(t, "u5-u9", roomID)

	// Same pair, either ordering, same room.
	reversed, err := uc.Execute(context.Background(), "u5", "u9")
	require.NoError(t, err)
	assert.Equal(t, roomID, reversed)
}

func TestResolveRoomReusesHistoricalOrdering(t *testing.T) {
	repo := newFakeConversationRepo()

	// A room created before canonicalization, stored under the reversed key.
	_, err := repo.AppendMessage(context.Background(), "u9-u5", "u9", "u5", chat.Message{SenderID: "u9", Text: "hi"})
	require.NoError(t, err)

	uc := NewResolveRoomUseCase(repo)

	roomID, err := uc.Execute(context.Background(), "u5", "u9")
	require.NoError(t, err)
	assert.Equal(t, "u9-u5", roomID, "stored roomId is authoritative over the derived key")
}

func TestResolveRoomValidationAndFailure(t *testing.T) {
	repo := newFakeConversationRepo()
	uc := NewResolveRoomUseCase(repo)

	_, err := uc.Execute(context.Background(), "", "u9")
	assert.Error(t, err)

	repo.failFind = true
	_, err = uc.Execute(context.Background(), "u5", "u9")
	assert.ErrorIs(t, err, ErrPersistence)
}
