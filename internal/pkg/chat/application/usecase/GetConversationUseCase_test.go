package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
)

func TestGetConversationAbsentRoomIsEmpty(t *testing.T) {
	uc := NewGetConversationUseCase(newFakeConversationRepo())

	conv, err := uc.Execute(context.Background(), "u5-u9")
	require.NoError(t, err)
	require.NotNil(t, conv)
	assert.Equal(t, "u5-u9", conv.RoomID)
	assert.NotNil(t, conv.Messages)
	assert.Empty(t, conv.Messages)
}

func TestGetConversationReturnsHistory(t *testing.T) {
	repo := newFakeConversationRepo()
	_, err := repo.AppendMessage(context.Background(), "u5-u9", "u5", "u9", chat.Message{SenderID: "u5", Text: "hello"})
	require.NoError(t, err)

	uc := NewGetConversationUseCase(repo)
	conv, err := uc.Execute(context.Background(), "u5-u9")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, "hello", conv.Messages[0].Text)
}

func TestGetConversationValidation(t *testing.T) {
	uc := NewGetConversationUseCase(newFakeConversationRepo())
	_, err := uc.Execute(context.Background(), "")
	assert.Error(t, err)
}
