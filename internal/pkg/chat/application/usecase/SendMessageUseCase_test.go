package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessagePersistsAndUpdatesSeenStatus(t *testing.T) {
	repo := newFakeConversationRepo()
	uc := NewSendMessageUseCase(repo)

	msg, conv, err := uc.Execute(context.Background(), SendMessageInput{
		RoomID:     "u5-u9",
		SenderID:   "u5",
		ReceiverID: "u9",
		Text:       "hello there",
	})
	require.NoError(t, err)
	require.NotNil(t, conv)

	// The new message is the last element of the sequence.
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, msg.Text, conv.Messages[len(conv.Messages)-1].Text)
	assert.Equal(t, "u5", conv.SenderID)
	assert.Equal(t, "u9", conv.ReceiverID)
	assert.True(t, conv.SeenStatus["u5"])
	assert.False(t, conv.SeenStatus["u9"])

	// Round-trip through the store.
	stored, err := repo.FindByRoomID(context.Background(), "u5-u9")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hello there", stored.LastMessage().Text)

	// The reply flips seenStatus.
	_, conv, err = uc.Execute(context.Background(), SendMessageInput{
		RoomID:     "u5-u9",
		SenderID:   "u9",
		ReceiverID: "u5",
		Text:       "hi back",
	})
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "hi back", conv.LastMessage().Text)
	assert.True(t, conv.SeenStatus["u9"])
	assert.False(t, conv.SeenStatus["u5"])
}

func TestSendMessageValidation(t *testing.T) {
	uc := NewSendMessageUseCase(newFakeConversationRepo())

	tests := []struct {
		name string
		in   SendMessageInput
	}{
		{name: "missing room", in: SendMessageInput{SenderID: "u5", ReceiverID: "u9", Text: "x"}},
		{name: "missing sender", in: SendMessageInput{RoomID: "u5-u9", ReceiverID: "u9", Text: "x"}},
		{name: "missing receiver", in: SendMessageInput{RoomID: "u5-u9", SenderID: "u5", Text: "x"}},
		{name: "empty body", in: SendMessageInput{RoomID: "u5-u9", SenderID: "u5", ReceiverID: "u9", Text: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := uc.Execute(context.Background(), tt.in)
			assert.Error(t, err)
		})
	}
}

func TestSendMessageStoreFailurePropagates(t *testing.T) {
	repo := newFakeConversationRepo()
	repo.failAppend = true
	uc := NewSendMessageUseCase(repo)

	_, _, err := uc.Execute(context.Background(), SendMessageInput{
		RoomID:     "u5-u9",
		SenderID:   "u5",
		ReceiverID: "u9",
		Text:       "hello",
	})
	require.ErrorIs(t, err, ErrPersistence)

	// Nothing was stored for the failed send.
	stored, ferr := repo.FindByRoomID(context.Background(), "u5-u9")
	require.NoError(t, ferr)
	assert.Nil(t, stored)
}
