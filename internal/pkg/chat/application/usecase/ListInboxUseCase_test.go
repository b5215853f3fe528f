package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
	userport "github.com/amrita3792/subidha-home-services-server/internal/repository/port"
)

func TestListInboxSummaries(t *testing.T) {
	repo := newFakeConversationRepo()
	ctx := context.Background()

	// u1 messaged u2 last; u3 messaged u1 last.
	_, err := repo.AppendMessage(ctx, chat.RoomID("u1", "u2"), "u2", "u1", chat.Message{SenderID: "u2", Text: "are you available?"})
	require.NoError(t, err)
	_, err = repo.AppendMessage(ctx, chat.RoomID("u1", "u2"), "u1", "u2", chat.Message{SenderID: "u1", Text: "yes, tomorrow works"})
	require.NoError(t, err)
	_, err = repo.AppendMessage(ctx, chat.RoomID("u1", "u3"), "u3", "u1", chat.Message{SenderID: "u3", Text: "booking confirmed"})
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]userport.User{
		"u2": {UID: "u2", UserName: "Rahim", PhotoURL: "https://cdn.example.com/u2.png"},
		"u3": {UID: "u3", UserName: "Karim", PhotoURL: "https://cdn.example.com/u3.png"},
	}}

	uc := NewListInboxUseCase(repo, users)
	entries, err := uc.Execute(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2, "one summary per counterpart")

	byUID := make(map[string]InboxEntry, len(entries))
	for _, e := range entries {
		byUID[e.UID] = e
	}

	// u1 sent the final message to u2: attribution marker applied.
	assert.Equal(t, "Rahim", byUID["u2"].UserName)
	assert.Equal(t, "https://cdn.example.com/u2.png", byUID["u2"].PhotoURL)
	assert.Equal(t, "You: yes, tomorrow works", byUID["u2"].LastMessage)

	// u3 sent the final message: raw text.
	assert.Equal(t, "Karim", byUID["u3"].UserName)
	assert.Equal(t, "booking confirmed", byUID["u3"].LastMessage)
}

func TestListInboxUnknownCounterpartIsBestEffort(t *testing.T) {
	repo := newFakeConversationRepo()
	ctx := context.Background()

	_, err := repo.AppendMessage(ctx, chat.RoomID("u1", "ghost"), "ghost", "u1", chat.Message{SenderID: "ghost", Text: "hello"})
	require.NoError(t, err)

	uc := NewListInboxUseCase(repo, &fakeUserRepo{users: map[string]userport.User{}})
	entries, err := uc.Execute(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ghost", entries[0].UID)
	assert.Empty(t, entries[0].UserName)
	assert.Equal(t, "hello", entries[0].LastMessage)
}

func TestListInboxStoreFailure(t *testing.T) {
	repo := newFakeConversationRepo()
	repo.failFind = true

	uc := NewListInboxUseCase(repo, &fakeUserRepo{})
	_, err := uc.Execute(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrPersistence)
}
