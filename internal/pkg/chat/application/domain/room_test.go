package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomIDOrderIndependent(t *testing.T) {
	tests := []struct {
		name string
		uid1 string
		uid2 string
		want string
	}{
		{name: "already sorted", uid1: "u5", uid2: "u9", want: "u5-u9"},
		{name: "reversed", uid1: "u9", uid2: "u5", want: "u5-u9"},
		{name: "firebase style uids", uid1: "zYx12", uid2: "AbC34", want: "AbC34-zYx12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoomID(tt.uid1, tt.uid2))
			assert.Equal(t, RoomID(tt.uid1, tt.uid2), RoomID(tt.uid2, tt.uid1))
		})
	}
}

func TestCounterpart(t *testing.T) {
	assert.Equal(t, "u9", Counterpart("u5-u9", "u5"))
	assert.Equal(t, "u5", Counterpart("u5-u9", "u9"))
	assert.Equal(t, "", Counterpart("u5-u9", "u7"))
}

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage("u1", "  hello  ")
	assert.NoError(t, err)
	assert.Equal(t, "hello", msg.Text)
	assert.False(t, msg.SentAt.IsZero())

	_, err = NewMessage("", "hello")
	assert.Error(t, err)

	_, err = NewMessage("u1", "   ")
	assert.Error(t, err)
}

func TestConversationLastMessage(t *testing.T) {
	var empty *Conversation
	assert.Nil(t, empty.LastMessage())
	assert.Nil(t, (&Conversation{}).LastMessage())

	conv := &Conversation{Messages: []Message{
		{SenderID: "u1", Text: "first"},
		{SenderID: "u2", Text: "second"},
	}}
	assert.Equal(t, "second", conv.LastMessage().Text)
}
