package usecase

import (
	"context"
	"errors"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
	userport "github.com/amrita3792/subidha-home-services-server/internal/repository/port"
)

// fakeConversationRepo mirrors the store contract in memory: one document per
// stored roomId, upsert-on-append, seenStatus overwritten per message.
type fakeConversationRepo struct {
	convs map[string]*chat.Conversation
	order []string

	failAppend bool
	failFind   bool
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{convs: make(map[string]*chat.Conversation)}
}

func (f *fakeConversationRepo) FindByRoomID(_ context.Context, roomID string) (*chat.Conversation, error) {
	if f.failFind {
		return nil, errors.New("store down")
	}
	conv, ok := f.convs[roomID]
	if !ok {
		return nil, nil
	}
	clone := *conv
	return &clone, nil
}

func (f *fakeConversationRepo) FindByParticipants(_ context.Context, uid1, uid2 string) (*chat.Conversation, error) {
	if f.failFind {
		return nil, errors.New("store down")
	}
	for _, key := range []string{uid1 + chat.RoomSeparator + uid2, uid2 + chat.RoomSeparator + uid1} {
		if conv, ok := f.convs[key]; ok {
			clone := *conv
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeConversationRepo) AppendMessage(_ context.Context, roomID, senderID, receiverID string, msg chat.Message) (*chat.Conversation, error) {
	if f.failAppend {
		return nil, errors.New("store down")
	}
	conv, ok := f.convs[roomID]
	if !ok {
		conv = &chat.Conversation{RoomID: roomID, SeenStatus: make(map[string]bool)}
		f.convs[roomID] = conv
		f.order = append(f.order, roomID)
	}
	conv.Messages = append(conv.Messages, msg)
	conv.SenderID = senderID
	conv.ReceiverID = receiverID
	conv.SeenStatus[senderID] = true
	conv.SeenStatus[receiverID] = false
	clone := *conv
	return &clone, nil
}

func (f *fakeConversationRepo) FindAllForUser(_ context.Context, uid string) ([]chat.Conversation, error) {
	if f.failFind {
		return nil, errors.New("store down")
	}
	var out []chat.Conversation
	for _, roomID := range f.order {
		conv := f.convs[roomID]
		if conv.SenderID == uid || conv.ReceiverID == uid {
			out = append(out, *conv)
		}
	}
	return out, nil
}

// fakeUserRepo resolves counterpart identities from a fixed set.
type fakeUserRepo struct {
	users map[string]userport.User
}

func (f *fakeUserRepo) FindByUID(_ context.Context, uid string) (*userport.User, error) {
	if u, ok := f.users[uid]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(context.Context, userport.User) error { return nil }

func (f *fakeUserRepo) UpdateLogin(context.Context, string, string, string) error { return nil }

func (f *fakeUserRepo) UpdateStatus(context.Context, string, string) error { return nil }
func (f *fakeUserRepo) List(context.Context, int64, int64) ([]userport.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) Search(context.Context, string) ([]userport.User, error) { return nil, nil }
