package usecase

import (
	"context"
	"fmt"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
	convport "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/port"
	userport "github.com/amrita3792/subidha-home-services-server/internal/repository/port"
)

// SelfAttributionPrefix marks inbox entries whose final message was sent by
// the queried user.
const SelfAttributionPrefix = "You: "

// InboxEntry is one per-counterpart conversation summary.
type InboxEntry struct {
	UID         string `json:"uid"`
	UserName    string `json:"userName"`
	PhotoURL    string `json:"photoURL"`
	LastMessage string `json:"lastMessage"`
}

// ListInboxUseCase derives per-user inbox summaries from stored conversations,
// resolving counterpart identity through the user repository.
// One class per use case (own file)
type ListInboxUseCase struct {
	Convs convport.ConversationRepository
	Users userport.UserRepository
}

func NewListInboxUseCase(convs convport.ConversationRepository, users userport.UserRepository) *ListInboxUseCase {
	return &ListInboxUseCase{Convs: convs, Users: users}
}

// Execute returns one entry per conversation the user participates in, in
// store order. The counterpart lookup is best-effort: a missing or failing
// user record yields an entry carrying only the uid and last message.
func (uc *ListInboxUseCase) Execute(ctx context.Context, uid string) ([]InboxEntry, error) {
	if uid == "" {
		return nil, fmt.Errorf("uid is required")
	}

	convs, err := uc.Convs.FindAllForUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	entries := make([]InboxEntry, 0, len(convs))
	for i := range convs {
		conv := &convs[i]

		entry := InboxEntry{UID: chat.Counterpart(conv.RoomID, uid)}

		if last := conv.LastMessage(); last != nil {
			if last.SenderID == uid {
				entry.LastMessage = SelfAttributionPrefix + last.Text
			} else {
				entry.LastMessage = last.Text
			}
		}

		if entry.UID != "" && uc.Users != nil {
			if user, err := uc.Users.FindByUID(ctx, entry.UID); err == nil && user != nil {
				entry.UserName = user.UserName
				entry.PhotoURL = user.PhotoURL
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
