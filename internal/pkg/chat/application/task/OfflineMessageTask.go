package task

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	qport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/queue/port"
	repoAdapter "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/adapter"
	repository "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/port"
)

// OfflineMessageTaskType is the queue task name for recording a notification
// when a private message arrives for a receiver with no live handle.
const OfflineMessageTaskType = "chat:offline_message"

// OfflineMessageTaskPayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type OfflineMessageTaskPayload struct {
	RoomID     string `json:"roomId"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// NewOfflineMessageTask builds the queue task for the given payload.
func NewOfflineMessageTask(p OfflineMessageTaskPayload) (qport.Task, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return qport.Task{}, err
	}
	return qport.Task{Type: OfflineMessageTaskType, Payload: raw}, nil
}

// RegisterOfflineMessageTask binds the task handler to the provided server.
// The handler records a notification document for the offline receiver.
func RegisterOfflineMessageTask(srv qport.Server, db *mongo.Database) {
	srv.Register(OfflineMessageTaskType, func(ctx context.Context, t qport.Task) error {
		var p OfflineMessageTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: do not retry indefinitely
			return err
		}

		repo := repoAdapter.NewMongoNotificationRepository(db)

		// give the store a reasonable time budget per task execution
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		return repo.Record(ctx, repository.Notification{
			UID:      p.ReceiverID,
			RoomID:   p.RoomID,
			SenderID: p.SenderID,
			Message:  p.Message,
		})
	})
}
