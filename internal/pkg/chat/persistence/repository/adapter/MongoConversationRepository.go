package adapter

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	chat "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/domain"
	repository "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/port"
)

const (
	conversationCollection = "conversations"
	notificationCollection = "notifications"
)

// MongoConversationRepository persists conversation documents in MongoDB,
// one document per room keyed by roomId.
type MongoConversationRepository struct {
	coll *mongo.Collection
}

func NewMongoConversationRepository(db *mongo.Database) *MongoConversationRepository {
	return &MongoConversationRepository{coll: db.Collection(conversationCollection)}
}

// Ensure interface compliance at compile time
var (
	_ repository.ConversationRepository = (*MongoConversationRepository)(nil)
	_ repository.NotificationRepository = (*MongoNotificationRepository)(nil)
)

func (r *MongoConversationRepository) FindByRoomID(ctx context.Context, roomID string) (*chat.Conversation, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("MongoConversationRepository: nil collection")
	}
	var c chat.Conversation
	err := r.coll.FindOne(ctx, bson.M{"roomId": roomID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoConversationRepository) FindByParticipants(ctx context.Context, uid1, uid2 string) (*chat.Conversation, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("MongoConversationRepository: nil collection")
	}
	// Historical rooms may have been stored under either ordering.
	filter := bson.M{"roomId": bson.M{"$in": bson.A{
		uid1 + chat.RoomSeparator + uid2,
		uid2 + chat.RoomSeparator + uid1,
	}}}
	var c chat.Conversation
	err := r.coll.FindOne(ctx, filter).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoConversationRepository) AppendMessage(ctx context.Context, roomID, senderID, receiverID string, msg chat.Message) (*chat.Conversation, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("MongoConversationRepository: nil collection")
	}
	now := time.Now().UTC()
	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set": bson.M{
			"senderId":                 senderID,
			"receiverId":               receiverID,
			"seenStatus." + senderID:   true,
			"seenStatus." + receiverID: false,
			"updatedAt":                now,
		},
		// roomId is supplied by the equality filter on insert.
		"$setOnInsert": bson.M{
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c chat.Conversation
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"roomId": roomID}, update, opts).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoConversationRepository) FindAllForUser(ctx context.Context, uid string) ([]chat.Conversation, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("MongoConversationRepository: nil collection")
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": uid},
		bson.M{"receiverId": uid},
	}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var convs []chat.Conversation
	if err := cur.All(ctx, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

// MongoNotificationRepository writes offline-message notifications.
type MongoNotificationRepository struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{coll: db.Collection(notificationCollection)}
}

func (r *MongoNotificationRepository) Record(ctx context.Context, n repository.Notification) error {
	if r == nil || r.coll == nil {
		return errors.New("MongoNotificationRepository: nil collection")
	}
	doc := bson.M{
		"uid":       n.UID,
		"roomId":    n.RoomID,
		"senderId":  n.SenderID,
		"message":   n.Message,
		"read":      false,
		"createdAt": time.Now().UTC(),
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
