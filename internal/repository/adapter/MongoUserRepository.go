package adapter

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repository "github.com/amrita3792/subidha-home-services-server/internal/repository/port"
)

const userCollection = "users"

// MongoUserRepository persists user account documents.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// Ensure interface compliance at compile time
var _ repository.UserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) FindByUID(ctx context.Context, uid string) (*repository.User, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("MongoUserRepository: nil collection")
	}
	var u repository.User
	err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, u repository.User) error {
	if r == nil || r.coll == nil {
		return errors.New("MongoUserRepository: nil collection")
	}
	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *MongoUserRepository) UpdateLogin(ctx context.Context, uid, lastLogin, status string) error {
	return r.upsertFields(ctx, uid, bson.M{"lastLogin": lastLogin, "status": status})
}

func (r *MongoUserRepository) UpdateStatus(ctx context.Context, uid, status string) error {
	return r.upsertFields(ctx, uid, bson.M{"status": status})
}

func (r *MongoUserRepository) upsertFields(ctx context.Context, uid string, fields bson.M) error {
	if r == nil || r.coll == nil {
		return errors.New("MongoUserRepository: nil collection")
	}
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoUserRepository) List(ctx context.Context, page, size int64) ([]repository.User, int64, error) {
	if r == nil || r.coll == nil {
		return nil, 0, errors.New("MongoUserRepository: nil collection")
	}
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	opts := options.Find().SetSkip(page * size).SetLimit(size)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var users []repository.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	count, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (r *MongoUserRepository) Search(ctx context.Context, term string) ([]repository.User, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("MongoUserRepository: nil collection")
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"userName": pattern},
		bson.M{"email": pattern},
		bson.M{"phone": pattern},
	}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []repository.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
