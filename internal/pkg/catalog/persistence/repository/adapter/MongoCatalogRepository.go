package adapter

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	catalog "github.com/amrita3792/subidha-home-services-server/internal/pkg/catalog/application/domain"
	repository "github.com/amrita3792/subidha-home-services-server/internal/pkg/catalog/persistence/repository/port"
)

const serviceCollection = "services"

// MongoCatalogRepository reads service catalog documents.
type MongoCatalogRepository struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepository(db *mongo.Database) *MongoCatalogRepository {
	return &MongoCatalogRepository{coll: db.Collection(serviceCollection)}
}

// Ensure interface compliance at compile time
var _ repository.CatalogRepository = (*MongoCatalogRepository)(nil)

func (r *MongoCatalogRepository) ListCategories(ctx context.Context) ([]catalog.ServiceCategory, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("MongoCatalogRepository: nil collection")
	}
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var categories []catalog.ServiceCategory
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCatalogRepository) FindCategoryByID(ctx context.Context, id string) (*catalog.ServiceCategory, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("MongoCatalogRepository: nil collection")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid category id %q: %w", id, err)
	}
	var category catalog.ServiceCategory
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
