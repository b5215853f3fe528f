package repository

import (
	"context"

	catalog "github.com/amrita3792/subidha-home-services-server/internal/pkg/catalog/application/domain"
)

// CatalogRepository defines read operations over the service catalog.
// Absent categories are reported as (nil, nil).
type CatalogRepository interface {
	// ListCategories returns all categories in insertion order.
	ListCategories(ctx context.Context) ([]catalog.ServiceCategory, error)

	// FindCategoryByID fetches a category by its hex object id.
	FindCategoryByID(ctx context.Context, id string) (*catalog.ServiceCategory, error)
}
