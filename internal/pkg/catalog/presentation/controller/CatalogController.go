package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	cacheport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/cache/port"
	catalog "github.com/amrita3792/subidha-home-services-server/internal/pkg/catalog/application/domain"
	repoAdapter "github.com/amrita3792/subidha-home-services-server/internal/pkg/catalog/persistence/repository/adapter"
	repository "github.com/amrita3792/subidha-home-services-server/internal/pkg/catalog/persistence/repository/port"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
)

const categoryListCacheKey = "catalog:categories"

// CatalogController serves the read-only service catalog. The category list
// is cached because it backs the landing page and changes rarely; cache
// failures fall through to the store.
type CatalogController struct {
	repo     repository.CatalogRepository
	cache    cacheport.Cache
	cacheTTL time.Duration
	log      *logger.Logger
}

func NewCatalogController(db *mongo.Database, cache cacheport.Cache, cacheTTL time.Duration, log *logger.Logger) *CatalogController {
	return &CatalogController{
		repo:     repoAdapter.NewMongoCatalogRepository(db),
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// HandleList returns the projected category list.
func (h *CatalogController) HandleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if cached, ok := h.fromCache(ctx); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		categories, err := h.repo.ListCategories(ctx)
		if err != nil {
			h.log.Error("catalog list failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		summaries := make([]catalog.CategorySummary, 0, len(categories))
		for i := range categories {
			summaries = append(summaries, categories[i].Summary())
		}

		h.toCache(ctx, summaries)
		c.JSON(http.StatusOK, summaries)
	}
}

// HandleGet returns the full category document.
func (h *CatalogController) HandleGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		category, err := h.findCategory(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// HandleGetSubCategory returns one subcategory plus the category-level
// overview and FAQ blocks.
func (h *CatalogController) HandleGetSubCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		category, err := h.findCategory(ctx, c.Param("categoryId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service category not found"})
			return
		}

		sub := category.FindSubCategory(c.Param("subCategoryId"))
		if sub == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"subCategory":     sub,
			"serviceOverview": category.ServiceOverview,
			"faq":             category.FAQ,
		})
	}
}

func (h *CatalogController) findCategory(ctx context.Context, id string) (*catalog.ServiceCategory, error) {
	category, err := h.repo.FindCategoryByID(ctx, id)
	if err != nil {
		h.log.Error("catalog get failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (h *CatalogController) fromCache(ctx context.Context) ([]catalog.CategorySummary, bool) {
	if h.cache == nil {
		return nil, false
	}
	raw, err := h.cache.Get(ctx, categoryListCacheKey)
	if err != nil {
		if !errors.Is(err, cacheport.ErrMiss) {
			h.log.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var summaries []catalog.CategorySummary
	if err := json.Unmarshal([]byte(raw), &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (h *CatalogController) toCache(ctx context.Context, summaries []catalog.CategorySummary) {
	if h.cache == nil {
		return
	}
	raw, err := json.Marshal(summaries)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, categoryListCacheKey, string(raw), h.cacheTTL); err != nil {
		h.log.Warn("catalog cache write failed", zap.Error(err))
	}
}
