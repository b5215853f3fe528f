package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	cacheport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/cache/port"
	"github.com/amrita3792/subidha-home-services-server/internal/pkg/catalog/presentation/controller"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
)

// RegisterRoutes registers catalog endpoints on the engine.
func RegisterRoutes(r *gin.Engine, db *mongo.Database, cache cacheport.Cache, cacheTTL time.Duration, log *logger.Logger) {
	ctl := controller.NewCatalogController(db, cache, cacheTTL, log)

	r.GET("/allServiceCategories", ctl.HandleList())
	r.GET("/allServiceCategories/:id", ctl.HandleGet())
	r.GET("/subcategory/:categoryId/:subCategoryId", ctl.HandleGetSubCategory())
}
