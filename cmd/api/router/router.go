package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amrita3792/subidha-home-services-server/internal/config"
	cacheport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/cache/port"
	qport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/queue/port"
	"github.com/amrita3792/subidha-home-services-server/internal/infrastructure/realtime"
	cataloghttp "github.com/amrita3792/subidha-home-services-server/internal/pkg/catalog/presentation/http"
	chathttp "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/presentation/http"
	userhttp "github.com/amrita3792/subidha-home-services-server/internal/pkg/user/presentation/http"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
)

// RegisterRoutes mounts every domain surface onto the engine. The realtime
// router and queue client are process-wide and injected from main.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	db *mongo.Database,
	rt *realtime.Router,
	cache cacheport.Cache,
	queue qport.Client,
	log *logger.Logger,
) {
	chathttp.RegisterRoutes(r, db, rt, queue, log)
	cataloghttp.RegisterRoutes(r, db, cache, cfg.CatalogCacheTTL, log)
	userhttp.RegisterRoutes(r, db, cfg.JWTSecret, cfg.JWTExpiration, log)
}
