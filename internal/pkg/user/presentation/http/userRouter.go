package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amrita3792/subidha-home-services-server/internal/middleware"
	"github.com/amrita3792/subidha-home-services-server/internal/pkg/user/presentation/controller"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
)

// RegisterRoutes registers user account endpoints on the engine. Listing and
// status updates require a bearer token; upsert-on-login and token issuance
// are open.
func RegisterRoutes(r *gin.Engine, db *mongo.Database, jwtSecret string, jwtExpiration time.Duration, log *logger.Logger) {
	userCtl := controller.NewUserController(db, log)
	tokenCtl := controller.NewTokenController(jwtSecret, jwtExpiration)

	r.POST("/users", userCtl.HandleUpsert())
	r.POST("/jwt", tokenCtl.HandleIssue())

	auth := middleware.Auth(jwtSecret)
	r.GET("/users", auth, userCtl.HandleList())
	r.PUT("/update-status/:uid", auth, userCtl.HandleUpdateStatus())
}
