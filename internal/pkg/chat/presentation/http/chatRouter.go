package http

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	qport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/queue/port"
	"github.com/amrita3792/subidha-home-services-server/internal/infrastructure/realtime"
	"github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/presentation/controller"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
)

// RegisterRoutes registers chat-related HTTP endpoints on the engine.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(r *gin.Engine, db *mongo.Database, router *realtime.Router, queue qport.Client, log *logger.Logger) {
	getChatCtl := controller.NewGetChatController(db)
	getInboxCtl := controller.NewGetInboxController(db)
	socketCtl := controller.NewChatSocketController(db, router, queue, log)

	// GET /chats/:roomId -> stored conversation for a room
	r.GET("/chats/:roomId", getChatCtl.Handle())

	// GET /messages/:uid -> per-user inbox summaries
	r.GET("/messages/:uid", getInboxCtl.Handle())

	// GET /ws -> websocket endpoint for realtime chat
	r.GET("/ws", socketCtl.Handle())
}
