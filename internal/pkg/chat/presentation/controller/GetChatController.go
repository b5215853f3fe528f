package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/usecase"
	repoAdapter "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/adapter"
)

// GetChatController handles fetching a room's stored conversation (one controller per endpoint)
type GetChatController struct {
	UC *usecase.GetConversationUseCase
}

func NewGetChatController(db *mongo.Database) *GetChatController {
	repo := repoAdapter.NewMongoConversationRepository(db)
	return &GetChatController{UC: usecase.NewGetConversationUseCase(repo)}
}

// Handle returns the conversation document for the room, or an empty message
// list when no conversation exists yet.
func (h *GetChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("roomId")
		if roomID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		conv, err := h.UC.Execute(ctx, roomID)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, conv)
	}
}
