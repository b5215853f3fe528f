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
	userAdapter "github.com/amrita3792/subidha-home-services-server/internal/repository/adapter"
)

// GetInboxController handles the per-user conversation summary listing (one controller per endpoint)
type GetInboxController struct {
	UC *usecase.ListInboxUseCase
}

func NewGetInboxController(db *mongo.Database) *GetInboxController {
	convs := repoAdapter.NewMongoConversationRepository(db)
	users := userAdapter.NewMongoUserRepository(db)
	return &GetInboxController{UC: usecase.NewListInboxUseCase(convs, users)}
}

// Handle returns one summary per conversation the user participates in.
func (h *GetInboxController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if uid == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		entries, err := h.UC.Execute(ctx, uid)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}
