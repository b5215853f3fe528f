package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	repoAdapter "github.com/amrita3792/subidha-home-services-server/internal/repository/adapter"
	repository "github.com/amrita3792/subidha-home-services-server/internal/repository/port"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
)

// UserController serves the user account surface: upsert-on-login, the admin
// listing with search and pagination, and status updates.
type UserController struct {
	repo repository.UserRepository
	log  *logger.Logger
}

func NewUserController(db *mongo.Database, log *logger.Logger) *UserController {
	return &UserController{repo: repoAdapter.NewMongoUserRepository(db), log: log}
}

// HandleUpsert registers a user on first login and refreshes lastLogin/status
// for returning ones.
func (h *UserController) HandleUpsert() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user repository.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if user.UID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		existing, err := h.repo.FindByUID(ctx, user.UID)
		if err != nil {
			h.internalError(c, "user lookup failed", err)
			return
		}

		if existing != nil {
			if err := h.repo.UpdateLogin(ctx, user.UID, user.LastLogin, user.Status); err != nil {
				h.internalError(c, "user login update failed", err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"acknowledged": true})
			return
		}

		if err := h.repo.Insert(ctx, user); err != nil {
			h.internalError(c, "user insert failed", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": user.UID})
	}
}

// HandleList returns either a substring search across userName/email/phone or
// one page of users with the total count.
func (h *UserController) HandleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if term := c.Query("searchText"); term != "" {
			users, err := h.repo.Search(ctx, term)
			if err != nil {
				h.internalError(c, "user search failed", err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
			return
		}

		page, _ := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
		size, _ := strconv.ParseInt(c.DefaultQuery("size", "10"), 10, 64)

		users, count, err := h.repo.List(ctx, page, size)
		if err != nil {
			h.internalError(c, "user list failed", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "count": count})
	}
}

// HandleUpdateStatus upserts the status field for a uid.
func (h *UserController) HandleUpdateStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if uid == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
			return
		}

		var body struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.repo.UpdateStatus(ctx, uid, body.Status); err != nil {
			h.internalError(c, "user status update failed", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true})
	}
}

func (h *UserController) internalError(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
