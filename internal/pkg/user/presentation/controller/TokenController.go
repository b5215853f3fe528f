package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenController issues short-lived signed tokens keyed by uid. Clients hold
// the token for the protected account endpoints.
type TokenController struct {
	secret     []byte
	expiration time.Duration
}

func NewTokenController(secret string, expiration time.Duration) *TokenController {
	return &TokenController{secret: []byte(secret), expiration: expiration}
}

// HandleIssue mints an HS256 token for the posted uid.
func (h *TokenController) HandleIssue() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			UID string `json:"uid" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		claims := jwt.RegisteredClaims{
			Subject:   body.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.expiration)),
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
