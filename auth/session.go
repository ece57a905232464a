package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
)

const sessionTTL = 30 * 24 * time.Hour

// POST /api/session
// Issues an anonymous session token for guest carts.
func CreateSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.Session{
			Token:     uuid.NewString(),
			ExpiresAt: time.Now().Add(sessionTTL),
		}

		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": session.Token,
			"expires_at": session.ExpiresAt,
		})
	}
}
