package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user,
// order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	SetupAuthRoutes(r, db)
	SetupCatalogRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db, rdb)
	SetupUserRoutes(r, db)
	SetupAdminRoutes(r, db)
}
