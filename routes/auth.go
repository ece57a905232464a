package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/auth"
	userControllers "github.com/madoxlx/egtravel-api/controllers/user"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers registration, login, and anonymous sessions.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.POST("/register", userControllers.Register(db))
		api.POST("/login", userControllers.Login(db))
		api.POST("/logout", userControllers.Logout())
		api.POST("/session", auth.CreateSession(db))
	}
}
