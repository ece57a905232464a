package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/madoxlx/egtravel-api/controllers/catalog"
	userControllers "github.com/madoxlx/egtravel-api/controllers/user"
	"github.com/madoxlx/egtravel-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the JWT-protected profile and favorites routes.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		api.GET("/user", userControllers.GetUser(db))
		api.PATCH("/user", userControllers.UpdateUser(db))

		api.GET("/favorites", catalogControllers.GetFavorites(db))
		api.POST("/favorites", catalogControllers.AddFavorite(db))
		api.DELETE("/favorites/:packageID", catalogControllers.RemoveFavorite(db))
	}
}
