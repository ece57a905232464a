package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/madoxlx/egtravel-api/controllers/cart"
	"github.com/madoxlx/egtravel-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the cart endpoints. OptionalToken lets both
// logged-in users and anonymous sessions through; the handlers resolve the
// identity themselves.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/api/cart")
	cart.Use(middleware.OptionalToken)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddCartItem(db))
		cart.DELETE("/clear", cartControllers.ClearCart(db))
		cart.PATCH("/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:id", cartControllers.DeleteCartItem(db))
	}
}
