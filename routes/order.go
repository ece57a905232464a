package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/madoxlx/egtravel-api/controllers/order"
	"github.com/madoxlx/egtravel-api/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.OptionalToken)
	{
		// Create an order from the caller's cart
		orders.POST("", orderControllers.CreateOrderHandler(db, rdb))

		// Caller's own orders (user token or sessionId)
		orders.GET("", orderControllers.GetMyOrdersHandler(db))

		// Lookup by the human-readable reference
		orders.GET("/:orderNumber", orderControllers.GetOrderByNumberHandler(db))
	}
}
