package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/madoxlx/egtravel-api/controllers/admin"
	cartControllers "github.com/madoxlx/egtravel-api/controllers/cart"
	orderControllers "github.com/madoxlx/egtravel-api/controllers/order"
	userControllers "github.com/madoxlx/egtravel-api/controllers/user"
	"github.com/madoxlx/egtravel-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the /api/admin console: order management,
// user inspection, and bulk import/export.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		admin.GET("/users", userControllers.GetAllUsers(db))
		admin.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrdersHandler(db))
			orders.GET("/ws", orderControllers.OrderWebSocketHandler)
			orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orders.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		admin.GET("/export/:table", adminController.ExportTable(db))
		admin.POST("/import/:table", adminController.ImportTable(db))
		admin.GET("/packages/export-excel", adminController.ExportPackagesToExcel(db))
	}
}
