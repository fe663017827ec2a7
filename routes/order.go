package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ordercontroller "github.com/krishnapandey24/brandbox-backend/controllers/order"
	"github.com/krishnapandey24/brandbox-backend/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.POST("", middleware.ValidateToken, ordercontroller.PlaceOrder(db))
		orders.GET("/user/:user_id", middleware.ValidateToken, ordercontroller.GetUserOrders(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", ordercontroller.OrderWebSocket)

		orders.PUT("/:order_id/status", middleware.ValidateAPIKey, ordercontroller.UpdateOrderStatus(db))
		orders.PUT("/:order_id/payment-status", middleware.ValidateAPIKey, ordercontroller.UpdatePaymentStatus(db))
	}
}
