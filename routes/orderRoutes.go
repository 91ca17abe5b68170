package routes

import (
	"github.com/freshfare/freshfare-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.GET("/orders", controllers.GetOrders)
	server.POST("/orders", controllers.CreateOrder)
	server.GET("/orders/:orderId", controllers.GetOrderById)
	server.PATCH("/orders/:orderId", controllers.UpdateOrderStatus)
}
