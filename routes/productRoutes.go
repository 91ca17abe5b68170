package routes

import (
	"github.com/freshfare/freshfare-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.POST("/products", controllers.CreateProduct)
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:id", controllers.GetProduct)
	server.POST("/product-images", controllers.UploadProductImages)
}
