package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the FreshFare API.

The following are the endpoints for this API:

ORDER
- GET "/orders" - List orders (filters: status, page, limit)
- POST "/orders" - Create a new order
- GET "/orders/{orderId}" - Get order by ID
- PATCH "/orders/{orderId}" - Update order status

PRODUCT
- POST "/products" - Create new product
- GET "/products" - Get all products
- GET "/products/{id}" - Get product by ID
- POST "/product-images" - Add product images`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
