package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/freshfare/freshfare-api/initializers"
	"github.com/freshfare/freshfare-api/models"
	"github.com/freshfare/freshfare-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgInvalidRequestBody  = "Invalid request body"
	msgFailedToFetchOrders = "Failed to fetch orders"
	msgFailedToFetchOrder  = "Failed to fetch order"
	msgFailedToCreateOrder = "Failed to create order"
	msgOrderNotFound       = "Order not found"
)

// Attempts at generating a non-colliding order number before giving up.
const orderNumberAttempts = 3

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message})
}

type CreateOrderItemInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	Items           []CreateOrderItemInput `json:"items" binding:"dive"`
	TotalAmount     float64                `json:"totalAmount"`
	DeliveryFee     float64                `json:"deliveryFee"`
	DeliveryAddress string                 `json:"deliveryAddress" binding:"required"`
	DeliveryCity    string                 `json:"deliveryCity" binding:"required"`
	DeliveryState   string                 `json:"deliveryState"`
	Phone           string                 `json:"phone" binding:"required"`
	Email           string                 `json:"email" binding:"required,email"`
	FirstName       string                 `json:"firstName" binding:"required"`
	LastName        string                 `json:"lastName" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
}

func GetOrders(ctx *gin.Context) {
	page := parseQueryInt(ctx.DefaultQuery("page", "1"), 1)
	limit := parseQueryInt(ctx.DefaultQuery("limit", "10"), 10)
	offset := (page - 1) * limit

	status := ctx.Query("status")

	query := initializers.DB.
		Preload("User").
		Preload("OrderItems.Product").
		Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if result := query.Limit(limit).Offset(offset).Find(&orders); result.Error != nil {
		log.Println("Error fetching orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	var total int64
	countQuery := initializers.DB.Model(&models.Order{})
	if status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	if result := countQuery.Count(&total); result.Error != nil {
		log.Println("Error counting orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

func CreateOrder(ctx *gin.Context) {
	var req CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	order, err := createOrder(req)
	if err != nil {
		log.Println("Error creating order:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	go utils.NotifyOrderCreated(order)
	go sendOrderConfirmationEmail(order)

	ctx.JSON(http.StatusCreated, order)
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	result := initializers.DB.
		Preload("User").
		Preload("OrderItems.Product").
		First(&order, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Error fetching order:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrder)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	// RowsAffected is no existence signal here: MySQL reports zero affected
	// rows when the status is set to its current value.
	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Error fetching order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		}
		return
	}

	if result := initializers.DB.Model(&order).Update("status", orderStatusData.Status); result.Error != nil {
		log.Println("Error updating order status:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

// createOrder persists the order, regenerating the order number when it
// collides with an existing one.
func createOrder(req CreateOrderRequest) (models.Order, error) {
	var order models.Order
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order, err = persistOrder(req, utils.GenerateOrderNumber())
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	return order, err
}

func persistOrder(req CreateOrderRequest, orderNumber string) (models.Order, error) {
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     utils.ToMinorUnits(item.Price),
		})
	}

	var order models.Order
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		user, err := resolveUser(tx, req)
		if err != nil {
			return err
		}

		order = models.Order{
			OrderNumber:     orderNumber,
			UserID:          user.ID,
			TotalAmount:     utils.ToMinorUnits(req.TotalAmount),
			DeliveryFee:     utils.ToMinorUnits(req.DeliveryFee),
			DeliveryAddress: req.DeliveryAddress,
			DeliveryCity:    req.DeliveryCity,
			DeliveryState:   req.DeliveryState,
			Phone:           req.Phone,
			Email:           req.Email,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			PaymentMethod:   req.PaymentMethod,
			Status:          models.OrderStatusPending,
			OrderItems:      items,
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Reload with relations so the response carries the user and each
		// item's product, same shape as GET /orders. Kept inside the
		// transaction so a failed read rolls the creation back instead of
		// reporting failure for a persisted order.
		return tx.
			Preload("User").
			Preload("OrderItems.Product").
			First(&order, order.ID).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// resolveUser returns the user owning the given email, creating one from the
// order's contact fields on first purchase. A concurrent first purchase from
// the same email is resolved by refetching the row that won the insert.
func resolveUser(tx *gorm.DB, req CreateOrderRequest) (models.User, error) {
	var user models.User
	err := tx.Where("email = ?", req.Email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	user = models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.DeliveryAddress,
		City:      req.DeliveryCity,
		State:     req.DeliveryState,
	}
	err = tx.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = tx.Where("email = ?", req.Email).First(&user).Error
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func sendOrderConfirmationEmail(order models.Order) {
	if os.Getenv("SMTP_ADDRESS") == "" {
		return
	}

	emailData := utils.EmailData{
		Name:        order.FirstName,
		Message:     "Thank you for your order! We have received it and will start preparing it right away.",
		OrderNumber: order.OrderNumber,
		LogoURL:     "https://www.freshfare.store/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	if err := utils.SendEmail(order.Email, "Your FreshFare Order "+order.OrderNumber, emailData, templatePath); err != nil {
		log.Printf("Failed to send order confirmation email for %s: %v", order.OrderNumber, err)
	}
}

// parseQueryInt falls back when the value is not a positive integer, so
// malformed pagination never turns into a store error.
func parseQueryInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
