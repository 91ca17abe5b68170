package models

import "gorm.io/gorm"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Monetary fields are stored in minor units (cents) to avoid floating-point
// rounding error.
type Order struct {
	gorm.Model
	OrderNumber     string      `json:"orderNumber" gorm:"uniqueIndex;size:32"`
	UserID          uint        `json:"userId"`
	User            User        `json:"user"`
	TotalAmount     int64       `json:"totalAmount"`
	DeliveryFee     int64       `json:"deliveryFee"`
	DeliveryAddress string      `json:"deliveryAddress"`
	DeliveryCity    string      `json:"deliveryCity"`
	DeliveryState   string      `json:"deliveryState"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          string      `json:"status"`
	OrderItems      []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"orderId"`
	ProductID uint    `json:"productId"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	// Unit price in cents at the time the order was placed, independent of
	// later product price changes.
	Price int64 `json:"price"`
}
