package initializers

import (
	"log"

	"github.com/freshfare/freshfare-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductImage{}, &models.Order{}, &models.OrderItem{})
	log.Println("Database synced successfully.")
}
