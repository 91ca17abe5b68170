package utils

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyOrderCreated posts the order payload to the fulfillment webhook, if
// one is configured. Failures are logged and never surfaced to the customer.
func NotifyOrderCreated(payload any) {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(payload).
		Post(webhookURL)

	if err != nil {
		log.Printf("Order webhook error: %v", err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("Order webhook returned status %d: %s", resp.StatusCode(), resp.Body())
	}
}
