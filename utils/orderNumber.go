package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const orderNumberSuffixLength = 5

// GenerateOrderNumber builds a customer-facing order number such as
// FF-1717171717171-8F3KQ. The random suffix alone does not guarantee
// uniqueness, so orders carry a unique index on the column and creation
// retries with a fresh number on conflict.
func GenerateOrderNumber() string {
	var suffix strings.Builder
	for i := 0; i < orderNumberSuffixLength; i++ {
		suffix.WriteByte(orderNumberCharset[rand.Intn(len(orderNumberCharset))])
	}
	return fmt.Sprintf("FF-%d-%s", time.Now().UnixMilli(), suffix.String())
}
