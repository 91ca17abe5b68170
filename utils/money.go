package utils

import "math"

// ToMinorUnits converts a decimal currency amount to integer cents.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
