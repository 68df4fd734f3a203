package kernel

import "math"

// Round2 rounds a monetary amount to two decimal places. All prices, taxes,
// fees, and totals in the system are rounded with this function so that
// derived values agree to the cent regardless of how they were computed.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
