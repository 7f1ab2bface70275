// Package money holds the single rounding rule used for every price and refund.
package money

import "strconv"

// Round2 rounds the exact binary value of x to two decimal places, half to even.
// 2.675 is stored as 2.67499... and therefore rounds to 2.67.
func Round2(x float64) float64 {
	// FormatFloat output always parses back, including NaN and Inf
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}
