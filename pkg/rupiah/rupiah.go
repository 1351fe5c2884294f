// Package rupiah converts catalog prices (USD as served by the catalog
// source) into display rupiah and formats them with id-ID digit grouping.
package rupiah

import (
	"math"
	"strconv"
	"strings"
)

// Convert returns round(price * rate) as a whole rupiah amount.
// Each line item is rounded independently; callers that need a total
// must sum converted values, never convert a summed price.
func Convert(price float64, rate int64) int64 {
	return int64(math.Round(price * float64(rate)))
}

// Sum converts each price independently and returns the sum of the
// rounded values.
func Sum(prices []float64, rate int64) int64 {
	var total int64
	for _, p := range prices {
		total += Convert(p, rate)
	}
	return total
}

// Format renders an amount with dots as thousand separators,
// e.g. 150000 -> "150.000".
func Format(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
		if len(digits) > pre {
			b.WriteByte('.')
		}
	}
	for i := pre; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// FormatPrice is Convert followed by Format with the "Rp " prefix used
// across the storefront.
func FormatPrice(price float64, rate int64) string {
	return "Rp " + Format(Convert(price, rate))
}
