package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrencyIDR renders an amount as Rupiah with thousand separators,
// e.g. 15000.5 -> "Rp 15.000,50". Whole amounts drop the decimal part.
func FormatCurrencyIDR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	intPart := cents / 100
	decPart := cents % 100

	digits := strconv.FormatInt(intPart, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := sign + "Rp " + strings.Join(groups, ".")
	if decPart != 0 {
		formatted += fmt.Sprintf(",%02d", decPart)
	}
	return formatted
}
