package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount the way Indonesian receipts do, e.g. 1500000 -> "Rp 1.500.000".
// Fractions are rounded to whole rupiah.
func FormatRupiah(amount decimal.Decimal) string {
	digits := amount.Abs().Round(0).String()

	var b strings.Builder
	if amount.Round(0).IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("Rp ")
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
