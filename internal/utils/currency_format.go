package utils

import (
	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatResult formats a conversion result with exactly ResultPrecision places.
// Example: 92 returns "92.0000"
func FormatResult(amount decimal.Decimal) string {
	return amount.StringFixed(domain.ResultPrecision)
}
