package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fxcalc/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ResultPrecision is the number of decimal places a conversion result is rounded to.
// Rounding is half away from zero (decimal.Round).
const ResultPrecision int32 = 4

// ErrUnknownCurrency is returned when a symbol is not part of the active RateTable.
var ErrUnknownCurrency = errors.New("unknown currency")

// ConversionRecord is a single logged conversion. It is never updated or deleted.
type ConversionRecord struct {
	ID           int64           `json:"id"` // Assigned by the conversion log
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Result       decimal.Decimal `json:"result"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Convert pivots amount through USD: amount / rate[from] * rate[to], rounded to
// ResultPrecision places. Both symbols must be present in the table.
func (t RateTable) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, ok := t.Rate(from)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %w %q", apperrors.ErrValidation, ErrUnknownCurrency, NormalizeSymbol(from))
	}
	toRate, ok := t.Rate(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %w %q", apperrors.ErrValidation, ErrUnknownCurrency, NormalizeSymbol(to))
	}

	// identical legs cancel out exactly
	if NormalizeSymbol(from) == NormalizeSymbol(to) {
		return amount.Round(ResultPrecision), nil
	}

	usdAmount := amount.Div(fromRate)
	return usdAmount.Mul(toRate).Round(ResultPrecision), nil
}
