package dto

import (
	"github.com/SscSPs/fxcalc/internal/core/domain"
)

// RatesResponse is the flat {SYMBOL: rate} object served by /api/rates.
type RatesResponse map[string]float64

// ToRatesResponse flattens a rate table into JSON numbers.
func ToRatesResponse(table domain.RateTable) RatesResponse {
	res := make(RatesResponse, table.Len())
	for sym, rate := range table.Map() {
		res[sym] = rate.InexactFloat64()
	}
	return res
}
