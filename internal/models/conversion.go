package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionHistory is a row of the conversion_history table.
type ConversionHistory struct {
	ID           int64           `db:"id"`
	Amount       decimal.Decimal `db:"amount"`
	FromCurrency string          `db:"from_currency"`
	ToCurrency   string          `db:"to_currency"`
	Result       decimal.Decimal `db:"result"`
	Timestamp    time.Time       `db:"timestamp"`
}
