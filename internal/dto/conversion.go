package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/fxcalc/internal/apperrors"
	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest is the service-level input for a conversion.
type ConvertRequest struct {
	Amount       decimal.Decimal
	FromCurrency string
	ToCurrency   string
}

// ConvertForm is the HTML form posted to "/".
type ConvertForm struct {
	Amount       string `form:"amount" binding:"required"`
	FromCurrency string `form:"from_currency" binding:"required,currency"`
	ToCurrency   string `form:"to_currency" binding:"required,currency"`
}

// ToRequest parses the amount and normalizes the symbols. Any decimal literal is
// accepted, including ".5", "5." and exponent forms such as "1e3".
func (f ConvertForm) ToRequest() (ConvertRequest, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		return ConvertRequest{}, apperrors.NewValidationError("amount must be a number")
	}
	return ConvertRequest{
		Amount:       amount,
		FromCurrency: domain.NormalizeSymbol(f.FromCurrency),
		ToCurrency:   domain.NormalizeSymbol(f.ToCurrency),
	}, nil
}

// ConvertAPIRequest is the JSON body accepted by POST /api/convert.
// Amount may be sent as a JSON number or a decimal string.
type ConvertAPIRequest struct {
	Amount       *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"100"`
	FromCurrency string           `json:"from_currency" binding:"required,currency" example:"USD"`
	ToCurrency   string           `json:"to_currency" binding:"required,currency" example:"EUR"`
}

// ToRequest normalizes the symbols. Amount must be non-nil, which binding guarantees.
func (r ConvertAPIRequest) ToRequest() ConvertRequest {
	return ConvertRequest{
		Amount:       *r.Amount,
		FromCurrency: domain.NormalizeSymbol(r.FromCurrency),
		ToCurrency:   domain.NormalizeSymbol(r.ToCurrency),
	}
}

// ConversionRecordResponse is the API shape of a logged conversion.
type ConversionRecordResponse struct {
	ID           int64           `json:"id" example:"1"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	FromCurrency string          `json:"from_currency" example:"USD"`
	ToCurrency   string          `json:"to_currency" example:"EUR"`
	Result       decimal.Decimal `json:"result" swaggertype:"string" example:"92"`
	Timestamp    time.Time       `json:"timestamp"`
}

// ConversionResult is returned by a successful conversion.
type ConversionResult struct {
	Record     ConversionRecordResponse `json:"record"`
	RateSource domain.RateSource        `json:"rate_source" swaggertype:"string" enums:"live,fallback"`
}

// ToConversionRecordResponse converts a domain.ConversionRecord to its response DTO
func ToConversionRecordResponse(rec domain.ConversionRecord) ConversionRecordResponse {
	return ConversionRecordResponse{
		ID:           rec.ID,
		Amount:       rec.Amount,
		FromCurrency: rec.FromCurrency,
		ToCurrency:   rec.ToCurrency,
		Result:       rec.Result,
		Timestamp:    rec.Timestamp,
	}
}

// ToListConversionRecordResponse converts a slice of records, preserving order.
func ToListConversionRecordResponse(recs []domain.ConversionRecord) []ConversionRecordResponse {
	res := make([]ConversionRecordResponse, len(recs))
	for i, rec := range recs {
		res[i] = ToConversionRecordResponse(rec)
	}
	return res
}
