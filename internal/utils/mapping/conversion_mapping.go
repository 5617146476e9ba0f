package mapping

import (
	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/SscSPs/fxcalc/internal/models"
)

// ToModelConversion converts a domain ConversionRecord to a model ConversionHistory
func ToModelConversion(d domain.ConversionRecord) models.ConversionHistory {
	return models.ConversionHistory{
		ID:           d.ID,
		Amount:       d.Amount,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		Result:       d.Result,
		Timestamp:    d.Timestamp,
	}
}

// ToDomainConversion converts a model ConversionHistory to a domain ConversionRecord
func ToDomainConversion(m models.ConversionHistory) domain.ConversionRecord {
	return domain.ConversionRecord{
		ID:           m.ID,
		Amount:       m.Amount,
		FromCurrency: m.FromCurrency,
		ToCurrency:   m.ToCurrency,
		Result:       m.Result,
		Timestamp:    m.Timestamp.UTC(),
	}
}

// ToDomainConversionSlice converts a slice of model rows, preserving order
func ToDomainConversionSlice(ms []models.ConversionHistory) []domain.ConversionRecord {
	ds := make([]domain.ConversionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConversion(m)
	}
	return ds
}
