package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/SscSPs/fxcalc/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainConversion_NormalizesTimestampToUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	row := models.ConversionHistory{
		ID:           9,
		Amount:       decimal.NewFromInt(100),
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Result:       decimal.NewFromInt(92),
		Timestamp:    time.Date(2024, 6, 1, 13, 0, 0, 0, loc),
	}

	rec := ToDomainConversion(row)

	assert.Equal(t, int64(9), rec.ID)
	assert.Equal(t, time.UTC, rec.Timestamp.Location())
	assert.Equal(t, 12, rec.Timestamp.Hour())
	assert.True(t, rec.Result.Equal(decimal.NewFromInt(92)))
}

func TestToDomainConversionSlice_PreservesOrder(t *testing.T) {
	rows := []models.ConversionHistory{{ID: 3}, {ID: 2}, {ID: 1}}

	recs := ToDomainConversionSlice(rows)

	assert.Equal(t, []int64{3, 2, 1}, []int64{recs[0].ID, recs[1].ID, recs[2].ID})
	assert.Equal(t, domain.ConversionRecord{ID: 5}.ID, ToModelConversion(domain.ConversionRecord{ID: 5}).ID)
}
