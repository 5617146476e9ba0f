package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	conversionRowColumns = []string{"id", "amount", "from_currency", "to_currency", "result", "timestamp"}
	baseTime             = time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
)

func newMockRepo(t *testing.T) (*PgxConversionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mockPool.ExpectationsWereMet())
		mockPool.Close()
	})
	return newPgxConversionRepository(mockPool), mockPool
}

// descendingRows returns rows for ids from..to (inclusive, from > to), one second
// apart, as the database would order them.
func descendingRows(from, to int64) *pgxmock.Rows {
	rows := pgxmock.NewRows(conversionRowColumns)
	for id := from; id >= to; id-- {
		rows.AddRow(id, "100", "USD", "EUR", "92", baseTime.Add(time.Duration(id)*time.Second))
	}
	return rows
}

func TestPgxConversionRepository_Append(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	rec := domain.ConversionRecord{
		ID:           99, // ignored, the sequence assigns the id
		Amount:       decimal.NewFromInt(100),
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Result:       decimal.NewFromInt(92),
		Timestamp:    baseTime,
	}

	mockPool.ExpectQuery(`INSERT INTO conversion_history \(amount, from_currency, to_currency, result, timestamp\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5\)\s+RETURNING id`).
		WithArgs(pgxmock.AnyArg(), "USD", "EUR", pgxmock.AnyArg(), baseTime).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(16)))

	id, err := repo.Append(t.Context(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(16), id)
}

func TestPgxConversionRepository_Append_Error(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	mockPool.ExpectQuery(`INSERT INTO conversion_history`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Append(t.Context(), domain.ConversionRecord{FromCurrency: "USD", ToCurrency: "EUR", Timestamp: baseTime})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert conversion USD->EUR")
}

func TestPgxConversionRepository_Recent_NewestFirst(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	// fifteen rows are stored; the query asks for ten ordered by timestamp then id
	mockPool.ExpectQuery(`SELECT id, amount, from_currency, to_currency, result, timestamp\s+FROM conversion_history\s+ORDER BY timestamp DESC, id DESC\s+LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(descendingRows(15, 6))

	got, err := repo.Recent(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, got, 10)

	for i, rec := range got {
		assert.Equal(t, int64(15-i), rec.ID)
		assert.Equal(t, time.UTC, rec.Timestamp.Location())
	}
	assert.True(t, decimal.NewFromInt(100).Equal(got[0].Amount))
	assert.True(t, decimal.NewFromInt(92).Equal(got[0].Result))
	assert.Equal(t, "USD", got[0].FromCurrency)
	assert.Equal(t, "EUR", got[0].ToCurrency)
}

func TestPgxConversionRepository_Recent_ConvertsTimestampsToUTC(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	local := time.FixedZone("UTC+5", 5*60*60)
	mockPool.ExpectQuery(`ORDER BY timestamp DESC, id DESC\s+LIMIT \$1`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(conversionRowColumns).
			AddRow(int64(1), "1", "BTC", "USD", "95238.0952", baseTime.In(local)))

	got, err := repo.Recent(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.UTC, got[0].Timestamp.Location())
	assert.True(t, baseTime.Equal(got[0].Timestamp))
}

func TestPgxConversionRepository_Recent_QueryError(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	mockPool.ExpectQuery(`FROM conversion_history`).WithArgs(10).WillReturnError(errors.New("timeout"))

	_, err := repo.Recent(t.Context(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query recent conversions")
}

func TestPgxConversionRepository_RecentBefore_UsesRowValueCursor(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	cursor := domain.HistoryCursor{Timestamp: baseTime.Add(6 * time.Second), ID: 6}
	mockPool.ExpectQuery(`WHERE \(timestamp, id\) < \(\$1, \$2\)\s+ORDER BY timestamp DESC, id DESC\s+LIMIT \$3`).
		WithArgs(cursor.Timestamp, int64(6), 5).
		WillReturnRows(descendingRows(5, 1))

	got, err := repo.RecentBefore(t.Context(), cursor, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for _, rec := range got {
		assert.True(t, cursor.After(rec), "record %d is not older than the cursor", rec.ID)
	}
	assert.Equal(t, int64(5), got[0].ID)
	assert.Equal(t, int64(1), got[4].ID)
}

func TestPgxConversionRepository_Count(t *testing.T) {
	repo, mockPool := newMockRepo(t)

	mockPool.ExpectQuery(`SELECT COUNT\(\*\) FROM conversion_history`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(15)))

	n, err := repo.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(15), n)
}
