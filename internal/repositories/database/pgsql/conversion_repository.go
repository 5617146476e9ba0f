package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	portsrepo "github.com/SscSPs/fxcalc/internal/core/ports/repositories"
	"github.com/SscSPs/fxcalc/internal/models"
	"github.com/SscSPs/fxcalc/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const conversionColumns = `id, amount, from_currency, to_currency, result, timestamp`

type PgxConversionRepository struct {
	BaseRepository
}

// newPgxConversionRepository creates a new repository for the conversion log.
func newPgxConversionRepository(pool Querier) *PgxConversionRepository {
	return &PgxConversionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ConversionRepositoryFacade = (*PgxConversionRepository)(nil)

// Append inserts a conversion and returns the id assigned by the sequence.
func (r *PgxConversionRepository) Append(ctx context.Context, rec domain.ConversionRecord) (int64, error) {
	m := mapping.ToModelConversion(rec)

	query := `
		INSERT INTO conversion_history (amount, from_currency, to_currency, result, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Amount,
		m.FromCurrency,
		m.ToCurrency,
		m.Result,
		m.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert conversion %s->%s: %w", m.FromCurrency, m.ToCurrency, err)
	}
	return id, nil
}

// Recent retrieves the newest n conversions.
func (r *PgxConversionRepository) Recent(ctx context.Context, n int) ([]domain.ConversionRecord, error) {
	query := `
		SELECT ` + conversionColumns + `
		FROM conversion_history
		ORDER BY timestamp DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent conversions: %w", err)
	}
	return collectConversions(rows)
}

// RecentBefore retrieves up to n conversions strictly older than cursor.
func (r *PgxConversionRepository) RecentBefore(ctx context.Context, cursor domain.HistoryCursor, n int) ([]domain.ConversionRecord, error) {
	query := `
		SELECT ` + conversionColumns + `
		FROM conversion_history
		WHERE (timestamp, id) < ($1, $2)
		ORDER BY timestamp DESC, id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, cursor.Timestamp, cursor.ID, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions before cursor: %w", err)
	}
	return collectConversions(rows)
}

// Count returns the total number of logged conversions.
func (r *PgxConversionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM conversion_history;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count conversions: %w", err)
	}
	return count, nil
}

func collectConversions(rows pgx.Rows) ([]domain.ConversionRecord, error) {
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ConversionHistory, error) {
		var m models.ConversionHistory
		err := row.Scan(
			&m.ID,
			&m.Amount,
			&m.FromCurrency,
			&m.ToCurrency,
			&m.Result,
			&m.Timestamp,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan conversion rows: %w", err)
	}

	return mapping.ToDomainConversionSlice(modelRows), nil
}
