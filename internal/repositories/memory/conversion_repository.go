// Package memory holds process-local repositories. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	portsrepo "github.com/SscSPs/fxcalc/internal/core/ports/repositories"
)

// ConversionRepository is an in-memory, append-only conversion log.
type ConversionRepository struct {
	mu      sync.RWMutex
	records []domain.ConversionRecord
	nextID  int64
}

// NewConversionRepository creates an empty log.
func NewConversionRepository() *ConversionRepository {
	return &ConversionRepository{nextID: 1}
}

// Ensure implementation matches interface
var _ portsrepo.ConversionRepositoryFacade = (*ConversionRepository)(nil)

// NewRepositoryProvider wires the in-memory conversion log with the given sources.
func NewRepositoryProvider(sources ...portsrepo.RateSource) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ConversionRepo: NewConversionRepository(),
		RateSources:    sources,
	}
}

func (r *ConversionRepository) Append(ctx context.Context, rec domain.ConversionRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	r.records = append(r.records, rec)
	return rec.ID, nil
}

func (r *ConversionRepository) Recent(ctx context.Context, n int) ([]domain.ConversionRecord, error) {
	return r.collect(ctx, n, nil)
}

func (r *ConversionRepository) RecentBefore(ctx context.Context, cursor domain.HistoryCursor, n int) ([]domain.ConversionRecord, error) {
	return r.collect(ctx, n, &cursor)
}

func (r *ConversionRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.records)), nil
}

func (r *ConversionRepository) collect(ctx context.Context, n int, cursor *domain.HistoryCursor) ([]domain.ConversionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []domain.ConversionRecord{}, nil
	}

	r.mu.RLock()
	out := make([]domain.ConversionRecord, 0, len(r.records))
	for _, rec := range r.records {
		if cursor == nil || cursor.After(rec) {
			out = append(out, rec)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, domain.NewerFirst)
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
