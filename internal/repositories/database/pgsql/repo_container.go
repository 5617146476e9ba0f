package pgsql

import (
	portsrepo "github.com/SscSPs/fxcalc/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed conversion log. Rate sources are
// not database backed and are filled in by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, sources ...portsrepo.RateSource) portsrepo.RepositoryProvider {
	conversionRepo := newPgxConversionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ConversionRepo: conversionRepo,
		RateSources:    sources,
	}
}
