package repositories

import (
	"context"

	"github.com/SscSPs/fxcalc/internal/core/domain"
)

// RateSource is one upstream rate provider. A failing source returns a nil slice
// and an error, never a partial result.
type RateSource interface {
	Name() string
	FetchRates(ctx context.Context) ([]domain.RateEntry, error)
}
