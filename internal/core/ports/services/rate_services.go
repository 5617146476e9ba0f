package services

import (
	"context"

	"github.com/SscSPs/fxcalc/internal/core/domain"
)

// RateReaderSvc defines read operations for the unified rate table
type RateReaderSvc interface {
	// GetRates aggregates a fresh table from every source. When any source fails the
	// fixed fallback table is returned instead; it never returns a partial table.
	GetRates(ctx context.Context) domain.RateTable

	// FetchLive aggregates a fresh table and reports the first source failure.
	FetchLive(ctx context.Context) (domain.RateTable, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
}
