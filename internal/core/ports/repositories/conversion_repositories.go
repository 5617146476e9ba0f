package repositories

import (
	"context"

	"github.com/SscSPs/fxcalc/internal/core/domain"
)

// ConversionLogReader defines read operations for the conversion log
type ConversionLogReader interface {
	// Recent returns at most n records, newest first. Ties on timestamp are broken by
	// insertion order, later insertions first.
	Recent(ctx context.Context, n int) ([]domain.ConversionRecord, error)

	// RecentBefore returns at most n records strictly older than cursor, in the
	// same order as Recent.
	RecentBefore(ctx context.Context, cursor domain.HistoryCursor, n int) ([]domain.ConversionRecord, error)

	// Count returns the number of records in the log.
	Count(ctx context.Context) (int64, error)
}

// ConversionLogWriter defines write operations for the conversion log
type ConversionLogWriter interface {
	// Append persists rec and returns the assigned ID. The record's ID field is ignored.
	// The write is durable once Append returns without error.
	Append(ctx context.Context, rec domain.ConversionRecord) (int64, error)
}

// ConversionRepositoryFacade combines all conversion log repository interfaces
type ConversionRepositoryFacade interface {
	ConversionLogReader
	ConversionLogWriter
}
