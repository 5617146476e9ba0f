package services

import (
	"context"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/SscSPs/fxcalc/internal/dto"
)

// ConversionWriterSvc defines conversion operations that append to the log
type ConversionWriterSvc interface {
	// Convert fetches a fresh rate table, converts, and records the conversion.
	// Unknown symbols fail with apperrors.ErrValidation and nothing is recorded.
	Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConversionResult, error)

	// ConvertWithRates is Convert against a table the caller already fetched.
	ConvertWithRates(ctx context.Context, table domain.RateTable, req dto.ConvertRequest) (*dto.ConversionResult, error)
}

// ConversionReaderSvc defines read operations for conversion history
type ConversionReaderSvc interface {
	// ListRecent returns the most recent conversions, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ConversionRecord, error)

	// ListPage returns one page of history after the opaque pageToken (empty for the
	// first page) and the token for the next page, empty when there is none.
	ListPage(ctx context.Context, limit int, pageToken string) ([]domain.ConversionRecord, string, error)

	// CountConversions returns how many conversions the log holds.
	CountConversions(ctx context.Context) (int64, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionWriterSvc
	ConversionReaderSvc
}
