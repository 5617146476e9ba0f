package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fxcalc/internal/apperrors"
	"github.com/SscSPs/fxcalc/internal/core/domain"
	portsrepo "github.com/SscSPs/fxcalc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fxcalc/internal/core/ports/services"
	"github.com/SscSPs/fxcalc/internal/dto"
	"github.com/SscSPs/fxcalc/internal/platform/config"
	"github.com/SscSPs/fxcalc/internal/platform/metrics"
	"github.com/SscSPs/fxcalc/internal/utils/pagination"
)

// MaxHistoryLimit caps how many records a single history read may return.
const MaxHistoryLimit = config.MaxHistoryLimit

// conversionService converts through the rate service and records every
// successful conversion in the log.
type conversionService struct {
	BaseService
	rates   portssvc.RateReaderSvc
	logRepo portsrepo.ConversionRepositoryFacade
	metrics *metrics.Metrics
	now     func() time.Time
}

// ConversionServiceOption is a functional option for configuring the conversion service
type ConversionServiceOption func(*conversionService)

// WithConversionMetrics records conversion outcomes.
func WithConversionMetrics(m *metrics.Metrics) ConversionServiceOption {
	return func(s *conversionService) {
		s.metrics = m
	}
}

// WithConversionClock overrides the clock used to timestamp records.
func WithConversionClock(now func() time.Time) ConversionServiceOption {
	return func(s *conversionService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewConversionService creates a new conversion service.
func NewConversionService(rates portssvc.RateReaderSvc, logRepo portsrepo.ConversionRepositoryFacade, options ...ConversionServiceOption) portssvc.ConversionSvcFacade {
	svc := &conversionService{
		rates:   rates,
		logRepo: logRepo,
		now:     time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Convert performs a pivot conversion against a freshly aggregated table and
// appends the result to the log before returning it.
func (s *conversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConversionResult, error) {
	return s.ConvertWithRates(ctx, s.rates.GetRates(ctx), req)
}

// ConvertWithRates converts against table and appends the result to the log.
func (s *conversionService) ConvertWithRates(ctx context.Context, table domain.RateTable, req dto.ConvertRequest) (*dto.ConversionResult, error) {
	result, err := table.Convert(req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		s.metrics.ConversionObserved("rejected")
		s.LogInfo(ctx, "Conversion rejected",
			slog.String("from", req.FromCurrency),
			slog.String("to", req.ToCurrency),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	rec := domain.ConversionRecord{
		Amount:       req.Amount,
		FromCurrency: domain.NormalizeSymbol(req.FromCurrency),
		ToCurrency:   domain.NormalizeSymbol(req.ToCurrency),
		Result:       result,
		Timestamp:    s.now().UTC(),
	}

	id, err := s.logRepo.Append(ctx, rec)
	if err != nil {
		s.metrics.ConversionObserved("failed")
		s.LogError(ctx, err, "Failed to record conversion",
			slog.String("from", rec.FromCurrency),
			slog.String("to", rec.ToCurrency),
		)
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "conversion could not be recorded", err)
	}
	rec.ID = id

	s.metrics.ConversionObserved("recorded")
	s.LogInfo(ctx, "Conversion recorded",
		slog.Int64("conversion_id", rec.ID),
		slog.String("from", rec.FromCurrency),
		slog.String("to", rec.ToCurrency),
		slog.String("rate_source", string(table.Source)),
	)

	return &dto.ConversionResult{
		Record:     dto.ToConversionRecordResponse(rec),
		RateSource: table.Source,
	}, nil
}

func validateLimit(limit int) error {
	if limit <= 0 || limit > MaxHistoryLimit {
		return apperrors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", MaxHistoryLimit))
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (s *conversionService) ListRecent(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	records, err := s.logRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions in service: %w", err)
	}
	if records == nil {
		return []domain.ConversionRecord{}, nil
	}
	return records, nil
}

// CountConversions returns the size of the log.
func (s *conversionService) CountConversions(ctx context.Context) (int64, error) {
	n, err := s.logRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count conversions in service: %w", err)
	}
	return n, nil
}

// ListPage pages through the log newest first. A full page always yields a next
// token; the following call may then return an empty page.
func (s *conversionService) ListPage(ctx context.Context, limit int, pageToken string) ([]domain.ConversionRecord, string, error) {
	if err := validateLimit(limit); err != nil {
		return nil, "", err
	}

	var (
		records []domain.ConversionRecord
		err     error
	)
	if pageToken == "" {
		records, err = s.logRepo.Recent(ctx, limit)
	} else {
		cursor, decodeErr := pagination.DecodeToken(pageToken)
		if decodeErr != nil {
			s.LogWarn(ctx, "Rejected history page token", slog.String("error", decodeErr.Error()))
			return nil, "", apperrors.NewValidationError("invalid next_token")
		}
		records, err = s.logRepo.RecentBefore(ctx, cursor, limit)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to page conversions in service: %w", err)
	}
	if records == nil {
		records = []domain.ConversionRecord{}
	}

	nextToken := ""
	if len(records) == limit {
		nextToken = pagination.EncodeToken(records[len(records)-1].Cursor())
	}
	return records, nextToken, nil
}
