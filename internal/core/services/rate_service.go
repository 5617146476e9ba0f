package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fxcalc/internal/apperrors"
	"github.com/SscSPs/fxcalc/internal/core/domain"
	portsrepo "github.com/SscSPs/fxcalc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fxcalc/internal/core/ports/services"
	"github.com/SscSPs/fxcalc/internal/platform/metrics"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchTimeout bounds a whole aggregation call.
const DefaultFetchTimeout = 5 * time.Second

// FetchError reports which rate source made a live aggregation fail.
// It matches apperrors.ErrUpstream.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("rate source %s failed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{apperrors.ErrUpstream, e.Err}
}

// rateService aggregates every configured RateSource into one RateTable.
type rateService struct {
	BaseService
	sources             []portsrepo.RateSource
	fetchTimeout        time.Duration
	fixMetalOrientation bool
	metrics             *metrics.Metrics
	now                 func() time.Time
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*rateService)

// WithFetchTimeout bounds each aggregation call.
func WithFetchTimeout(d time.Duration) RateServiceOption {
	return func(s *rateService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithMetalOrientationFix inverts usd_per_unit rates (GOLD, SILVER) so the table
// has a single orientation.
func WithMetalOrientationFix(enabled bool) RateServiceOption {
	return func(s *rateService) {
		s.fixMetalOrientation = enabled
	}
}

// WithRateMetrics records upstream and fallback metrics.
func WithRateMetrics(m *metrics.Metrics) RateServiceOption {
	return func(s *rateService) {
		s.metrics = m
	}
}

// WithRateClock overrides the clock used to stamp tables.
func WithRateClock(now func() time.Time) RateServiceOption {
	return func(s *rateService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRateService creates a rate service over sources. Sources are merged in the
// given order, so a later source wins if two report the same symbol.
func NewRateService(sources []portsrepo.RateSource, options ...RateServiceOption) portssvc.RateSvcFacade {
	svc := &rateService{
		sources:      sources,
		fetchTimeout: DefaultFetchTimeout,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// FetchLive calls every source concurrently. Any failure discards all results.
func (s *rateService) FetchLive(ctx context.Context) (domain.RateTable, error) {
	if len(s.sources) == 0 {
		return domain.RateTable{}, &FetchError{Source: "none", Err: errors.New("no rate sources configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	results := make([][]domain.RateEntry, len(s.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		g.Go(func() error {
			start := time.Now()
			entries, err := src.FetchRates(gctx)
			s.metrics.ObserveFetch(src.Name(), err, time.Since(start))
			if err != nil {
				return &FetchError{Source: src.Name(), Err: err}
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.RateTable{}, err
	}

	var all []domain.RateEntry
	for _, entries := range results {
		all = append(all, entries...)
	}
	table, err := domain.NewRateTable(domain.RateSourceLive, s.now(), all...)
	if err != nil {
		return domain.RateTable{}, &FetchError{Source: "aggregate", Err: err}
	}
	if s.fixMetalOrientation {
		table = table.WithPerUSDOrientation()
	}
	return table, nil
}

// GetRates returns a live table, or the fallback table when any source fails.
func (s *rateService) GetRates(ctx context.Context) domain.RateTable {
	table, err := s.FetchLive(ctx)
	if err == nil {
		s.metrics.RateTableServed(string(domain.RateSourceLive))
		s.LogDebug(ctx, "Live rates aggregated", slog.Int("symbols", table.Len()))
		return table
	}

	source := "unknown"
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		source = fetchErr.Source
	}
	s.LogWarn(ctx, "Live rate fetch failed, substituting fallback rates",
		slog.String("failed_source", source),
		slog.String("error", err.Error()),
	)
	s.metrics.RateTableServed(string(domain.RateSourceFallback))

	fallback := domain.FallbackRateTable(s.now())
	if s.fixMetalOrientation {
		fallback = fallback.WithPerUSDOrientation()
	}
	return fallback
}
