package ratesource

import (
	"context"
	"fmt"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateAPIURL is the USD-anchored fiat table endpoint.
const ExchangeRateAPIURL = "https://api.exchangerate-api.com/v4/latest/USD"

// FiatSource reads a USD-anchored fiat rate table. The upstream rates are already
// units per USD, so they are returned verbatim.
type FiatSource struct {
	cfg sourceConfig
}

// NewFiatSource creates a FiatSource.
func NewFiatSource(opts ...Option) *FiatSource {
	return &FiatSource{cfg: newSourceConfig(ExchangeRateAPIURL, opts)}
}

func (s *FiatSource) Name() string { return "exchangerate-api" }

// FetchRates returns every rate in the upstream table.
func (s *FiatSource) FetchRates(ctx context.Context) ([]domain.RateEntry, error) {
	var payload struct {
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := getJSON(ctx, s.cfg.client, s.cfg.url, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("%s: response has no rates", s.Name())
	}

	entries := make([]domain.RateEntry, 0, len(payload.Rates))
	for sym, rate := range payload.Rates {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%s: non-positive rate %s for %s", s.Name(), rate, sym)
		}
		entries = append(entries, domain.RateEntry{
			Symbol:      domain.NormalizeSymbol(sym),
			Rate:        rate,
			Orientation: domain.OrientationPerUSD,
		})
	}
	return entries, nil
}
