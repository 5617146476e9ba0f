package ratesource

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MetalsLiveURL is the precious-metal spot endpoint.
const MetalsLiveURL = "https://api.metals.live/v1/spot"

var metalSymbols = map[string]string{
	"gold":   "GOLD",
	"silver": "SILVER",
}

// MetalsSource reads gold and silver spot prices. Prices are USD per ounce and are
// returned without inversion (usd_per_unit orientation).
type MetalsSource struct {
	cfg sourceConfig
}

// NewMetalsSource creates a MetalsSource.
func NewMetalsSource(opts ...Option) *MetalsSource {
	return &MetalsSource{cfg: newSourceConfig(MetalsLiveURL, opts)}
}

func (s *MetalsSource) Name() string { return "metals.live" }

// FetchRates returns GOLD and/or SILVER. Other metals are ignored; a payload with
// neither is an error.
func (s *MetalsSource) FetchRates(ctx context.Context) ([]domain.RateEntry, error) {
	var payload []struct {
		Metal string           `json:"metal"`
		Price *decimal.Decimal `json:"price"`
	}
	if err := getJSON(ctx, s.cfg.client, s.cfg.url, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}

	entries := make([]domain.RateEntry, 0, len(metalSymbols))
	for _, item := range payload {
		sym, ok := metalSymbols[strings.ToLower(strings.TrimSpace(item.Metal))]
		if !ok {
			continue
		}
		if item.Price == nil || !item.Price.IsPositive() {
			return nil, fmt.Errorf("%s: missing or non-positive price for %s", s.Name(), item.Metal)
		}
		entries = append(entries, domain.RateEntry{
			Symbol:      sym,
			Rate:        *item.Price,
			Orientation: domain.OrientationUSDPerUnit,
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: response has no gold or silver price", s.Name())
	}
	return entries, nil
}
