package ratesource

import (
	"context"
	"fmt"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CoinGeckoURL is the spot-price endpoint for the fixed coin set.
const CoinGeckoURL = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin,ethereum,solana,ripple&vs_currencies=usd"

// coinSymbols maps CoinGecko coin ids to table symbols.
var coinSymbols = []struct {
	id     string
	symbol string
}{
	{"bitcoin", "BTC"},
	{"ethereum", "ETH"},
	{"solana", "SOL"},
	{"ripple", "XRP"},
}

// CryptoSource reads USD spot prices and inverts them into units per USD.
type CryptoSource struct {
	cfg sourceConfig
}

// NewCryptoSource creates a CryptoSource.
func NewCryptoSource(opts ...Option) *CryptoSource {
	return &CryptoSource{cfg: newSourceConfig(CoinGeckoURL, opts)}
}

func (s *CryptoSource) Name() string { return "coingecko" }

// FetchRates returns BTC, ETH, SOL and XRP as 1 / price_usd. A missing coin fails
// the whole call.
func (s *CryptoSource) FetchRates(ctx context.Context) ([]domain.RateEntry, error) {
	var payload map[string]struct {
		USD *decimal.Decimal `json:"usd"`
	}
	if err := getJSON(ctx, s.cfg.client, s.cfg.url, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}

	one := decimal.NewFromInt(1)
	entries := make([]domain.RateEntry, 0, len(coinSymbols))
	for _, c := range coinSymbols {
		quote, ok := payload[c.id]
		if !ok || quote.USD == nil {
			return nil, fmt.Errorf("%s: missing usd price for %s", s.Name(), c.id)
		}
		if !quote.USD.IsPositive() {
			return nil, fmt.Errorf("%s: non-positive usd price %s for %s", s.Name(), quote.USD, c.id)
		}
		entries = append(entries, domain.RateEntry{
			Symbol:      c.symbol,
			Rate:        one.Div(*quote.USD),
			Orientation: domain.OrientationPerUSD,
		})
	}
	return entries, nil
}
