package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/fxcalc/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PivotCurrency is the currency every rate in a RateTable is expressed against.
const PivotCurrency = "USD"

// RateSource tells whether a RateTable came from the upstream providers or the fallback.
type RateSource string

const (
	RateSourceLive     RateSource = "live"
	RateSourceFallback RateSource = "fallback"
)

// Orientation describes the unit of a rate.
type Orientation string

const (
	// OrientationPerUSD means the rate is units of the symbol per 1 USD (e.g. EUR 0.92).
	OrientationPerUSD Orientation = "per_usd"
	// OrientationUSDPerUnit means the rate is USD per 1 unit of the symbol (e.g. GOLD 2100 per ounce).
	OrientationUSDPerUnit Orientation = "usd_per_unit"
)

// RateEntry is a single symbol and its rate relative to the pivot currency.
type RateEntry struct {
	Symbol      string          `json:"symbol"`
	Rate        decimal.Decimal `json:"rate"`
	Orientation Orientation     `json:"orientation"`
}

// RateTable is an immutable symbol -> rate mapping produced by a single aggregation call.
type RateTable struct {
	entries   map[string]RateEntry
	Source    RateSource
	FetchedAt time.Time
}

// NewRateTable builds a table from entries. Symbols are upper-cased; when a symbol
// appears more than once the last entry wins. Every rate must be positive.
func NewRateTable(source RateSource, fetchedAt time.Time, entries ...RateEntry) (RateTable, error) {
	m := make(map[string]RateEntry, len(entries))
	for _, e := range entries {
		sym := NormalizeSymbol(e.Symbol)
		if sym == "" {
			return RateTable{}, apperrors.NewValidationError("rate entry has an empty symbol")
		}
		if !e.Rate.IsPositive() {
			return RateTable{}, apperrors.NewValidationError(fmt.Sprintf("rate for %s must be positive, got %s", sym, e.Rate))
		}
		if e.Orientation == "" {
			e.Orientation = OrientationPerUSD
		}
		e.Symbol = sym
		m[sym] = e
	}
	return RateTable{entries: m, Source: source, FetchedAt: fetchedAt}, nil
}

// NormalizeSymbol trims and upper-cases a currency symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Len returns the number of symbols in the table.
func (t RateTable) Len() int { return len(t.entries) }

// Has reports whether symbol is present.
func (t RateTable) Has(symbol string) bool {
	_, ok := t.entries[NormalizeSymbol(symbol)]
	return ok
}

// Rate returns the rate for symbol.
func (t RateTable) Rate(symbol string) (decimal.Decimal, bool) {
	e, ok := t.entries[NormalizeSymbol(symbol)]
	return e.Rate, ok
}

// Entry returns the full entry for symbol.
func (t RateTable) Entry(symbol string) (RateEntry, bool) {
	e, ok := t.entries[NormalizeSymbol(symbol)]
	return e, ok
}

// Symbols returns every symbol in the table, sorted.
func (t RateTable) Symbols() []string {
	out := make([]string, 0, len(t.entries))
	for sym := range t.entries {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Entries returns every entry, sorted by symbol.
func (t RateTable) Entries() []RateEntry {
	out := make([]RateEntry, 0, len(t.entries))
	for _, sym := range t.Symbols() {
		out = append(out, t.entries[sym])
	}
	return out
}

// Map returns a flat copy of the table.
func (t RateTable) Map() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t.entries))
	for sym, e := range t.entries {
		out[sym] = e.Rate
	}
	return out
}

// IsFallback reports whether the table is the hardcoded fallback.
func (t RateTable) IsFallback() bool { return t.Source == RateSourceFallback }

// WithPerUSDOrientation returns a copy in which every usd_per_unit rate has been
// inverted, so all entries share the per_usd orientation.
func (t RateTable) WithPerUSDOrientation() RateTable {
	m := make(map[string]RateEntry, len(t.entries))
	one := decimal.NewFromInt(1)
	for sym, e := range t.entries {
		if e.Orientation == OrientationUSDPerUnit {
			e.Rate = one.Div(e.Rate)
			e.Orientation = OrientationPerUSD
		}
		m[sym] = e
	}
	return RateTable{entries: m, Source: t.Source, FetchedAt: t.FetchedAt}
}

// fallbackEntries are approximate rates used when live fetching fails.
var fallbackEntries = []RateEntry{
	{Symbol: "USD", Rate: decimal.NewFromInt(1), Orientation: OrientationPerUSD},
	{Symbol: "EUR", Rate: decimal.RequireFromString("0.92"), Orientation: OrientationPerUSD},
	{Symbol: "PKR", Rate: decimal.NewFromInt(285), Orientation: OrientationPerUSD},
	{Symbol: "BTC", Rate: decimal.RequireFromString("0.0000105"), Orientation: OrientationPerUSD},
	{Symbol: "ETH", Rate: decimal.RequireFromString("0.000312"), Orientation: OrientationPerUSD},
	{Symbol: "SOL", Rate: decimal.RequireFromString("0.00556"), Orientation: OrientationPerUSD},
	{Symbol: "XRP", Rate: decimal.RequireFromString("1.25"), Orientation: OrientationPerUSD},
	{Symbol: "GOLD", Rate: decimal.NewFromInt(2100), Orientation: OrientationUSDPerUnit},
	{Symbol: "SILVER", Rate: decimal.NewFromInt(28), Orientation: OrientationUSDPerUnit},
}

// FallbackRateTable returns the fixed nine-symbol table.
func FallbackRateTable(at time.Time) RateTable {
	m := make(map[string]RateEntry, len(fallbackEntries))
	for _, e := range fallbackEntries {
		m[e.Symbol] = e
	}
	return RateTable{entries: m, Source: RateSourceFallback, FetchedAt: at}
}
