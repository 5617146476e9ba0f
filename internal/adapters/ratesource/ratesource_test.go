package ratesource_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/fxcalc/internal/adapters/ratesource"
	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type rateSource interface {
	Name() string
	FetchRates(ctx context.Context) ([]domain.RateEntry, error)
}

func respond(status int, body string) func(*http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
		}, nil
	}
}

func byRate(t *testing.T, entries []domain.RateEntry) map[string]domain.RateEntry {
	t.Helper()
	out := make(map[string]domain.RateEntry, len(entries))
	for _, e := range entries {
		_, dup := out[e.Symbol]
		require.Falsef(t, dup, "duplicate symbol %s", e.Symbol)
		out[e.Symbol] = e
	}
	return out
}

func requireRate(t *testing.T, entries map[string]domain.RateEntry, symbol, want string) {
	t.Helper()
	e, ok := entries[symbol]
	require.Truef(t, ok, "missing %s", symbol)
	require.Truef(t, decimal.RequireFromString(want).Equal(e.Rate), "%s: want %s, got %s", symbol, want, e.Rate)
}

func TestFiatSource_FetchRates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "http://fiat.test/latest/USD", req.URL.String())
			require.Equal(t, "application/json", req.Header.Get("Accept"))
			return respond(http.StatusOK, `{"base":"USD","rates":{"USD":1,"EUR":0.92,"pkr":285.5}}`)(req)
		}).
		Times(1)

	source := ratesource.NewFiatSource(ratesource.WithHTTPClient(httpClient), ratesource.WithURL("http://fiat.test/latest/USD"))
	entries, err := source.FetchRates(t.Context())
	require.NoError(t, err)

	got := byRate(t, entries)
	require.Len(t, got, 3)
	requireRate(t, got, "USD", "1")
	requireRate(t, got, "EUR", "0.92")
	requireRate(t, got, "PKR", "285.5")
	require.Equal(t, domain.OrientationPerUSD, got["EUR"].Orientation)
}

func TestCryptoSource_FetchRates_InvertsPrices(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(respond(http.StatusOK, `{
			"bitcoin":{"usd":100000},
			"ethereum":{"usd":4000},
			"solana":{"usd":200},
			"ripple":{"usd":0.5}
		}`)).
		Times(1)

	source := ratesource.NewCryptoSource(ratesource.WithHTTPClient(httpClient))
	entries, err := source.FetchRates(t.Context())
	require.NoError(t, err)

	got := byRate(t, entries)
	require.Len(t, got, 4)
	requireRate(t, got, "BTC", "0.00001")
	requireRate(t, got, "ETH", "0.00025")
	requireRate(t, got, "SOL", "0.005")
	requireRate(t, got, "XRP", "2")
}

func TestCryptoSource_UsesDefaultCoinList(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "bitcoin,ethereum,solana,ripple", req.URL.Query().Get("ids"))
			require.Equal(t, "usd", req.URL.Query().Get("vs_currencies"))
			return respond(http.StatusOK, `{}`)(req)
		}).
		Times(1)

	_, err := ratesource.NewCryptoSource(ratesource.WithHTTPClient(httpClient)).FetchRates(t.Context())
	require.Error(t, err)
}

func TestMetalsSource_FetchRates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(respond(http.StatusOK, `[
			{"metal":"gold","price":2300.5},
			{"metal":"Silver","price":29},
			{"metal":"platinum","price":900}
		]`)).
		Times(1)

	source := ratesource.NewMetalsSource(ratesource.WithHTTPClient(httpClient))
	entries, err := source.FetchRates(t.Context())
	require.NoError(t, err)

	got := byRate(t, entries)
	require.Len(t, got, 2)
	requireRate(t, got, "GOLD", "2300.5")
	requireRate(t, got, "SILVER", "29")
	require.Equal(t, domain.OrientationUSDPerUnit, got["GOLD"].Orientation)
}

func TestSources_Failures(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("connection refused")

	tests := []struct {
		name    string
		source  func(ratesource.HTTPClient) rateSource
		respond func(*http.Request) (*http.Response, error)
	}{
		{
			name:    "fiat transport error",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewFiatSource(ratesource.WithHTTPClient(c)) },
			respond: func(*http.Request) (*http.Response, error) { return nil, transportErr },
		},
		{
			name:    "fiat bad status",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewFiatSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusServiceUnavailable, `{"error":"down"}`),
		},
		{
			name:    "fiat malformed json",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewFiatSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `{"rates":`),
		},
		{
			name:    "fiat missing rates",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewFiatSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `{"base":"USD"}`),
		},
		{
			name:    "fiat zero rate",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewFiatSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `{"rates":{"USD":1,"EUR":0}}`),
		},
		{
			name:    "crypto missing coin",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewCryptoSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `{"bitcoin":{"usd":1},"ethereum":{"usd":1},"solana":{"usd":1}}`),
		},
		{
			name:    "crypto missing usd field",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewCryptoSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `{"bitcoin":{"eur":1},"ethereum":{"usd":1},"solana":{"usd":1},"ripple":{"usd":1}}`),
		},
		{
			name:    "crypto zero price",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewCryptoSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `{"bitcoin":{"usd":0},"ethereum":{"usd":1},"solana":{"usd":1},"ripple":{"usd":1}}`),
		},
		{
			name:    "metals wrong shape",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewMetalsSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `{"gold":2000}`),
		},
		{
			name:    "metals without gold or silver",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewMetalsSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `[{"metal":"platinum","price":900}]`),
		},
		{
			name:    "metals missing price",
			source:  func(c ratesource.HTTPClient) rateSource { return ratesource.NewMetalsSource(ratesource.WithHTTPClient(c)) },
			respond: respond(http.StatusOK, `[{"metal":"gold"}]`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			httpClient := NewMockHTTPClient(ctrl)
			httpClient.EXPECT().Do(gomock.Any()).DoAndReturn(tt.respond).Times(1)

			source := tt.source(httpClient)
			entries, err := source.FetchRates(t.Context())
			require.Error(t, err)
			require.Nil(t, entries, "a failing source contributes no entries")
			require.Contains(t, err.Error(), source.Name())
		})
	}
}

func TestFiatSource_AgainstHTTPServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v4/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"rates":{"USD":1,"JPY":155.2}}`)
	}))
	t.Cleanup(srv.Close)

	source := ratesource.NewFiatSource(
		ratesource.WithHTTPClient(ratesource.NewHTTPClient(ratesource.DefaultTimeout)),
		ratesource.WithURL(srv.URL+"/v4/latest/USD"),
	)
	entries, err := source.FetchRates(t.Context())
	require.NoError(t, err)
	requireRate(t, byRate(t, entries), "JPY", "155.2")
}
