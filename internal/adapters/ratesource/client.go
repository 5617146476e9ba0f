package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds every upstream call when no client is injected.
const DefaultTimeout = 5 * time.Second

const userAgent = "fxcalc/1.0"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=ratesource_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns an http.Client with bounded dial, handshake and total timeouts.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   5,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

type sourceConfig struct {
	url    string
	client HTTPClient
}

// Option configures a rate source.
type Option func(*sourceConfig)

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *sourceConfig) {
		if client != nil {
			c.client = client
		}
	}
}

// WithURL overrides the upstream endpoint.
func WithURL(url string) Option {
	return func(c *sourceConfig) {
		if url != "" {
			c.url = url
		}
	}
}

func newSourceConfig(defaultURL string, opts []Option) sourceConfig {
	cfg := sourceConfig{url: defaultURL}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.client == nil {
		cfg.client = NewHTTPClient(DefaultTimeout)
	}
	return cfg
}

// getJSON issues a GET and decodes a 2xx JSON body into v.
func getJSON(ctx context.Context, client HTTPClient, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<10))
		return fmt.Errorf("GET %s -> %d: %s", url, res.StatusCode, string(b))
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
