package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate sources
	FetchTimeout        time.Duration
	FiatRatesURL        string
	CryptoRatesURL      string
	MetalsRatesURL      string
	FixMetalOrientation bool

	HistoryLimit       int
	RateLimit          string // ulule/limiter format, e.g. "60-M"
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	// Optional product analytics
	PosthogAPIKey   string
	PosthogEndpoint string
}

// ErrNoDurableLog is returned by RequireDurableLog in production without a database.
var ErrNoDurableLog = errors.New("PGSQL_URL is required when IS_PRODUCTION is true")

// Defaults
const (
	DefaultPort            = "5000"
	DefaultFetchTimeout    = 5 * time.Second
	DefaultHistoryLimit    = 10
	MaxHistoryLimit        = 100
	DefaultRateLimit       = "60-M"
	DefaultShutdownTimeout = 10 * time.Second
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("FETCH_TIMEOUT", DefaultFetchTimeout.String())
	v.SetDefault("FIAT_RATES_URL", "")
	v.SetDefault("CRYPTO_RATES_URL", "")
	v.SetDefault("METALS_RATES_URL", "")
	v.SetDefault("FIX_METAL_ORIENTATION", false)
	v.SetDefault("HISTORY_LIMIT", DefaultHistoryLimit)
	v.SetDefault("RATE_LIMIT", DefaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout.String())
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")

	// Environment variables override .env values, which override defaults.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		FiatRatesURL:        v.GetString("FIAT_RATES_URL"),
		CryptoRatesURL:      v.GetString("CRYPTO_RATES_URL"),
		MetalsRatesURL:      v.GetString("METALS_RATES_URL"),
		FixMetalOrientation: v.GetBool("FIX_METAL_ORIENTATION"),
		HistoryLimit:        v.GetInt("HISTORY_LIMIT"),
		RateLimit:           strings.TrimSpace(v.GetString("RATE_LIMIT")),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:       v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:     v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL not set, conversion history will be kept in memory only")
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	cfg.FetchTimeout = durationOrDefault(v, "FETCH_TIMEOUT", DefaultFetchTimeout)
	cfg.ShutdownTimeout = durationOrDefault(v, "SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)

	switch {
	case cfg.HistoryLimit <= 0:
		slog.Warn("Invalid HISTORY_LIMIT, using default",
			slog.Int("value", cfg.HistoryLimit), slog.Int("default", DefaultHistoryLimit))
		cfg.HistoryLimit = DefaultHistoryLimit
	case cfg.HistoryLimit > MaxHistoryLimit:
		slog.Warn("HISTORY_LIMIT too large, clamping",
			slog.Int("value", cfg.HistoryLimit), slog.Int("max", MaxHistoryLimit))
		cfg.HistoryLimit = MaxHistoryLimit
	}

	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		slog.Warn("Invalid RATE_LIMIT, using default",
			slog.String("value", cfg.RateLimit), slog.String("default", DefaultRateLimit))
		cfg.RateLimit = DefaultRateLimit
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// RequireDurableLog fails when production would run with the in-memory history.
func (c *Config) RequireDurableLog() error {
	if c.IsProduction && c.DatabaseURL == "" {
		return ErrNoDurableLog
	}
	return nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration, using default",
			slog.String("key", key), slog.String("value", raw), slog.String("default", def.String()))
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
