package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"hermes/pkg/errors"
)

type Config struct {
	App           AppConfig
	Yahoo         YahooConfig
	Metrics       MetricsConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"hermes"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

type YahooConfig struct {
	// QuoteSummaryURL serves modules finance-go does not cover
	// (assetProfile, recommendationTrend, insiderTransactions).
	QuoteSummaryURL string `envconfig:"YAHOO_QUOTE_SUMMARY_URL" default:"https://query2.finance.yahoo.com/v10/finance/quoteSummary"`
	SearchURL       string `envconfig:"YAHOO_SEARCH_URL" default:"https://query2.finance.yahoo.com/v1/finance/search"`

	RequestTimeout time.Duration `envconfig:"YAHOO_REQUEST_TIMEOUT" default:"10s"`
	RetryAttempts  int           `envconfig:"YAHOO_RETRY_ATTEMPTS" default:"3"`
	RetryBackoff   time.Duration `envconfig:"YAHOO_RETRY_BACKOFF" default:"500ms"`

	// RateLimit caps outgoing Yahoo requests per second.
	RateLimit float64 `envconfig:"YAHOO_RATE_LIMIT" default:"5"`
	RateBurst int     `envconfig:"YAHOO_RATE_BURST" default:"10"`

	// ResolveIndianSymbols probes bare symbols with .NS then .BO suffixes
	// before falling back to the symbol as given.
	ResolveIndianSymbols bool `envconfig:"YAHOO_RESOLVE_INDIAN_SYMBOLS" default:"true"`
}

type MetricsConfig struct {
	Enabled    bool   `envconfig:"METRICS_ENABLED" default:"false"`
	ListenAddr string `envconfig:"METRICS_LISTEN_ADDR" default:":9090"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
