package yahoo

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"
	"golang.org/x/time/rate"

	"hermes/internal/adapters/config"
	"hermes/internal/domain/marketdata"
	"hermes/internal/metrics"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

// Client fetches market data from Yahoo Finance. Quote, profile and candle
// data goes through finance-go; the quoteSummary modules finance-go does not
// expose (assetProfile, recommendationTrend, insiderTransactions) and the
// symbol search endpoint are called directly over HTTP.
//
// All outgoing requests share one rate limiter so a burst of tool calls from
// the agent cannot hammer the upstream API.
type Client struct {
	cfg     config.YahooConfig
	log     *logger.Logger
	http    *resty.Client
	limiter *rate.Limiter

	// probe reports whether a symbol resolves upstream; swapped in tests.
	probe func(ctx context.Context, symbol string) bool
}

// NewClient builds a Yahoo Finance client from configuration.
func NewClient(cfg config.YahooConfig) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; hermes/1.0)")

	c := &Client{
		cfg:     cfg,
		log:     logger.Get().With("component", "yahoo"),
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
	c.probe = c.quoteExists
	return c
}

// GetQuote returns the current market snapshot for a symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*marketdata.Quote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrRateLimitExceeded, err.Error())
	}

	var out *marketdata.Quote
	err := c.withRetry(ctx, func() error {
		q, err := quote.Get(symbol)
		if err != nil {
			return errors.Wrapf(err, "quote %s", symbol)
		}
		if q == nil {
			return errors.Wrapf(errors.ErrInvalidSymbol, "%s", symbol)
		}

		out = &marketdata.Quote{
			Symbol:        q.Symbol,
			Price:         q.RegularMarketPrice,
			Change:        q.RegularMarketChange,
			ChangePercent: q.RegularMarketChangePercent,
			Volume:        int64(q.RegularMarketVolume),
			Timestamp:     time.Unix(int64(q.RegularMarketTime), 0).UTC(),
		}
		return nil
	})
	metrics.RecordYahooAPICall("quote", err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetOverview returns company information and key ratios. Valuation numbers
// come from the equity quote; sector and industry need the assetProfile
// quoteSummary module.
func (c *Client) GetOverview(ctx context.Context, symbol string) (*marketdata.CompanyOverview, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrRateLimitExceeded, err.Error())
	}

	var out *marketdata.CompanyOverview
	err := c.withRetry(ctx, func() error {
		eq, err := equity.Get(symbol)
		if err != nil {
			return errors.Wrapf(err, "equity %s", symbol)
		}
		if eq == nil {
			return errors.Wrapf(errors.ErrInvalidSymbol, "%s", symbol)
		}

		name := eq.LongName
		if name == "" {
			name = eq.ShortName
		}
		out = &marketdata.CompanyOverview{
			Name:          name,
			MarketCap:     eq.MarketCap,
			PERatio:       eq.TrailingPE,
			ForwardPE:     eq.ForwardPE,
			DividendYield: eq.TrailingAnnualDividendYield,
			WeekHigh52:    eq.FiftyTwoWeekHigh,
			WeekLow52:     eq.FiftyTwoWeekLow,
		}
		return nil
	})
	metrics.RecordYahooAPICall("equity", err)
	if err != nil {
		return nil, err
	}

	// Profile failures degrade the overview rather than failing it; the
	// valuation half is still useful on its own.
	if profile, err := c.fetchAssetProfile(ctx, symbol); err != nil {
		c.log.Warnw("asset profile unavailable", "symbol", symbol, "error", err)
	} else {
		out.Sector = profile.Sector
		out.Industry = profile.Industry
	}
	return out, nil
}

// GetHistory returns OHLCV bars for the lookback period at the given
// interval. Period and interval use Yahoo's range vocabulary ("6mo", "1y",
// "1d", "1wk", ...).
func (c *Client) GetHistory(ctx context.Context, symbol, period, interval string) (marketdata.Series, error) {
	start, end, err := periodBounds(period, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	iv, err := chartInterval(interval)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrRateLimitExceeded, err.Error())
	}

	var series marketdata.Series
	err = c.withRetry(ctx, func() error {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: iv,
		}

		iter := chart.Get(params)
		series = series[:0]
		for iter.Next() {
			b := iter.Bar()
			series = append(series, marketdata.Bar{
				Timestamp: time.Unix(int64(b.Timestamp), 0).UTC(),
				Open:      b.Open.InexactFloat64(),
				High:      b.High.InexactFloat64(),
				Low:       b.Low.InexactFloat64(),
				Close:     b.Close.InexactFloat64(),
				Volume:    int64(b.Volume),
			})
		}
		if err := iter.Err(); err != nil {
			return errors.Wrapf(err, "chart %s", symbol)
		}
		return nil
	})
	metrics.RecordYahooAPICall("chart", err)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptySeries, "%s period=%s interval=%s", symbol, period, interval)
	}
	return series, nil
}

// withRetry runs fn with exponential backoff, honoring context cancellation
// between attempts.
func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	attempts := c.cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return errors.Wrap(errors.ErrTimeout, ctx.Err().Error())
			case <-time.After(delay):
			}
			c.log.Debugw("retrying request", "attempt", attempt+1)
		}
		if lastErr = fn(); lastErr == nil {
			return nil
		}
	}
	return lastErr
}

// quoteExists probes whether Yahoo knows a symbol at all.
func (c *Client) quoteExists(ctx context.Context, symbol string) bool {
	if err := c.limiter.Wait(ctx); err != nil {
		return false
	}
	q, err := quote.Get(symbol)
	return err == nil && q != nil && q.RegularMarketPrice != 0
}

// validPeriods maps the accepted lookback keywords to durations. The
// calendar-dependent "ytd" and the open-ended "max" are handled separately.
var validPeriods = map[string]time.Duration{
	"1d":  24 * time.Hour,
	"5d":  5 * 24 * time.Hour,
	"1mo": 31 * 24 * time.Hour,
	"3mo": 93 * 24 * time.Hour,
	"6mo": 186 * 24 * time.Hour,
	"1y":  366 * 24 * time.Hour,
	"2y":  2 * 366 * 24 * time.Hour,
	"5y":  5 * 366 * 24 * time.Hour,
	"10y": 10 * 366 * 24 * time.Hour,
}

// periodBounds translates a Yahoo range keyword into a concrete start/end
// window ending at now.
func periodBounds(period string, now time.Time) (start, end time.Time, err error) {
	p := strings.ToLower(strings.TrimSpace(period))
	switch p {
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), now, nil
	case "max":
		return now.AddDate(-50, 0, 0), now, nil
	}
	if d, ok := validPeriods[p]; ok {
		return now.Add(-d), now, nil
	}
	return time.Time{}, time.Time{}, errors.Wrapf(errors.ErrInvalidInput, "unsupported period %q", period)
}

// chartIntervals whitelists the bar intervals the chart endpoint accepts for
// historical candles.
var chartIntervals = map[string]datetime.Interval{
	"1d":  datetime.OneDay,
	"5d":  datetime.FiveDay,
	"1wk": datetime.Interval("1wk"),
	"1mo": datetime.OneMonth,
}

func chartInterval(interval string) (datetime.Interval, error) {
	iv, ok := chartIntervals[strings.ToLower(strings.TrimSpace(interval))]
	if !ok {
		return "", errors.Wrapf(errors.ErrInvalidInput, "unsupported interval %q", interval)
	}
	return iv, nil
}
