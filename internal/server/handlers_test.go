package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/internal/domain/marketdata"
	"hermes/pkg/errors"
)

// stubProvider is a canned-response Provider for handler tests.
type stubProvider struct {
	quote    *marketdata.Quote
	series   marketdata.Series
	err      error
	resolved []string
	periods  []string
}

func (p *stubProvider) GetQuote(_ context.Context, symbol string) (*marketdata.Quote, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.quote, nil
}

func (p *stubProvider) GetOverview(_ context.Context, symbol string) (*marketdata.CompanyOverview, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &marketdata.CompanyOverview{Name: "Test Corp", Sector: "Technology"}, nil
}

func (p *stubProvider) GetHistory(_ context.Context, symbol, period, interval string) (marketdata.Series, error) {
	p.periods = append(p.periods, period)
	if p.err != nil {
		return nil, p.err
	}
	return p.series, nil
}

func (p *stubProvider) Search(_ context.Context, keywords string) ([]marketdata.SearchResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	return []marketdata.SearchResult{{Symbol: "AAPL", Name: "Apple Inc.", Type: "EQUITY", Exchange: "NMS"}}, nil
}

func (p *stubProvider) GetRecommendations(_ context.Context, symbol string) ([]marketdata.Recommendation, error) {
	if p.err != nil {
		return nil, p.err
	}
	return []marketdata.Recommendation{{Period: "0m", StrongBuy: 12, Buy: 20, Hold: 8}}, nil
}

func (p *stubProvider) GetInsiderTransactions(_ context.Context, symbol string) ([]marketdata.InsiderTransaction, error) {
	if p.err != nil {
		return nil, p.err
	}
	return []marketdata.InsiderTransaction{{Insider: "DOE JANE", Shares: 5000}}, nil
}

func (p *stubProvider) Resolve(_ context.Context, symbol string) string {
	p.resolved = append(p.resolved, symbol)
	return strings.ToUpper(symbol)
}

func testSeries(n int) marketdata.Series {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := make(marketdata.Series, n)
	for i := range s {
		c := 100 + float64(i)
		s[i] = marketdata.Bar{
			Timestamp: base.AddDate(0, 0, i),
			Open:      c, High: c + 1, Low: c - 1, Close: c,
			Volume: 1000,
		}
	}
	return s
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleGetStockQuote(t *testing.T) {
	provider := &stubProvider{
		quote: &marketdata.Quote{Symbol: "AAPL", Price: 190.5, Change: 1.2, Volume: 55_000_000},
	}
	s := New(provider)

	res, err := s.handleGetStockQuote()(context.Background(), callRequest(map[string]any{"symbol": "aapl"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got marketdata.Quote
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, "AAPL", got.Symbol)
	assert.Equal(t, 190.5, got.Price)

	// The symbol passed through resolution before the fetch.
	assert.Equal(t, []string{"aapl"}, provider.resolved)
}

func TestHandleGetStockQuote_MissingSymbol(t *testing.T) {
	s := New(&stubProvider{})

	res, err := s.handleGetStockQuote()(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "symbol parameter is required")
}

func TestHandleGetTimeSeriesDaily(t *testing.T) {
	provider := &stubProvider{series: testSeries(5)}
	s := New(provider)

	res, err := s.handleGetTimeSeriesDaily()(context.Background(), callRequest(map[string]any{
		"symbol": "AAPL",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got timeSeriesResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, "AAPL", got.Symbol)
	require.Len(t, got.TimeSeriesDaily, 5)
	assert.Equal(t, 100.0, got.TimeSeriesDaily[0].Close)

	// compact is the default lookback; full switches to the whole history.
	assert.Equal(t, []string{"3mo"}, provider.periods)

	_, err = s.handleGetTimeSeriesDaily()(context.Background(), callRequest(map[string]any{
		"symbol":     "AAPL",
		"outputsize": "full",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"3mo", "max"}, provider.periods)
}

func TestHandleGetTimeSeriesDaily_UpstreamError(t *testing.T) {
	provider := &stubProvider{err: errors.ErrEmptySeries}
	s := New(provider)

	res, err := s.handleGetTimeSeriesDaily()(context.Background(), callRequest(map[string]any{"symbol": "NOPE"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Contains(t, got["error"], "empty series")
}

func TestHandleGetTechnicalIndicators(t *testing.T) {
	provider := &stubProvider{series: testSeries(30)}
	s := New(provider)

	res, err := s.handleGetTechnicalIndicators()(context.Background(), callRequest(map[string]any{
		"symbol":     "AAPL",
		"indicators": []any{"sma_5", "rsi"},
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got analysisResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, "AAPL", got.Symbol)
	assert.Equal(t, "3mo", got.Period) // default
	assert.Empty(t, got.Failed)
	require.Contains(t, got.Indicators, "sma_5")
	require.Contains(t, got.Indicators, "rsi_14")

	sma := got.Indicators["sma_5"]
	require.Len(t, sma, 30)
	assert.Nil(t, sma[0].Value)     // warm-up serializes as null
	require.NotNil(t, sma[4].Value) // first defined window
	assert.InDelta(t, 102.0, *sma[4].Value, 1e-9)
	assert.Equal(t, "2024-01-02", sma[0].Timestamp)
}

func TestHandleGetTechnicalIndicators_PartialFailure(t *testing.T) {
	provider := &stubProvider{series: testSeries(30)}
	s := New(provider)

	res, err := s.handleGetTechnicalIndicators()(context.Background(), callRequest(map[string]any{
		"symbol":     "AAPL",
		"indicators": []any{"sma_5", "bogus_indicator"},
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got analysisResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Contains(t, got.Indicators, "sma_5")
	require.Contains(t, got.Failed, "bogus_indicator")
	assert.Contains(t, got.Failed["bogus_indicator"], "unknown indicator")
}

func TestHandleGetTechnicalIndicators_DefaultSet(t *testing.T) {
	provider := &stubProvider{series: testSeries(60)}
	s := New(provider)

	res, err := s.handleGetTechnicalIndicators()(context.Background(), callRequest(map[string]any{
		"symbol": "AAPL",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got analysisResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Empty(t, got.Failed)
	for _, key := range []string{"sma_20", "rsi_14", "macd", "macd_signal", "supertrend_dir", "obv"} {
		assert.Contains(t, got.Indicators, key)
	}
}

func TestHandleGetTechnicalIndicators_FetchFailureIsTopLevel(t *testing.T) {
	provider := &stubProvider{err: errors.ErrInvalidSymbol}
	s := New(provider)

	res, err := s.handleGetTechnicalIndicators()(context.Background(), callRequest(map[string]any{"symbol": "NOPE"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Contains(t, got["error"], "invalid symbol")
}

func TestHandleSearchSymbol(t *testing.T) {
	s := New(&stubProvider{})

	res, err := s.handleSearchSymbol()(context.Background(), callRequest(map[string]any{"keywords": "apple"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got searchResultsResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got.Results, 1)
	assert.Equal(t, "AAPL", got.Results[0].Symbol)
}

func TestHandleGetRecommendations(t *testing.T) {
	s := New(&stubProvider{})

	res, err := s.handleGetRecommendations()(context.Background(), callRequest(map[string]any{"symbol": "AAPL"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got recommendationsResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, 12, got.Recommendations[0].StrongBuy)
}

func TestHandleGetInsiderTransactions(t *testing.T) {
	s := New(&stubProvider{})

	res, err := s.handleGetInsiderTransactions()(context.Background(), callRequest(map[string]any{"symbol": "AAPL"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got insiderResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "DOE JANE", got.Transactions[0].Insider)
}
