package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hermes/internal/indicators"
	"hermes/internal/metrics"
)

const (
	// Daily bars only; intraday intervals are out of scope for the tools.
	dailyInterval = "1d"

	compactPeriod   = "3mo"
	fullPeriod      = "max"
	defaultAnalysis = "3mo"
)

// handleGetStockQuote implements the get_stock_quote tool
func (s *Server) handleGetStockQuote() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		log := s.log.With("tool", "get_stock_quote", "request_id", uuid.New().String())

		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("symbol parameter is required"), nil
		}
		symbol = s.provider.Resolve(ctx, symbol)

		quote, err := s.provider.GetQuote(ctx, symbol)
		metrics.RecordToolExecution("get_stock_quote", time.Since(start), err)
		if err != nil {
			log.Errorw("quote fetch failed", "symbol", symbol, "error", err)
			return errorResult(fmt.Sprintf("failed to get quote for %s: %v", symbol, err)), nil
		}

		log.Infow("quote served", "symbol", symbol, "price", quote.Price)
		return jsonResult(quote)
	}
}

// handleGetCompanyOverview implements the get_company_overview tool
func (s *Server) handleGetCompanyOverview() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		log := s.log.With("tool", "get_company_overview", "request_id", uuid.New().String())

		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("symbol parameter is required"), nil
		}
		symbol = s.provider.Resolve(ctx, symbol)

		overview, err := s.provider.GetOverview(ctx, symbol)
		metrics.RecordToolExecution("get_company_overview", time.Since(start), err)
		if err != nil {
			log.Errorw("overview fetch failed", "symbol", symbol, "error", err)
			return errorResult(fmt.Sprintf("failed to get overview for %s: %v", symbol, err)), nil
		}

		return jsonResult(overview)
	}
}

// handleGetTimeSeriesDaily implements the get_time_series_daily tool.
// outputsize follows the original API vocabulary: "compact" covers the recent
// quarter, "full" the complete available history.
func (s *Server) handleGetTimeSeriesDaily() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		log := s.log.With("tool", "get_time_series_daily", "request_id", uuid.New().String())

		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("symbol parameter is required"), nil
		}
		symbol = s.provider.Resolve(ctx, symbol)

		period := compactPeriod
		if request.GetString("outputsize", "compact") == "full" {
			period = fullPeriod
		}

		series, err := s.provider.GetHistory(ctx, symbol, period, dailyInterval)
		metrics.RecordToolExecution("get_time_series_daily", time.Since(start), err)
		if err != nil {
			log.Errorw("time series fetch failed", "symbol", symbol, "period", period, "error", err)
			return errorResult(fmt.Sprintf("failed to fetch time series for %s: %v", symbol, err)), nil
		}

		log.Infow("time series served", "symbol", symbol, "period", period, "bars", len(series))
		return jsonResult(timeSeriesResponse{
			Symbol:          symbol,
			TimeSeriesDaily: series,
		})
	}
}

// handleGetTechnicalIndicators implements the get_technical_indicators tool
func (s *Server) handleGetTechnicalIndicators() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		log := s.log.With("tool", "get_technical_indicators", "request_id", uuid.New().String())

		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("symbol parameter is required"), nil
		}
		symbol = s.provider.Resolve(ctx, symbol)
		period := request.GetString("period", defaultAnalysis)
		requested := request.GetStringSlice("indicators", nil)

		series, err := s.provider.GetHistory(ctx, symbol, period, dailyInterval)
		if err != nil {
			metrics.RecordToolExecution("get_technical_indicators", time.Since(start), err)
			log.Errorw("history fetch failed", "symbol", symbol, "period", period, "error", err)
			return errorResult(fmt.Sprintf("failed to fetch history for %s: %v", symbol, err)), nil
		}

		results, failed := indicators.Compute(series, requested)
		for name := range failed {
			metrics.IndicatorFailures.WithLabelValues(name).Inc()
		}
		metrics.RecordToolExecution("get_technical_indicators", time.Since(start), nil)
		log.Infow("indicators computed",
			"symbol", symbol,
			"bars", len(series),
			"indicators", len(results),
			"failed", len(failed),
		)

		return jsonResult(analysisResponse{
			Symbol:     symbol,
			Period:     period,
			Indicators: indicatorPoints(series, results),
			Failed:     failed,
		})
	}
}

// handleSearchSymbol implements the search_symbol tool
func (s *Server) handleSearchSymbol() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		log := s.log.With("tool", "search_symbol", "request_id", uuid.New().String())

		keywords, err := request.RequireString("keywords")
		if err != nil || keywords == "" {
			return errorResult("keywords parameter is required"), nil
		}

		results, err := s.provider.Search(ctx, keywords)
		metrics.RecordToolExecution("search_symbol", time.Since(start), err)
		if err != nil {
			log.Errorw("search failed", "keywords", keywords, "error", err)
			return errorResult(fmt.Sprintf("failed to search for %s: %v", keywords, err)), nil
		}

		return jsonResult(searchResultsResponse{Results: results})
	}
}

// handleGetRecommendations implements the get_recommendations tool
func (s *Server) handleGetRecommendations() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		log := s.log.With("tool", "get_recommendations", "request_id", uuid.New().String())

		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("symbol parameter is required"), nil
		}
		symbol = s.provider.Resolve(ctx, symbol)

		recs, err := s.provider.GetRecommendations(ctx, symbol)
		metrics.RecordToolExecution("get_recommendations", time.Since(start), err)
		if err != nil {
			log.Errorw("recommendations fetch failed", "symbol", symbol, "error", err)
			return errorResult(fmt.Sprintf("failed to get recommendations for %s: %v", symbol, err)), nil
		}

		return jsonResult(recommendationsResponse{Symbol: symbol, Recommendations: recs})
	}
}

// handleGetInsiderTransactions implements the get_insider_transactions tool
func (s *Server) handleGetInsiderTransactions() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		log := s.log.With("tool", "get_insider_transactions", "request_id", uuid.New().String())

		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("symbol parameter is required"), nil
		}
		symbol = s.provider.Resolve(ctx, symbol)

		txns, err := s.provider.GetInsiderTransactions(ctx, symbol)
		metrics.RecordToolExecution("get_insider_transactions", time.Since(start), err)
		if err != nil {
			log.Errorw("insider transactions fetch failed", "symbol", symbol, "error", err)
			return errorResult(fmt.Sprintf("failed to get insider transactions for %s: %v", symbol, err)), nil
		}

		return jsonResult(insiderResponse{Symbol: symbol, Transactions: txns})
	}
}
