package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hermes/internal/domain/marketdata"
	"hermes/pkg/logger"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server exposes the market data tools over the Model Context Protocol.
// The transport is stdio: the agent runtime spawns the binary and speaks
// JSON-RPC over stdin/stdout, which is why all logging goes to stderr.
type Server struct {
	mcp      *server.MCPServer
	provider marketdata.Provider
	log      *logger.Logger
}

// New builds the MCP server and registers every tool.
func New(provider marketdata.Provider) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"hermes",
			Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		provider: provider,
		log:      logger.Get().With("component", "server"),
	}
	s.registerTools()
	return s
}

// ServeStdio blocks serving the protocol until stdin closes.
func (s *Server) ServeStdio() error {
	s.log.Infow("serving MCP over stdio", "version", Version)
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_stock_quote",
		mcp.WithDescription("Get the current price snapshot for a stock symbol: last price, change, percent change and volume."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol, e.g. AAPL or RELIANCE (bare Indian tickers resolve to .NS/.BO automatically)"),
		),
	), s.handleGetStockQuote())

	s.mcp.AddTool(mcp.NewTool("get_company_overview",
		mcp.WithDescription("Get company information and key financial ratios: sector, industry, market cap, P/E, dividend yield and 52-week range."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol"),
		),
	), s.handleGetCompanyOverview())

	s.mcp.AddTool(mcp.NewTool("get_time_series_daily",
		mcp.WithDescription("Get daily OHLCV candles for a symbol."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol"),
		),
		mcp.WithString("outputsize",
			mcp.Description("'compact' for the recent quarter of daily bars, 'full' for the complete available history (default compact)"),
		),
	), s.handleGetTimeSeriesDaily())

	s.mcp.AddTool(mcp.NewTool("search_symbol",
		mcp.WithDescription("Search for stocks, ETFs or other securities by ticker fragment or company name."),
		mcp.WithString("keywords",
			mcp.Required(),
			mcp.Description("Keywords to search for, e.g. 'apple' or 'tech'"),
		),
	), s.handleSearchSymbol())

	s.mcp.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription("Get analyst rating counts (strong buy/buy/hold/sell/strong sell) by period bucket."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol"),
		),
	), s.handleGetRecommendations())

	s.mcp.AddTool(mcp.NewTool("get_insider_transactions",
		mcp.WithDescription("Get recently reported insider trades for a symbol."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol"),
		),
	), s.handleGetInsiderTransactions())

	s.mcp.AddTool(mcp.NewTool("get_technical_indicators",
		mcp.WithDescription("Compute technical indicators over a symbol's daily price history. "+
			"Indicator names accept an optional _<period> suffix, e.g. sma_50 or rsi_7. "+
			"Available: sma, ema, wma, hma, rsi, stoch, macd, bbands, adx, atr, cci, roc, willr, obv, cmf, mfi, supertrend. "+
			"Omit the list to compute the full default set. "+
			"Values inside an indicator's warm-up window are null."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol"),
		),
		mcp.WithString("period",
			mcp.Description("Lookback window for the underlying candles: 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max (default 3mo)"),
		),
		mcp.WithArray("indicators",
			mcp.Description("Indicator names to compute; empty means the default set"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), s.handleGetTechnicalIndicators())
}
