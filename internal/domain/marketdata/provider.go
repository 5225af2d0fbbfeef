package marketdata

import "context"

// Provider defines the external financial-data collaborator. All tool
// handlers consume this interface; the Yahoo adapter implements it.
type Provider interface {
	// GetQuote returns the current market snapshot for a symbol.
	GetQuote(ctx context.Context, symbol string) (*Quote, error)

	// GetOverview returns company information and key ratios.
	GetOverview(ctx context.Context, symbol string) (*CompanyOverview, error)

	// GetHistory returns daily bars covering the requested period
	// (e.g. "3mo", "1y", "max") at the given interval (e.g. "1d").
	GetHistory(ctx context.Context, symbol, period, interval string) (Series, error)

	// Search finds securities matching the given keywords.
	Search(ctx context.Context, keywords string) ([]SearchResult, error)

	// GetRecommendations returns analyst recommendation trend buckets.
	GetRecommendations(ctx context.Context, symbol string) ([]Recommendation, error)

	// GetInsiderTransactions returns recent reported insider trades.
	GetInsiderTransactions(ctx context.Context, symbol string) ([]InsiderTransaction, error)

	// Resolve normalizes a user-supplied symbol to the provider's notation
	// (exchange suffix probing); returns the input unchanged when no better
	// match exists.
	Resolve(ctx context.Context, symbol string) string
}
