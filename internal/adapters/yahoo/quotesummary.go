package yahoo

import (
	"context"
	"fmt"

	"hermes/internal/domain/marketdata"
	"hermes/internal/metrics"
	"hermes/pkg/errors"
)

// Yahoo's quoteSummary endpoint wraps every numeric field in a raw/fmt pair
// and nests results one level deep per module. These structs model just the
// fields the tools surface.

type rawInt struct {
	Raw int64 `json:"raw"`
}

type rawFloat struct {
	Raw float64 `json:"raw"`
}

type fmtString struct {
	Fmt string `json:"fmt"`
}

type assetProfile struct {
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
}

type recommendationTrend struct {
	Trend []struct {
		Period     string `json:"period"`
		StrongBuy  int    `json:"strongBuy"`
		Buy        int    `json:"buy"`
		Hold       int    `json:"hold"`
		Sell       int    `json:"sell"`
		StrongSell int    `json:"strongSell"`
	} `json:"trend"`
}

type insiderTransactions struct {
	Transactions []struct {
		FilerName       string    `json:"filerName"`
		FilerRelation   string    `json:"filerRelation"`
		TransactionText string    `json:"transactionText"`
		Ownership       fmtString `json:"ownership"`
		StartDate       fmtString `json:"startDate"`
		Shares          rawInt    `json:"shares"`
		Value           rawFloat  `json:"value"`
	} `json:"transactions"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile        *assetProfile        `json:"assetProfile"`
			RecommendationTrend *recommendationTrend `json:"recommendationTrend"`
			InsiderTransactions *insiderTransactions `json:"insiderTransactions"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		QuoteType string `json:"quoteType"`
		Exchange  string `json:"exchange"`
	} `json:"quotes"`
}

// fetchQuoteSummary requests one quoteSummary module for a symbol.
func (c *Client) fetchQuoteSummary(ctx context.Context, symbol, module string) (*quoteSummaryResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrRateLimitExceeded, err.Error())
	}

	var body quoteSummaryResponse
	err := c.withRetry(ctx, func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("modules", module).
			SetResult(&body).
			Get(fmt.Sprintf("%s/%s", c.cfg.QuoteSummaryURL, symbol))
		if err != nil {
			return errors.Wrapf(err, "quoteSummary %s %s", module, symbol)
		}
		if resp.StatusCode() == 404 {
			return errors.Wrapf(errors.ErrInvalidSymbol, "%s", symbol)
		}
		if resp.IsError() {
			return errors.Wrapf(errors.ErrUnavailable, "quoteSummary %s: status %d", symbol, resp.StatusCode())
		}
		return nil
	})
	metrics.RecordYahooAPICall("quoteSummary", err)
	if err != nil {
		return nil, err
	}

	if e := body.QuoteSummary.Error; e != nil {
		return nil, errors.Newf("quoteSummary %s: %s", symbol, e.Description)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "quoteSummary %s %s", module, symbol)
	}
	return &body, nil
}

func (c *Client) fetchAssetProfile(ctx context.Context, symbol string) (*assetProfile, error) {
	body, err := c.fetchQuoteSummary(ctx, symbol, "assetProfile")
	if err != nil {
		return nil, err
	}
	profile := body.QuoteSummary.Result[0].AssetProfile
	if profile == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "assetProfile %s", symbol)
	}
	return profile, nil
}

// GetRecommendations returns analyst rating buckets, most recent period
// first (Yahoo already orders them "0m", "-1m", "-2m", "-3m").
func (c *Client) GetRecommendations(ctx context.Context, symbol string) ([]marketdata.Recommendation, error) {
	body, err := c.fetchQuoteSummary(ctx, symbol, "recommendationTrend")
	if err != nil {
		return nil, err
	}
	trend := body.QuoteSummary.Result[0].RecommendationTrend
	if trend == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "recommendationTrend %s", symbol)
	}

	out := make([]marketdata.Recommendation, 0, len(trend.Trend))
	for _, t := range trend.Trend {
		out = append(out, marketdata.Recommendation{
			Period:     t.Period,
			StrongBuy:  t.StrongBuy,
			Buy:        t.Buy,
			Hold:       t.Hold,
			Sell:       t.Sell,
			StrongSell: t.StrongSell,
		})
	}
	return out, nil
}

// GetInsiderTransactions returns reported insider trades, newest first.
func (c *Client) GetInsiderTransactions(ctx context.Context, symbol string) ([]marketdata.InsiderTransaction, error) {
	body, err := c.fetchQuoteSummary(ctx, symbol, "insiderTransactions")
	if err != nil {
		return nil, err
	}
	txns := body.QuoteSummary.Result[0].InsiderTransactions
	if txns == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "insiderTransactions %s", symbol)
	}

	out := make([]marketdata.InsiderTransaction, 0, len(txns.Transactions))
	for _, t := range txns.Transactions {
		out = append(out, marketdata.InsiderTransaction{
			Date:            t.StartDate.Fmt,
			Insider:         t.FilerName,
			Position:        t.FilerRelation,
			TransactionType: t.TransactionText,
			Shares:          t.Shares.Raw,
			Value:           t.Value.Raw,
			Ownership:       t.Ownership.Fmt,
		})
	}
	return out, nil
}

// Search finds securities matching a ticker fragment or company name.
func (c *Client) Search(ctx context.Context, query string) ([]marketdata.SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrRateLimitExceeded, err.Error())
	}

	var body searchResponse
	err := c.withRetry(ctx, func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":           query,
				"quotesCount": "10",
				"newsCount":   "0",
			}).
			SetResult(&body).
			Get(c.cfg.SearchURL)
		if err != nil {
			return errors.Wrapf(err, "search %q", query)
		}
		if resp.IsError() {
			return errors.Wrapf(errors.ErrUnavailable, "search %q: status %d", query, resp.StatusCode())
		}
		return nil
	})
	metrics.RecordYahooAPICall("search", err)
	if err != nil {
		return nil, err
	}

	out := make([]marketdata.SearchResult, 0, len(body.Quotes))
	for _, q := range body.Quotes {
		name := q.LongName
		if name == "" {
			name = q.ShortName
		}
		out = append(out, marketdata.SearchResult{
			Symbol:   q.Symbol,
			Name:     name,
			Type:     q.QuoteType,
			Exchange: q.Exchange,
		})
	}
	return out, nil
}
