package marketdata

import "time"

// Bar represents one OHLCV candle for a fixed time interval.
// OHLC consistency (high >= open/close/low, low <= open/close/high) is not
// enforced here: malformed upstream bars flow through and indicators tolerate
// them, producing degenerate numbers rather than crashing.
type Bar struct {
	Timestamp time.Time `json:"date"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// Series is an ordered sequence of bars with strictly increasing timestamps.
// It is read-only input shared by all indicator computations within one
// request; no gap filling is performed.
type Series []Bar

// Closes returns the close price of every bar in order.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high price of every bar in order.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.High
	}
	return out
}

// Lows returns the low price of every bar in order.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Low
	}
	return out
}

// Volumes returns the volume of every bar in order, as float64 for math.
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = float64(b.Volume)
	}
	return out
}

// TypicalPrices returns (high+low+close)/3 for every bar in order.
func (s Series) TypicalPrices() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = (b.High + b.Low + b.Close) / 3
	}
	return out
}

// Quote is a point-in-time snapshot of a symbol's market price.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Volume        int64     `json:"volume"`
	Timestamp     time.Time `json:"timestamp"`
}

// CompanyOverview holds company information and key financial ratios.
type CompanyOverview struct {
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Industry      string  `json:"industry"`
	MarketCap     int64   `json:"marketCap"`
	PERatio       float64 `json:"peRatio"`
	ForwardPE     float64 `json:"forwardPE"`
	DividendYield float64 `json:"dividendYield"`
	WeekHigh52    float64 `json:"52WeekHigh"`
	WeekLow52     float64 `json:"52WeekLow"`
}

// SearchResult is one security matched by a symbol/keyword search.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Exchange string `json:"exchange"`
}

// Recommendation aggregates analyst ratings for one period bucket.
type Recommendation struct {
	Period     string `json:"period"`
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}

// InsiderTransaction describes a single reported insider trade.
type InsiderTransaction struct {
	Date            string  `json:"date"`
	Insider         string  `json:"insider"`
	Position        string  `json:"position"`
	TransactionType string  `json:"transactionType"`
	Shares          int64   `json:"shares"`
	Value           float64 `json:"value"`
	Ownership       string  `json:"ownership"`
}
