package indicators

import "hermes/internal/domain/marketdata"

// EMA computes the exponential moving average of closes with
// alpha = 2/(period+1), seeded with SMA(period) at index period-1.
func EMA(s marketdata.Series, period int) Result {
	return emaSeries(s.Closes(), period, emaAlpha(period))
}
