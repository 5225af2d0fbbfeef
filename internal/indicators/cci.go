package indicators

import (
	"math"

	"hermes/internal/domain/marketdata"
)

// CCI computes the Commodity Channel Index over typical prices:
//
//	CCI = (tp - SMA(tp)) / (0.015 * meanAbsoluteDeviation(tp))
//
// A zero mean absolute deviation (e.g. a perfectly flat window) leaves the
// index undefined at that bar instead of producing an infinity.
func CCI(s marketdata.Series, period int) Result {
	tp := s.TypicalPrices()
	n := len(tp)
	out := nans(n)
	if period <= 0 || n < period {
		return out
	}

	sma := smaSeries(tp, period)

	for i := period - 1; i < n; i++ {
		mean := sma[i]
		dev := 0.0
		for j := i - period + 1; j <= i; j++ {
			dev += math.Abs(tp[j] - mean)
		}
		dev /= float64(period)
		if dev == 0 {
			continue
		}
		out[i] = (tp[i] - mean) / (0.015 * dev)
	}
	return out
}
