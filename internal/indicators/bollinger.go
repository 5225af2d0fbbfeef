package indicators

import (
	"math"

	"hermes/internal/domain/marketdata"
)

// Bollinger computes Bollinger Bands over closes: the middle band is
// SMA(period), the upper/lower bands sit multiplier population standard
// deviations away. All three outputs share the SMA warm-up.
func Bollinger(s marketdata.Series, period int, multiplier float64) (upper, middle, lower Result) {
	closes := s.Closes()
	n := len(closes)

	middle = smaSeries(closes, period)
	upper = nans(n)
	lower = nans(n)
	if period <= 0 || n < period {
		return upper, middle, lower
	}

	for i := period - 1; i < n; i++ {
		mean := middle[i]
		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			diff := closes[j] - mean
			variance += diff * diff
		}
		variance /= float64(period)
		stdDev := math.Sqrt(variance)

		upper[i] = mean + multiplier*stdDev
		lower[i] = mean - multiplier*stdDev
	}
	return upper, middle, lower
}
