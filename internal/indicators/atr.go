package indicators

import (
	"math"

	"hermes/internal/domain/marketdata"
)

// TrueRanges returns the per-bar True Range:
//
//	TR[i] = max(high-low, |high-prevClose|, |low-prevClose|)
//
// The first bar has no prior close, so TR[0] = high-low.
func TrueRanges(s marketdata.Series) []float64 {
	n := len(s)
	if n == 0 {
		return nil
	}
	tr := make([]float64, n)
	tr[0] = s[0].High - s[0].Low
	for i := 1; i < n; i++ {
		highLow := s[i].High - s[i].Low
		highClose := math.Abs(s[i].High - s[i-1].Close)
		lowClose := math.Abs(s[i].Low - s[i-1].Close)
		tr[i] = math.Max(highLow, math.Max(highClose, lowClose))
	}
	return tr
}

// ATR computes the Wilder-smoothed Average True Range over the trailing
// period. Defined from index period-1 (the seed is the simple average of the
// first period true ranges, including TR[0]).
func ATR(s marketdata.Series, period int) Result {
	if len(s) == 0 {
		return nans(0)
	}
	return wilderSeries(TrueRanges(s), period)
}
