package indicators

import (
	"math"

	"hermes/internal/domain/marketdata"
)

// WMA computes the linearly-weighted moving average of closes, newest bar
// carrying the largest weight. Undefined before index period-1.
func WMA(s marketdata.Series, period int) Result {
	return wmaSeries(s.Closes(), period)
}

// HMA computes the Hull Moving Average:
//
//	HMA = WMA(2*WMA(period/2) - WMA(period), sqrt(period))
//
// The warm-up window compounds: the final WMA pass starts only after the raw
// difference series is defined.
func HMA(s marketdata.Series, period int) Result {
	closes := s.Closes()
	n := len(closes)
	if period <= 0 {
		return nans(n)
	}

	half := period / 2
	if half < 1 {
		half = 1
	}
	sqrtP := int(math.Sqrt(float64(period)))
	if sqrtP < 1 {
		sqrtP = 1
	}

	wmaHalf := wmaSeries(closes, half)
	wmaFull := wmaSeries(closes, period)

	raw := make([]float64, n)
	for i := 0; i < n; i++ {
		raw[i] = 2*wmaHalf[i] - wmaFull[i] // NaN propagates through the warm-up
	}
	return wmaSeries(raw, sqrtP)
}
