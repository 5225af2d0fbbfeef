package indicators

import "hermes/internal/domain/marketdata"

// CMF computes the Chaikin Money Flow over the trailing period: the sum of
// money-flow volume divided by the sum of volume. A bar with high == low
// contributes zero money flow; a window with zero total volume is undefined.
func CMF(s marketdata.Series, period int) Result {
	n := len(s)
	out := nans(n)
	if period <= 0 || n < period {
		return out
	}

	for i := period - 1; i < n; i++ {
		mfv := 0.0
		vol := 0.0
		for j := i - period + 1; j <= i; j++ {
			b := s[j]
			vol += float64(b.Volume)
			spread := b.High - b.Low
			if spread == 0 {
				continue
			}
			multiplier := ((b.Close - b.Low) - (b.High - b.Close)) / spread
			mfv += multiplier * float64(b.Volume)
		}
		if vol == 0 {
			continue
		}
		out[i] = mfv / vol
	}
	return out
}
