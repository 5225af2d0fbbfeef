package indicators

import "hermes/internal/domain/marketdata"

// WilliamsR computes Williams %R over the trailing period:
//
//	%R = -100 * (highestHigh - close) / (highestHigh - lowestLow)
//
// A flat high/low range leaves the bar undefined.
func WilliamsR(s marketdata.Series, period int) Result {
	n := len(s)
	out := nans(n)
	if period <= 0 || n < period {
		return out
	}

	for i := period - 1; i < n; i++ {
		hh := s[i].High
		ll := s[i].Low
		for j := i - period + 1; j <= i; j++ {
			if s[j].High > hh {
				hh = s[j].High
			}
			if s[j].Low < ll {
				ll = s[j].Low
			}
		}
		if hh == ll {
			continue
		}
		out[i] = -100 * (hh - s[i].Close) / (hh - ll)
	}
	return out
}
