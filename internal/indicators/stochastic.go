package indicators

import "hermes/internal/domain/marketdata"

// Stochastic computes the stochastic oscillator:
//
//	%K = 100 * (close - lowestLow(kPeriod)) / (highestHigh(kPeriod) - lowestLow(kPeriod))
//	%D = SMA(%K, dPeriod)
//
// A flat kPeriod range leaves %K undefined at that bar, and %D inherits the
// hole through its own window.
func Stochastic(s marketdata.Series, kPeriod, dPeriod int) (k, d Result) {
	n := len(s)
	k = nans(n)
	if kPeriod <= 0 || n < kPeriod {
		return k, smaSeries(k, dPeriod)
	}

	for i := kPeriod - 1; i < n; i++ {
		hh := s[i].High
		ll := s[i].Low
		for j := i - kPeriod + 1; j <= i; j++ {
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
		k[i] = 100 * (s[i].Close - ll) / (hh - ll)
	}

	return k, smaSeries(k, dPeriod)
}
