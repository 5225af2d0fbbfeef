package indicators

import "hermes/internal/domain/marketdata"

// MFI computes the Money Flow Index: a volume-weighted RSI analogue over
// typical prices. Flows need a previous typical price, so the first defined
// index is period. Zero negative flow pins the index to 100, mirroring the
// RSI degeneracy rule.
func MFI(s marketdata.Series, period int) Result {
	tp := s.TypicalPrices()
	n := len(tp)
	out := nans(n)
	if period <= 0 || n < period+1 {
		return out
	}

	for i := period; i < n; i++ {
		positive := 0.0
		negative := 0.0
		for j := i - period + 1; j <= i; j++ {
			flow := tp[j] * float64(s[j].Volume)
			if tp[j] > tp[j-1] {
				positive += flow
			} else if tp[j] < tp[j-1] {
				negative += flow
			}
		}
		if negative == 0 {
			out[i] = 100
			continue
		}
		ratio := positive / negative
		out[i] = 100 - 100/(1+ratio)
	}
	return out
}
