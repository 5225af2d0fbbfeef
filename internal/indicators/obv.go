package indicators

import "hermes/internal/domain/marketdata"

// OBV computes On-Balance Volume: a running total that adds the bar's volume
// when close rises, subtracts it when close falls, and holds when unchanged.
// The seed is OBV[0] = volume[0] (the TA-Lib convention; some implementations
// seed with zero). Defined from index 0, no warm-up window.
func OBV(s marketdata.Series) Result {
	n := len(s)
	out := make(Result, n)
	if n == 0 {
		return out
	}

	out[0] = float64(s[0].Volume)
	for i := 1; i < n; i++ {
		switch {
		case s[i].Close > s[i-1].Close:
			out[i] = out[i-1] + float64(s[i].Volume)
		case s[i].Close < s[i-1].Close:
			out[i] = out[i-1] - float64(s[i].Volume)
		default:
			out[i] = out[i-1]
		}
	}
	return out
}
