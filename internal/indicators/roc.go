package indicators

import "hermes/internal/domain/marketdata"

// ROC computes the Rate of Change as a percentage of the close period bars
// ago. A zero reference close leaves that bar undefined.
func ROC(s marketdata.Series, period int) Result {
	closes := s.Closes()
	n := len(closes)
	out := nans(n)
	if period <= 0 || n <= period {
		return out
	}

	for i := period; i < n; i++ {
		prev := closes[i-period]
		if prev == 0 {
			continue
		}
		out[i] = 100 * (closes[i] - prev) / prev
	}
	return out
}
