package indicators

import "hermes/internal/domain/marketdata"

// SMA computes the simple moving average of closes over the trailing period.
// Undefined for indices before period-1.
func SMA(s marketdata.Series, period int) Result {
	return smaSeries(s.Closes(), period)
}
