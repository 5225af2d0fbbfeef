package indicators

import "hermes/internal/domain/marketdata"

// RSI computes the Relative Strength Index over the trailing period using
// Wilder's smoothing on average gain and average loss, seeded by the simple
// average of the first period closes' changes. First defined index is period.
// When the average loss is zero RSI is pinned to 100 rather than dividing by
// zero; that covers a perfectly flat window too.
func RSI(s marketdata.Series, period int) Result {
	closes := s.Closes()
	n := len(closes)
	out := nans(n)
	if period <= 0 || n < period+1 {
		return out
	}

	gains := 0.0
	losses := 0.0
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses += -change
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		gain := 0.0
		loss := 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
