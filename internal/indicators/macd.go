package indicators

import "hermes/internal/domain/marketdata"

// MACD computes Moving Average Convergence Divergence:
//
//	macd   = EMA(fast) - EMA(slow)
//	signal = EMA(signalPeriod) over the macd line
//	hist   = macd - signal
//
// All three outputs stay aligned with the input series. The macd line is
// undefined until the slow EMA is seeded; the signal line additionally waits
// for signalPeriod defined macd values (emaSeries skips the NaN prefix).
func MACD(s marketdata.Series, fast, slow, signalPeriod int) (macd, signal, hist Result) {
	closes := s.Closes()
	n := len(closes)

	emaFast := emaSeries(closes, fast, emaAlpha(fast))
	emaSlow := emaSeries(closes, slow, emaAlpha(slow))

	macd = nans(n)
	for i := 0; i < n; i++ {
		macd[i] = emaFast[i] - emaSlow[i] // NaN until both EMAs are defined
	}

	signal = emaSeries(macd, signalPeriod, emaAlpha(signalPeriod))

	hist = nans(n)
	for i := 0; i < n; i++ {
		hist[i] = macd[i] - signal[i]
	}
	return macd, signal, hist
}
