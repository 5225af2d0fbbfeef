package indicators

import "hermes/internal/domain/marketdata"

// Trend direction flags emitted by Supertrend.
const (
	TrendUp   = 1.0
	TrendDown = -1.0
)

// Supertrend computes the ATR-based trailing band indicator. Basic bands sit
// multiplier*ATR(period) above and below the bar midpoint (high+low)/2. Final
// bands ratchet: while the trend holds, a band only ever tightens toward
// price, carrying the previous final band forward when the new basic band
// would loosen it. The trend flips when close crosses the opposite final
// band; the emitted line is the lower band in an uptrend and the upper band
// in a downtrend.
//
// This is a genuinely sequential fold: each bar's output depends on the
// previous bar's final bands and direction. The first defined index is
// period-1 (the ATR seed), where the direction starts as an uptrend.
func Supertrend(s marketdata.Series, period int, multiplier float64) (line, direction Result) {
	n := len(s)
	line = nans(n)
	direction = nans(n)
	if period <= 0 || n < period {
		return line, direction
	}

	atr := ATR(s, period)
	start := period - 1

	hl2 := (s[start].High + s[start].Low) / 2
	finalUpper := hl2 + multiplier*atr[start]
	finalLower := hl2 - multiplier*atr[start]
	trend := TrendUp

	line[start] = finalLower
	direction[start] = trend

	for i := start + 1; i < n; i++ {
		hl2 = (s[i].High + s[i].Low) / 2
		basicUpper := hl2 + multiplier*atr[i]
		basicLower := hl2 - multiplier*atr[i]

		// Ratchet rule: keep the tighter band unless the previous close
		// already broke through the previous final band.
		if basicUpper < finalUpper || s[i-1].Close > finalUpper {
			finalUpper = basicUpper
		}
		if basicLower > finalLower || s[i-1].Close < finalLower {
			finalLower = basicLower
		}

		if trend == TrendUp && s[i].Close < finalLower {
			trend = TrendDown
		} else if trend == TrendDown && s[i].Close > finalUpper {
			trend = TrendUp
		}

		if trend == TrendUp {
			line[i] = finalLower
		} else {
			line[i] = finalUpper
		}
		direction[i] = trend
	}
	return line, direction
}
