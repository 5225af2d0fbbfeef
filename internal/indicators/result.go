package indicators

import "math"

// Result is one indicator output series aligned 1:1 with the input bars.
// Positions inside the warm-up window (or otherwise undefined, e.g. a flat
// stochastic range) hold NaN so the output length always equals the input
// length.
type Result []float64

// Defined reports whether the value at index i is a real number.
func (r Result) Defined(i int) bool {
	return i >= 0 && i < len(r) && !math.IsNaN(r[i])
}

// FirstDefined returns the index of the first defined value, or len(r) if
// the whole series is undefined.
func (r Result) FirstDefined() int {
	for i, v := range r {
		if !math.IsNaN(v) {
			return i
		}
	}
	return len(r)
}

// Last returns the most recent defined value.
func (r Result) Last() (float64, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if !math.IsNaN(r[i]) {
			return r[i], true
		}
	}
	return 0, false
}

// nans allocates a fully-undefined result of length n.
func nans(n int) Result {
	out := make(Result, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// smaSeries computes a simple moving average over raw values using a running
// window sum, so cost stays linear in the series length. Windows touching a
// NaN value are undefined; once every NaN has left the window the average
// picks up again. Derived series (stochastic %D, Bollinger middle) reuse this
// to inherit warm-up alignment from their inputs.
func smaSeries(values []float64, period int) Result {
	n := len(values)
	out := nans(n)
	if period <= 0 || n < period {
		return out
	}

	sum := 0.0
	nanCount := 0
	for i := 0; i < n; i++ {
		if math.IsNaN(values[i]) {
			nanCount++
		} else {
			sum += values[i]
		}
		if i >= period {
			old := values[i-period]
			if math.IsNaN(old) {
				nanCount--
			} else {
				sum -= old
			}
		}
		if i >= period-1 && nanCount == 0 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// emaSeries applies exponential smoothing with the given alpha. The seed is
// the simple average of the first period values following the leading NaN
// prefix, placed at the seed window's last index; everything before stays
// undefined. MACD's signal line relies on the prefix skip to smooth a series
// that itself has a warm-up region.
func emaSeries(values []float64, period int, alpha float64) Result {
	n := len(values)
	out := nans(n)
	if period <= 0 {
		return out
	}

	start := Result(values).FirstDefined()
	if start+period > n {
		return out
	}

	sum := 0.0
	for i := start; i < start+period; i++ {
		sum += values[i]
	}
	prev := sum / float64(period)
	out[start+period-1] = prev

	for i := start + period; i < n; i++ {
		prev = alpha*values[i] + (1-alpha)*prev
		out[i] = prev
	}
	return out
}

// emaAlpha is the standard smoothing constant 2/(period+1).
func emaAlpha(period int) float64 {
	return 2.0 / (float64(period) + 1.0)
}

// wilderSeries applies Wilder's smoothing: the recurrence
//
//	smoothed[i] = (smoothed[i-1]*(period-1) + values[i]) / period
//
// seeded by the simple average of the first period values after the leading
// NaN prefix. This is a distinct primitive from emaSeries (alpha = 1/period,
// different seed placement conventions in RSI/ATR/ADX), kept separate so the
// seed-value semantics of each consumer stay explicit.
func wilderSeries(values []float64, period int) Result {
	n := len(values)
	out := nans(n)
	if period <= 0 {
		return out
	}

	start := Result(values).FirstDefined()
	if start+period > n {
		return out
	}

	sum := 0.0
	for i := start; i < start+period; i++ {
		sum += values[i]
	}
	prev := sum / float64(period)
	out[start+period-1] = prev

	for i := start + period; i < n; i++ {
		prev = (prev*float64(period-1) + values[i]) / float64(period)
		out[i] = prev
	}
	return out
}

// wmaSeries computes a linearly-weighted moving average (weights 1..period,
// newest bar heaviest). Windows containing NaN are undefined.
func wmaSeries(values []float64, period int) Result {
	n := len(values)
	out := nans(n)
	if period <= 0 || n < period {
		return out
	}

	denom := float64(period*(period+1)) / 2

	for i := period - 1; i < n; i++ {
		weighted := 0.0
		degenerate := false
		for j := 0; j < period; j++ {
			v := values[i-period+1+j]
			if math.IsNaN(v) {
				degenerate = true
				break
			}
			weighted += v * float64(j+1)
		}
		if !degenerate {
			out[i] = weighted / denom
		}
	}
	return out
}
