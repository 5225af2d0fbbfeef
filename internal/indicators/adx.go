package indicators

import (
	"math"

	"hermes/internal/domain/marketdata"
)

// ADX computes the Average Directional Index along with the +DI/-DI
// directional lines. Per-bar directional movement follows the exclusivity
// rule: only the larger of the two positive high/low deltas counts, the other
// is zero, and both are zero when neither delta is positive. +DM, -DM and
// True Range are Wilder-smoothed over the period, DI lines are their ratios,
// and ADX is the Wilder-smoothed average of DX.
//
// The warm-up nests: DI lines are defined from index period, ADX only from
// 2*period-1. A flat window (zero smoothed TR) yields zero DI rather than a
// division error, and DX falls back to zero when both DI lines vanish so the
// ADX smoothing is never poisoned.
func ADX(s marketdata.Series, period int) (adx, plusDI, minusDI Result) {
	n := len(s)
	adx = nans(n)
	plusDI = nans(n)
	minusDI = nans(n)
	if period <= 0 || n < period+1 {
		return adx, plusDI, minusDI
	}

	tr := TrueRanges(s)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		upMove := s[i].High - s[i-1].High
		downMove := s[i-1].Low - s[i].Low
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
	}

	// Wilder's smoothed sums, seeded over the first period movements
	// (indices 1..period, since movement needs a prior bar).
	smTR := 0.0
	smPlus := 0.0
	smMinus := 0.0
	for i := 1; i <= period; i++ {
		smTR += tr[i]
		smPlus += plusDM[i]
		smMinus += minusDM[i]
	}

	dx := nans(n)
	for i := period; i < n; i++ {
		if i > period {
			smTR = smTR - smTR/float64(period) + tr[i]
			smPlus = smPlus - smPlus/float64(period) + plusDM[i]
			smMinus = smMinus - smMinus/float64(period) + minusDM[i]
		}

		pdi := 0.0
		mdi := 0.0
		if smTR > 0 {
			pdi = 100 * smPlus / smTR
			mdi = 100 * smMinus / smTR
		}
		plusDI[i] = pdi
		minusDI[i] = mdi

		if sum := pdi + mdi; sum > 0 {
			dx[i] = 100 * math.Abs(pdi-mdi) / sum
		} else {
			dx[i] = 0
		}
	}

	adx = wilderSeries(dx, period)
	return adx, plusDI, minusDI
}
