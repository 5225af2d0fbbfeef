package indicators

import "hermes/internal/domain/marketdata"

// DefaultSet is the indicator set computed when a request names none.
// Output is keyed by name, so ordering here is cosmetic.
var DefaultSet = []string{
	"sma", "ema", "wma", "hma",
	"rsi", "stoch", "macd", "roc", "willr",
	"bbands", "atr", "adx",
	"obv", "cmf", "mfi",
	"supertrend", "cci",
}

// Compute runs every requested indicator over the series and assembles the
// named output mapping. When requested is empty the default set is used.
// Failures are isolated per entry: an unknown name or bad period lands in
// the failed map and never aborts the remaining indicators. A series shorter
// than an indicator's window is not a failure; it produces an all-undefined
// result of the same length as the input.
func Compute(series marketdata.Series, requested []string) (map[string]Result, map[string]string) {
	if len(requested) == 0 {
		requested = DefaultSet
	}

	results := make(map[string]Result)
	failed := make(map[string]string)

	for _, name := range requested {
		spec, err := ParseSpec(name)
		if err != nil {
			failed[name] = err.Error()
			continue
		}
		for outName, res := range spec.Compute(series) {
			results[outName] = res
		}
	}
	return results, failed
}

// Compute evaluates one resolved spec, expanding composites into their named
// sub-outputs. The switch is exhaustive over Kind.
func (sp Spec) Compute(s marketdata.Series) map[string]Result {
	switch sp.Kind {
	case KindSMA:
		return map[string]Result{suffixed("sma", sp.Period): SMA(s, sp.Period)}
	case KindEMA:
		return map[string]Result{suffixed("ema", sp.Period): EMA(s, sp.Period)}
	case KindWMA:
		return map[string]Result{suffixed("wma", sp.Period): WMA(s, sp.Period)}
	case KindHMA:
		return map[string]Result{suffixed("hma", sp.Period): HMA(s, sp.Period)}
	case KindRSI:
		return map[string]Result{suffixed("rsi", sp.Period): RSI(s, sp.Period)}
	case KindStochastic:
		k, d := Stochastic(s, sp.Period, stochasticDPeriod)
		return map[string]Result{
			sp.subName("stoch_k"): k,
			sp.subName("stoch_d"): d,
		}
	case KindMACD:
		macd, signal, hist := MACD(s, macdFast, macdSlow, macdSignal)
		return map[string]Result{"macd": macd, "macd_signal": signal, "macd_hist": hist}
	case KindBollinger:
		upper, middle, lower := Bollinger(s, sp.Period, bollingerMultiplier)
		return map[string]Result{
			sp.subName("bbands_upper"):  upper,
			sp.subName("bbands_middle"): middle,
			sp.subName("bbands_lower"):  lower,
		}
	case KindADX:
		adx, plusDI, minusDI := ADX(s, sp.Period)
		return map[string]Result{
			suffixed("adx", sp.Period):      adx,
			suffixed("plus_di", sp.Period):  plusDI,
			suffixed("minus_di", sp.Period): minusDI,
		}
	case KindATR:
		return map[string]Result{suffixed("atr", sp.Period): ATR(s, sp.Period)}
	case KindCCI:
		return map[string]Result{suffixed("cci", sp.Period): CCI(s, sp.Period)}
	case KindROC:
		return map[string]Result{suffixed("roc", sp.Period): ROC(s, sp.Period)}
	case KindWillR:
		return map[string]Result{suffixed("willr", sp.Period): WilliamsR(s, sp.Period)}
	case KindOBV:
		return map[string]Result{"obv": OBV(s)}
	case KindCMF:
		return map[string]Result{suffixed("cmf", sp.Period): CMF(s, sp.Period)}
	case KindMFI:
		return map[string]Result{suffixed("mfi", sp.Period): MFI(s, sp.Period)}
	case KindSupertrend:
		line, direction := Supertrend(s, sp.Period, supertrendFactor)
		return map[string]Result{
			sp.subName("supertrend"):     line,
			sp.subName("supertrend_dir"): direction,
		}
	}
	return nil
}

// subName names one composite sub-output. The defaults keep their bare names
// so a period override cannot silently overwrite them ("stoch_5" alongside
// "stoch" yields stoch_k_5/stoch_d_5 next to stoch_k/stoch_d).
func (sp Spec) subName(base string) string {
	if sp.Period == defaultPeriods[sp.Kind] {
		return base
	}
	return suffixed(base, sp.Period)
}
