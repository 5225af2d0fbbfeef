package indicators

import (
	"fmt"
	"strconv"
	"strings"

	"hermes/pkg/errors"
)

// Kind enumerates every supported indicator. The set is closed on purpose:
// dispatch happens through an exhaustive switch instead of a dynamic
// registry, so an unhandled kind is a compile-time smell rather than a
// runtime surprise.
type Kind int

const (
	KindSMA Kind = iota
	KindEMA
	KindWMA
	KindHMA
	KindRSI
	KindStochastic
	KindMACD
	KindBollinger
	KindADX
	KindATR
	KindCCI
	KindROC
	KindWillR
	KindOBV
	KindCMF
	KindMFI
	KindSupertrend
)

// Composite parameters that are fixed rather than request-tunable.
const (
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9

	stochasticDPeriod   = 3
	bollingerMultiplier = 2.0
	supertrendFactor    = 3.0
)

// kindsByName maps the request-facing base name to its kind.
var kindsByName = map[string]Kind{
	"sma":        KindSMA,
	"ema":        KindEMA,
	"wma":        KindWMA,
	"hma":        KindHMA,
	"rsi":        KindRSI,
	"stoch":      KindStochastic,
	"macd":       KindMACD,
	"bbands":     KindBollinger,
	"adx":        KindADX,
	"atr":        KindATR,
	"cci":        KindCCI,
	"roc":        KindROC,
	"willr":      KindWillR,
	"obv":        KindOBV,
	"cmf":        KindCMF,
	"mfi":        KindMFI,
	"supertrend": KindSupertrend,
}

// defaultPeriods holds each kind's default primary period. OBV and MACD take
// no primary period (MACD's 12/26/9 and the other composite constants are
// fixed above).
var defaultPeriods = map[Kind]int{
	KindSMA:        20,
	KindEMA:        20,
	KindWMA:        20,
	KindHMA:        20,
	KindRSI:        14,
	KindStochastic: 14,
	KindBollinger:  20,
	KindADX:        14,
	KindATR:        14,
	KindCCI:        20,
	KindROC:        10,
	KindWillR:      14,
	KindCMF:        20,
	KindMFI:        14,
	KindSupertrend: 10,
}

// Spec is one requested indicator: a kind plus its resolved primary period.
// Specs are built per request from the tool input and never persisted.
type Spec struct {
	Kind   Kind
	Period int
}

// ParseSpec resolves a requested indicator name such as "rsi" or "sma_50".
// A trailing _<integer> overrides the kind's default period; a non-positive
// override, or a suffix on a kind without a tunable period, is rejected for
// that entry only.
func ParseSpec(name string) (Spec, error) {
	lower := strings.ToLower(strings.TrimSpace(name))

	if kind, ok := kindsByName[lower]; ok {
		return Spec{Kind: kind, Period: defaultPeriods[kind]}, nil
	}

	idx := strings.LastIndex(lower, "_")
	if idx <= 0 {
		return Spec{}, errors.Wrapf(errors.ErrUnknownIndicator, "%q", name)
	}

	base := lower[:idx]
	kind, ok := kindsByName[base]
	if !ok {
		return Spec{}, errors.Wrapf(errors.ErrUnknownIndicator, "%q", name)
	}

	period, err := strconv.Atoi(lower[idx+1:])
	if err != nil {
		return Spec{}, errors.Wrapf(errors.ErrUnknownIndicator, "%q", name)
	}
	if period <= 0 {
		return Spec{}, errors.Wrapf(errors.ErrInvalidPeriod, "%q: period must be positive", name)
	}
	if _, tunable := defaultPeriods[kind]; !tunable {
		return Spec{}, errors.Wrapf(errors.ErrInvalidPeriod, "%q does not take a period", name)
	}

	return Spec{Kind: kind, Period: period}, nil
}

// suffixed builds the canonical <indicator>_<period> output name.
func suffixed(base string, period int) string {
	return fmt.Sprintf("%s_%d", base, period)
}
