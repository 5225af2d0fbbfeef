package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/internal/domain/marketdata"
	"hermes/pkg/errors"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Spec
		wantErr error
	}{
		{"default rsi", "rsi", Spec{KindRSI, 14}, nil},
		{"default sma", "sma", Spec{KindSMA, 20}, nil},
		{"period override", "sma_50", Spec{KindSMA, 50}, nil},
		{"case insensitive", "SMA_50", Spec{KindSMA, 50}, nil},
		{"surrounding whitespace", " ema_9 ", Spec{KindEMA, 9}, nil},
		{"obv takes no period", "obv", Spec{KindOBV, 0}, nil},
		{"macd takes no period", "macd", Spec{KindMACD, 0}, nil},
		{"supertrend default", "supertrend", Spec{KindSupertrend, 10}, nil},
		{"unknown name", "bogus_indicator", Spec{}, errors.ErrUnknownIndicator},
		{"unknown base", "xyz_5", Spec{}, errors.ErrUnknownIndicator},
		{"non-numeric suffix", "sma_x", Spec{}, errors.ErrUnknownIndicator},
		{"zero period", "sma_0", Spec{}, errors.ErrInvalidPeriod},
		{"negative period", "sma_-3", Spec{}, errors.ErrInvalidPeriod},
		{"obv rejects period", "obv_5", Spec{}, errors.ErrInvalidPeriod},
		{"macd rejects period", "macd_5", Spec{}, errors.ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_DefaultSetOutputs(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i%7) + float64(i)/5
	}
	s := seriesFromCloses(closes...)

	results, failed := Compute(s, nil)
	assert.Empty(t, failed)

	wantKeys := []string{
		"sma_20", "ema_20", "wma_20", "hma_20",
		"rsi_14", "stoch_k", "stoch_d",
		"macd", "macd_signal", "macd_hist",
		"roc_10", "willr_14",
		"bbands_upper", "bbands_middle", "bbands_lower",
		"atr_14", "adx_14", "plus_di_14", "minus_di_14",
		"obv", "cmf_20", "mfi_14",
		"supertrend", "supertrend_dir", "cci_20",
	}
	require.Len(t, results, len(wantKeys))
	for _, key := range wantKeys {
		res, ok := results[key]
		require.True(t, ok, "missing output %q", key)
		assert.Len(t, res, 60, key)
	}
}

func TestCompute_PeriodOverrideNamesOutput(t *testing.T) {
	s := seriesFromCloses(1, 2, 3, 4, 5, 6, 7, 8)
	results, failed := Compute(s, []string{"sma_5", "adx_3"})

	assert.Empty(t, failed)
	assert.Contains(t, results, "sma_5")
	assert.Contains(t, results, "adx_3")
	assert.Contains(t, results, "plus_di_3")
	assert.Contains(t, results, "minus_di_3")
}

func TestCompute_CompositePeriodOverrideNamesSubOutputs(t *testing.T) {
	s := seriesFromCloses(1, 2, 3, 4, 5, 6, 7, 8)
	results, failed := Compute(s, []string{"stoch_5", "stoch", "bbands_10", "supertrend_5"})

	assert.Empty(t, failed)
	// The override and the default coexist instead of overwriting each other.
	for _, key := range []string{
		"stoch_k_5", "stoch_d_5", "stoch_k", "stoch_d",
		"bbands_upper_10", "bbands_middle_10", "bbands_lower_10",
		"supertrend_5", "supertrend_dir_5",
	} {
		assert.Contains(t, results, key)
	}
	assert.NotContains(t, results, "bbands_upper")
	assert.NotContains(t, results, "supertrend")
}

func TestCompute_FailureIsolation(t *testing.T) {
	s := seriesFromCloses(1, 2, 3, 4, 5, 6)
	results, failed := Compute(s, []string{"sma_5", "bogus_indicator", "rsi_0"})

	res, ok := results["sma_5"]
	require.True(t, ok)
	assert.True(t, res.Defined(4))

	require.Len(t, failed, 2)
	assert.Contains(t, failed["bogus_indicator"], "unknown indicator")
	assert.Contains(t, failed["rsi_0"], "period")
}

func TestCompute_EmptyAndSingleBarSeries(t *testing.T) {
	for _, s := range []marketdata.Series{{}, seriesFromCloses(42)} {
		results, failed := Compute(s, nil)
		assert.Empty(t, failed)
		require.NotEmpty(t, results)

		for name, res := range results {
			require.Len(t, res, len(s), name)
			if name == "obv" && len(s) == 1 {
				// OBV has no warm-up: a single bar yields its volume.
				assert.True(t, res.Defined(0), name)
				continue
			}
			assert.Equal(t, len(s), res.FirstDefined(), name)
		}
	}
}
