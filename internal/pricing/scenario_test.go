package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBump(t *testing.T) {
	tests := []struct {
		in   string
		want Bump
	}{
		{in: "", want: Bump{}},
		{in: "+2.5", want: Bump{Size: 2.5}},
		{in: "-0.05", want: Bump{Size: -0.05}},
		{in: "+10%", want: Bump{Size: 0.1, Relative: true}},
		{in: "-25bp", want: Bump{Size: -0.0025, Relative: true}},
		{in: " 50BP ", want: Bump{Size: 0.005, Relative: true}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseBump(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want.Relative, got.Relative)
			assert.InDelta(t, tc.want.Size, got.Size, 1e-15)
		})
	}

	_, err := ParseBump("ten%")
	assert.Error(t, err)

	_, err = ParseBump("NaN")
	assert.ErrorIs(t, err, ErrDomain)
}

func TestBumpApply(t *testing.T) {
	assert.InDelta(t, 42.5, Bump{Size: 2.5}.Apply(40), 1e-12)
	assert.InDelta(t, 44, Bump{Size: 0.1, Relative: true}.Apply(40), 1e-12)
	assert.InDelta(t, 0.3, Bump{Size: -0.25, Relative: true}.Apply(0.4), 1e-12)
}

func TestScenarioApply(t *testing.T) {
	base := MarketPoint{UnderlyingPrice: 40, Volatility: 0.4, RiskFreeRate: 0.04, ObservedAt: observedAt}
	scenario := Scenario{
		Price:      Bump{Size: -0.1, Relative: true},
		Volatility: Bump{Size: 0.05},
		Rate:       Bump{Size: 0.01, Relative: true},
		Elapsed:    30 * 24 * time.Hour,
	}

	got := scenario.Apply(base)
	assert.InDelta(t, 36, got.UnderlyingPrice, 1e-12)
	assert.InDelta(t, 0.45, got.Volatility, 1e-12)
	assert.InDelta(t, 0.0404, got.RiskFreeRate, 1e-12)
	assert.Equal(t, observedAt.AddDate(0, 0, 30), got.ObservedAt)

	assert.True(t, Scenario{}.IsZero())
	assert.False(t, scenario.IsZero())
	assert.Equal(t, base, Scenario{}.Apply(base))
}

func TestScenarioCanPushInputsOutOfDomain(t *testing.T) {
	call := mustCall(t, 45, observedAt.AddDate(0, 4, 0), 0)
	shocked := Scenario{Volatility: Bump{Size: -0.5}}.Apply(MarketPoint{UnderlyingPrice: 40, Volatility: 0.4, RiskFreeRate: 0.04, ObservedAt: observedAt})

	_, err := PriceBlackScholes(call, shocked.Volatility, shocked.UnderlyingPrice, shocked.RiskFreeRate, shocked.ObservedAt)
	assert.ErrorIs(t, err, ErrDomain)
}
