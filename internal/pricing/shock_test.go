package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShockLimitsSequenceProperties(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		down  float64
		up    float64
		steps int
	}{
		{name: "price axis", base: 40, down: 0.3, up: 0.3, steps: 100},
		{name: "volatility axis", base: 0.4, down: 0.5, up: 0.5, steps: 100},
		{name: "two points", base: 10, down: 0.1, up: 0.2, steps: 2},
		{name: "asymmetric", base: 123.45, down: 0.05, up: 0.9, steps: 17},
		{name: "upward only", base: 1, down: 0, up: 1, steps: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			limits, err := NewShockLimits(tc.down, tc.up, tc.steps)
			require.NoError(t, err)

			seq, err := limits.Sequence(tc.base)
			require.NoError(t, err)
			require.Len(t, seq, tc.steps)

			assert.InDelta(t, tc.base*(1-tc.down), seq[0], 1e-12)
			assert.InDelta(t, tc.base*(1+tc.up), seq[len(seq)-1], 1e-12)

			spacing := tc.base * (tc.up + tc.down) / float64(tc.steps-1)
			for i := 1; i < len(seq); i++ {
				assert.Greater(t, seq[i], seq[i-1], "index %d", i)
				assert.InDelta(t, spacing, seq[i]-seq[i-1], 1e-9, "index %d", i)
			}
		})
	}
}

func TestNewShockLimitsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		down  float64
		up    float64
		steps int
		field string
	}{
		{name: "single step", down: 0.1, up: 0.1, steps: 1, field: "steps"},
		{name: "no steps", down: 0.1, up: 0.1, steps: 0, field: "steps"},
		{name: "negative down", down: -0.1, up: 0.1, steps: 10, field: "down_fraction"},
		{name: "negative up", down: 0.1, up: -0.1, steps: 10, field: "up_fraction"},
		{name: "NaN down", down: math.NaN(), up: 0.1, steps: 10, field: "down_fraction"},
		{name: "infinite up", down: 0.1, up: math.Inf(1), steps: 10, field: "up_fraction"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewShockLimits(tc.down, tc.up, tc.steps)
			require.ErrorIs(t, err, ErrDomain)

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestSequenceRejectsZeroValueLimits(t *testing.T) {
	_, err := ShockLimits{}.Sequence(40)
	require.ErrorIs(t, err, ErrDomain)
}

func TestSequenceAllowsZeroBase(t *testing.T) {
	limits, err := NewShockLimits(0.5, 0.5, 4)
	require.NoError(t, err)

	seq, err := limits.Sequence(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, seq)
}

func TestSequenceRejectsNonFiniteBase(t *testing.T) {
	limits, err := NewShockLimits(0.5, 0.5, 4)
	require.NoError(t, err)

	_, err = limits.Sequence(math.NaN())
	assert.ErrorIs(t, err, ErrDomain)

	_, err = limits.Sequence(math.Inf(1))
	assert.ErrorIs(t, err, ErrDomain)
}
