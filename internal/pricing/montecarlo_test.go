package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceMonteCarloConvergesToBlackScholes(t *testing.T) {
	expiry := observedAt.AddDate(0, 4, 0)
	params := MonteCarloParams{Paths: 200_000, Steps: 1, Seed: 42}

	call := mustCall(t, 45, expiry, 0)
	want, err := PriceBlackScholes(call, 0.4, 40, 0.04, observedAt)
	require.NoError(t, err)
	got, err := PriceMonteCarlo(call, 0.4, 40, 0.04, observedAt, params)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 0.03)

	put := mustPut(t, 45, expiry, 0.02)
	want, err = PricePutBlackScholes(put, 0.4, 40, 0.04, observedAt)
	require.NoError(t, err)
	got, err = PriceMonteCarlo(put, 0.4, 40, 0.04, observedAt, params)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 0.03)
}

func TestPriceMonteCarloMultiStepPaths(t *testing.T) {
	call := mustCall(t, 45, observedAt.AddDate(0, 4, 0), 0)
	want, err := PriceBlackScholes(call, 0.4, 40, 0.04, observedAt)
	require.NoError(t, err)

	got, err := PriceMonteCarlo(call, 0.4, 40, 0.04, observedAt, MonteCarloParams{Paths: 50_000, Steps: 12, Seed: 7})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 0.06)
}

func TestPriceMonteCarloIsDeterministicPerSeed(t *testing.T) {
	call := mustCall(t, 45, observedAt.AddDate(0, 4, 0), 0)
	params := MonteCarloParams{Paths: 1_000, Steps: 4, Seed: 9}

	first, err := PriceMonteCarlo(call, 0.4, 40, 0.04, observedAt, params)
	require.NoError(t, err)
	second, err := PriceMonteCarlo(call, 0.4, 40, 0.04, observedAt, params)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	params.Seed = 10
	other, err := PriceMonteCarlo(call, 0.4, 40, 0.04, observedAt, params)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestPriceMonteCarloExpiredIsIntrinsic(t *testing.T) {
	call := mustCall(t, 45, observedAt.Add(-time.Hour), 0)

	value, err := PriceMonteCarlo(call, 0.4, 50, 0.04, observedAt, DefaultMonteCarloParams())
	require.NoError(t, err)
	assert.Equal(t, 5.0, value)
}

func TestPriceMonteCarloRejectsDomain(t *testing.T) {
	call := mustCall(t, 45, observedAt.AddDate(0, 4, 0), 0)

	_, err := PriceMonteCarlo(call, 0.4, 40, 0.04, observedAt, MonteCarloParams{Steps: 1})
	assert.ErrorIs(t, err, ErrDomain)

	_, err = PriceMonteCarlo(call, 0.4, 40, 0.04, observedAt, MonteCarloParams{Paths: 10})
	assert.ErrorIs(t, err, ErrDomain)

	_, err = PriceMonteCarlo(Put{}, 0.4, 40, 0.04, observedAt, DefaultMonteCarloParams())
	assert.ErrorIs(t, err, ErrDomain)
}
