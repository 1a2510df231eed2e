package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearFraction(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 1.0, YearFraction(start, start.AddDate(0, 0, 365)), 1e-12)
	assert.InDelta(t, 0.5, YearFraction(start, start.Add(time.Duration(SecondsPerYear/2)*time.Second)), 1e-12)
	assert.Less(t, YearFraction(start, start.Add(-time.Hour)), 0.0)
	assert.Equal(t, 0.0, YearFraction(start, start))
}

func TestYearFractionAcrossZones(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	observed := time.Date(2024, 6, 1, 8, 0, 0, 0, ny)
	expiry := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, YearFraction(observed, expiry))
}

func TestDateRange(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)

	got, err := DateRange(start, end, 5)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.True(t, got[0].Equal(start))
	assert.True(t, got[5].Equal(end))
	assert.True(t, got[1].Equal(start.AddDate(0, 0, 2)))

	_, err = DateRange(start, end, 0)
	assert.Error(t, err)

	_, err = DateRange(end, start, 3)
	assert.Error(t, err)
}
