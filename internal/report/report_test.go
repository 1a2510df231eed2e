package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"option-surface/internal/pricing"
)

func sampleSurface() *Surface {
	return &Surface{
		Kind:         "call",
		Strike:       45,
		Expiry:       time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		ObservedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		RiskFreeRate: 0.04,
		Prices:       []float64{30, 40, 50},
		Volatilities: []float64{0.2, 0.4},
		Values: pricing.Matrix{
			{0.01, 0.25},
			{1.5, 2.75},
			{6.123456, 7.5},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSurface(), 2))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{`price\vol`, "0.20", "0.40"}, records[0])
	assert.Equal(t, []string{"30.00", "0.01", "0.25"}, records[1])
	assert.Equal(t, []string{"50.00", "6.12", "7.50"}, records[3])
}

func TestWriteCSVEmpty(t *testing.T) {
	assert.Error(t, WriteCSV(&bytes.Buffer{}, &Surface{}, 2))
}

func TestCSVSinkCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "surface.csv")
	sink := CSVSink{Path: path, Places: 4}

	require.NoError(t, sink.WriteSurface(context.Background(), sampleSurface()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), `price\vol,0.2000,0.4000`))
}

func TestCSVSinkHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := CSVSink{Path: filepath.Join(t.TempDir(), "surface.csv"), Places: 4}
	assert.ErrorIs(t, sink.WriteSurface(ctx, sampleSurface()), context.Canceled)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "surface.png")
	require.NoError(t, SavePNG(path, sampleSurface(), ChartOptions{Width: 640, Height: 480, Slices: 2}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSliceColumns(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, sliceColumns(3, 5))
	assert.Equal(t, []int{0, 33, 66, 99}, sliceColumns(100, 4))
	assert.Equal(t, []int{50}, sliceColumns(100, 1))
	assert.Equal(t, []int{0, 1}, sliceColumns(2, 0))
	assert.Nil(t, sliceColumns(0, 3))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sampleSurface(), 4))

	out := buf.String()
	assert.Contains(t, out, "call strike=45.0000")
	assert.Contains(t, out, "grid 3x2")
	assert.Contains(t, out, "centre")
	assert.Contains(t, out, "2.7500")
	assert.Contains(t, out, "high/high")
	assert.Contains(t, out, "7.5000")
}

func TestSurfacePoints(t *testing.T) {
	s := sampleSurface()

	assert.Equal(t, Point{Price: 40, Volatility: 0.4, Value: 2.75}, s.Center())
	corners := s.Corners()
	require.Len(t, corners, 4)
	assert.Equal(t, Point{Price: 30, Volatility: 0.2, Value: 0.01}, corners[0])
	assert.Equal(t, Point{Price: 50, Volatility: 0.4, Value: 7.5}, corners[3])
	assert.True(t, (&Surface{}).Empty())
}
