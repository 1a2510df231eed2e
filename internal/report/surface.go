package report

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"option-surface/internal/pricing"
)

// Surface is one valued shock grid together with the inputs that produced it.
type Surface struct {
	Kind         string
	Strike       float64
	Cost         float64
	Expiry       time.Time
	ObservedAt   time.Time
	RiskFreeRate float64
	Prices       []float64
	Volatilities []float64
	Values       pricing.Matrix
}

// Point is a single valued grid cell.
type Point struct {
	Price      float64
	Volatility float64
	Value      float64
}

// At returns the cell at price row i and volatility column j.
func (s *Surface) At(i, j int) Point {
	return Point{Price: s.Prices[i], Volatility: s.Volatilities[j], Value: s.Values[i][j]}
}

// Center returns the middle cell of the grid.
func (s *Surface) Center() Point {
	return s.At(len(s.Prices)/2, len(s.Volatilities)/2)
}

// Corners returns the four extreme cells, lowest price first.
func (s *Surface) Corners() []Point {
	lastP, lastV := len(s.Prices)-1, len(s.Volatilities)-1
	return []Point{s.At(0, 0), s.At(0, lastV), s.At(lastP, 0), s.At(lastP, lastV)}
}

// Empty reports whether the surface has no cells.
func (s *Surface) Empty() bool {
	return s == nil || len(s.Prices) == 0 || len(s.Volatilities) == 0
}

func formatFloat(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
