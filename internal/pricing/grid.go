package pricing

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Matrix holds option values row-major: one row per price, one column per volatility.
type Matrix [][]float64

// Rows returns the number of price rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of volatility columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// ShockGrid is a regular grid of shocked underlying prices and volatilities.
type ShockGrid struct {
	prices       []float64
	volatilities []float64
	workers      int
}

// GridOption tunes grid valuation.
type GridOption func(*ShockGrid)

// WithWorkers bounds how many price rows are valued concurrently. Values below
// one fall back to GOMAXPROCS.
func WithWorkers(n int) GridOption {
	return func(g *ShockGrid) {
		g.workers = n
	}
}

// GenerateShockGrid shocks the price and volatility axes independently.
func GenerateShockGrid(basePrice float64, priceLimits ShockLimits, baseVolatility float64, volatilityLimits ShockLimits, opts ...GridOption) (*ShockGrid, error) {
	if !positive(basePrice) {
		return nil, domainErr("base_price", basePrice, "must be a finite number greater than zero")
	}
	if priceLimits.down >= 1 {
		return nil, domainErr("price_down_fraction", priceLimits.down, "must be below 1 to keep prices positive")
	}

	prices, err := priceLimits.Sequence(basePrice)
	if err != nil {
		return nil, err
	}
	vols, err := volatilityLimits.Sequence(baseVolatility)
	if err != nil {
		return nil, err
	}

	g := &ShockGrid{prices: prices, volatilities: vols}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Prices returns a copy of the shocked underlying prices in ascending order.
func (g *ShockGrid) Prices() []float64 {
	return append([]float64(nil), g.prices...)
}

// Volatilities returns a copy of the shocked volatilities in ascending order.
func (g *ShockGrid) Volatilities() []float64 {
	return append([]float64(nil), g.volatilities...)
}

// ValueBlackScholes values call at every (price, volatility) pair of the grid.
// Inputs are checked before any cell is computed so a failure never yields a
// partial matrix.
func (g *ShockGrid) ValueBlackScholes(call Call, riskFreeRate float64, observedAt time.Time) (Matrix, error) {
	return g.value(call.contract, riskFreeRate, observedAt, bsInputs.call)
}

// ValuePutBlackScholes is ValueBlackScholes for a put.
func (g *ShockGrid) ValuePutBlackScholes(put Put, riskFreeRate float64, observedAt time.Time) (Matrix, error) {
	return g.value(put.contract, riskFreeRate, observedAt, bsInputs.put)
}

func (g *ShockGrid) value(c contract, riskFreeRate float64, observedAt time.Time, payoff func(bsInputs) float64) (Matrix, error) {
	if len(g.prices) == 0 || len(g.volatilities) == 0 {
		return Matrix{}, nil
	}
	// Ascending axes: the first entries are the smallest values.
	if _, err := gatherInputs(c, g.volatilities[0], g.prices[0], riskFreeRate, observedAt); err != nil {
		return nil, err
	}

	out := make(Matrix, len(g.prices))
	var eg errgroup.Group
	eg.SetLimit(g.workerLimit())
	for i := range g.prices {
		eg.Go(func() error {
			row := make([]float64, len(g.volatilities))
			for j, vol := range g.volatilities {
				in, err := gatherInputs(c, vol, g.prices[i], riskFreeRate, observedAt)
				if err != nil {
					return err
				}
				row[j] = payoff(in)
			}
			out[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ShockGrid) workerLimit() int {
	if g.workers > 0 {
		return g.workers
	}
	return runtime.GOMAXPROCS(0)
}
