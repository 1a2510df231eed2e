package pricing

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// MonteCarloParams size a simulation. Equal params give equal results.
type MonteCarloParams struct {
	// Paths is the number of antithetic path pairs.
	Paths int
	// Steps splits each path into that many log-normal increments.
	Steps int
	Seed  uint64
}

// DefaultMonteCarloParams returns the simulation size used by the CLI.
func DefaultMonteCarloParams() MonteCarloParams {
	return MonteCarloParams{Paths: 100_000, Steps: 1, Seed: 1}
}

// PriceMonteCarlo values a European option as the discounted mean payoff over
// geometric Brownian motion paths under the risk-neutral drift r-q. Each normal
// draw drives a path and its mirror image.
func PriceMonteCarlo(option Contract, volatility, underlyingPrice, riskFreeRate float64, observedAt time.Time, params MonteCarloParams) (float64, error) {
	in, err := gatherInputs(option.terms(), volatility, underlyingPrice, riskFreeRate, observedAt)
	if err != nil {
		return 0, err
	}
	if params.Paths < 1 {
		return 0, domainErr("mc_paths", float64(params.Paths), "must be at least 1")
	}
	if params.Steps < 1 {
		return 0, domainErr("mc_steps", float64(params.Steps), "must be at least 1")
	}
	if in.years <= 0 {
		return option.Intrinsic(in.spot), nil
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(params.Seed, params.Seed^0x9e3779b97f4a7c15)}

	dt := in.years / float64(params.Steps)
	drift := (in.rate - in.yield - 0.5*in.vol*in.vol) * dt
	diffusion := in.vol * math.Sqrt(dt)

	var sum float64
	for i := 0; i < params.Paths; i++ {
		logUp, logDown := 0.0, 0.0
		for s := 0; s < params.Steps; s++ {
			z := normal.Rand()
			logUp += drift + diffusion*z
			logDown += drift - diffusion*z
		}
		sum += option.Intrinsic(in.spot*math.Exp(logUp)) + option.Intrinsic(in.spot*math.Exp(logDown))
	}

	mean := sum / float64(2*params.Paths)
	return math.Exp(-in.rate*in.years) * mean, nil
}
