package pricing

import (
	"math"
	"time"
)

// DefaultTreeSteps is the layer count used when callers have no preference.
const DefaultTreeSteps = 500

// PriceBinomialTree values a European option on a recombining Cox-Ross-Rubinstein
// tree with steps layers between observedAt and expiry. Layer instants come
// from DateRange and every backward step discounts over its own interval.
// Inputs are validated exactly as in PriceBlackScholes; an expired option is
// worth its intrinsic value.
func PriceBinomialTree(option Contract, volatility, underlyingPrice, riskFreeRate float64, observedAt time.Time, steps int) (float64, error) {
	in, err := gatherInputs(option.terms(), volatility, underlyingPrice, riskFreeRate, observedAt)
	if err != nil {
		return 0, err
	}
	if steps < 1 {
		return 0, domainErr("tree_steps", float64(steps), "must be at least 1")
	}
	if in.years <= 0 {
		return option.Intrinsic(in.spot), nil
	}

	layers, err := DateRange(observedAt, option.Expiry(), steps)
	if err != nil {
		return 0, err
	}

	up := math.Exp(in.vol * math.Sqrt(in.years/float64(steps)))
	down := 1 / up

	// values[k] is the node reached with k down moves.
	values := make([]float64, steps+1)
	for k := range values {
		values[k] = option.Intrinsic(in.spot * math.Pow(up, float64(steps-2*k)))
	}

	for layer := steps - 1; layer >= 0; layer-- {
		interval := YearFraction(layers[layer], layers[layer+1])
		p := (math.Exp((in.rate-in.yield)*interval) - down) / (up - down)
		if p < 0 || p > 1 {
			return 0, domainErr("tree_steps", float64(steps), "too coarse: risk-neutral probability leaves [0, 1]")
		}
		discount := math.Exp(-in.rate * interval)
		for k := 0; k <= layer; k++ {
			values[k] = discount * (p*values[k] + (1-p)*values[k+1])
		}
	}
	return values[0], nil
}
