package pricing

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// bsInputs is one fully resolved Black-Scholes evaluation point.
type bsInputs struct {
	spot   float64
	strike float64
	vol    float64
	rate   float64
	yield  float64
	years  float64
}

func gatherInputs(c contract, volatility, underlyingPrice, riskFreeRate float64, observedAt time.Time) (bsInputs, error) {
	if !positive(volatility) {
		return bsInputs{}, domainErr("volatility", volatility, "must be a finite number greater than zero")
	}
	if !positive(underlyingPrice) {
		return bsInputs{}, domainErr("underlying_price", underlyingPrice, "must be a finite number greater than zero")
	}
	if !finite(riskFreeRate) {
		return bsInputs{}, domainErr("risk_free_rate", riskFreeRate, "must be finite")
	}
	if observedAt.IsZero() {
		return bsInputs{}, domainErr("observed_at", 0, "must be a set instant")
	}
	// Zero-value Call and Put literals bypass the constructors.
	if err := c.validate(); err != nil {
		return bsInputs{}, err
	}
	return bsInputs{
		spot:   underlyingPrice,
		strike: c.strike,
		vol:    volatility,
		rate:   riskFreeRate,
		yield:  c.cost,
		years:  YearFraction(observedAt, c.expiry),
	}, nil
}

func (in bsInputs) d1d2() (float64, float64) {
	volT := in.vol * math.Sqrt(in.years)
	d1 := (math.Log(in.spot/in.strike) + (in.rate-in.yield+0.5*in.vol*in.vol)*in.years) / volT
	return d1, d1 - volT
}

func (in bsInputs) call() float64 {
	if in.years <= 0 {
		return math.Max(in.spot-in.strike, 0)
	}
	d1, d2 := in.d1d2()
	return in.spot*math.Exp(-in.yield*in.years)*distuv.UnitNormal.CDF(d1) -
		in.strike*math.Exp(-in.rate*in.years)*distuv.UnitNormal.CDF(d2)
}

func (in bsInputs) put() float64 {
	if in.years <= 0 {
		return math.Max(in.strike-in.spot, 0)
	}
	d1, d2 := in.d1d2()
	return in.strike*math.Exp(-in.rate*in.years)*distuv.UnitNormal.CDF(-d2) -
		in.spot*math.Exp(-in.yield*in.years)*distuv.UnitNormal.CDF(-d1)
}

// PriceBlackScholes values a European call at observedAt. Once the call has
// reached expiry the result is its intrinsic value max(S-K, 0). Volatility must
// be strictly positive even for expired calls.
func PriceBlackScholes(call Call, volatility, underlyingPrice, riskFreeRate float64, observedAt time.Time) (float64, error) {
	in, err := gatherInputs(call.contract, volatility, underlyingPrice, riskFreeRate, observedAt)
	if err != nil {
		return 0, err
	}
	return in.call(), nil
}

// PricePutBlackScholes values a European put at observedAt, falling back to
// max(K-S, 0) at or after expiry.
func PricePutBlackScholes(put Put, volatility, underlyingPrice, riskFreeRate float64, observedAt time.Time) (float64, error) {
	in, err := gatherInputs(put.contract, volatility, underlyingPrice, riskFreeRate, observedAt)
	if err != nil {
		return 0, err
	}
	return in.put(), nil
}
