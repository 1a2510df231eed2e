package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const expiryDateLayout = "2006-01-02"

// contract holds the fields shared by calls and puts.
type contract struct {
	strike float64
	expiry time.Time
	cost   float64
}

func newContract(strike float64, expiry time.Time, cost float64) (contract, error) {
	c := contract{strike: strike, expiry: expiry, cost: cost}
	if err := c.validate(); err != nil {
		return contract{}, err
	}
	return c, nil
}

func (c contract) validate() error {
	if !positive(c.strike) {
		return domainErr("strike", c.strike, "must be a finite number greater than zero")
	}
	if c.expiry.IsZero() {
		return domainErr("expiry", 0, "must be a set instant")
	}
	if !finite(c.cost) {
		return domainErr("cost", c.cost, "must be finite")
	}
	return nil
}

// Contract is a European option that the tree and Monte Carlo pricers can value.
// It is implemented by Call and Put.
type Contract interface {
	Strike() float64
	Expiry() time.Time
	Cost() float64
	// Intrinsic is the exercise value against an underlying price.
	Intrinsic(underlyingPrice float64) float64

	terms() contract
}

// Call is a European call option contract.
//
// Cost is a continuous annualised dividend yield: it is subtracted from the
// drift and discounts the underlying by e^{-cost*T}.
type Call struct {
	contract
}

// NewCall validates and builds a Call.
func NewCall(strike float64, expiry time.Time, cost float64) (Call, error) {
	c, err := newContract(strike, expiry, cost)
	if err != nil {
		return Call{}, err
	}
	return Call{contract: c}, nil
}

// Put is a European put option contract with the same field semantics as Call.
type Put struct {
	contract
}

// NewPut validates and builds a Put.
func NewPut(strike float64, expiry time.Time, cost float64) (Put, error) {
	c, err := newContract(strike, expiry, cost)
	if err != nil {
		return Put{}, err
	}
	return Put{contract: c}, nil
}

// Intrinsic returns max(S-K, 0).
func (c Call) Intrinsic(underlyingPrice float64) float64 {
	return math.Max(underlyingPrice-c.strike, 0)
}

// Intrinsic returns max(K-S, 0).
func (p Put) Intrinsic(underlyingPrice float64) float64 {
	return math.Max(p.strike-underlyingPrice, 0)
}

func (c contract) terms() contract { return c }

// Strike returns the strike price.
func (c contract) Strike() float64 { return c.strike }

// Expiry returns the expiration instant.
func (c contract) Expiry() time.Time { return c.expiry }

// Cost returns the continuous dividend yield.
func (c contract) Cost() float64 { return c.cost }

// ParseExpiry converts a date (YYYY-MM-DD, taken as UTC midnight) or an RFC3339
// timestamp into an expiry instant.
func ParseExpiry(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("pricing: empty expiry")
	}
	if t, err := time.ParseInLocation(expiryDateLayout, value, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("pricing: parse expiry %q: %w", value, err)
	}
	return t, nil
}
