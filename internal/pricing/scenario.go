package pricing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Bump moves one scalar market input. An absolute bump adds Size to the base;
// a relative bump adds base*Size.
type Bump struct {
	Size     float64
	Relative bool
}

// Apply returns the bumped value.
func (b Bump) Apply(base float64) float64 {
	if b.Relative {
		return base + base*b.Size
	}
	return base + b.Size
}

// ParseBump reads "+2.5" or "-0.05" as absolute bumps and "+10%" or "-25bp" as
// relative ones. An empty string is the zero bump.
func ParseBump(value string) (Bump, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Bump{}, nil
	}

	scale, relative := 1.0, false
	switch {
	case strings.HasSuffix(value, "%"):
		value, scale, relative = strings.TrimSuffix(value, "%"), 0.01, true
	case strings.HasSuffix(strings.ToLower(value), "bp"):
		value, scale, relative = value[:len(value)-2], 0.0001, true
	}

	size, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return Bump{}, fmt.Errorf("pricing: parse bump %q: %w", value, err)
	}
	if !finite(size) {
		return Bump{}, domainErr("bump", size, "must be finite")
	}
	return Bump{Size: size * scale, Relative: relative}, nil
}

// MarketPoint is one set of market inputs for a single valuation.
type MarketPoint struct {
	UnderlyingPrice float64
	Volatility      float64
	RiskFreeRate    float64
	ObservedAt      time.Time
}

// Scenario shifts a MarketPoint. Elapsed moves the observation instant forward,
// bringing the option closer to expiry. Shocked inputs are validated by the
// pricer, not here.
type Scenario struct {
	Price      Bump
	Volatility Bump
	Rate       Bump
	Elapsed    time.Duration
}

// Apply returns the shocked market point.
func (s Scenario) Apply(m MarketPoint) MarketPoint {
	return MarketPoint{
		UnderlyingPrice: s.Price.Apply(m.UnderlyingPrice),
		Volatility:      s.Volatility.Apply(m.Volatility),
		RiskFreeRate:    s.Rate.Apply(m.RiskFreeRate),
		ObservedAt:      m.ObservedAt.Add(s.Elapsed),
	}
}

// IsZero reports whether the scenario leaves every input unchanged.
func (s Scenario) IsZero() bool {
	return s == Scenario{}
}
