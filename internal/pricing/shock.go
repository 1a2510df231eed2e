package pricing

// ShockLimits describes how far a base value is perturbed in each direction and
// how many evenly spaced points the perturbed range holds, endpoints included.
type ShockLimits struct {
	down  float64
	up    float64
	steps int
}

// NewShockLimits validates and builds ShockLimits. A down of 0.3 reaches 30%
// below the base, an up of 0.3 reaches 30% above it.
func NewShockLimits(down, up float64, steps int) (ShockLimits, error) {
	if !nonNegative(down) {
		return ShockLimits{}, domainErr("down_fraction", down, "must be a finite number at or above zero")
	}
	if !nonNegative(up) {
		return ShockLimits{}, domainErr("up_fraction", up, "must be a finite number at or above zero")
	}
	if steps < 2 {
		return ShockLimits{}, domainErr("steps", float64(steps), "must be at least 2")
	}
	return ShockLimits{down: down, up: up, steps: steps}, nil
}

// Down returns the downward fraction.
func (l ShockLimits) Down() float64 { return l.down }

// Up returns the upward fraction.
func (l ShockLimits) Up() float64 { return l.up }

// Steps returns the number of generated points.
func (l ShockLimits) Steps() int { return l.steps }

// Sequence returns Steps values linearly spaced from base*(1-Down) to
// base*(1+Up). The last value is pinned to the upper bound so accumulated
// rounding never moves the endpoint.
func (l ShockLimits) Sequence(base float64) ([]float64, error) {
	if l.steps < 2 {
		return nil, domainErr("steps", float64(l.steps), "must be at least 2")
	}
	if !nonNegative(base) {
		return nil, domainErr("base", base, "must be a finite number at or above zero")
	}

	lo := base * (1 - l.down)
	hi := base * (1 + l.up)
	step := base * (l.up + l.down) / float64(l.steps-1)

	out := make([]float64, l.steps)
	for i := 0; i < l.steps-1; i++ {
		out[i] = lo + float64(i)*step
	}
	out[l.steps-1] = hi
	return out, nil
}
