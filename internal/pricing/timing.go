package pricing

import (
	"fmt"
	"time"
)

// SecondsPerYear is the 365-day year used to turn durations into year-fractions.
const SecondsPerYear = 31_536_000.0

// YearFraction returns the time from observedAt to expiry in years. It is
// negative once expiry has passed.
func YearFraction(observedAt, expiry time.Time) float64 {
	return expiry.Sub(observedAt).Seconds() / SecondsPerYear
}

// DateRange returns steps+1 instants evenly spaced from start to end inclusive.
func DateRange(start, end time.Time, steps int) ([]time.Time, error) {
	if steps < 1 {
		return nil, fmt.Errorf("pricing: date range needs at least one step, got %d", steps)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("pricing: date range start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	span := end.Sub(start)
	out := make([]time.Time, steps+1)
	for i := 0; i < steps; i++ {
		out[i] = start.Add(time.Duration(float64(span) * float64(i) / float64(steps)))
	}
	out[steps] = end
	return out, nil
}
