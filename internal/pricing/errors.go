package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain matches every DomainError through errors.Is.
var ErrDomain = errors.New("pricing: invalid numeric domain")

// DomainError reports an input outside the domain the pricing formulas accept.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("pricing: %s=%g %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrDomain) match any DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainErr(field string, value float64, reason string) error {
	return &DomainError{Field: field, Value: value, Reason: reason}
}

// positive reports whether x is a finite number above zero. NaN fails.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// nonNegative reports whether x is a finite number at or above zero. NaN fails.
func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
