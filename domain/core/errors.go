package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Lookup errors
	ErrNotFound            = errors.New("resource not found")
	ErrUnknownDistribution = fmt.Errorf("%w: distribution type", ErrNotFound)
	ErrMetricNotFound      = fmt.Errorf("%w: metric", ErrNotFound)

	// Interpolation errors
	ErrZeroBaseline = errors.New("baseline metric value is zero")
)

// Error constructors with context
func NewUnknownDistributionError(distType string) error {
	return fmt.Errorf("%w: %q", ErrUnknownDistribution, distType)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
