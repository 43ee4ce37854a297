package validation

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"distkit/domain/dist"
	"distkit/ports"
)

// Checker performs schema-level validation of distribution specs: type known,
// parameters acceptable to the family, time-series points well-formed, plus
// advisory heuristics about whether the chosen family suits the data.
type Checker struct {
	registry ports.Registry
}

// NewChecker creates a checker backed by the given registry
func NewChecker(registry ports.Registry) *Checker {
	return &Checker{registry: registry}
}

// CheckSpec validates a whole spec. Hard failures (unknown type, bad
// parameters) flip IsValid; data-quality findings surface as warnings only.
func (c *Checker) CheckSpec(spec dist.Spec) dist.ValidationResult {
	spec = dist.Normalize(spec)

	d, ok := c.registry.Get(spec.Type)
	if !ok {
		result := dist.Invalid(fmt.Sprintf("unknown distribution type %q", spec.Type))
		result.Details = map[string]string{"type": spec.Type}
		return result
	}

	result := d.Validate(spec.Parameters)
	if spec.TimeSeriesMode {
		result = result.Merge(c.checkTimeSeries(spec))
	}
	return result
}

// checkTimeSeries produces the point-count warning and the family
// compatibility heuristics; it never flips IsValid
func (c *Checker) checkTimeSeries(spec dist.Spec) dist.ValidationResult {
	result := dist.Valid()
	points := spec.TimeSeries.Value

	minPoints := c.registry.MinRequiredPoints(spec.Type)
	if len(points) < minPoints {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("fitting a %s distribution needs at least %d points; %d provided", spec.Type, minPoints, len(points)))
	}
	if len(points) == 0 {
		return result
	}

	values := make([]float64, len(points))
	for i, pt := range points {
		values[i] = pt.Value
	}

	if c.registry.NonNegative(spec.Type) {
		if minV, err := stats.Min(values); err == nil && minV < 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("time series contains negative values but %s has non-negative support", spec.Type))
		}
	}

	mean, meanErr := stats.Mean(values)
	stdDev, sdErr := stats.StandardDeviation(values)
	if meanErr != nil || sdErr != nil {
		return result
	}

	if stdDev == 0 && spec.Type != dist.DefaultType && len(points) >= 2 {
		result.Warnings = append(result.Warnings,
			"time series shows no variation; the fixed distribution may be a better fit")
	}
	if spec.Type == "normal" && len(points) >= 4 && stdDev > 0 {
		if skew := sampleSkewness(values, mean, stdDev); math.Abs(skew) > 1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("time series is strongly skewed (%.2f); a lognormal or gamma distribution may fit better", skew))
		}
	}
	return result
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient of skewness
func sampleSkewness(values []float64, mean, stdDev float64) float64 {
	n := float64(len(values))
	sum := 0.0
	for _, v := range values {
		d := (v - mean) / stdDev
		sum += d * d * d
	}
	skew := sum / n
	return skew * math.Sqrt(n*(n-1)) / (n - 2)
}
