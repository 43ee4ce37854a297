package ports

import (
	"distkit/domain/dist"
)

// Distribution is the uniform contract every distribution family satisfies.
// Implementations are stateless value types: every method is a pure function
// of its arguments, safe for arbitrarily many concurrent callers.
//
// Validate is the gate: all other methods assume Validate has already returned
// IsValid for the given parameters and keep their hot paths branch-free.
// Numerical edge cases (log of zero, density outside support) are clamped to
// zero rather than propagated as NaN or Inf.
type Distribution interface {
	// Name returns the lower-case registry key of the family
	Name() string

	// Validate checks parameters before any computation; it never panics
	Validate(params dist.Params) dist.ValidationResult

	// Mean and StdDev return the distribution moments
	Mean(params dist.Params) float64
	StdDev(params dist.Params) float64

	// PDF returns the density (or probability mass) at x; zero outside support
	PDF(x float64, params dist.Params) float64

	// CDF returns P(X <= x); monotone non-decreasing with range [0, 1]
	CDF(x float64, params dist.Params) float64

	// Quantile returns the inverse CDF at p in (0, 1)
	Quantile(p float64, params dist.Params) float64

	// GeneratePDF batch-evaluates the density over the caller's x-grid and
	// computes percentile points and key plot markers
	GeneratePDF(params dist.Params, xValues []float64, percentiles []dist.PercentileRequest) dist.Curve

	// GenerateCDF is the cumulative analogue of GeneratePDF
	GenerateCDF(params dist.Params, xValues []float64, percentiles []dist.PercentileRequest) dist.Curve

	// Metadata describes the family. When currentValue is non-nil the
	// parameter defaults are biased so the implied mean tracks it.
	Metadata(currentValue *float64) dist.Metadata
}

// Registry resolves distribution families by type name. Lookups are
// case-insensitive and never fail hard: unknown types yield ok=false or the
// documented safe fallback so the UI always has something displayable.
type Registry interface {
	Get(distType string) (Distribution, bool)
	Types() []string
	Metadata(distType string, currentValue *float64) (dist.Metadata, bool)

	// Delegations with safe fallbacks for unknown types
	Mean(distType string, params dist.Params) float64
	StdDev(distType string, params dist.Params) float64
	Percentile(distType string, params dist.Params, percentile float64) float64
	MinRequiredPoints(distType string) int
	NonNegative(distType string) bool
	DefaultCurve(distType string) string
}
