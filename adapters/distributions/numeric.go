package distributions

import "math"

const (
	bisectIterations   = 20
	bisectTolerance    = 1e-4
	poissonQuantileCap = 100
)

// bisectQuantile inverts a CDF without a closed form. The bracket starts at
// [0, 10*mean]; the upper bound grows tenfold until it covers p, then 20
// bisection steps narrow it with tolerance 1e-4 on |CDF(mid)-p|.
// Only valid for non-negative-support families.
func bisectQuantile(cdf func(float64) float64, p, mean float64) float64 {
	lower := 0.0
	upper := 10 * mean
	if upper <= 0 {
		upper = 10
	}
	for i := 0; i < 10 && cdf(upper) < p; i++ {
		upper *= 10
	}

	mid := (lower + upper) / 2
	for i := 0; i < bisectIterations; i++ {
		mid = (lower + upper) / 2
		c := cdf(mid)
		if math.Abs(c-p) < bisectTolerance {
			return mid
		}
		if c < p {
			lower = mid
		} else {
			upper = mid
		}
	}
	return mid
}

// poissonQuantile inverts the Poisson CDF by incremental summation of the
// probability mass, starting from P(X=0)=e^{-lambda} and using the recurrence
// P(X=k) = P(X=k-1)*lambda/k, capped at k=100.
func poissonQuantile(p, lambda float64) float64 {
	prob := math.Exp(-lambda)
	cum := prob
	k := 0
	for cum < p && k < poissonQuantileCap {
		k++
		prob *= lambda / float64(k)
		cum += prob
	}
	return float64(k)
}

// finiteOrZero clamps NaN/Inf to zero so plotting code never sees them
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// fptr is a shorthand for descriptor bounds
func fptr(v float64) *float64 {
	return &v
}
