package distributions

import (
	"math"

	"distkit/domain/dist"
)

// Poisson is the discrete event-count family. The continuous x-grid coming
// from the chart layer is mapped onto the lattice: mass is evaluated at
// round(x), the CDF at floor(x). The quantile runs through the shared
// incremental summation.
type Poisson struct{}

func (Poisson) Name() string { return "poisson" }

func (Poisson) Validate(p dist.Params) dist.ValidationResult {
	if !p.Has("lambda") {
		return dist.Invalid("lambda is required")
	}
	if p.Get("lambda", 0) <= 0 {
		return dist.Invalid("lambda must be positive")
	}
	return dist.Valid()
}

func (Poisson) rate(p dist.Params) float64 { return p.Get("lambda", 1) }

func (ps Poisson) Mean(p dist.Params) float64 { return ps.rate(p) }

func (ps Poisson) StdDev(p dist.Params) float64 { return math.Sqrt(ps.rate(p)) }

func (ps Poisson) PDF(x float64, p dist.Params) float64 {
	if x < 0 {
		return 0
	}
	k := math.Round(x)
	lambda := ps.rate(p)
	lg, _ := math.Lgamma(k + 1)
	return math.Exp(k*math.Log(lambda) - lambda - lg)
}

func (ps Poisson) CDF(x float64, p dist.Params) float64 {
	if x < 0 {
		return 0
	}
	k := int(math.Floor(x))
	lambda := ps.rate(p)
	prob := math.Exp(-lambda)
	cum := prob
	for i := 1; i <= k; i++ {
		prob *= lambda / float64(i)
		cum += prob
		// Past the bulk of the mass the terms underflow; stop so a huge
		// grid value does not iterate floor(x) times
		if i > int(lambda) && prob < 1e-16 {
			break
		}
	}
	if cum > 1 {
		return 1
	}
	return cum
}

func (ps Poisson) Quantile(prob float64, p dist.Params) float64 {
	return poissonQuantile(prob, ps.rate(p))
}

func (ps Poisson) GeneratePDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(ps, dist.CurvePDF, p, xs, reqs, ps.markers(p))
}

func (ps Poisson) GenerateCDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(ps, dist.CurveCDF, p, xs, reqs, ps.markers(p))
}

func (ps Poisson) markers(p dist.Params) []keyMarker {
	lambda := ps.rate(p)
	sd := math.Sqrt(lambda)
	return []keyMarker{
		{label: "Mean", x: lambda},
		{label: "Mode", x: math.Floor(lambda)},
		{label: "-1σ", x: lambda - sd},
		{label: "+1σ", x: lambda + sd},
	}
}

func (Poisson) Metadata(currentValue *float64) dist.Metadata {
	lambda := cvOr(currentValue, 5)
	if lambda <= 0 {
		lambda = 5
	}
	return dist.Metadata{
		Name:               "Poisson",
		Description:        "Discrete count of independent events in a fixed interval at a constant rate.",
		Applications:       []string{"Storm counts per season", "Grid faults per year", "Claims per period"},
		Examples:           []string{"Number of icing events per winter averaging 5"},
		DefaultCurve:       dist.CurvePDF,
		NonNegativeSupport: true,
		MinPointsRequired:  2,
		Parameters: []dist.ParameterDescriptor{
			numParam("lambda", true, lambda, fptr(0), nil, 0.1),
		},
	}
}
