package distributions

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"distkit/domain/dist"
)

// Normal is the Gaussian family. The stdDev parameter is a percentage of the
// mean, converted internally as sigma = |value| * stdDev / 100; this keeps the
// spread proportional when the scenario value is rescaled.
type Normal struct{}

func (Normal) Name() string { return "normal" }

func (Normal) Validate(p dist.Params) dist.ValidationResult {
	var msgs []string
	if !p.Has("value") {
		msgs = append(msgs, "value (mean) is required")
	}
	if !p.Has("stdDev") {
		msgs = append(msgs, "stdDev is required")
	} else if p.Get("stdDev", 0) <= 0 {
		msgs = append(msgs, "stdDev must be a positive percentage of the mean")
	}
	if len(msgs) > 0 {
		return dist.Invalid(msgs...)
	}
	result := dist.Valid()
	if p.Get("value", 0) == 0 {
		result.Warnings = append(result.Warnings, "a mean of zero yields zero absolute spread; consider the fixed distribution")
	}
	return result
}

func (Normal) sigma(p dist.Params) float64 {
	return math.Abs(p.Get("value", 0)) * p.Get("stdDev", 0) / 100
}

func (n Normal) dist(p dist.Params) distuv.Normal {
	return distuv.Normal{Mu: p.Get("value", 0), Sigma: n.sigma(p)}
}

func (Normal) Mean(p dist.Params) float64 { return p.Get("value", 0) }

func (n Normal) StdDev(p dist.Params) float64 { return n.sigma(p) }

func (n Normal) PDF(x float64, p dist.Params) float64 {
	if n.sigma(p) <= 0 {
		return 0
	}
	return n.dist(p).Prob(x)
}

func (n Normal) CDF(x float64, p dist.Params) float64 {
	if n.sigma(p) <= 0 {
		// Degenerate spread collapses to a step at the mean
		if x >= p.Get("value", 0) {
			return 1
		}
		return 0
	}
	return n.dist(p).CDF(x)
}

func (n Normal) Quantile(prob float64, p dist.Params) float64 {
	if n.sigma(p) <= 0 {
		return p.Get("value", 0)
	}
	return n.dist(p).Quantile(prob)
}

func (n Normal) GeneratePDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(n, dist.CurvePDF, p, xs, reqs, n.markers(p))
}

func (n Normal) GenerateCDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(n, dist.CurveCDF, p, xs, reqs, n.markers(p))
}

// markers: mean, median and mode coincide, so the distinctness filter leaves
// a single central marker plus the one-sigma band edges
func (n Normal) markers(p dist.Params) []keyMarker {
	mean := p.Get("value", 0)
	sigma := n.sigma(p)
	return []keyMarker{
		{label: "Mean", x: mean},
		{label: "Median", x: mean},
		{label: "Mode", x: mean},
		{label: "-1σ", x: mean - sigma},
		{label: "+1σ", x: mean + sigma},
	}
}

func (Normal) Metadata(currentValue *float64) dist.Metadata {
	value := cvOr(currentValue, 100)
	return dist.Metadata{
		Name:               "Normal",
		Description:        "Symmetric bell curve around a central estimate; spread given as a percentage of the mean.",
		Applications:       []string{"Cost escalation", "Measurement error", "Aggregate production uncertainty"},
		Examples:           []string{"Annual O&M cost of 200 k$ with 10% standard deviation"},
		DefaultCurve:       dist.CurvePDF,
		NonNegativeSupport: false,
		MinPointsRequired:  3,
		Parameters: []dist.ParameterDescriptor{
			numParam("value", true, value, nil, nil, 0.01),
			numParam("stdDev", true, 10, fptr(0), fptr(100), 0.1),
		},
	}
}
