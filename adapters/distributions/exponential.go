package distributions

import (
	"math"

	"distkit/domain/dist"
)

// Exponential models memoryless waiting times from a single rate lambda;
// mean and standard deviation are both 1/lambda.
type Exponential struct{}

func (Exponential) Name() string { return "exponential" }

func (Exponential) Validate(p dist.Params) dist.ValidationResult {
	if !p.Has("lambda") {
		return dist.Invalid("lambda is required")
	}
	if p.Get("lambda", 0) <= 0 {
		return dist.Invalid("lambda must be positive")
	}
	return dist.Valid()
}

func (Exponential) rate(p dist.Params) float64 { return p.Get("lambda", 1) }

func (e Exponential) Mean(p dist.Params) float64 { return 1 / e.rate(p) }

func (e Exponential) StdDev(p dist.Params) float64 { return 1 / e.rate(p) }

func (e Exponential) PDF(x float64, p dist.Params) float64 {
	if x < 0 {
		return 0
	}
	lambda := e.rate(p)
	return lambda * math.Exp(-lambda*x)
}

func (e Exponential) CDF(x float64, p dist.Params) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-e.rate(p)*x)
}

func (e Exponential) Quantile(prob float64, p dist.Params) float64 {
	return -math.Log(1-prob) / e.rate(p)
}

func (e Exponential) GeneratePDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(e, dist.CurvePDF, p, xs, reqs, e.markers(p))
}

func (e Exponential) GenerateCDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(e, dist.CurveCDF, p, xs, reqs, e.markers(p))
}

func (e Exponential) markers(p dist.Params) []keyMarker {
	lambda := e.rate(p)
	return []keyMarker{
		{label: "Mean", x: 1 / lambda},
		{label: "Median", x: math.Ln2 / lambda},
		{label: "Mode", x: 0},
	}
}

func (Exponential) Metadata(currentValue *float64) dist.Metadata {
	// Default rate so the implied mean tracks the current value
	lambda := 0.1
	if cv := cvOr(currentValue, 0); cv > 0 {
		lambda = 1 / cv
	}
	return dist.Metadata{
		Name:               "Exponential",
		Description:        "Memoryless waiting-time distribution driven by a single event rate.",
		Applications:       []string{"Time between failures", "Grid outage intervals", "Claim arrival gaps"},
		Examples:           []string{"Turbine fault inter-arrival time averaging 10 days (lambda 0.1)"},
		DefaultCurve:       dist.CurvePDF,
		NonNegativeSupport: true,
		MinPointsRequired:  2,
		Parameters: []dist.ParameterDescriptor{
			numParam("lambda", true, lambda, fptr(0), nil, 0.01),
		},
	}
}
