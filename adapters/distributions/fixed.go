package distributions

import (
	"math"

	"distkit/domain/dist"
)

// Fixed is the deterministic family: a single value with an optional annual
// drift compounding it forward, FV = value*(1+drift/100)^years. The density
// is rendered as a numerically narrow spike so charts never divide by zero;
// the CDF is an exact Heaviside step.
type Fixed struct{}

func (Fixed) Name() string { return "fixed" }

func (Fixed) Validate(p dist.Params) dist.ValidationResult {
	if !p.Has("value") {
		return dist.Invalid("value is required")
	}
	result := dist.Valid()
	if p.Has("drift") && p.Get("years", 0) < 0 {
		result.Warnings = append(result.Warnings, "years is negative; drift discounts the value backwards")
	}
	return result
}

// effectiveValue compounds the configured value forward by the annual drift
func (Fixed) effectiveValue(p dist.Params) float64 {
	value := p.Get("value", 0)
	drift := p.Get("drift", 0)
	years := p.Get("years", 0)
	if drift == 0 || years == 0 {
		return value
	}
	return value * math.Pow(1+drift/100, years)
}

func (f Fixed) Mean(p dist.Params) float64 { return f.effectiveValue(p) }

func (Fixed) StdDev(dist.Params) float64 { return 0 }

// spikeHalfWidth is the Dirac-approximation half width, proportional to the
// value magnitude with a floor so a zero value still renders
func (f Fixed) spikeHalfWidth(p dist.Params) float64 {
	return math.Max(math.Abs(f.effectiveValue(p))*1e-4, 1e-4)
}

func (f Fixed) PDF(x float64, p dist.Params) float64 {
	v := f.effectiveValue(p)
	w := f.spikeHalfWidth(p)
	if x < v-w || x > v+w {
		return 0
	}
	return 1 / (2 * w)
}

func (f Fixed) CDF(x float64, p dist.Params) float64 {
	if x >= f.effectiveValue(p) {
		return 1
	}
	return 0
}

func (f Fixed) Quantile(_ float64, p dist.Params) float64 {
	return f.effectiveValue(p)
}

func (f Fixed) GeneratePDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(f, dist.CurvePDF, p, xs, reqs, f.markers(p))
}

func (f Fixed) GenerateCDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(f, dist.CurveCDF, p, xs, reqs, f.markers(p))
}

func (f Fixed) markers(p dist.Params) []keyMarker {
	return []keyMarker{{label: "Value", x: f.effectiveValue(p)}}
}

func (Fixed) Metadata(currentValue *float64) dist.Metadata {
	value := cvOr(currentValue, 100)
	return dist.Metadata{
		Name:               "Fixed",
		Description:        "Deterministic value with an optional annual drift compounding it forward.",
		Applications:       []string{"Contracted prices", "Fixed fees and tariffs", "Known physical constants"},
		Examples:           []string{"A power purchase price locked at 42 $/MWh escalating 2% per year"},
		DefaultCurve:       dist.CurveCDF,
		NonNegativeSupport: false,
		MinPointsRequired:  1,
		Parameters: []dist.ParameterDescriptor{
			numParam("value", true, value, nil, nil, 0.01),
			numParam("drift", false, 0, fptr(-100), fptr(100), 0.1),
			numParam("years", false, 0, fptr(0), nil, 1),
		},
	}
}
