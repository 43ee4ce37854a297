package distributions

import (
	"math"

	"distkit/domain/dist"
)

// Triangular is the three-point estimate family: min <= mode <= max with a
// piecewise-linear density peaking at the mode.
type Triangular struct{}

func (Triangular) Name() string { return "triangular" }

func (Triangular) Validate(p dist.Params) dist.ValidationResult {
	var msgs []string
	for _, name := range []string{"min", "mode", "max"} {
		if !p.Has(name) {
			msgs = append(msgs, name+" is required")
		}
	}
	if len(msgs) == 0 {
		min, mode, max := p.Get("min", 0), p.Get("mode", 0), p.Get("max", 0)
		if min >= max {
			msgs = append(msgs, "min must be strictly less than max")
		}
		if mode < min || mode > max {
			msgs = append(msgs, "mode must lie between min and max")
		}
	}
	if len(msgs) > 0 {
		return dist.Invalid(msgs...)
	}
	return dist.Valid()
}

func (Triangular) points(p dist.Params) (min, mode, max float64) {
	return p.Get("min", 0), p.Get("mode", 0), p.Get("max", 1)
}

func (t Triangular) Mean(p dist.Params) float64 {
	min, mode, max := t.points(p)
	return (min + mode + max) / 3
}

func (t Triangular) StdDev(p dist.Params) float64 {
	min, mode, max := t.points(p)
	variance := (min*min + mode*mode + max*max - min*mode - min*max - mode*max) / 18
	return math.Sqrt(variance)
}

func (t Triangular) PDF(x float64, p dist.Params) float64 {
	min, mode, max := t.points(p)
	span := max - min
	switch {
	case span <= 0 || x < min || x > max:
		return 0
	case x < mode:
		return 2 * (x - min) / (span * (mode - min))
	case x == mode:
		return 2 / span
	default:
		return 2 * (max - x) / (span * (max - mode))
	}
}

func (t Triangular) CDF(x float64, p dist.Params) float64 {
	min, mode, max := t.points(p)
	span := max - min
	switch {
	case span <= 0 || x <= min:
		return 0
	case x >= max:
		return 1
	case x <= mode:
		return (x - min) * (x - min) / (span * (mode - min))
	default:
		return 1 - (max-x)*(max-x)/(span*(max-mode))
	}
}

// Quantile uses the branch determined by the CDF value at the mode,
// F = (mode-min)/(max-min)
func (t Triangular) Quantile(prob float64, p dist.Params) float64 {
	min, mode, max := t.points(p)
	span := max - min
	if span <= 0 {
		return min
	}
	modeCDF := (mode - min) / span
	if prob <= modeCDF {
		return min + math.Sqrt(prob*span*(mode-min))
	}
	return max - math.Sqrt((1-prob)*span*(max-mode))
}

func (t Triangular) GeneratePDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(t, dist.CurvePDF, p, xs, reqs, t.markers(p))
}

func (t Triangular) GenerateCDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(t, dist.CurveCDF, p, xs, reqs, t.markers(p))
}

func (t Triangular) markers(p dist.Params) []keyMarker {
	_, mode, _ := t.points(p)
	return []keyMarker{
		{label: "Mean", x: t.Mean(p)},
		{label: "Median", x: t.Quantile(0.5, p)},
		{label: "Mode", x: mode},
	}
}

func (Triangular) Metadata(currentValue *float64) dist.Metadata {
	value := cvOr(currentValue, 100)
	return dist.Metadata{
		Name:               "Triangular",
		Description:        "Three-point estimate built from a worst case, a most likely value and a best case.",
		Applications:       []string{"Expert elicitation", "Project cost and schedule estimates"},
		Examples:           []string{"Construction cost estimated at 90/100/130 (low/likely/high)"},
		DefaultCurve:       dist.CurvePDF,
		NonNegativeSupport: false,
		MinPointsRequired:  3,
		Parameters: []dist.ParameterDescriptor{
			numParam("min", true, value*0.9, nil, nil, 0.01),
			numParam("mode", true, value, nil, nil, 0.01),
			numParam("max", true, value*1.1, nil, nil, 0.01),
		},
	}
}
