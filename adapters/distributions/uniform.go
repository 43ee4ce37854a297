package distributions

import (
	"math"

	"distkit/domain/dist"
)

// Uniform assigns equal density to every value in [min, max], min < max strict
type Uniform struct{}

func (Uniform) Name() string { return "uniform" }

func (Uniform) Validate(p dist.Params) dist.ValidationResult {
	var msgs []string
	if !p.Has("min") {
		msgs = append(msgs, "min is required")
	}
	if !p.Has("max") {
		msgs = append(msgs, "max is required")
	}
	if len(msgs) == 0 && p.Get("min", 0) >= p.Get("max", 0) {
		msgs = append(msgs, "min must be strictly less than max")
	}
	if len(msgs) > 0 {
		return dist.Invalid(msgs...)
	}
	return dist.Valid()
}

func (Uniform) bounds(p dist.Params) (min, max float64) {
	return p.Get("min", 0), p.Get("max", 1)
}

func (u Uniform) Mean(p dist.Params) float64 {
	min, max := u.bounds(p)
	return (min + max) / 2
}

func (u Uniform) StdDev(p dist.Params) float64 {
	min, max := u.bounds(p)
	return (max - min) / math.Sqrt(12)
}

func (u Uniform) PDF(x float64, p dist.Params) float64 {
	min, max := u.bounds(p)
	if x < min || x > max || max <= min {
		return 0
	}
	return 1 / (max - min)
}

func (u Uniform) CDF(x float64, p dist.Params) float64 {
	min, max := u.bounds(p)
	switch {
	case max <= min:
		return 0
	case x < min:
		return 0
	case x > max:
		return 1
	default:
		return (x - min) / (max - min)
	}
}

func (u Uniform) Quantile(prob float64, p dist.Params) float64 {
	min, max := u.bounds(p)
	return min + prob*(max-min)
}

func (u Uniform) GeneratePDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(u, dist.CurvePDF, p, xs, reqs, u.markers(p))
}

func (u Uniform) GenerateCDF(p dist.Params, xs []float64, reqs []dist.PercentileRequest) dist.Curve {
	return buildCurve(u, dist.CurveCDF, p, xs, reqs, u.markers(p))
}

func (u Uniform) markers(p dist.Params) []keyMarker {
	mean := u.Mean(p)
	sd := u.StdDev(p)
	return []keyMarker{
		{label: "Mean", x: mean},
		{label: "Median", x: mean},
		{label: "-1σ", x: mean - sd},
		{label: "+1σ", x: mean + sd},
	}
}

func (Uniform) Metadata(currentValue *float64) dist.Metadata {
	value := cvOr(currentValue, 100)
	return dist.Metadata{
		Name:               "Uniform",
		Description:        "Every value between the bounds is equally likely; expresses pure interval uncertainty.",
		Applications:       []string{"Early-stage cost ranges", "Bid spreads", "Unknown-but-bounded inputs"},
		Examples:           []string{"Permitting duration known only to fall between 6 and 18 months"},
		DefaultCurve:       dist.CurvePDF,
		NonNegativeSupport: false,
		MinPointsRequired:  2,
		Parameters: []dist.ParameterDescriptor{
			numParam("min", true, value*0.9, nil, nil, 0.01),
			numParam("max", true, value*1.1, nil, nil, 0.01),
		},
	}
}
