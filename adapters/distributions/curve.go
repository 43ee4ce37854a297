package distributions

import (
	"math"

	"distkit/domain/dist"
	"distkit/ports"
)

// keyMarker is a labeled x position a family wants drawn on its curve
type keyMarker struct {
	label string
	x     float64
}

// Relative distinctness threshold for key-point markers
const markerEpsilonFactor = 0.001

// buildCurve batch-evaluates a family's density or cumulative function over
// the caller's x-grid, computes an (x, y) pair per requested percentile, and
// emits the family's key markers, dropping any marker that sits within
// 0.001*scale of an already-emitted one so plot markers never overlap.
func buildCurve(d ports.Distribution, kind string, params dist.Params, xValues []float64, percentiles []dist.PercentileRequest, markers []keyMarker) dist.Curve {
	eval := func(x float64) float64 {
		if kind == dist.CurveCDF {
			return finiteOrZero(d.CDF(x, params))
		}
		return finiteOrZero(d.PDF(x, params))
	}

	yValues := make([]float64, len(xValues))
	for i, x := range xValues {
		yValues[i] = eval(x)
	}

	points := make([]dist.PercentilePoint, 0, len(percentiles))
	for _, req := range percentiles {
		x := d.Quantile(req.Value/100, params)
		points = append(points, dist.PercentilePoint{
			Percentile: req,
			X:          finiteOrZero(x),
			Y:          eval(x),
		})
	}

	curve := dist.Curve{
		XValues:          xValues,
		PercentilePoints: points,
		KeyPoints:        distinctKeyPoints(markers, eval, markerScale(d, params)),
		Stats: dist.CurveStats{
			Mean:   finiteOrZero(d.Mean(params)),
			StdDev: finiteOrZero(d.StdDev(params)),
			Median: finiteOrZero(d.Quantile(0.5, params)),
		},
	}
	if kind == dist.CurveCDF {
		curve.CDFValues = yValues
	} else {
		curve.PDFValues = yValues
	}
	return curve
}

// markerScale picks the length scale for the distinctness filter: the standard
// deviation when positive, else the magnitude of the mean, else 1
func markerScale(d ports.Distribution, params dist.Params) float64 {
	if sd := d.StdDev(params); sd > 0 && !math.IsInf(sd, 0) {
		return sd
	}
	if m := math.Abs(d.Mean(params)); m > 0 && !math.IsInf(m, 0) {
		return m
	}
	return 1
}

// distinctKeyPoints evaluates markers left to right and keeps only those
// meaningfully distinct from the ones already kept
func distinctKeyPoints(markers []keyMarker, eval func(float64) float64, scale float64) []dist.KeyPoint {
	epsilon := markerEpsilonFactor * scale
	out := make([]dist.KeyPoint, 0, len(markers))
	for _, m := range markers {
		if math.IsNaN(m.x) || math.IsInf(m.x, 0) {
			continue
		}
		distinct := true
		for _, kept := range out {
			if math.Abs(m.x-kept.X) <= epsilon {
				distinct = false
				break
			}
		}
		if distinct {
			out = append(out, dist.KeyPoint{Label: m.label, X: m.x, Y: eval(m.x)})
		}
	}
	return out
}

// cvOr resolves the optional current value used to bias metadata defaults
func cvOr(currentValue *float64, def float64) float64 {
	if currentValue != nil && !math.IsNaN(*currentValue) && !math.IsInf(*currentValue, 0) {
		return *currentValue
	}
	return def
}

// numParam builds a numeric parameter descriptor
func numParam(name string, required bool, def float64, min, max *float64, step float64) dist.ParameterDescriptor {
	return dist.ParameterDescriptor{
		Name:      name,
		Required:  required,
		FieldType: "number",
		Default:   def,
		Min:       min,
		Max:       max,
		Step:      step,
	}
}
