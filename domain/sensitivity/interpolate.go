package sensitivity

import (
	"fmt"
	"math"

	"distkit/domain/core"
)

// MethodLinear is the only interpolation method currently supported
const MethodLinear = "linear"

// InterpolateCorrelation estimates the correlation between two metrics at a
// percentile that was not precomputed, by linear interpolation between the
// nearest computed percentiles below and above the target. Returns ok=false
// when the target is not bounded by computed percentiles or the pair has no
// correlation data.
func InterpolateCorrelation(cube Cube, targetPercentile float64, metricA, metricB, method string) (float64, bool) {
	if method != "" && method != MethodLinear {
		return 0, false
	}
	return interpolate(cube, targetPercentile, func(s Slice) (float64, bool) {
		return s.Correlation(metricA, metricB)
	})
}

// interpolate runs the bounding-percentile search over whatever per-slice
// value the extractor yields
func interpolate(cube Cube, target float64, value func(Slice) (float64, bool)) (float64, bool) {
	var (
		lower, upper       Slice
		lowerOK, upperOK   bool
		lowerVal, upperVal float64
	)
	for _, s := range cube.Slices {
		v, ok := value(s)
		if !ok {
			continue
		}
		if s.Percentile == target {
			return v, true
		}
		if s.Percentile < target && (!lowerOK || s.Percentile > lower.Percentile) {
			lower, lowerVal, lowerOK = s, v, true
		}
		if s.Percentile > target && (!upperOK || s.Percentile < upper.Percentile) {
			upper, upperVal, upperOK = s, v, true
		}
	}
	if !lowerOK || !upperOK {
		return 0, false
	}
	span := upper.Percentile - lower.Percentile
	if span == 0 {
		return lowerVal, true
	}
	frac := (target - lower.Percentile) / span
	return lowerVal + (upperVal-lowerVal)*frac, true
}

// InterpolateMetricImpact propagates a shift of the target metric onto the
// impact metrics through the interpolated correlations at the baseline
// percentile: after = before + correlation * pctChange(target) * before.
// When impactMetrics is empty, every metric with baseline data except the
// target is included. Metrics without correlation data are skipped.
func InterpolateMetricImpact(cube Cube, targetMetric string, targetValue, baselinePercentile float64, impactMetrics []string) (map[string]Impact, error) {
	baselineTarget, ok := interpolate(cube, baselinePercentile, func(s Slice) (float64, bool) {
		v, ok := s.Metrics[targetMetric]
		return v, ok
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s at percentile %g", core.ErrMetricNotFound, targetMetric, baselinePercentile)
	}
	if baselineTarget == 0 {
		return nil, fmt.Errorf("%w: %s", core.ErrZeroBaseline, targetMetric)
	}
	targetChange := (targetValue - baselineTarget) / baselineTarget

	metrics := impactMetrics
	if len(metrics) == 0 {
		metrics = metricsExcept(cube, targetMetric)
	}

	out := make(map[string]Impact, len(metrics))
	for _, metric := range metrics {
		if metric == targetMetric {
			continue
		}
		before, ok := interpolate(cube, baselinePercentile, func(s Slice) (float64, bool) {
			v, ok := s.Metrics[metric]
			return v, ok
		})
		if !ok {
			continue
		}
		corr, ok := InterpolateCorrelation(cube, baselinePercentile, targetMetric, metric, MethodLinear)
		if !ok {
			continue
		}
		after := before + corr*targetChange*before
		pct := 0.0
		if before != 0 && !math.IsInf(after, 0) {
			pct = (after - before) / before * 100
		}
		out[metric] = Impact{Before: before, After: after, PctChange: pct}
	}
	return out, nil
}

// metricsExcept collects every metric name appearing in the cube except the
// excluded one
func metricsExcept(cube Cube, exclude string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range cube.Slices {
		for name := range s.Metrics {
			if name == exclude || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
