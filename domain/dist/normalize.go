package dist

import (
	"fmt"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
)

// DefaultType is the family assumed when a spec arrives without one
const DefaultType = "fixed"

// Normalize repairs an externally-supplied spec so that downstream reads are
// safe: Type defaults to "fixed", Parameters always carries a finite "value",
// and the time-series value is always a non-nil slice of well-formed points.
// Idempotent; must be called before any read of an untrusted spec. The input
// is never mutated.
func Normalize(s Spec) Spec {
	out := s
	out.Parameters = s.Parameters.Clone()

	if strings.TrimSpace(out.Type) == "" {
		out.Type = DefaultType
	}
	if !out.Parameters.Has("value") {
		out.Parameters["value"] = 0
	}
	out.TimeSeries.Value = wellFormedPoints(s.TimeSeries.Value)
	return out
}

// wellFormedPoints filters out points with non-finite values and guarantees a
// non-nil result
func wellFormedPoints(points []TimeSeriesPoint) []TimeSeriesPoint {
	out := make([]TimeSeriesPoint, 0, len(points))
	for _, pt := range points {
		if math.IsNaN(pt.Value) || math.IsInf(pt.Value, 0) {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// TransitionResult reports the outcome of a mode transition. Repairs are
// best-effort and advisory, never fatal.
type TransitionResult struct {
	IsValid      bool   `json:"is_valid"`
	Message      string `json:"message,omitempty"`
	Distribution Spec   `json:"distribution"`
}

// ValidateModeTransition migrates a spec between its single-value and
// time-series representations. It must run before any fitting or visualization
// in the new mode so NaN never propagates into plotting code.
//
// Single -> TimeSeries: a non-numeric value is replaced with defaultValue, and
// an empty time series is seeded with one point {year: 0, value}.
// TimeSeries -> Single: a non-numeric value is recovered from the most recent
// (largest year) time-series point, else defaultValue.
// When targetMode already equals the current mode only the flag is written.
func ValidateModeTransition(s Spec, targetMode bool, defaultValue float64) TransitionResult {
	out := s
	out.Parameters = s.Parameters.Clone()
	out.TimeSeries.Value = wellFormedPoints(s.TimeSeries.Value)

	if s.TimeSeriesMode == targetMode {
		out.TimeSeriesMode = targetMode
		return TransitionResult{IsValid: true, Distribution: out}
	}

	var message string
	if targetMode {
		// Single -> TimeSeries
		if !out.Parameters.Has("value") {
			out.Parameters["value"] = defaultValue
			message = fmt.Sprintf("value was not numeric; reset to default %g", defaultValue)
		}
		if len(out.TimeSeries.Value) == 0 {
			out.TimeSeries.Value = []TimeSeriesPoint{{Year: 0, Value: out.Parameters.Get("value", defaultValue)}}
			if message == "" {
				message = "time series was empty; seeded with current value"
			}
		}
	} else {
		// TimeSeries -> Single
		if !out.Parameters.Has("value") {
			if pt, ok := latestPoint(out.TimeSeries.Value); ok {
				out.Parameters["value"] = pt.Value
				message = fmt.Sprintf("value recovered from most recent time-series point (year %d)", pt.Year)
			} else {
				out.Parameters["value"] = defaultValue
				message = fmt.Sprintf("no usable time-series data; value reset to default %g", defaultValue)
			}
		}
	}

	out.TimeSeriesMode = targetMode
	return TransitionResult{IsValid: true, Message: message, Distribution: out}
}

// AppropriateValue is the read-only counterpart of the transition recovery
// rule: most recent time-series point, else average of valid points, else the
// single value, else defaultValue. Usable from both modes.
func AppropriateValue(s Spec, defaultValue float64) float64 {
	if s.TimeSeriesMode {
		if pt, ok := latestPoint(s.TimeSeries.Value); ok && !math.IsNaN(pt.Value) && !math.IsInf(pt.Value, 0) {
			return pt.Value
		}
		if avg, ok := averageValue(wellFormedPoints(s.TimeSeries.Value)); ok {
			return avg
		}
	}
	if s.Parameters.Has("value") {
		return s.Parameters.Get("value", defaultValue)
	}
	return defaultValue
}

// latestPoint returns the point with the largest year
func latestPoint(points []TimeSeriesPoint) (TimeSeriesPoint, bool) {
	if len(points) == 0 {
		return TimeSeriesPoint{}, false
	}
	latest := points[0]
	for _, pt := range points[1:] {
		if pt.Year > latest.Year {
			latest = pt
		}
	}
	return latest, true
}

// averageValue returns the mean of the point values
func averageValue(points []TimeSeriesPoint) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	values := make([]float64, len(points))
	for i, pt := range points {
		values[i] = pt.Value
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, false
	}
	return mean, true
}
