package dist

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Spec is the unit of distribution configuration. It is owned by the external
// scenario store; the engine only reads it and returns derived view objects.
type Spec struct {
	Type           string           `json:"type"`
	Parameters     Params           `json:"parameters"`
	TimeSeriesMode bool             `json:"time_series_mode"`
	TimeSeries     TimeSeriesParams `json:"time_series_parameters"`
	Metadata       SpecMetadata     `json:"metadata,omitempty"`
}

// TimeSeriesParams holds the time-series representation of a distribution.
// INVARIANT: after Normalize, Value is always a non-nil slice of well-formed points.
type TimeSeriesParams struct {
	Value []TimeSeriesPoint `json:"value"`
}

// TimeSeriesPoint is a single (year, value) observation
type TimeSeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// SpecMetadata carries orientation hints only; it does not affect the math
type SpecMetadata struct {
	PercentileDirection string `json:"percentile_direction,omitempty"` // "ascending" or "descending"
}

// ValidationResult is the only sanctioned way to signal a bad Spec.
// INVARIANTS:
// - IsValid false implies at least one entry in Messages
// - Warnings never flip IsValid on their own
type ValidationResult struct {
	IsValid  bool              `json:"is_valid"`
	Messages []string          `json:"messages,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

// Valid returns a passing validation result
func Valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

// Invalid returns a failing validation result with the given messages
func Invalid(messages ...string) ValidationResult {
	return ValidationResult{IsValid: false, Messages: messages}
}

// Merge folds another result into this one, combining messages and warnings
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	merged := ValidationResult{
		IsValid:  r.IsValid && other.IsValid,
		Messages: append(append([]string{}, r.Messages...), other.Messages...),
		Warnings: append(append([]string{}, r.Warnings...), other.Warnings...),
	}
	if len(r.Details) > 0 || len(other.Details) > 0 {
		merged.Details = make(map[string]string, len(r.Details)+len(other.Details))
		for k, v := range r.Details {
			merged.Details[k] = v
		}
		for k, v := range other.Details {
			merged.Details[k] = v
		}
	}
	return merged
}

// ============================================================================
// CURVE GENERATION OUTPUT (consumed by the chart layer)
// ============================================================================

// PercentileRequest identifies a percentile the caller wants plotted
type PercentileRequest struct {
	Value       float64 `json:"value"` // 0-100
	Description string  `json:"description,omitempty"`
}

// PercentilePoint is a computed (x, y) pair for one requested percentile
type PercentilePoint struct {
	Percentile PercentileRequest `json:"percentile"`
	X          float64           `json:"x"`
	Y          float64           `json:"y"`
}

// KeyPoint is a labeled plot marker (Value, Mean, Median, Mode, ±1σ)
type KeyPoint struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// CurveStats summarizes the distribution behind a generated curve
type CurveStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
}

// Curve is the batch-evaluation output of GeneratePDF/GenerateCDF.
// Exactly one of PDFValues/CDFValues is populated, matching the generator used.
type Curve struct {
	XValues          []float64         `json:"x_values"`
	PDFValues        []float64         `json:"pdf_values,omitempty"`
	CDFValues        []float64         `json:"cdf_values,omitempty"`
	PercentilePoints []PercentilePoint `json:"percentile_points"`
	KeyPoints        []KeyPoint        `json:"key_points"`
	Stats            CurveStats        `json:"stats"`
}

// ============================================================================
// INTROSPECTION (recomputed on every call, never persisted)
// ============================================================================

// ParameterDescriptor describes one tunable parameter for form rendering
type ParameterDescriptor struct {
	Name      string   `json:"name"`
	Required  bool     `json:"required"`
	FieldType string   `json:"field_type"` // currently always "number"
	Default   float64  `json:"default_value"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Step      float64  `json:"step,omitempty"`
}

// Metadata is the self-description of a distribution family
type Metadata struct {
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	Applications       []string              `json:"applications,omitempty"`
	Examples           []string              `json:"examples,omitempty"`
	DefaultCurve       string                `json:"default_curve"` // "pdf" or "cdf"
	NonNegativeSupport bool                  `json:"non_negative_support"`
	MinPointsRequired  int                   `json:"min_points_required"`
	Parameters         []ParameterDescriptor `json:"parameters"`
}

// Curve kinds accepted by curve generation
const (
	CurvePDF = "pdf"
	CurveCDF = "cdf"
)
