package sensitivity

// Slice holds everything computed at one percentile of the sensitivity cube:
// per-metric values and pairwise correlation coefficients between metrics.
type Slice struct {
	Percentile   float64                       `json:"percentile"`
	Metrics      map[string]float64            `json:"metrics"`
	Correlations map[string]map[string]float64 `json:"correlations,omitempty"`
}

// Correlation looks up the coefficient between two metrics, trying both
// orderings since the matrix is symmetric
func (s Slice) Correlation(metricA, metricB string) (float64, bool) {
	if row, ok := s.Correlations[metricA]; ok {
		if v, ok := row[metricB]; ok {
			return v, true
		}
	}
	if row, ok := s.Correlations[metricB]; ok {
		if v, ok := row[metricA]; ok {
			return v, true
		}
	}
	return 0, false
}

// Cube is the precomputed sensitivity data: one slice per computed percentile.
// Slices need not be sorted; the interpolation functions search for the
// nearest computed percentiles around the target themselves.
type Cube struct {
	Slices []Slice `json:"slices"`
}

// Impact describes how one metric moves when the target metric is shifted
type Impact struct {
	Before    float64 `json:"before"`
	After     float64 `json:"after"`
	PctChange float64 `json:"pct_change"`
}
