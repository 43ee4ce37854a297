package dist

import "sort"

// PercentileBand is a symmetric shaded band around the primary percentile.
// One side may be nil in the degenerate two-point case, where the missing side
// is the primary itself (drawn separately, not duplicated in the band).
type PercentileBand struct {
	Lower   *PercentilePoint `json:"lower"`
	Upper   *PercentilePoint `json:"upper"`
	Opacity float64          `json:"opacity"`
}

// OrganizedPercentiles is the display grouping of computed percentile points
type OrganizedPercentiles struct {
	Primary *PercentilePoint  `json:"primary,omitempty"`
	Pairs   []PercentileBand  `json:"percentile_pairs"`
	Singles []PercentilePoint `json:"singles"`
}

const (
	bandBaseOpacity = 0.3
	bandOpacityStep = 0.1
)

// OrganizePercentiles partitions computed percentile points into symmetric
// visualization bands around the primary percentile plus leftover singles.
//
// The primary is the entry whose percentile equals primaryValue; when absent
// it falls back to the middle element of the sorted list. Remaining points are
// split into below/above groups and paired innermost-first, with opacity
// fading by 0.1 per step from 0.3 (not clamped). Unmatched points become
// singles.
func OrganizePercentiles(points []PercentilePoint, primaryValue float64) OrganizedPercentiles {
	out := OrganizedPercentiles{
		Pairs:   []PercentileBand{},
		Singles: []PercentilePoint{},
	}
	if len(points) == 0 {
		return out
	}

	sorted := make([]PercentilePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentile.Value < sorted[j].Percentile.Value
	})

	primaryIdx := -1
	for i, pt := range sorted {
		if pt.Percentile.Value == primaryValue {
			primaryIdx = i
			break
		}
	}
	if primaryIdx < 0 {
		if len(sorted) == 1 {
			// A lone non-primary point is just a single marker
			out.Singles = sorted
			return out
		}
		primaryIdx = len(sorted) / 2
	}

	primary := sorted[primaryIdx]
	out.Primary = &primary

	below := sorted[:primaryIdx]
	above := sorted[primaryIdx+1:]

	if len(points) == 2 {
		// Two points with one of them primary: the survivor forms a half band
		band := PercentileBand{Opacity: bandBaseOpacity}
		if len(below) == 1 {
			band.Lower = &below[0]
		} else {
			band.Upper = &above[0]
		}
		out.Pairs = append(out.Pairs, band)
		return out
	}

	maxPairs := len(below)
	if len(above) < maxPairs {
		maxPairs = len(above)
	}
	for i := 0; i < maxPairs; i++ {
		// i-th closest to the primary on each side
		lower := below[len(below)-1-i]
		upper := above[i]
		out.Pairs = append(out.Pairs, PercentileBand{
			Lower:   &lower,
			Upper:   &upper,
			Opacity: bandBaseOpacity - bandOpacityStep*float64(i),
		})
	}

	for i := 0; i < len(below)-maxPairs; i++ {
		out.Singles = append(out.Singles, below[i])
	}
	for i := maxPairs; i < len(above); i++ {
		out.Singles = append(out.Singles, above[i])
	}
	return out
}
