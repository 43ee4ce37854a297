package distributions

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"distkit/domain/dist"
)

// TestGamma_BisectionQuantileConvergence checks the bisection inverse against
// the gonum reference within the documented tolerance
func TestGamma_BisectionQuantileConvergence(t *testing.T) {
	g := Gamma{}
	cases := []struct {
		shape, scale float64
	}{
		{shape: 2, scale: 50},
		{shape: 0.5, scale: 10},
		{shape: 9, scale: 0.5},
	}
	probs := []float64{0.05, 0.25, 0.5, 0.75, 0.95}

	for _, tc := range cases {
		params := dist.Params{"shape": tc.shape, "scale": tc.scale}
		ref := distuv.Gamma{Alpha: tc.shape, Beta: 1 / tc.scale}
		for _, p := range probs {
			got := g.Quantile(p, params)

			// The loop terminates on |CDF(mid)-p| < 1e-4
			if diff := math.Abs(g.CDF(got, params) - p); diff > 1e-3 {
				t.Errorf("shape=%v scale=%v p=%v: CDF residual %v", tc.shape, tc.scale, p, diff)
			}
			want := ref.Quantile(p)
			if rel := math.Abs(got-want) / want; rel > 0.02 {
				t.Errorf("shape=%v scale=%v p=%v: got %v, reference %v", tc.shape, tc.scale, p, got, want)
			}
		}
	}
}

func TestGamma_Moments(t *testing.T) {
	g := Gamma{}
	params := dist.Params{"shape": 2, "scale": 50}

	if got := g.Mean(params); got != 100 {
		t.Errorf("mean = %v, want 100", got)
	}
	want := 50 * math.Sqrt2
	if got := g.StdDev(params); math.Abs(got-want) > 1e-9 {
		t.Errorf("stdDev = %v, want %v", got, want)
	}
}

// TestGamma_PDFMatchesReference cross-checks the log-space density against
// gonum on a handful of points
func TestGamma_PDFMatchesReference(t *testing.T) {
	g := Gamma{}
	params := dist.Params{"shape": 2, "scale": 50}
	ref := distuv.Gamma{Alpha: 2, Beta: 1.0 / 50}

	for _, x := range []float64{1, 25, 50, 100, 250, 500} {
		got := g.PDF(x, params)
		want := ref.Prob(x)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("PDF(%v) = %v, reference %v", x, got, want)
		}
	}
}

func TestGamma_ModeBelowShapeOne(t *testing.T) {
	g := Gamma{}
	markers := g.markers(dist.Params{"shape": 0.5, "scale": 10})
	for _, m := range markers {
		if m.label == "Mode" && m.x != 0 {
			t.Errorf("mode for shape<1 should be 0, got %v", m.x)
		}
	}
}
