package distributions

import (
	"math"
	"testing"

	"distkit/domain/dist"
)

// TestPoisson_QuantileBySummation pins the incremental-summation inverse to
// hand-checked lattice values
func TestPoisson_QuantileBySummation(t *testing.T) {
	ps := Poisson{}
	cases := []struct {
		lambda, p float64
		want      float64
	}{
		{lambda: 2, p: 0.5, want: 2},
		{lambda: 4, p: 0.5, want: 4},
		{lambda: 4, p: 0.9, want: 7},
		{lambda: 4, p: 0.99, want: 9},
		{lambda: 0.5, p: 0.5, want: 0},
	}
	for _, tc := range cases {
		params := dist.Params{"lambda": tc.lambda}
		if got := ps.Quantile(tc.p, params); got != tc.want {
			t.Errorf("lambda=%v p=%v: quantile = %v, want %v", tc.lambda, tc.p, got, tc.want)
		}
	}
}

// TestPoisson_QuantileConsistentWithCDF verifies the summation result is the
// smallest k with CDF(k) >= p
func TestPoisson_QuantileConsistentWithCDF(t *testing.T) {
	ps := Poisson{}
	for _, lambda := range []float64{0.5, 2, 4, 15} {
		params := dist.Params{"lambda": lambda}
		for _, p := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
			k := ps.Quantile(p, params)
			if ps.CDF(k, params) < p-1e-3 {
				t.Errorf("lambda=%v p=%v: CDF(%v) = %v below target", lambda, p, k, ps.CDF(k, params))
			}
			if k > 0 && ps.CDF(k-1, params) >= p {
				t.Errorf("lambda=%v p=%v: %v is not the smallest satisfying k", lambda, p, k)
			}
		}
	}
}

func TestPoisson_QuantileCappedAtHundred(t *testing.T) {
	ps := Poisson{}
	if got := ps.Quantile(0.999999, dist.Params{"lambda": 500}); got != 100 {
		t.Errorf("expected the summation cap of 100, got %v", got)
	}
}

func TestPoisson_DiscreteEvaluation(t *testing.T) {
	ps := Poisson{}
	params := dist.Params{"lambda": 4}

	// Mass is read at round(x), the CDF at floor(x)
	if got, want := ps.PDF(3.4, params), ps.PDF(3, params); got != want {
		t.Errorf("PDF(3.4) = %v, want PDF(3) = %v", got, want)
	}
	if got, want := ps.PDF(3.6, params), ps.PDF(4, params); got != want {
		t.Errorf("PDF(3.6) = %v, want PDF(4) = %v", got, want)
	}
	if got, want := ps.CDF(3.9, params), ps.CDF(3, params); got != want {
		t.Errorf("CDF(3.9) = %v, want CDF(3) = %v", got, want)
	}

	// PMF(0) = e^{-lambda}
	if got := ps.PDF(0, params); math.Abs(got-math.Exp(-4)) > 1e-12 {
		t.Errorf("PDF(0) = %v, want e^-4", got)
	}

	// Mass sums to ~1 over the lattice
	sum := 0.0
	for k := 0.0; k <= 40; k++ {
		sum += ps.PDF(k, params)
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("mass sums to %v", sum)
	}
}

// A chart grid can carry arbitrarily large x values; the CDF summation must
// terminate once the remaining terms underflow instead of iterating floor(x)
// times
func TestPoisson_CDFTerminatesForHugeX(t *testing.T) {
	ps := Poisson{}
	params := dist.Params{"lambda": 4}

	if got := ps.CDF(1e12, params); math.Abs(got-1) > 1e-12 {
		t.Errorf("CDF(1e12) = %v, want 1", got)
	}
	if got, want := ps.CDF(1e12, params), ps.CDF(200, params); got != want {
		t.Errorf("tail CDF drifted after early termination: %v vs %v", got, want)
	}
}
