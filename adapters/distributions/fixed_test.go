package distributions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"distkit/domain/dist"
)

func TestFixed_CDFIsHeavisideStep(t *testing.T) {
	f := Fixed{}
	params := dist.Params{"value": 100}

	assert.Equal(t, 0.0, f.CDF(99.999, params))
	assert.Equal(t, 1.0, f.CDF(100, params))
	assert.Equal(t, 1.0, f.CDF(1e9, params))
	assert.Equal(t, 0.0, f.CDF(-1e9, params))
}

func TestFixed_SpikeIntegratesToOne(t *testing.T) {
	f := Fixed{}
	params := dist.Params{"value": 100}

	w := f.spikeHalfWidth(params)
	assert.InDelta(t, 0.01, w, 1e-12, "half width is |value|*1e-4")
	assert.InDelta(t, 1/(2*w), f.PDF(100, params), 1e-12)
	assert.Equal(t, 0.0, f.PDF(100+2*w, params))

	// Zero value keeps the 1e-4 floor so nothing divides by zero
	zero := dist.Params{"value": 0}
	assert.InDelta(t, 1e-4, f.spikeHalfWidth(zero), 1e-12)
	assert.False(t, math.IsInf(f.PDF(0, zero), 0))
}

func TestFixed_DriftCompoundsForward(t *testing.T) {
	f := Fixed{}
	params := dist.Params{"value": 100, "drift": 2, "years": 10}

	want := 100 * math.Pow(1.02, 10)
	assert.InDelta(t, want, f.Mean(params), 1e-9)
	assert.InDelta(t, want, f.Quantile(0.5, params), 1e-9)
	assert.Equal(t, 1.0, f.CDF(want, params))
	assert.Equal(t, 0.0, f.CDF(want-0.001, params))
}

func TestFixed_QuantileIgnoresProbability(t *testing.T) {
	f := Fixed{}
	params := dist.Params{"value": 7}
	for _, p := range []float64{0.01, 0.5, 0.99} {
		assert.Equal(t, 7.0, f.Quantile(p, params))
	}
}
