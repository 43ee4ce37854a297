package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distkit/adapters/distributions"
	"distkit/domain/dist"
	"distkit/internal/config"
	"distkit/internal/validation"
)

func newService(t *testing.T) *CurveService {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	registry := distributions.NewRegistry()
	return NewCurveService(registry, validation.NewChecker(registry), cfg)
}

func TestGenerateCurve_NormalDefaults(t *testing.T) {
	svc := newService(t)
	spec := dist.Spec{
		Type:       "normal",
		Parameters: dist.Params{"value": 200, "stdDev": 10},
	}

	result, err := svc.GenerateCurve(context.Background(), spec, CurveRequest{})
	require.NoError(t, err)
	require.True(t, result.Validation.IsValid, "messages: %v", result.Validation.Messages)

	assert.Equal(t, dist.CurvePDF, result.Kind)
	require.NotNil(t, result.Curve)
	assert.Len(t, result.Curve.XValues, 100)
	assert.Len(t, result.Curve.PDFValues, 100)

	// Auto grid spans the central mass around the mean.
	assert.Less(t, result.Curve.XValues[0], 200.0)
	assert.Greater(t, result.Curve.XValues[99], 200.0)

	require.NotNil(t, result.Percentiles)
	require.NotNil(t, result.Percentiles.Primary)
	assert.Equal(t, 50.0, result.Percentiles.Primary.Percentile.Value)
	assert.InDelta(t, 200, result.Percentiles.Primary.X, 1e-9)
	assert.Len(t, result.Percentiles.Pairs, 2) // 10/90 and 25/75
}

func TestGenerateCurve_ExplicitGridAndKind(t *testing.T) {
	svc := newService(t)
	spec := dist.Spec{
		Type:       "uniform",
		Parameters: dist.Params{"min": 0, "max": 10},
	}
	xs := []float64{0, 2.5, 5, 7.5, 10}

	result, err := svc.GenerateCurve(context.Background(), spec, CurveRequest{
		Kind:    dist.CurveCDF,
		XValues: xs,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Curve)

	assert.Equal(t, dist.CurveCDF, result.Kind)
	assert.Equal(t, xs, result.Curve.XValues)
	assert.InDelta(t, 0.5, result.Curve.CDFValues[2], 1e-12)
}

func TestGenerateCurve_FixedDefaultsToCDF(t *testing.T) {
	svc := newService(t)
	spec := dist.Spec{Type: "fixed", Parameters: dist.Params{"value": 42}}

	result, err := svc.GenerateCurve(context.Background(), spec, CurveRequest{})
	require.NoError(t, err)
	assert.Equal(t, dist.CurveCDF, result.Kind)
	require.NotNil(t, result.Curve)
	assert.Len(t, result.Curve.XValues, 100)
}

func TestGenerateCurve_InvalidSpecIsResultNotError(t *testing.T) {
	svc := newService(t)
	spec := dist.Spec{
		Type:       "normal",
		Parameters: dist.Params{"value": 10, "stdDev": -5},
	}

	result, err := svc.GenerateCurve(context.Background(), spec, CurveRequest{})
	require.NoError(t, err)
	assert.False(t, result.Validation.IsValid)
	assert.NotEmpty(t, result.Validation.Messages)
	assert.Nil(t, result.Curve)
	assert.Nil(t, result.Percentiles)
}

func TestGenerateCurve_BadKindRejected(t *testing.T) {
	svc := newService(t)
	spec := dist.Spec{Type: "normal", Parameters: dist.Params{"value": 10, "stdDev": 5}}

	_, err := svc.GenerateCurve(context.Background(), spec, CurveRequest{Kind: "histogram"})
	assert.Error(t, err)
}

func TestGenerateCurve_NonNegativeGridClamped(t *testing.T) {
	svc := newService(t)
	spec := dist.Spec{
		Type:       "exponential",
		Parameters: dist.Params{"lambda": 0.5},
	}

	result, err := svc.GenerateCurve(context.Background(), spec, CurveRequest{})
	require.NoError(t, err)
	require.NotNil(t, result.Curve)
	assert.GreaterOrEqual(t, result.Curve.XValues[0], 0.0)
}

func TestGenerateCurve_CanceledContext(t *testing.T) {
	svc := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateCurve(ctx, dist.Spec{Type: "fixed"}, CurveRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweep_OrderedResults(t *testing.T) {
	svc := newService(t)
	specs := []dist.Spec{
		{Type: "normal", Parameters: dist.Params{"value": 100, "stdDev": 10}},
		{Type: "uniform", Parameters: dist.Params{"min": 0, "max": 1}},
		{Type: "fixed", Parameters: dist.Params{"value": 7}},
		{Type: "weibull", Parameters: dist.Params{"shape": 2, "scale": 8}},
	}

	out, err := svc.Sweep(context.Background(), SweepRequest{Specs: specs})
	require.NoError(t, err)

	assert.NotEmpty(t, string(out.RunID))
	require.Len(t, out.Results, len(specs))
	for i, spec := range specs {
		require.NotNil(t, out.Results[i], "result %d missing", i)
		assert.Equal(t, spec.Type, out.Results[i].Spec.Type)
		assert.True(t, out.Results[i].Validation.IsValid)
	}
}

func TestSweep_InvalidSpecStillProducesResult(t *testing.T) {
	svc := newService(t)
	specs := []dist.Spec{
		{Type: "normal", Parameters: dist.Params{"value": 100, "stdDev": 10}},
		{Type: "weibull", Parameters: dist.Params{"shape": -1, "scale": 8}},
	}

	out, err := svc.Sweep(context.Background(), SweepRequest{Specs: specs})
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.True(t, out.Results[0].Validation.IsValid)
	assert.False(t, out.Results[1].Validation.IsValid)
}
