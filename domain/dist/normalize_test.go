package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_RepairsEmptySpec(t *testing.T) {
	out := Normalize(Spec{})

	assert.Equal(t, "fixed", out.Type)
	assert.Equal(t, 0.0, out.Parameters["value"])
	require.NotNil(t, out.TimeSeries.Value)
	assert.Empty(t, out.TimeSeries.Value)
}

func TestNormalize_DropsMalformedPoints(t *testing.T) {
	in := Spec{
		Type:       "normal",
		Parameters: Params{"value": 10},
		TimeSeries: TimeSeriesParams{Value: []TimeSeriesPoint{
			{Year: 2020, Value: 5},
			{Year: 2021, Value: math.NaN()},
			{Year: 2022, Value: math.Inf(1)},
			{Year: 2023, Value: 7},
		}},
	}
	out := Normalize(in)

	require.Len(t, out.TimeSeries.Value, 2)
	assert.Equal(t, 5.0, out.TimeSeries.Value[0].Value)
	assert.Equal(t, 7.0, out.TimeSeries.Value[1].Value)
}

func TestNormalize_Idempotent(t *testing.T) {
	in := Spec{Type: "weibull", Parameters: Params{"scale": 8, "shape": 2}}
	once := Normalize(in)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := Spec{Parameters: Params{}}
	_ = Normalize(in)
	_, present := in.Parameters["value"]
	assert.False(t, present, "input parameter map must stay untouched")
}

func TestModeTransition_SingleToTimeSeriesSeedsPoint(t *testing.T) {
	in := Spec{Type: "normal", Parameters: Params{"value": 42, "stdDev": 10}}
	result := ValidateModeTransition(in, true, 100)

	require.True(t, result.IsValid)
	assert.True(t, result.Distribution.TimeSeriesMode)
	require.Len(t, result.Distribution.TimeSeries.Value, 1)
	assert.Equal(t, TimeSeriesPoint{Year: 0, Value: 42}, result.Distribution.TimeSeries.Value[0])
}

func TestModeTransition_SingleToTimeSeriesRepairsValue(t *testing.T) {
	in := Spec{Type: "normal", Parameters: Params{"value": math.NaN()}}
	result := ValidateModeTransition(in, true, 100)

	require.True(t, result.IsValid)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, 100.0, result.Distribution.Parameters["value"])
	require.Len(t, result.Distribution.TimeSeries.Value, 1)
	assert.Equal(t, 100.0, result.Distribution.TimeSeries.Value[0].Value)
}

func TestModeTransition_TimeSeriesToSingleRecoversMostRecent(t *testing.T) {
	in := Spec{
		Type:           "normal",
		TimeSeriesMode: true,
		Parameters:     Params{},
		TimeSeries: TimeSeriesParams{Value: []TimeSeriesPoint{
			{Year: 2021, Value: 11},
			{Year: 2023, Value: 33},
			{Year: 2022, Value: 22},
		}},
	}
	result := ValidateModeTransition(in, false, 0)

	require.True(t, result.IsValid)
	assert.False(t, result.Distribution.TimeSeriesMode)
	assert.Equal(t, 33.0, result.Distribution.Parameters["value"], "largest year wins")
	assert.NotEmpty(t, result.Message)
}

func TestModeTransition_TimeSeriesToSingleFallsBackToDefault(t *testing.T) {
	in := Spec{Type: "normal", TimeSeriesMode: true, Parameters: Params{}}
	result := ValidateModeTransition(in, false, 55)

	require.True(t, result.IsValid)
	assert.Equal(t, 55.0, result.Distribution.Parameters["value"])
}

func TestModeTransition_NoOpWhenModeUnchanged(t *testing.T) {
	in := Spec{Type: "normal", Parameters: Params{}, TimeSeriesMode: false}
	result := ValidateModeTransition(in, false, 99)

	require.True(t, result.IsValid)
	assert.Empty(t, result.Message)
	_, present := result.Distribution.Parameters["value"]
	assert.False(t, present, "no repair on a no-op transition")
}

// Applying the same transition twice must not drift the distribution
func TestModeTransition_Idempotent(t *testing.T) {
	in := Spec{Type: "normal", Parameters: Params{"value": 42}}

	first := ValidateModeTransition(in, true, 100)
	second := ValidateModeTransition(first.Distribution, true, 100)
	assert.Equal(t, first.Distribution, second.Distribution)

	back := ValidateModeTransition(first.Distribution, false, 100)
	again := ValidateModeTransition(back.Distribution, false, 100)
	assert.Equal(t, back.Distribution, again.Distribution)
}

func TestAppropriateValue(t *testing.T) {
	points := []TimeSeriesPoint{{Year: 2020, Value: 10}, {Year: 2024, Value: 40}}

	tests := []struct {
		name string
		spec Spec
		def  float64
		want float64
	}{
		{
			name: "time series mode prefers most recent point",
			spec: Spec{TimeSeriesMode: true, TimeSeries: TimeSeriesParams{Value: points}},
			def:  -1, want: 40,
		},
		{
			name: "single mode reads the value parameter",
			spec: Spec{Parameters: Params{"value": 7}, TimeSeries: TimeSeriesParams{Value: points}},
			def:  -1, want: 7,
		},
		{
			name: "non-finite latest point falls back to the average",
			spec: Spec{TimeSeriesMode: true, TimeSeries: TimeSeriesParams{Value: []TimeSeriesPoint{
				{Year: 2020, Value: 10}, {Year: 2021, Value: 30}, {Year: 2024, Value: math.NaN()},
			}}},
			def: -1, want: 20,
		},
		{
			name: "time series mode without points falls through to value",
			spec: Spec{TimeSeriesMode: true, Parameters: Params{"value": 7}},
			def:  -1, want: 7,
		},
		{
			name: "nothing usable yields the default",
			spec: Spec{},
			def:  13, want: 13,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppropriateValue(tt.spec, tt.def))
		})
	}
}
