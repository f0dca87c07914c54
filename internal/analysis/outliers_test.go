package analysis

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equiprof/internal/config"
)

func outlierTable(values []float64) *testSingleColumn {
	rows := make([]map[string]string, len(values))
	for i, v := range values {
		rows[i] = map[string]string{"X": strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return &testSingleColumn{rows: rows}
}

type testSingleColumn struct {
	rows []map[string]string
}

func TestComputeOutliers_BoundsFormula(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 100}
	tt := outlierTable(vals)
	table := tableFrom([]string{"X"}, tt.rows)

	result := ComputeOutliers(table, []string{"X"}, config.DefaultParams())
	report := result["X"]

	// linear-interpolated quartiles: Q1 = 3.5, Q3 = 8.5, IQR = 5
	assert.InDelta(t, 3.5-1.5*5, report.LB, 1e-12)
	assert.InDelta(t, 8.5+1.5*5, report.UB, 1e-12)
	assert.Equal(t, 1, report.Count)
	assert.Equal(t, []float64{100}, report.Values)
}

func TestComputeOutliers_NoInBoundsValueReported(t *testing.T) {
	vals := []float64{-50, 0, 10, 10, 10, 10, 10, 10, 10, 10, 20, 100}
	tt := outlierTable(vals)
	table := tableFrom([]string{"X"}, tt.rows)

	report := ComputeOutliers(table, []string{"X"}, config.DefaultParams())["X"]

	for _, v := range report.Values {
		assert.True(t, v < report.LB || v > report.UB, "value %v is inside [%v, %v]", v, report.LB, report.UB)
	}
	// most extreme first, by distance past the farther bound
	require.GreaterOrEqual(t, len(report.Values), 2)
	assert.Equal(t, 100.0, report.Values[0])
	assert.Equal(t, -50.0, report.Values[1])
}

func TestComputeOutliers_InsufficientData(t *testing.T) {
	tt := outlierTable([]float64{1, 2, 1000})
	table := tableFrom([]string{"X"}, tt.rows)

	report := ComputeOutliers(table, []string{"X"}, config.DefaultParams())["X"]

	assert.Equal(t, OutlierReport{LB: 0, UB: 0, Values: []float64{}, Count: 0}, report)
}

func TestComputeOutliers_SampleCap(t *testing.T) {
	vals := make([]float64, 0, 72)
	for i := 0; i < 60; i++ {
		vals = append(vals, 10)
	}
	for i := 0; i < 12; i++ {
		vals = append(vals, 1000+float64(i))
	}
	tt := outlierTable(vals)
	table := tableFrom([]string{"X"}, tt.rows)

	report := ComputeOutliers(table, []string{"X"}, config.DefaultParams())["X"]

	assert.Equal(t, 12, report.Count)
	assert.Len(t, report.Values, 8)
	// farthest outliers retained
	assert.Equal(t, 1011.0, report.Values[0])
}

func TestQuantileLinear_MatchesLinearInterpolation(t *testing.T) {
	assert.InDelta(t, 1.75, quantileLinear([]float64{1, 2, 3, 4}, 0.25), 1e-12)
	assert.InDelta(t, 2.0, quantileLinear([]float64{1, 2, 3}, 0.5), 1e-12)
	assert.InDelta(t, 3.25, quantileLinear([]float64{1, 2, 3, 4}, 0.75), 1e-12)
	assert.InDelta(t, 4.0, quantileLinear([]float64{1, 2, 3, 4}, 1.0), 1e-12)
	assert.InDelta(t, 1.0, quantileLinear([]float64{1, 2, 3, 4}, 0.0), 1e-12)
}

func TestComputeQuartiles_FiveNumberSummary(t *testing.T) {
	q := ComputeQuartiles([]float64{5, 1, 3, 2, 4})
	assert.Equal(t, Quartiles{Min: 1, Q1: 2, Q2: 3, Q3: 4, Max: 5}, q)
}

func TestComputeQuartiles_Empty(t *testing.T) {
	assert.Equal(t, Quartiles{}, ComputeQuartiles(nil))
}
