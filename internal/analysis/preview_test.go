package analysis

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPreview_HeaderFirstAndRowCap(t *testing.T) {
	rows := make([]map[string]string, 0, 15)
	for i := 0; i < 15; i++ {
		rows = append(rows, map[string]string{
			"Equipment Name": "P" + strconv.Itoa(i),
			"Type":           "Pump",
			"Flowrate":       "10",
			"Pressure":       "100",
			"Temperature":    "25",
		})
	}
	table := tableFrom(baseHeader, rows)

	preview := BuildPreview(table, 10)
	lines := strings.Split(strings.TrimRight(preview, "\n"), "\n")

	require.Len(t, lines, 11)
	assert.Equal(t, "Equipment Name,Type,Flowrate,Pressure,Temperature", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "P0,"))
	assert.True(t, strings.HasPrefix(lines[10], "P9,"))
}

func TestBuildPreview_MissingCellsSerializeEmpty(t *testing.T) {
	rows := []map[string]string{
		{"Equipment Name": "P1", "Type": "Pump", "Flowrate": "10", "Temperature": "25"},
	}
	table := tableFrom(baseHeader, rows)

	preview := BuildPreview(table, 10)
	lines := strings.Split(strings.TrimRight(preview, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "P1,Pump,10,,25", lines[1])
}

func TestBuildInsights_EmptyWithoutNumericColumns(t *testing.T) {
	insights := BuildInsights(nil, Summary{}, nil, CorrelationReport{}, nil, AnomalyReport{})
	assert.Empty(t, insights)
	assert.NotNil(t, insights)
}

func TestBuildInsights_ReportsLeaders(t *testing.T) {
	numericCols := []string{"Flowrate", "Pressure"}
	summary := Summary{
		Averages: map[string]float64{"Flowrate": 74.0, "Pressure": 368.33},
		RowCount: 3,
	}
	moments := map[string]Moments{
		"Flowrate": {Variance: 7944.67, Skewness: 0.7},
		"Pressure": {Variance: 141272.22, Skewness: 0.7},
	}
	corr := CorrelationReport{
		Matrix: [][]float64{{1, 0.99}, {0.99, 1}},
		Order:  numericCols,
	}
	outliers := map[string]OutlierReport{
		"Flowrate": {Count: 1},
		"Pressure": {Count: 0},
	}
	anomalies := AnomalyReport{RecordIDs: []int{3}}

	insights := BuildInsights(numericCols, summary, moments, corr, outliers, anomalies)

	joined := strings.Join(insights, "\n")
	assert.Contains(t, joined, "Highest variability: Pressure")
	assert.Contains(t, joined, "Largest mean value: Pressure")
	assert.Contains(t, joined, "Top positive correlation: Flowrate vs Pressure")
	assert.Contains(t, joined, "Outlier-heavy: Flowrate (1 points")
	assert.Contains(t, joined, "Anomalous records: 1")
}
