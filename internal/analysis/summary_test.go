package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equiprof/internal/config"
)

func TestComputeSummary_SpecScenario(t *testing.T) {
	p := config.DefaultParams()
	table := tableFrom(baseHeader, plantRows())
	numeric := InferNumericColumns(table, p)

	s := ComputeSummary(table, numeric, p)

	assert.InDelta(t, 74.0, s.Averages["Flowrate"], 1e-9)
	assert.InDelta(t, 12.0, s.Median["Flowrate"], 1e-9)
	assert.InDelta(t, 10.0, s.Min["Flowrate"], 1e-9)
	assert.InDelta(t, 200.0, s.Max["Flowrate"], 1e-9)

	assert.Equal(t, map[string]int{"Pump": 2, "Valve": 1}, s.TypeDistribution)
	assert.Equal(t, 3, s.RowCount)
	assert.Equal(t, []string{"Flowrate", "Pressure", "Temperature"}, s.NumericColumns)
	assert.Equal(t, baseHeader, s.AllColumns)
}

func TestComputeSummary_UnknownTypeForAbsentCells(t *testing.T) {
	p := config.DefaultParams()
	rows := plantRows()
	delete(rows[2], "Type")
	table := tableFrom(baseHeader, rows)

	s := ComputeSummary(table, InferNumericColumns(table, p), p)
	assert.Equal(t, map[string]int{"Pump": 2, "Unknown": 1}, s.TypeDistribution)
}

func TestComputeSummary_EmptyTypeIsNotUnknown(t *testing.T) {
	// a present-but-empty Type cell keeps its empty label
	p := config.DefaultParams()
	rows := plantRows()
	rows[2]["Type"] = ""
	table := tableFrom(baseHeader, rows)

	s := ComputeSummary(table, InferNumericColumns(table, p), p)
	require.Equal(t, 2, s.TypeDistribution["Pump"])
	assert.Equal(t, 1, s.TypeDistribution[""])
}

func TestComputeSummary_MedianEvenCount(t *testing.T) {
	p := config.DefaultParams()
	rows := append(plantRows(), map[string]string{
		"Equipment Name": "P3", "Type": "Pump", "Flowrate": "14", "Pressure": "110", "Temperature": "27",
	})
	table := tableFrom(baseHeader, rows)

	s := ComputeSummary(table, InferNumericColumns(table, p), p)
	// sorted flowrates 10, 12, 14, 200 -> median 13
	assert.InDelta(t, 13.0, s.Median["Flowrate"], 1e-9)
}
