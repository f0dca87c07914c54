package analysis

import (
	"github.com/montanaflynn/stats"

	"equiprof/domain/tabular"
	"equiprof/internal/config"
)

// Summary aggregates descriptive statistics per numeric column plus the
// categorical type distribution. Field names are part of the external
// contract and must not change.
type Summary struct {
	Averages         map[string]float64 `json:"averages"`
	Median           map[string]float64 `json:"median"`
	Min              map[string]float64 `json:"min"`
	Max              map[string]float64 `json:"max"`
	TypeDistribution map[string]int     `json:"type_distribution"`
	RowCount         int                `json:"row_count"`
	NumericColumns   []string           `json:"numeric_columns"`
	AllColumns       []string           `json:"all_columns"`
}

// ComputeSummary computes mean/median/min/max per numeric column and the
// frequency of each raw Type value, defaulting to "Unknown" for absent cells.
// NaN safety comes from inference having already dropped non-parseable cells.
func ComputeSummary(t *tabular.Table, numeric []NumericColumn, p config.Params) Summary {
	s := Summary{
		Averages:         make(map[string]float64, len(numeric)),
		Median:           make(map[string]float64, len(numeric)),
		Min:              make(map[string]float64, len(numeric)),
		Max:              make(map[string]float64, len(numeric)),
		TypeDistribution: make(map[string]int),
		RowCount:         len(t.Rows),
		NumericColumns:   NumericColumnNames(numeric),
		AllColumns:       t.Header,
	}

	for _, col := range numeric {
		mean, _ := stats.Mean(col.Values)
		median, _ := stats.Median(col.Values)
		min, _ := stats.Min(col.Values)
		max, _ := stats.Max(col.Values)
		s.Averages[col.Name] = mean
		s.Median[col.Name] = median
		s.Min[col.Name] = min
		s.Max[col.Name] = max
	}

	for _, row := range t.Rows {
		v := row.Get(p.TypeColumn)
		label := v.Text()
		if v.Missing {
			label = "Unknown"
		}
		s.TypeDistribution[label]++
	}

	return s
}
