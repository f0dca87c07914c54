package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"equiprof/domain/tabular"
	"equiprof/internal/config"
)

// ColumnStats is the population mean and standard deviation of one column
type ColumnStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// AnomalyReport is the set of Record ids flagged by any scanned column plus
// the per-column moments the z-scores were measured against.
type AnomalyReport struct {
	RecordIDs []int                  `json:"record_ids"`
	Stats     map[string]ColumnStats `json:"stats"`
}

// DetectAnomalies flags records whose value in any scanned column sits more
// than ZScoreThreshold population standard deviations from the column mean.
// A zero-deviation column contributes stats but no anomalies; a column with
// no parseable values contributes nothing.
func DetectAnomalies(t *tabular.Table, columns []string, p config.Params) AnomalyReport {
	report := AnomalyReport{
		RecordIDs: []int{},
		Stats:     make(map[string]ColumnStats, len(columns)),
	}

	flagged := make(map[int]bool)
	for _, col := range columns {
		vals := t.FloatColumn(col)
		if len(vals) == 0 {
			continue
		}
		mean, _ := stats.Mean(vals)
		variance := 0.0
		if len(vals) > 1 {
			variance, _ = stats.PopulationVariance(vals)
		}
		std := math.Sqrt(variance)
		report.Stats[col] = ColumnStats{Mean: mean, Std: std}
		if std == 0 {
			continue
		}
		for _, row := range t.Rows {
			v, ok := row.Get(col).Float()
			if !ok {
				continue
			}
			if math.Abs((v-mean)/std) > p.ZScoreThreshold {
				flagged[row.Record] = true
			}
		}
	}

	for record := range flagged {
		report.RecordIDs = append(report.RecordIDs, record)
	}
	sort.Ints(report.RecordIDs)
	return report
}
