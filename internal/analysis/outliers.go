package analysis

import (
	"math"
	"sort"

	"equiprof/domain/tabular"
	"equiprof/internal/config"
)

// OutlierReport flags values outside the IQR fences of one column
type OutlierReport struct {
	LB     float64   `json:"lb"`
	UB     float64   `json:"ub"`
	Values []float64 `json:"values"`
	Count  int       `json:"count"`
}

// ComputeOutliers applies the IQR rule per numeric column. Columns with fewer
// than 4 valid values report zero bounds and no outliers. Reported values are
// capped and ordered most extreme first, measured as the larger distance to
// either bound.
func ComputeOutliers(t *tabular.Table, numericCols []string, p config.Params) map[string]OutlierReport {
	result := make(map[string]OutlierReport, len(numericCols))
	for _, col := range numericCols {
		vals := t.FloatColumn(col)
		if len(vals) < 4 {
			// not enough data to compute quartiles reliably
			result[col] = OutlierReport{Values: []float64{}}
			continue
		}

		q := ComputeQuartiles(vals)
		iqr := q.Q3 - q.Q1
		lb := q.Q1 - p.IQRMultiplier*iqr
		ub := q.Q3 + p.IQRMultiplier*iqr

		var outliers []float64
		for _, v := range vals {
			if v < lb || v > ub {
				outliers = append(outliers, v)
			}
		}
		sort.SliceStable(outliers, func(a, b int) bool {
			return outlierDistance(outliers[a], lb, ub) > outlierDistance(outliers[b], lb, ub)
		})

		report := OutlierReport{LB: lb, UB: ub, Count: len(outliers), Values: outliers}
		if len(report.Values) > p.OutlierSampleLimit {
			report.Values = report.Values[:p.OutlierSampleLimit]
		}
		if report.Values == nil {
			report.Values = []float64{}
		}
		result[col] = report
	}
	return result
}

func outlierDistance(v, lb, ub float64) float64 {
	return math.Max(math.Abs(v-lb), math.Abs(v-ub))
}
