package analysis

import (
	"fmt"
	"math"
)

// BuildInsights derives human-readable observations from the computed
// analytics: variability and magnitude leaders, coefficient of variation,
// skew, correlation extremes, the outlier-heaviest column, and the anomaly
// total. Ties resolve to the earlier column in numeric-column order.
func BuildInsights(
	numericCols []string,
	summary Summary,
	moments map[string]Moments,
	corr CorrelationReport,
	outliers map[string]OutlierReport,
	anomalies AnomalyReport,
) []string {
	items := []string{}
	if len(numericCols) == 0 {
		return items
	}

	stds := make(map[string]float64, len(moments))
	for col, m := range moments {
		stds[col] = math.Sqrt(m.Variance)
	}

	var inMap []string
	for _, col := range numericCols {
		if _, ok := moments[col]; ok {
			inMap = append(inMap, col)
		}
	}

	if len(inMap) > 0 {
		mostVariable := maxBy(inMap, func(col string) float64 { return stds[col] })
		largestMean := maxBy(inMap, func(col string) float64 { return summary.Averages[col] })

		if stds[mostVariable] > 0 {
			items = append(items, fmt.Sprintf("Highest variability: %s (std = %.2f)", mostVariable, stds[mostVariable]))
		}
		if summary.Averages[largestMean] != 0 {
			items = append(items, fmt.Sprintf("Largest mean value: %s (mean = %.2f)", largestMean, summary.Averages[largestMean]))
		}

		// Coefficient of variation, skipping near-zero means
		var cvEligible []string
		cv := make(map[string]float64)
		for _, col := range inMap {
			if math.Abs(summary.Averages[col]) > 1e-9 {
				cvEligible = append(cvEligible, col)
				cv[col] = math.Abs(stds[col] / summary.Averages[col])
			}
		}
		if len(cvEligible) > 0 {
			mostVolatile := maxBy(cvEligible, func(col string) float64 { return cv[col] })
			mostStable := maxBy(cvEligible, func(col string) float64 { return -cv[col] })
			items = append(items, fmt.Sprintf("Most volatile by CV: %s (CV = %.2f)", mostVolatile, cv[mostVolatile]))
			items = append(items, fmt.Sprintf("Most stable by CV: %s (CV = %.2f)", mostStable, cv[mostStable]))
		}

		mostSkewed := maxBy(inMap, func(col string) float64 { return math.Abs(moments[col].Skewness) })
		if math.Abs(moments[mostSkewed].Skewness) > 0.5 {
			items = append(items, fmt.Sprintf("Most skewed: %s (skew = %.2f)", mostSkewed, moments[mostSkewed].Skewness))
		}
	}

	if len(corr.Matrix) > 1 && len(corr.Order) > 1 {
		bi, bj, bestPos := 0, 1, corr.Matrix[0][1]
		ni, nj, bestNeg := 0, 1, corr.Matrix[0][1]
		for i := range corr.Order {
			for j := i + 1; j < len(corr.Order); j++ {
				r := corr.Matrix[i][j]
				if r > bestPos {
					bi, bj, bestPos = i, j, r
				}
				if r < bestNeg {
					ni, nj, bestNeg = i, j, r
				}
			}
		}
		if bestPos > 0 {
			items = append(items, fmt.Sprintf("Top positive correlation: %s vs %s (r=%.2f)", corr.Order[bi], corr.Order[bj], bestPos))
		}
		if bestNeg < 0 {
			items = append(items, fmt.Sprintf("Top negative correlation: %s vs %s (r=%.2f)", corr.Order[ni], corr.Order[nj], bestNeg))
		}
	}

	topCol, topCount := "", -1
	for _, col := range numericCols {
		if report, ok := outliers[col]; ok && report.Count > topCount {
			topCol, topCount = col, report.Count
		}
	}
	if topCount > 0 {
		pct := float64(topCount) / math.Max(1, float64(summary.RowCount)) * 100
		items = append(items, fmt.Sprintf("Outlier-heavy: %s (%d points, %.1f%% of rows)", topCol, topCount, pct))
	}

	if n := len(anomalies.RecordIDs); n > 0 {
		items = append(items, fmt.Sprintf("Anomalous records: %d flagged by z-score", n))
	}

	return items
}

// maxBy returns the first element with the maximal score
func maxBy(cols []string, score func(string) float64) string {
	best := cols[0]
	bestScore := score(best)
	for _, col := range cols[1:] {
		if s := score(col); s > bestScore {
			best = col
			bestScore = s
		}
	}
	return best
}
