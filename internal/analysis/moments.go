package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"equiprof/domain/tabular"
)

// stdEpsilon substitutes for a zero standard deviation in the skewness
// z-scores so constant columns report 0 instead of dividing by zero.
const stdEpsilon = 1e-9

// Moments is the population variance and Fisher-Pearson skewness of a column
type Moments struct {
	Variance float64 `json:"variance"`
	Skewness float64 `json:"skewness"`
}

// ComputeMoments computes per-column population variance and skewness as the
// mean of the cubed z-scores. Columns with a single valid value report {0, 0};
// columns with none are omitted.
func ComputeMoments(t *tabular.Table, numericCols []string) map[string]Moments {
	result := make(map[string]Moments, len(numericCols))
	for _, col := range numericCols {
		vals := t.FloatColumn(col)
		switch {
		case len(vals) >= 2:
			variance, _ := stats.PopulationVariance(vals)
			mean, _ := stats.Mean(vals)
			std := math.Sqrt(variance)
			if std == 0 {
				std = stdEpsilon
			}
			var sum float64
			for _, v := range vals {
				z := (v - mean) / std
				sum += z * z * z
			}
			result[col] = Moments{
				Variance: variance,
				Skewness: sum / float64(len(vals)),
			}
		case len(vals) == 1:
			result[col] = Moments{}
		}
	}
	return result
}
