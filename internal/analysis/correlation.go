package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"equiprof/domain/tabular"
	"equiprof/internal/config"
)

// CorrelationPair is one ranked column pair
type CorrelationPair struct {
	Cols [2]string `json:"cols"`
	Corr float64   `json:"corr"`
}

// CorrelationReport is the pairwise Pearson matrix over the requested numeric
// columns. An empty matrix signals "not computable", not an error.
type CorrelationReport struct {
	Matrix         [][]float64       `json:"matrix"`
	Order          []string          `json:"order"`
	StrongestPairs []CorrelationPair `json:"strongest_pairs"`
}

// ComputeCorrelations builds the correlation matrix over rows that have a
// complete, parseable value for every requested column. Completeness is
// row-wise across all requested columns, not pairwise. Fewer than 2 complete
// rows degrades to an empty matrix.
func ComputeCorrelations(t *tabular.Table, numericCols []string, p config.Params) CorrelationReport {
	report := CorrelationReport{
		Matrix:         [][]float64{},
		Order:          numericCols,
		StrongestPairs: []CorrelationPair{},
	}
	d := len(numericCols)
	if d == 0 {
		return report
	}

	var flat []float64
	n := 0
	for _, row := range t.Rows {
		vals := make([]float64, 0, d)
		complete := true
		for _, col := range numericCols {
			f, ok := row.Get(col).Float()
			if !ok {
				complete = false
				break
			}
			vals = append(vals, f)
		}
		if complete {
			flat = append(flat, vals...)
			n++
		}
	}
	if n < 2 {
		return report
	}

	x := mat.NewDense(n, d, flat)
	corr := mat.NewSymDense(d, nil)
	stat.CorrelationMatrix(corr, x, nil)

	report.Matrix = make([][]float64, d)
	for i := 0; i < d; i++ {
		report.Matrix[i] = make([]float64, d)
		for j := 0; j < d; j++ {
			report.Matrix[i][j] = corr.At(i, j)
		}
	}

	var pairs []CorrelationPair
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			pairs = append(pairs, CorrelationPair{
				Cols: [2]string{numericCols[i], numericCols[j]},
				Corr: corr.At(i, j),
			})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairStrength(pairs[a].Corr) > pairStrength(pairs[b].Corr)
	})
	if len(pairs) > p.StrongestPairLimit {
		pairs = pairs[:p.StrongestPairLimit]
	}
	report.StrongestPairs = pairs

	return report
}

// pairStrength ranks by absolute correlation; NaN (zero-variance column)
// sorts last.
func pairStrength(r float64) float64 {
	if math.IsNaN(r) {
		return -1
	}
	return math.Abs(r)
}
