package analysis

import (
	"math"
	"sort"
)

// Quartiles is the five-number summary of a value sequence
type Quartiles struct {
	Min float64 `json:"min"`
	Q1  float64 `json:"q1"`
	Q2  float64 `json:"q2"`
	Q3  float64 `json:"q3"`
	Max float64 `json:"max"`
}

// ComputeQuartiles returns the five-number summary using linear-interpolated
// percentiles. Non-finite values are dropped; an empty input yields zeros.
func ComputeQuartiles(values []float64) Quartiles {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return Quartiles{}
	}
	sort.Float64s(clean)
	return Quartiles{
		Min: clean[0],
		Q1:  quantileLinear(clean, 0.25),
		Q2:  quantileLinear(clean, 0.50),
		Q3:  quantileLinear(clean, 0.75),
		Max: clean[len(clean)-1],
	}
}

// quantileLinear computes the q-th quantile of sorted values with linear
// interpolation between the two nearest ranks (position q*(n-1)).
func quantileLinear(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
