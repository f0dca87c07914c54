package analysis

import (
	"math"
	"math/rand"

	"equiprof/domain/tabular"
	"equiprof/internal/config"
)

// ClusterAssignment is the chosen k, per-record labels index-aligned with
// RecIDs, and the centroid coordinates. k=0 signals "not computable".
type ClusterAssignment struct {
	K         int         `json:"k"`
	Labels    []int       `json:"labels"`
	RecIDs    []int       `json:"rec_ids"`
	Centroids [][]float64 `json:"centroids"`
}

// ComputeClusters runs the k-means sweep over rows with a complete, parseable
// value for every feature column; rows with any missing feature are excluded
// and never labeled. The sweep keeps the k in 2..min(MaxClusters, rows) with
// the lowest raw inertia. Raw inertia is non-increasing in k, so this tends
// to pick the largest k; the comparison is kept as-is for compatibility with
// the consumers of this result.
func ComputeClusters(t *tabular.Table, featureCols []string, p config.Params) ClusterAssignment {
	empty := ClusterAssignment{Labels: []int{}, RecIDs: []int{}, Centroids: [][]float64{}}
	if len(featureCols) == 0 {
		return empty
	}

	var points [][]float64
	var recIDs []int
	for _, row := range t.Rows {
		vals := make([]float64, 0, len(featureCols))
		complete := true
		for _, col := range featureCols {
			f, ok := row.Get(col).Float()
			if !ok {
				complete = false
				break
			}
			vals = append(vals, f)
		}
		if complete {
			points = append(points, vals)
			recIDs = append(recIDs, row.Record)
		}
	}
	if len(points) < 2 {
		return empty
	}

	maxK := p.MaxClusters
	if len(points) < maxK {
		maxK = len(points)
	}

	bestK := 0
	bestInertia := math.Inf(1)
	var best kmeansModel
	for k := 2; k <= maxK; k++ {
		rng := rand.New(rand.NewSource(p.KMeansSeed))
		model := fitKMeans(points, k, p.KMeansRestarts, rng)
		if bestK == 0 || model.inertia < bestInertia {
			bestK = k
			bestInertia = model.inertia
			best = model
		}
	}
	if bestK == 0 {
		return empty
	}

	return ClusterAssignment{
		K:         bestK,
		Labels:    best.labels,
		RecIDs:    recIDs,
		Centroids: best.centroids,
	}
}
