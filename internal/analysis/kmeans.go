package analysis

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const kmeansMaxIterations = 300

type kmeansModel struct {
	labels    []int
	centroids [][]float64
	inertia   float64
}

// fitKMeans runs Lloyd's algorithm with k-means++ seeding, keeping the best
// of `restarts` independent initializations by within-cluster sum of squared
// distances. The caller owns the rng, so a fixed seed makes the fit
// reproducible.
func fitKMeans(points [][]float64, k, restarts int, rng *rand.Rand) kmeansModel {
	best := kmeansModel{inertia: math.Inf(1)}
	for r := 0; r < restarts; r++ {
		model := lloyd(points, seedCentroids(points, k, rng))
		if model.inertia < best.inertia {
			best = model
		}
	}
	return best
}

// seedCentroids picks k starting centroids k-means++ style: the first
// uniformly, each next with probability proportional to its squared distance
// from the nearest centroid chosen so far.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clonePoint(points[rng.Intn(len(points))]))

	dist2 := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, pt := range points {
			d := nearestDistance2(pt, centroids)
			dist2[i] = d
			total += d
		}
		if total == 0 {
			// all remaining points coincide with a centroid
			centroids = append(centroids, clonePoint(points[rng.Intn(len(points))]))
			continue
		}
		target := rng.Float64() * total
		idx := len(points) - 1
		var acc float64
		for i, d := range dist2 {
			acc += d
			if acc >= target {
				idx = i
				break
			}
		}
		centroids = append(centroids, clonePoint(points[idx]))
	}
	return centroids
}

// lloyd iterates assignment and centroid recomputation until assignments
// stabilize or the iteration cap is hit.
func lloyd(points [][]float64, centroids [][]float64) kmeansModel {
	k := len(centroids)
	dim := len(points[0])
	labels := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, pt := range points {
			label := nearestCentroid(pt, centroids)
			if label != labels[i] || iter == 0 {
				labels[i] = label
				changed = true
			}
		}
		if !changed {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, pt := range points {
			floats.Add(sums[labels[i]], pt)
			counts[labels[i]]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				// relocate an empty cluster to the point farthest from its centroid
				centroids[c] = clonePoint(points[farthestPoint(points, labels, centroids)])
				continue
			}
			floats.ScaleTo(centroids[c], 1/float64(counts[c]), sums[c])
		}
	}

	var inertia float64
	for i, pt := range points {
		inertia += squaredDistance(pt, centroids[labels[i]])
	}
	return kmeansModel{labels: labels, centroids: centroids, inertia: inertia}
}

func nearestCentroid(pt []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := squaredDistance(pt, centroid); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func nearestDistance2(pt []float64, centroids [][]float64) float64 {
	best := math.Inf(1)
	for _, centroid := range centroids {
		if d := squaredDistance(pt, centroid); d < best {
			best = d
		}
	}
	return best
}

func farthestPoint(points [][]float64, labels []int, centroids [][]float64) int {
	best := 0
	bestDist := -1.0
	for i, pt := range points {
		if d := squaredDistance(pt, centroids[labels[i]]); d > bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func squaredDistance(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

func clonePoint(pt []float64) []float64 {
	out := make([]float64, len(pt))
	copy(out, pt)
	return out
}
