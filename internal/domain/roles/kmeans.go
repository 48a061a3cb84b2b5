package roles

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Default k-means parameters.
const (
	defaultMaxIter   = 300
	defaultTolerance = 1e-4
)

// KMeans partitions vectors into k groups using Lloyd iterations seeded with
// k-means++. Results are reproducible for a fixed seed within one build.
type KMeans struct {
	k        int
	seed     int64
	restarts int
	maxIter  int
	tol      float64
}

// Clustering is the outcome of one KMeans fit.
type Clustering struct {
	Labels    []int       // cluster index per input point
	Centroids [][]float64 // one centroid per cluster
	Inertia   float64     // sum of squared distances to assigned centroids
}

// NewKMeans creates a k-means runner. restarts < 1 is treated as 1.
func NewKMeans(k int, seed int64, restarts int) *KMeans {
	if restarts < 1 {
		restarts = 1
	}
	return &KMeans{
		k:        k,
		seed:     seed,
		restarts: restarts,
		maxIter:  defaultMaxIter,
		tol:      defaultTolerance,
	}
}

// Fit clusters points into min(k, len(points)) groups, keeping the restart
// with the lowest inertia.
func (km *KMeans) Fit(points [][]float64) (*Clustering, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrClustering)
	}
	k := min(km.k, len(points))
	if k < 1 {
		return nil, fmt.Errorf("%w: cluster count %d", ErrClustering, km.k)
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrClustering, i, len(p), dim)
		}
	}

	rng := rand.New(rand.NewSource(km.seed)) //nolint:gosec // reproducible seeding, not security
	threshold := km.tol * meanVariance(points)

	var best *Clustering
	for r := 0; r < km.restarts; r++ {
		c := km.run(points, k, threshold, rng)
		if best == nil || c.Inertia < best.Inertia {
			best = c
		}
	}
	return best, nil
}

func (km *KMeans) run(points [][]float64, k int, threshold float64, rng *rand.Rand) *Clustering {
	centroids := initCentroidsPlusPlus(points, k, rng)
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < km.maxIter; iter++ {
		changed := assign(points, centroids, labels)
		next := updateCentroids(points, labels, centroids)
		var shift float64
		for c := range centroids {
			shift += squaredDistance(centroids[c], next[c])
		}
		centroids = next
		if !changed || shift <= threshold {
			break
		}
	}
	assign(points, centroids, labels)

	var inertia float64
	for i, p := range points {
		inertia += squaredDistance(p, centroids[labels[i]])
	}
	return &Clustering{Labels: labels, Centroids: centroids, Inertia: inertia}
}

// assign moves every point to its closest centroid (lowest index on ties)
// and reports whether any label changed.
func assign(points, centroids [][]float64, labels []int) bool {
	changed := false
	for i, p := range points {
		best, bestDist := 0, squaredDistance(p, centroids[0])
		for c := 1; c < len(centroids); c++ {
			if d := squaredDistance(p, centroids[c]); d < bestDist {
				best, bestDist = c, d
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}
	return changed
}

// updateCentroids returns the member means. Empty clusters keep their
// previous centroid.
func updateCentroids(points [][]float64, labels []int, prev [][]float64) [][]float64 {
	dim := len(points[0])
	sums := make([][]float64, len(prev))
	sizes := make([]int, len(prev))
	for c := range sums {
		sums[c] = make([]float64, dim)
	}
	for i, p := range points {
		floats.Add(sums[labels[i]], p)
		sizes[labels[i]]++
	}
	for c := range sums {
		if sizes[c] == 0 {
			copy(sums[c], prev[c])
			continue
		}
		floats.Scale(1/float64(sizes[c]), sums[c])
	}
	return sums
}

// initCentroidsPlusPlus picks the first centroid uniformly and each next one
// with probability proportional to its squared distance from the chosen set.
func initCentroidsPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	chosen := make(map[int]bool, k)
	centroids := make([][]float64, 0, k)
	pick := func(idx int) {
		chosen[idx] = true
		centroids = append(centroids, append([]float64(nil), points[idx]...))
	}
	pick(rng.Intn(len(points)))

	distSq := make([]float64, len(points))
	for len(centroids) < k {
		var sum float64
		for i, p := range points {
			d := squaredDistance(p, centroids[0])
			for _, c := range centroids[1:] {
				d = min(d, squaredDistance(p, c))
			}
			distSq[i] = d
			sum += d
		}

		// Fewer distinct points than clusters: take the next unused index.
		if sum == 0 {
			for i := range points {
				if !chosen[i] {
					pick(i)
					break
				}
			}
			continue
		}

		r := rng.Float64() * sum
		selected := -1
		var cumulative float64
		for i, d := range distSq {
			cumulative += d
			if d > 0 && cumulative >= r {
				selected = i
				break
			}
		}
		if selected == -1 {
			for i := len(distSq) - 1; i >= 0; i-- {
				if distSq[i] > 0 {
					selected = i
					break
				}
			}
		}
		pick(selected)
	}
	return centroids
}

func squaredDistance(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// meanVariance is the average per-dimension variance, used to scale the
// convergence tolerance to the data.
func meanVariance(points [][]float64) float64 {
	dim := len(points[0])
	if dim == 0 {
		return 0
	}
	mean := make([]float64, dim)
	for _, p := range points {
		floats.Add(mean, p)
	}
	floats.Scale(1/float64(len(points)), mean)

	var total float64
	for _, p := range points {
		total += squaredDistance(p, mean)
	}
	return total / float64(len(points)) / float64(dim)
}
