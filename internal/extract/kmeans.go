package extract

import (
	"math"
	"math/rand"

	"pencilmatch/internal/colour"
)

// point3 represents a point in 3D RGB colour space.
type point3 struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3) distance(other point3) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// kMeans clusters RGB points into k groups. The random source is seeded
// explicitly so repeated runs over the same image produce the same
// palette.
type kMeans struct {
	k             int
	maxIterations int
	convergence   float64
	rng           *rand.Rand
}

func newKMeans(k int, seed int64) *kMeans {
	return &kMeans{
		k:             k,
		maxIterations: 20,
		convergence:   2.0,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// toPoints converts pixels to 3D points.
func toPoints(pixels []colour.RGB) []point3 {
	points := make([]point3, len(pixels))
	for i, p := range pixels {
		points[i] = point3{
			R: float64(p.R),
			G: float64(p.G),
			B: float64(p.B),
		}
	}
	return points
}

// fit runs k-means over the points and returns the final centroids with
// the per-point cluster assignments.
func (km *kMeans) fit(points []point3) ([]point3, []int) {
	if len(points) == 0 || km.k == 0 {
		return nil, nil
	}

	centroids := km.initCentroids(points)
	assignments := make([]int, len(points))

	for iter := 0; iter < km.maxIterations; iter++ {
		// Assign each point to its nearest centroid.
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// If very few assignments changed (< 1%), we've converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := km.recalculateCentroids(points, assignments)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		avgMovement := totalMovement / float64(km.k)

		centroids = newCentroids

		// If centroids barely moved, we've converged.
		if avgMovement < km.convergence {
			break
		}
	}

	// Final assignment against the settled centroids.
	for i, point := range points {
		assignments[i] = nearestCentroid(point, centroids)
	}

	return centroids, assignments
}

// initCentroids chooses initial centroids using the k-means++ scheme,
// which spreads the seeds across the colour distribution.
func (km *kMeans) initCentroids(points []point3) []point3 {
	centroids := make([]point3, 0, km.k)
	centroids = append(centroids, points[km.rng.Intn(len(points))])

	for len(centroids) < km.k {
		// Squared distance from each point to its nearest centroid.
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if dist := point.distance(centroid); dist < minDist {
					minDist = dist
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// All remaining points coincide with existing centroids
			// (a solid-colour image). Duplicate the last centroid with
			// a tiny perturbation so we still end up with k clusters.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3{
				R: last.R + 0.1,
				G: last.G + 0.1,
				B: last.B + 0.1,
			})
			continue
		}

		// Pick the next centroid with probability proportional to
		// squared distance.
		target := km.rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3, centroids []point3) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions from the points
// assigned to each cluster.
func (km *kMeans) recalculateCentroids(points []point3, assignments []int) []point3 {
	sums := make([]point3, km.k)
	counts := make([]int, km.k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3, km.k)
	for i := 0; i < km.k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			// Empty cluster - reseed from the data.
			centroids[i] = points[km.rng.Intn(len(points))]
		}
	}

	return centroids
}

// predict assigns every point to its nearest centroid. Used to project
// the fitted clusters back onto the full unfiltered image.
func predict(points []point3, centroids []point3) []int {
	assignments := make([]int, len(points))
	for i, point := range points {
		assignments[i] = nearestCentroid(point, centroids)
	}
	return assignments
}
