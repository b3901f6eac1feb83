package distance

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Euclidean returns the Euclidean distance between a and b.
func Euclidean(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// SquaredEuclidean returns the squared Euclidean distance between a and b.
func SquaredEuclidean(a, b r2.Vec) float64 {
	return r2.Norm2(r2.Sub(a, b))
}

// Nearest returns the index of the centroid closest to p and its distance.
//
// Ties resolve to the lowest index: a later centroid must be strictly
// closer to replace the current best. Returns (-1, +Inf) for no centroids.
func Nearest(p r2.Vec, centroids []r2.Vec) (int, float64) {
	best := -1
	minDist := math.Inf(1)

	for i, c := range centroids {
		d := Euclidean(p, c)
		if d < minDist {
			minDist = d
			best = i
		}
	}

	return best, minDist
}

// MinDistance returns the distance from p to its nearest centroid.
func MinDistance(p r2.Vec, centroids []r2.Vec) float64 {
	_, d := Nearest(p, centroids)
	return d
}
