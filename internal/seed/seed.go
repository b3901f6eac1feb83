package seed

import (
	"fmt"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/rng"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Strategy selects how initial centroids are chosen.
type Strategy int

const (
	// StrategyPlusPlus is k-means++ distance-weighted sampling.
	StrategyPlusPlus Strategy = iota
	// StrategyUniform is uniform sampling without replacement.
	StrategyUniform
)

func (s Strategy) String() string {
	switch s {
	case StrategyPlusPlus:
		return "kmeans++"
	case StrategyUniform:
		return "uniform"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "kmeans++", "plusplus", "++", "":
		return StrategyPlusPlus, nil
	case "uniform", "random":
		return StrategyUniform, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// NoFirst requests a random first centroid for PlusPlus.
const NoFirst = -1

// Seed dispatches to the given strategy. first is only consulted by
// StrategyPlusPlus.
func Seed(s Strategy, points []r2.Vec, k, first int, src rng.Source) ([]r2.Vec, error) {
	switch s {
	case StrategyPlusPlus:
		return PlusPlus(points, k, first, src)
	case StrategyUniform:
		return Uniform(points, k, src)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

func validateK(points []r2.Vec, k int) error {
	if k < 1 || k > len(points) {
		return &ErrInvalidK{K: k, N: len(points)}
	}
	return nil
}

// Uniform draws k distinct points uniformly at random and returns their
// coordinates in draw order.
func Uniform(points []r2.Vec, k int, src rng.Source) ([]r2.Vec, error) {
	if err := validateK(points, k); err != nil {
		return nil, err
	}

	idx := src.Sample(len(points), k)
	centroids := make([]r2.Vec, len(idx))
	for i, p := range idx {
		centroids[i] = points[p]
	}
	return centroids, nil
}

// PlusPlus runs k-means++ seeding.
//
// The first centroid is points[first], or a uniform draw when first is
// NoFirst. Every following centroid is picked by a roulette walk over the
// points in input order, weighted by the distance to the nearest centroid
// selected so far.
func PlusPlus(points []r2.Vec, k, first int, src rng.Source) ([]r2.Vec, error) {
	if err := validateK(points, k); err != nil {
		return nil, err
	}
	if first < NoFirst || first >= len(points) {
		return nil, &ErrInvalidFirst{Index: first, N: len(points)}
	}
	if first == NoFirst {
		first = src.Sample(len(points), 1)[0]
	}

	centroids := make([]r2.Vec, 1, k)
	centroids[0] = points[first]

	// minDist tracks each point's distance to its nearest chosen centroid.
	minDist := make([]float64, len(points))
	for i, p := range points {
		minDist[i] = distance.MinDistance(p, centroids)
	}

	for len(centroids) < k {
		total := floats.Sum(minDist)
		if total == 0 {
			return nil, &ErrDegenerateWeights{K: k, Selected: len(centroids)}
		}

		chosen := roulette(minDist, src.Uniform(total))
		c := points[chosen]
		centroids = append(centroids, c)

		for i, p := range points {
			if d := distance.Euclidean(p, c); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	return centroids, nil
}

// roulette walks weights subtracting each from r and returns the first
// positive-weight index at which r drops to zero or below. Zero-weight
// entries are never returned. If rounding leaves r positive after the walk,
// the last positive-weight index is returned.
func roulette(weights []float64, r float64) int {
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		r -= w
		if r <= 0 {
			return i
		}
	}
	return last
}
