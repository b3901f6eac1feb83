package lloyd

import (
	"context"
	"time"

	"github.com/hupe1980/kmeans/distance"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// Assignment maps a point index to a centroid index.
type Assignment []int

// Groups returns the point indices of every centroid, in point order.
func (a Assignment) Groups(k int) [][]int {
	groups := make([][]int, k)
	for i, c := range a {
		groups[c] = append(groups[c], i)
	}
	return groups
}

// IterationStats describes one completed assign/update pass.
type IterationStats struct {
	Iteration int
	Movement  float64
	Inertia   float64
	Duration  time.Duration
}

// Config controls a Run.
type Config struct {
	// MaxIterations caps the number of passes. Zero means unbounded.
	MaxIterations int
	// Tolerance is the largest total centroid movement that counts as
	// converged. Zero requires exact convergence.
	Tolerance float64
	// Workers is the number of goroutines used by the assign phase.
	// Values <= 1 assign serially.
	Workers int
	// Observer, if set, is called after every pass.
	Observer func(IterationStats)
}

// Outcome is the converged state of a Run.
type Outcome struct {
	Centroids  []r2.Vec
	Assignment Assignment
	Iterations int
	Movement   float64
	Inertia    float64
}

// nearest returns the centroid for p. A centroid with exactly p's
// coordinates wins immediately; otherwise the first minimal one does.
func nearest(p r2.Vec, centroids []r2.Vec) int {
	for i, c := range centroids {
		if c == p {
			return i
		}
	}
	i, _ := distance.Nearest(p, centroids)
	return i
}

// Assign maps every point to its nearest centroid.
func Assign(points, centroids []r2.Vec) Assignment {
	a := make(Assignment, len(points))
	for i, p := range points {
		a[i] = nearest(p, centroids)
	}
	return a
}

// AssignParallel is Assign split across workers goroutines. Each worker
// owns a contiguous range of points; the result is identical to Assign.
func AssignParallel(ctx context.Context, points, centroids []r2.Vec, workers int) (Assignment, error) {
	if workers <= 1 || len(points) < 2 {
		return Assign(points, centroids), nil
	}

	a := make(Assignment, len(points))
	g, ctx := errgroup.WithContext(ctx)

	chunkSize := (len(points) + workers - 1) / workers
	for start := 0; start < len(points); start += chunkSize {
		start := start
		end := min(start+chunkSize, len(points))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				a[i] = nearest(points[i], centroids)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return a, nil
}

// Update returns the mean of every centroid's group. iteration is only used
// to annotate ErrEmptyGroup.
func Update(points []r2.Vec, a Assignment, k, iteration int) ([]r2.Vec, error) {
	sums := make([]r2.Vec, k)
	counts := make([]int, k)

	for i, c := range a {
		sums[c] = r2.Add(sums[c], points[i])
		counts[c]++
	}

	centroids := make([]r2.Vec, k)
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			return nil, &ErrEmptyGroup{Iteration: iteration, Centroid: c}
		}
		n := float64(counts[c])
		centroids[c] = r2.Vec{X: sums[c].X / n, Y: sums[c].Y / n}
	}
	return centroids, nil
}

// Movement sums the distance every centroid moved, matched by index.
func Movement(prev, next []r2.Vec) float64 {
	var sum float64
	for i := range prev {
		sum += distance.Euclidean(prev[i], next[i])
	}
	return sum
}

// Inertia is the sum of squared distances from points to their centroid.
func Inertia(points, centroids []r2.Vec, a Assignment) float64 {
	var sum float64
	for i, c := range a {
		sum += distance.SquaredEuclidean(points[i], centroids[c])
	}
	return sum
}

// Run iterates from the initial centroids until convergence.
func Run(ctx context.Context, points, initial []r2.Vec, cfg Config) (*Outcome, error) {
	k := len(initial)
	if k < 1 || k > len(points) {
		return nil, &ErrInvalidK{K: k, N: len(points)}
	}

	centroids := initial
	for iteration := 1; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()

		a, err := AssignParallel(ctx, points, centroids, cfg.Workers)
		if err != nil {
			return nil, err
		}

		next, err := Update(points, a, k, iteration)
		if err != nil {
			return nil, err
		}

		movement := Movement(centroids, next)
		inertia := Inertia(points, next, a)

		if cfg.Observer != nil {
			cfg.Observer(IterationStats{
				Iteration: iteration,
				Movement:  movement,
				Inertia:   inertia,
				Duration:  time.Since(start),
			})
		}

		if movement <= cfg.Tolerance {
			return &Outcome{
				Centroids:  next,
				Assignment: a,
				Iterations: iteration,
				Movement:   movement,
				Inertia:    inertia,
			}, nil
		}

		if cfg.MaxIterations > 0 && iteration >= cfg.MaxIterations {
			return nil, &ErrNotConverged{Iterations: iteration, Movement: movement}
		}

		centroids = next
	}
}
