package kmeans

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/kmeans/internal/lloyd"
	"github.com/hupe1980/kmeans/internal/seed"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/spatial/r2"
)

// Strategy selects how initial centroids are chosen.
type Strategy = seed.Strategy

const (
	// StrategyPlusPlus is k-means++ distance-weighted sampling (default).
	StrategyPlusPlus = seed.StrategyPlusPlus
	// StrategyUniform draws k distinct points uniformly at random.
	StrategyUniform = seed.StrategyUniform
)

// ParseStrategy maps "kmeans++" or "uniform" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s, err := seed.ParseStrategy(name)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	return s, nil
}

// IterationStats describes one completed assign/update pass.
type IterationStats = lloyd.IterationStats

// Point is an immutable labeled planar coordinate.
// The label only identifies the point for the caller.
type Point struct {
	Label string  `json:"label" csv:"label" yaml:"label"`
	X     float64 `json:"x" csv:"x" yaml:"x"`
	Y     float64 `json:"y" csv:"y" yaml:"y"`
}

// Vec returns the coordinate of p.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func vecs(points []Point) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		out[i] = p.Vec()
	}
	return out
}

// Cluster partitions points into k groups: it seeds k centroids with the
// configured strategy and iterates until the centroids stop moving.
//
// Errors are InvalidKError, DegenerateSeedingWeightsError,
// EmptyCentroidGroupError, NotConvergedError, ErrInvalidOption or a context
// error. No partial result is returned.
func Cluster(ctx context.Context, points []Point, k int, opts ...Option) (*Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logger := o.logger.WithK(k).WithCount(len(points))
	pts := vecs(points)

	res, err := func() (*Result, error) {
		seeds, err := o.seed(ctx, logger, pts, k)
		if err != nil {
			return nil, err
		}
		return o.refine(ctx, logger, pts, seeds)
	}()

	o.record(ctx, logger, k, res, time.Since(start), err)
	return res, err
}

// SeedCentroids returns the k initial centroids Cluster would start from.
func SeedCentroids(points []Point, k int, opts ...Option) ([]r2.Vec, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	return o.seed(ctx, o.logger.WithK(k).WithCount(len(points)), vecs(points), k)
}

// Refine runs the assign/update iteration from the given centroids.
// The seeding options are ignored.
func Refine(ctx context.Context, points []Point, centroids []r2.Vec, opts ...Option) (*Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	k := len(centroids)
	logger := o.logger.WithK(k).WithCount(len(points))

	initial := make([]r2.Vec, k)
	copy(initial, centroids)

	res, err := o.refine(ctx, logger, vecs(points), initial)

	o.record(ctx, logger, k, res, time.Since(start), err)
	return res, err
}

func (o *options) seed(ctx context.Context, logger *Logger, pts []r2.Vec, k int) ([]r2.Vec, error) {
	start := time.Now()

	centroids, err := seed.Seed(o.strategy, pts, k, o.first, o.source)
	err = translateError(err, k)

	o.metricsCollector.RecordSeed(o.strategy, time.Since(start), err)
	logger.LogSeed(ctx, o.strategy, err)
	return centroids, err
}

func (o *options) refine(ctx context.Context, logger *Logger, pts, initial []r2.Vec) (*Result, error) {
	// Per-iteration logs: the first ten, then at most one per second.
	sometimes := rate.Sometimes{First: 10, Interval: time.Second}

	out, err := lloyd.Run(ctx, pts, initial, lloyd.Config{
		MaxIterations: o.maxIterations,
		Tolerance:     o.tolerance,
		Workers:       o.workers,
		Observer: func(s lloyd.IterationStats) {
			o.metricsCollector.RecordIteration(s.Iteration, s.Movement, s.Duration)
			sometimes.Do(func() { logger.LogIteration(ctx, s) })
		},
	})
	if err != nil {
		return nil, translateError(err, len(initial))
	}

	return newResult(initial, out), nil
}

func (o *options) record(ctx context.Context, logger *Logger, k int, res *Result, d time.Duration, err error) {
	iterations := 0
	inertia := 0.0
	if res != nil {
		iterations = res.Iterations
		inertia = res.Inertia
	}
	o.metricsCollector.RecordRun(k, iterations, d, err)
	logger.LogRun(ctx, iterations, inertia, err)
}
