package kmeans

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hupe1980/kmeans/internal/seed"
	"github.com/hupe1980/kmeans/rng"
)

// DefaultMaxIterations is the iteration cap applied unless WithMaxIterations
// overrides it.
const DefaultMaxIterations = 1000

type options struct {
	strategy         Strategy
	first            int
	source           rng.Source
	maxIterations    int
	tolerance        float64
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
	err              error
}

func defaultOptions() options {
	return options{
		strategy:         StrategyPlusPlus,
		first:            seed.NoFirst,
		maxIterations:    DefaultMaxIterations,
		workers:          1,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func newOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.source == nil {
		o.source = rng.New(time.Now().UnixNano())
	}
	return o, nil
}

func (o *options) invalid(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrInvalidOption, fmt.Sprintf(format, args...))
	}
}

// Option configures a clustering run.
type Option func(*options)

// WithStrategy selects the seeding strategy. Defaults to StrategyPlusPlus.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		if s != StrategyPlusPlus && s != StrategyUniform {
			o.invalid("unknown strategy %v", s)
			return
		}
		o.strategy = s
	}
}

// WithFirstCentroid fixes the first k-means++ centroid to points[index].
// Without it the first centroid is drawn uniformly at random.
// Ignored by StrategyUniform.
func WithFirstCentroid(index int) Option {
	return func(o *options) {
		if index < 0 {
			o.invalid("first centroid index %d", index)
			return
		}
		o.first = index
	}
}

// WithSource injects the random source used for seeding.
//
// If nil is passed (or the option is omitted) a time-seeded source is used.
func WithSource(src rng.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSeed is a shortcut for WithSource(rng.New(seed)).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.source = rng.New(seed)
	}
}

// WithMaxIterations caps the number of assign/update passes. A run that
// hits the cap fails with a NotConvergedError.
//
// Zero removes the cap: the run only ends on convergence.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.invalid("max iterations %d", n)
			return
		}
		o.maxIterations = n
	}
}

// WithTolerance treats a total centroid movement of at most eps as
// converged. The default of zero requires the centroids to stop moving
// exactly.
func WithTolerance(eps float64) Option {
	return func(o *options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.invalid("tolerance %g", eps)
			return
		}
		o.tolerance = eps
	}
}

// WithWorkers spreads the assign phase across n goroutines.
// Results are identical to the serial run. Values <= 1 run serially.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures structured logging for clustering runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelDebug)
//	res, _ := kmeans.Cluster(ctx, points, 3, kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	res, _ := kmeans.Cluster(ctx, points, 3, kmeans.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
