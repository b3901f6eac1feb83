package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runs       *prometheus.CounterVec
//	    iterations prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRun(k, iterations int, duration time.Duration, err error) {
//	    p.runs.WithLabelValues(status(err)).Inc()
//	    p.iterations.Observe(float64(iterations))
//	}
type MetricsCollector interface {
	// RecordSeed is called after every seeding attempt.
	RecordSeed(strategy Strategy, duration time.Duration, err error)

	// RecordIteration is called after every assign/update pass.
	RecordIteration(iteration int, movement float64, duration time.Duration)

	// RecordRun is called after every Cluster or Refine call.
	// iterations is zero when the run failed.
	RecordRun(k, iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSeed(Strategy, time.Duration, error)   {}
func (NoopMetricsCollector) RecordIteration(int, float64, time.Duration) {}
func (NoopMetricsCollector) RecordRun(int, int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SeedCount      atomic.Int64
	SeedErrors     atomic.Int64
	SeedTotalNanos atomic.Int64
	IterationCount atomic.Int64
	IterationNanos atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunTotalNanos  atomic.Int64
	RunIterations  atomic.Int64
}

// RecordSeed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSeed(_ Strategy, duration time.Duration, err error) {
	b.SeedCount.Add(1)
	b.SeedTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SeedErrors.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_ int, _ float64, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationNanos.Add(duration.Nanoseconds())
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ int, iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	b.RunIterations.Add(int64(iterations))
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SeedCount:         b.SeedCount.Load(),
		SeedErrors:        b.SeedErrors.Load(),
		SeedAvgNanos:      avg(b.SeedTotalNanos.Load(), b.SeedCount.Load()),
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: avg(b.IterationNanos.Load(), b.IterationCount.Load()),
		RunCount:          b.RunCount.Load(),
		RunErrors:         b.RunErrors.Load(),
		RunAvgNanos:       avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
		RunIterations:     b.RunIterations.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SeedCount         int64
	SeedErrors        int64
	SeedAvgNanos      int64
	IterationCount    int64
	IterationAvgNanos int64
	RunCount          int64
	RunErrors         int64
	RunAvgNanos       int64
	RunIterations     int64
}
