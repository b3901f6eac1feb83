package kmeans_bench_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/testutil"
	"gonum.org/v1/gonum/spatial/r2"
)

func formatCount(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%dM", n/1000000)
	case n >= 1000:
		return fmt.Sprintf("%dK", n/1000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func blobs(n, k int) []kmeans.Point {
	gen := testutil.NewGenerator(42)
	centers := gen.UniformPoints(k, -100, 100)
	vecs := gen.ClusteredPoints(centers, n/k, 2)

	points := make([]kmeans.Point, len(vecs))
	for i, v := range vecs {
		points[i] = kmeans.Point{X: v.X, Y: v.Y}
	}
	return points
}

// BenchmarkSeed benchmarks both seeding strategies
func BenchmarkSeed(b *testing.B) {
	strategies := []kmeans.Strategy{kmeans.StrategyPlusPlus, kmeans.StrategyUniform}

	for _, s := range strategies {
		for _, n := range []int{1000, 100000} {
			b.Run(s.String()+"/"+formatCount(n), func(b *testing.B) {
				points := blobs(n, 16)
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := kmeans.SeedCentroids(points, 16,
						kmeans.WithStrategy(s),
						kmeans.WithSeed(int64(i)),
					)
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkRefine benchmarks the iteration from fixed seeds
func BenchmarkRefine(b *testing.B) {
	workers := []int{1, 4}

	for _, w := range workers {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			points := blobs(100000, 8)
			seeds := make([]r2.Vec, 8)
			for i := range seeds {
				seeds[i] = points[i*len(points)/8].Vec()
			}

			ctx := context.Background()
			b.ResetTimer()

			for _i := 0; _i < b.N; _i++ {
				_, err := kmeans.Refine(ctx, points, seeds,
					kmeans.WithWorkers(w),
					kmeans.WithMaxIterations(0),
				)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCluster benchmarks seeding plus iteration end to end
func BenchmarkCluster(b *testing.B) {
	sizes := []int{1000, 10000}

	for _, n := range sizes {
		b.Run(formatCount(n), func(b *testing.B) {
			points := blobs(n, 5)
			ctx := context.Background()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, err := kmeans.Cluster(ctx, points, 5, kmeans.WithSeed(int64(i)))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
