// Package rng provides the seedable random source used by centroid seeding.
//
// Seeding only needs two primitives:
//
//	idx := src.Sample(n, k)     // k distinct indices out of [0, n)
//	r := src.Uniform(total)     // uniform real in [0, total)
//
// Any type implementing Source can be injected. The default implementation,
// Rand, wraps math/rand with a fixed seed so that a run can be reproduced:
//
//	src := rng.New(42)
//	res, _ := kmeans.Cluster(ctx, points, 3, kmeans.WithSource(src))
package rng
