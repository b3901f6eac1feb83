// Package testutil provides testing utilities for the clustering engine.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded point generators, the five-point reference scenario,
// and a scripted rng.Source that replays fixed draws.
//
// # Point Generation
//
//	gen := testutil.NewGenerator(seed)
//	pts := gen.UniformPoints(100, -10, 10)
//	blobs := gen.ClusteredPoints(centers, 20, 0.1)
//
// # Scripted Randomness
//
//	src := &testutil.ScriptedSource{Fractions: []float64{0.9, 0.1}}
//	centroids, _ := seed.PlusPlus(pts, 3, 3, src)
package testutil
