// Package distance provides the planar distance functions used by the
// clustering engine.
//
// All functions operate on gonum r2.Vec values:
//
//	d := distance.Euclidean(a, b)         // hypot(ax-bx, ay-by)
//	d2 := distance.SquaredEuclidean(a, b) // (ax-bx)^2 + (ay-by)^2
//	i, d := distance.Nearest(p, centroids)
//
// Euclidean is computed with math.Hypot, so it only returns zero for
// coordinates that compare equal.
package distance
