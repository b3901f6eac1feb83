package kmeans

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kmeans/internal/lloyd"
	"gonum.org/v1/gonum/spatial/r2"
)

// Result is a converged clustering.
type Result struct {
	// Seeds are the centroids the iteration started from.
	Seeds []r2.Vec
	// Centroids are the converged centroids, in seed order.
	Centroids []r2.Vec
	// Assignment maps each point index to an index into Centroids.
	Assignment []int
	// Iterations is the number of assign/update passes performed.
	Iterations int
	// Inertia is the sum of squared distances from the points to their
	// centroid.
	Inertia float64

	groups []*roaring.Bitmap
}

func newResult(seeds []r2.Vec, out *lloyd.Outcome) *Result {
	groups := make([]*roaring.Bitmap, len(out.Centroids))
	for i := range groups {
		groups[i] = roaring.New()
	}
	for i, c := range out.Assignment {
		groups[c].Add(uint32(i))
	}
	for _, g := range groups {
		g.RunOptimize()
	}

	return &Result{
		Seeds:      seeds,
		Centroids:  out.Centroids,
		Assignment: out.Assignment,
		Iterations: out.Iterations,
		Inertia:    out.Inertia,
		groups:     groups,
	}
}

// K returns the number of centroids.
func (r *Result) K() int {
	return len(r.Centroids)
}

// Members returns a copy of the point indices assigned to centroid c.
func (r *Result) Members(c int) *roaring.Bitmap {
	return r.groups[c].Clone()
}

// Group returns the point indices assigned to centroid c in ascending order.
func (r *Result) Group(c int) []int {
	out := make([]int, 0, r.groups[c].GetCardinality())
	it := r.groups[c].Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Sizes returns the number of points per centroid.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.groups))
	for i, g := range r.groups {
		sizes[i] = int(g.GetCardinality())
	}
	return sizes
}

// CentroidOf returns the centroid point i is assigned to.
func (r *Result) CentroidOf(i int) r2.Vec {
	return r.Centroids[r.Assignment[i]]
}

// ByLabel maps each point label to the coordinate of its centroid.
// points must be the slice the result was computed from. Points sharing a
// label collapse to the last one.
func (r *Result) ByLabel(points []Point) map[string]r2.Vec {
	out := make(map[string]r2.Vec, len(points))
	for i, p := range points {
		out[p.Label] = r.CentroidOf(i)
	}
	return out
}
