package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/kmeans/rng"
	"gonum.org/v1/gonum/spatial/r2"
)

// Generator produces seeded planar point sets.
// It is thread-safe.
type Generator struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewGenerator creates a new Generator with the specified seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the generator to its initial seed.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rand.Seed(g.seed)
}

// UniformPoints generates num points with both coordinates in [minVal, maxVal).
func (g *Generator) UniformPoints(num int, minVal, maxVal float64) []r2.Vec {
	g.mu.Lock()
	defer g.mu.Unlock()

	span := maxVal - minVal
	points := make([]r2.Vec, num)
	for i := range points {
		points[i] = r2.Vec{
			X: minVal + g.rand.Float64()*span,
			Y: minVal + g.rand.Float64()*span,
		}
	}
	return points
}

// ClusteredPoints generates perCenter points around each center with
// Gaussian noise of the given spread. Points are emitted center by center.
func (g *Generator) ClusteredPoints(centers []r2.Vec, perCenter int, spread float64) []r2.Vec {
	g.mu.Lock()
	defer g.mu.Unlock()

	points := make([]r2.Vec, 0, len(centers)*perCenter)
	for _, c := range centers {
		for _i := 0; _i < perCenter; _i++ {
			points = append(points, r2.Vec{
				X: c.X + g.rand.NormFloat64()*spread,
				Y: c.Y + g.rand.NormFloat64()*spread,
			})
		}
	}
	return points
}

// GridPoints returns the points of a rows x cols unit grid, row-major.
// Grid centers are equidistant from the surrounding corners, which makes
// it a tie-break fixture.
func GridPoints(rows, cols int) []r2.Vec {
	points := make([]r2.Vec, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points = append(points, r2.Vec{X: float64(c), Y: float64(r)})
		}
	}
	return points
}

// ScenarioLabels are the labels of the reference scenario, in input order.
var ScenarioLabels = []string{"a", "b", "c", "d", "e"}

// ScenarioPoints returns the five-point reference scenario a..e.
// Point e is the outlier along the y-axis.
func ScenarioPoints() []r2.Vec {
	return []r2.Vec{
		{X: -5.379713, Y: -3.362104}, // a
		{X: -3.487105, Y: -1.724432}, // b
		{X: 0.450614, Y: -3.302219},  // c
		{X: -0.392370, Y: -3.963704}, // d
		{X: -3.453687, Y: 3.424321},  // e
	}
}

// ScriptedSource replays fixed draws. It panics when a script runs dry,
// which makes unexpected draws visible in tests.
type ScriptedSource struct {
	// Samples are returned by successive Sample calls.
	Samples [][]int
	// Fractions are scaled by the upper bound of successive Uniform calls.
	// Each must be in [0, 1).
	Fractions []float64

	mu         sync.Mutex
	sampleIdx  int
	uniformIdx int
}

var _ rng.Source = (*ScriptedSource)(nil)

// Sample implements rng.Source.
func (s *ScriptedSource) Sample(n, k int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sampleIdx >= len(s.Samples) {
		panic(fmt.Sprintf("testutil: unexpected Sample(%d, %d)", n, k))
	}
	out := s.Samples[s.sampleIdx]
	s.sampleIdx++
	return out
}

// Uniform implements rng.Source.
func (s *ScriptedSource) Uniform(upper float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uniformIdx >= len(s.Fractions) {
		panic(fmt.Sprintf("testutil: unexpected Uniform(%g)", upper))
	}
	f := s.Fractions[s.uniformIdx]
	s.uniformIdx++
	return f * upper
}

// Draws returns how many Sample and Uniform calls were served.
func (s *ScriptedSource) Draws() (samples, uniforms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sampleIdx, s.uniformIdx
}
