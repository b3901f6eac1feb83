package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     r2.Vec
		expected float64
	}{
		{"Zero", r2.Vec{}, r2.Vec{}, 0},
		{"Identical", r2.Vec{X: 1.5, Y: -2}, r2.Vec{X: 1.5, Y: -2}, 0},
		{"Pythagorean", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 3, Y: 4}, 5},
		{"Negative", r2.Vec{X: -1, Y: -1}, r2.Vec{X: 2, Y: 3}, 5},
		{"Tiny", r2.Vec{X: 1e-200, Y: 0}, r2.Vec{}, 1e-200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Euclidean(tt.a, tt.b), 1e-12)
			assert.InDelta(t, tt.expected, Euclidean(tt.b, tt.a), 1e-12)
		})
	}

	assert.Greater(t, Euclidean(r2.Vec{X: 1e-200}, r2.Vec{}), 0.0)
}

func TestSquaredEuclidean(t *testing.T) {
	assert.Equal(t, 25.0, SquaredEuclidean(r2.Vec{}, r2.Vec{X: 3, Y: 4}))
	assert.Equal(t, 8.0, SquaredEuclidean(r2.Vec{X: 1, Y: -1}, r2.Vec{X: -1, Y: 1}))
}

func TestNearest(t *testing.T) {
	centroids := []r2.Vec{
		{X: 0, Y: 0},
		{X: 10, Y: 10},
		{X: 20, Y: 20},
	}

	i, d := Nearest(r2.Vec{X: 1, Y: 1}, centroids)
	assert.Equal(t, 0, i)
	assert.InDelta(t, math.Sqrt2, d, 1e-12)

	i, _ = Nearest(r2.Vec{X: 19, Y: 19}, centroids)
	assert.Equal(t, 2, i)

	t.Run("TieBreaksToFirst", func(t *testing.T) {
		i, d := Nearest(r2.Vec{X: 5, Y: 5}, centroids)
		assert.Equal(t, 0, i)
		assert.InDelta(t, Euclidean(r2.Vec{X: 5, Y: 5}, r2.Vec{}), d, 1e-12)
	})

	t.Run("DuplicateCentroids", func(t *testing.T) {
		dup := []r2.Vec{{X: 1, Y: 1}, {X: 1, Y: 1}}
		i, _ := Nearest(r2.Vec{X: 2, Y: 2}, dup)
		assert.Equal(t, 0, i)
	})

	t.Run("Empty", func(t *testing.T) {
		i, d := Nearest(r2.Vec{}, nil)
		assert.Equal(t, -1, i)
		assert.True(t, math.IsInf(d, 1))
	})
}

func TestMinDistance(t *testing.T) {
	centroids := []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 3}}
	assert.InDelta(t, 1.0, MinDistance(r2.Vec{X: 0, Y: 2}, centroids), 1e-12)
}
