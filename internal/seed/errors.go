package seed

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned for an unsupported Strategy value.
var ErrUnknownStrategy = errors.New("unknown seeding strategy")

// ErrInvalidK indicates that k is outside [1, number of points].
type ErrInvalidK struct {
	K int
	N int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k: %d (points: %d)", e.K, e.N)
}

// ErrInvalidFirst indicates an out-of-range starting point index.
type ErrInvalidFirst struct {
	Index int
	N     int
}

func (e *ErrInvalidFirst) Error() string {
	return fmt.Sprintf("invalid first centroid index: %d (points: %d)", e.Index, e.N)
}

// ErrDegenerateWeights indicates that every point coincides with an already
// selected centroid, so the weighted draw has no mass.
type ErrDegenerateWeights struct {
	K        int
	Selected int
}

func (e *ErrDegenerateWeights) Error() string {
	return fmt.Sprintf("k-means++ weights sum to zero after %d of %d centroids", e.Selected, e.K)
}
