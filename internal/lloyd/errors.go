package lloyd

import "fmt"

// ErrInvalidK indicates a centroid count outside [1, number of points].
type ErrInvalidK struct {
	K int
	N int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k: %d (points: %d)", e.K, e.N)
}

// ErrEmptyGroup indicates that no point was assigned to a centroid, so its
// mean is undefined. Iteration is 1-based.
type ErrEmptyGroup struct {
	Iteration int
	Centroid  int
}

func (e *ErrEmptyGroup) Error() string {
	return fmt.Sprintf("centroid %d has no assigned points in iteration %d", e.Centroid, e.Iteration)
}

// ErrNotConverged indicates that MaxIterations passes completed without
// reaching the tolerance.
type ErrNotConverged struct {
	Iterations int
	Movement   float64
}

func (e *ErrNotConverged) Error() string {
	return fmt.Sprintf("not converged after %d iterations (movement %g)", e.Iterations, e.Movement)
}
