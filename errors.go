package kmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmeans/internal/lloyd"
	"github.com/hupe1980/kmeans/internal/seed"
)

var (
	// ErrInvalidK is returned when k is below one or exceeds the number of points.
	ErrInvalidK = errors.New("k out of range")

	// ErrEmptyCentroidGroup is returned when a centroid ends an assign phase
	// without any points.
	ErrEmptyCentroidGroup = errors.New("empty centroid group")

	// ErrDegenerateSeedingWeights is returned when k-means++ runs out of
	// points that are distinct from the already selected centroids.
	ErrDegenerateSeedingWeights = errors.New("degenerate seeding weights")

	// ErrNotConverged is returned when the iteration cap is reached.
	ErrNotConverged = errors.New("not converged")

	// ErrInvalidOption is returned for option values outside their domain.
	ErrInvalidOption = errors.New("invalid option")
)

// InvalidKError reports the rejected k and the number of available points.
//
// errors.Is(err, ErrInvalidK) holds for every InvalidKError.
type InvalidKError struct {
	K     int
	N     int
	cause error
}

func (e *InvalidKError) Error() string {
	return fmt.Sprintf("%v: k=%d, points=%d", ErrInvalidK, e.K, e.N)
}

func (e *InvalidKError) Is(target error) bool { return target == ErrInvalidK }

func (e *InvalidKError) Unwrap() error { return e.cause }

// EmptyCentroidGroupError reports which centroid lost all of its points and
// in which 1-based iteration.
type EmptyCentroidGroupError struct {
	K         int
	Iteration int
	Centroid  int
	cause     error
}

func (e *EmptyCentroidGroupError) Error() string {
	return fmt.Sprintf("%v: centroid %d of %d in iteration %d", ErrEmptyCentroidGroup, e.Centroid, e.K, e.Iteration)
}

func (e *EmptyCentroidGroupError) Is(target error) bool { return target == ErrEmptyCentroidGroup }

func (e *EmptyCentroidGroupError) Unwrap() error { return e.cause }

// DegenerateSeedingWeightsError reports how many of the K centroids were
// selected before the weights collapsed to zero.
type DegenerateSeedingWeightsError struct {
	K        int
	Selected int
	cause    error
}

func (e *DegenerateSeedingWeightsError) Error() string {
	return fmt.Sprintf("%v: %d of %d centroids selected", ErrDegenerateSeedingWeights, e.Selected, e.K)
}

func (e *DegenerateSeedingWeightsError) Is(target error) bool {
	return target == ErrDegenerateSeedingWeights
}

func (e *DegenerateSeedingWeightsError) Unwrap() error { return e.cause }

// NotConvergedError reports the completed iterations and the last total
// centroid movement.
type NotConvergedError struct {
	K          int
	Iterations int
	Movement   float64
	cause      error
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("%v: k=%d after %d iterations (movement %g)", ErrNotConverged, e.K, e.Iterations, e.Movement)
}

func (e *NotConvergedError) Is(target error) bool { return target == ErrNotConverged }

func (e *NotConvergedError) Unwrap() error { return e.cause }

// translateError maps internal errors onto the public error types.
// k is the requested number of centroids.
func translateError(err error, k int) error {
	if err == nil {
		return nil
	}

	var sk *seed.ErrInvalidK
	if errors.As(err, &sk) {
		return &InvalidKError{K: sk.K, N: sk.N, cause: err}
	}
	var lk *lloyd.ErrInvalidK
	if errors.As(err, &lk) {
		return &InvalidKError{K: lk.K, N: lk.N, cause: err}
	}

	var dw *seed.ErrDegenerateWeights
	if errors.As(err, &dw) {
		return &DegenerateSeedingWeightsError{K: dw.K, Selected: dw.Selected, cause: err}
	}

	var eg *lloyd.ErrEmptyGroup
	if errors.As(err, &eg) {
		return &EmptyCentroidGroupError{K: k, Iteration: eg.Iteration, Centroid: eg.Centroid, cause: err}
	}

	var nc *lloyd.ErrNotConverged
	if errors.As(err, &nc) {
		return &NotConvergedError{K: k, Iterations: nc.Iterations, Movement: nc.Movement, cause: err}
	}

	var fi *seed.ErrInvalidFirst
	if errors.As(err, &fi) {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	if errors.Is(err, seed.ErrUnknownStrategy) {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	return err
}
