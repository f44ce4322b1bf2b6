package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of every input validation error.
	ErrInvalidInput = errors.New("kdtree: invalid input")

	// ErrEmptyInput is returned when a tree is built from zero points.
	ErrEmptyInput = fmt.Errorf("%w: number of points must be > 0", ErrInvalidInput)

	// ErrNilMetric is returned when a nil Metric is assigned to a tree.
	ErrNilMetric = fmt.Errorf("%w: metric is nil", ErrInvalidInput)

	// ErrNegativeRadius is reported when a radius query is given r < 0 or NaN.
	ErrNegativeRadius = fmt.Errorf("%w: radius must be >= 0", ErrInvalidInput)

	// ErrInvalidK is reported when a k-nearest query asks for fewer than one point.
	ErrInvalidK = fmt.Errorf("%w: k must be >= 1", ErrInvalidInput)
)

// DimensionMismatchError indicates that a point or metric does not have the
// dimensionality the tree was built with.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("kdtree: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrInvalidInput }
