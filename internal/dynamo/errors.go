package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for ring operations.
var (
	// ErrInvalidState indicates a state with values outside its domain (NaN, Inf,
	// negative counts, positions off the ring).
	ErrInvalidState = errors.New("dynamo: invalid state")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrDimensionMismatch indicates mismatched matrix/vector shapes.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch")

	// ErrRingTooSmall indicates a ring with too few sites for the operation.
	ErrRingTooSmall = errors.New("dynamo: ring too small")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
