package diffusion

import (
	"fmt"

	"github.com/san-kum/ringsim/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Step replaces p with f·p. f must be len(p)×len(p).
func Step(f mat.Matrix, p []float64) error {
	if f == nil {
		return fmt.Errorf("diffusion: nil matrix: %w", dynamo.ErrDimensionMismatch)
	}
	r, c := f.Dims()
	if r != len(p) || c != len(p) {
		return fmt.Errorf("diffusion: matrix is %dx%d, vector has length %d: %w", r, c, len(p), dynamo.ErrDimensionMismatch)
	}
	if len(p) == 0 {
		return nil
	}

	// v shares p's backing array; the product reads only from the snapshot.
	v := mat.NewVecDense(len(p), p)
	old := mat.VecDenseCopyOf(v)
	v.MulVec(f, old)
	return nil
}

// Field is the continuum model: a density vector evolved by a fixed operator.
type Field struct {
	f    mat.Matrix
	p    []float64
	mass float64
}

// NewField takes ownership of p. f is only read.
func NewField(f mat.Matrix, p []float64) (*Field, error) {
	if f == nil {
		return nil, fmt.Errorf("diffusion: nil matrix: %w", dynamo.ErrDimensionMismatch)
	}
	r, c := f.Dims()
	if r != len(p) || c != len(p) {
		return nil, fmt.Errorf("diffusion: matrix is %dx%d, vector has length %d: %w", r, c, len(p), dynamo.ErrDimensionMismatch)
	}
	return &Field{f: f, p: p, mass: dynamo.State(p).Sum()}, nil
}

func (fd *Field) Name() string { return "diffusion" }
func (fd *Field) Sites() int   { return len(fd.p) }

func (fd *Field) Advance() error {
	return Step(fd.f, fd.p)
}

// Values returns a copy of the raw density vector.
func (fd *Field) Values() []float64 {
	return dynamo.State(fd.p).Clone()
}

// Density returns the density normalized by the initial mass.
func (fd *Field) Density() dynamo.State {
	s := dynamo.State(fd.p).Clone()
	if fd.mass == 0 {
		return s
	}
	for i := range s {
		s[i] /= fd.mass
	}
	return s
}
