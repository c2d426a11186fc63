// Package diffusion implements explicit finite-difference diffusion on a ring.
//
// One time step is p ← F·p, where F is the N×N periodic tridiagonal operator
//
//	F[i][i]       = 1 - 2α
//	F[i][i-1 mod N] = α
//	F[i][i+1 mod N] = α
//
// with α = D·dt/dx². F is symmetric and every row sums to one, so the total
// mass of p is conserved. The scheme is stable only for α ≤ 0.5; this is not
// checked by [BuildMatrix]. With α > 0.5 the densities oscillate and leave
// [0, 1] after a few steps.
package diffusion

import (
	"fmt"

	"github.com/san-kum/ringsim/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Alpha returns the dimensionless coefficient D·dt/dx².
func Alpha(d, dt, dx float64) float64 {
	return d * dt / (dx * dx)
}

// Stable reports whether the explicit scheme is stable for alpha.
func Stable(alpha float64) bool {
	return alpha >= 0 && alpha <= 0.5
}

// BuildMatrix overwrites the square matrix f with the explicit diffusion
// operator for coefficient d, time step dt and spatial step dx.
func BuildMatrix(f *mat.Dense, d, dt, dx float64) error {
	if f == nil || f.IsEmpty() {
		return fmt.Errorf("diffusion: empty matrix: %w", dynamo.ErrDimensionMismatch)
	}
	r, c := f.Dims()
	if r != c {
		return fmt.Errorf("diffusion: matrix is %dx%d, want square: %w", r, c, dynamo.ErrDimensionMismatch)
	}
	n := r
	if n < 3 {
		return fmt.Errorf("diffusion: need at least 3 points, got %d: %w", n, dynamo.ErrRingTooSmall)
	}
	if dx == 0 {
		return fmt.Errorf("diffusion: dx must be nonzero: %w", dynamo.ErrParameterBounds)
	}

	alpha := Alpha(d, dt, dx)
	f.Zero()

	for i := 0; i < n; i++ {
		switch i {
		case 0:
			f.Set(0, n-1, alpha)
			f.Set(0, 1, alpha)
		case n - 1:
			f.Set(n-1, n-2, alpha)
			f.Set(n-1, 0, alpha)
		default:
			f.Set(i, i-1, alpha)
			f.Set(i, i+1, alpha)
		}
		f.Set(i, i, 1-2*alpha)
	}
	return nil
}

// NewMatrix allocates and builds an n×n operator.
func NewMatrix(n int, d, dt, dx float64) (*mat.Dense, error) {
	if n < 3 {
		return nil, fmt.Errorf("diffusion: need at least 3 points, got %d: %w", n, dynamo.ErrRingTooSmall)
	}
	f := mat.NewDense(n, n, nil)
	if err := BuildMatrix(f, d, dt, dx); err != nil {
		return nil, err
	}
	return f, nil
}
