package diffusion

import (
	"fmt"
	"math"

	"github.com/san-kum/ringsim/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// Profile returns an initial density on n sites that sums to one.
// width is the standard deviation in sites for InitGaussian.
func Profile(n int, init dynamo.Init, width float64) (dynamo.State, error) {
	if n < 3 {
		return nil, fmt.Errorf("diffusion: need at least 3 points, got %d: %w", n, dynamo.ErrRingTooSmall)
	}

	p := make(dynamo.State, n)
	center := n / 2
	switch init {
	case dynamo.InitCenter:
		p[center] = 1
	case dynamo.InitUniform:
		for i := range p {
			p[i] = 1 / float64(n)
		}
	case dynamo.InitGaussian:
		if width <= 0 {
			return nil, fmt.Errorf("diffusion: gaussian width must be positive, got %v: %w", width, dynamo.ErrParameterBounds)
		}
		for i := range p {
			// shortest distance to the center along the ring
			d := math.Abs(float64(i - center))
			d = math.Min(d, float64(n)-d)
			p[i] = math.Exp(-d * d / (2 * width * width))
		}
		floats.Scale(1/floats.Sum(p), p)
	default:
		return nil, fmt.Errorf("diffusion: unknown init %q: %w", init, dynamo.ErrParameterBounds)
	}
	return p, nil
}
