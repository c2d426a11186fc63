package metrics

import (
	"math"

	"github.com/san-kum/ringsim/internal/dynamo"
)

// Boundedness is the fraction of observed densities with every entry in
// [lo, hi]. A stable diffusion scheme keeps it at 1.
type Boundedness struct {
	name       string
	lo, hi     float64
	violations int
	samples    int
}

func NewBoundedness(lo, hi float64) *Boundedness {
	return &Boundedness{
		name: "boundedness",
		lo:   lo,
		hi:   hi,
	}
}

func (b *Boundedness) Name() string {
	return b.name
}

func (b *Boundedness) Observe(p dynamo.State, t float64) {
	b.samples++
	for _, val := range p {
		if val < b.lo || val > b.hi || math.IsNaN(val) {
			b.violations++
			break
		}
	}
}

func (b *Boundedness) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Boundedness) Reset() {
	b.violations = 0
	b.samples = 0
}
