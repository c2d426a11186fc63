package metrics

import (
	"math"

	"github.com/san-kum/ringsim/internal/dynamo"
	"gonum.org/v1/gonum/stat"
)

// SpreadOf returns the standard deviation of the site index weighted by p.
// Indices are taken as-is, so the value is meaningful while the mass has not
// wrapped around the ring away from its starting point.
func SpreadOf(p dynamo.State) float64 {
	if p.Sum() <= 0 {
		return 0
	}
	x := make([]float64, len(p))
	for i := range x {
		x[i] = float64(i)
	}
	_, variance := stat.PopMeanVariance(x, p)
	return math.Sqrt(math.Max(variance, 0))
}

type Spread struct {
	name    string
	last    float64
	samples int
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(p dynamo.State, t float64) {
	s.last = SpreadOf(p)
	s.samples++
}

func (s *Spread) Value() float64 { return s.last }

func (s *Spread) Reset() {
	s.last = 0
	s.samples = 0
}
