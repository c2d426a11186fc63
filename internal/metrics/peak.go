package metrics

import (
	"github.com/san-kum/ringsim/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// Peak records the largest single-site density of the latest observation.
type Peak struct {
	name    string
	last    float64
	samples int
}

func NewPeak() *Peak {
	return &Peak{
		name: "peak",
	}
}

func (p *Peak) Name() string {
	return p.name
}

func (p *Peak) Observe(x dynamo.State, t float64) {
	if len(x) == 0 {
		return
	}
	p.last = floats.Max(x)
	p.samples++
}

func (p *Peak) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.last
}

func (p *Peak) Reset() {
	p.last = 0
	p.samples = 0
}
