package walk

import (
	"fmt"
	"math"

	"github.com/san-kum/ringsim/internal/dynamo"
)

// Ensemble is the per-walker model: Z positions on a ring of N sites.
type Ensemble struct {
	positions []int
	n         int
	prob      float64
	src       dynamo.Source
}

// NewEnsemble takes ownership of positions. src is advanced on every step.
func NewEnsemble(positions []int, n int, prob float64, src dynamo.Source) (*Ensemble, error) {
	if src == nil {
		return nil, fmt.Errorf("walk: nil random source: %w", dynamo.ErrParameterBounds)
	}
	if err := CheckProb(prob); err != nil {
		return nil, err
	}
	if _, err := Occupancy(positions, n); err != nil {
		return nil, err
	}
	return &Ensemble{positions: positions, n: n, prob: prob, src: src}, nil
}

func (e *Ensemble) Name() string  { return "walk" }
func (e *Ensemble) Sites() int    { return e.n }
func (e *Ensemble) Walkers() int  { return len(e.positions) }
func (e *Ensemble) Prob() float64 { return e.prob }

func (e *Ensemble) Advance() error {
	return Step(e.positions, e.n, e.prob, e.src)
}

// Positions returns a copy of the current walker positions.
func (e *Ensemble) Positions() []int {
	c := make([]int, len(e.positions))
	copy(c, e.positions)
	return c
}

func (e *Ensemble) Density() dynamo.State {
	p := make(dynamo.State, e.n)
	if len(e.positions) == 0 {
		return p
	}
	counts := make([]int, e.n)
	for _, x := range e.positions {
		counts[x]++
	}
	z := float64(len(e.positions))
	for i, c := range counts {
		p[i] = float64(c) / z
	}
	return p
}

// Lattice is the per-site model: one occupation count per ring site.
type Lattice struct {
	counts []int
	total  int
	prob   float64
	src    dynamo.Source
}

// NewLattice takes ownership of counts. src is advanced on every step.
func NewLattice(counts []int, prob float64, src dynamo.Source) (*Lattice, error) {
	if src == nil {
		return nil, fmt.Errorf("walk: nil random source: %w", dynamo.ErrParameterBounds)
	}
	if err := checkRing(len(counts)); err != nil {
		return nil, err
	}
	if err := CheckProb(prob); err != nil {
		return nil, err
	}
	total := 0
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("walk: site %d has negative count %d: %w", i, c, dynamo.ErrInvalidState)
		}
		total += c
	}
	return &Lattice{counts: counts, total: total, prob: prob, src: src}, nil
}

func (l *Lattice) Name() string { return "lattice" }
func (l *Lattice) Sites() int   { return len(l.counts) }

func (l *Lattice) Advance() error {
	return StepOccupancy(l.counts, l.prob, l.src)
}

// Total returns the current number of walkers summed over all sites.
func (l *Lattice) Total() int {
	sum := 0
	for _, c := range l.counts {
		sum += c
	}
	return sum
}

// Counts returns a copy of the occupation counts.
func (l *Lattice) Counts() []int {
	c := make([]int, len(l.counts))
	copy(c, l.counts)
	return c
}

func (l *Lattice) Density() dynamo.State {
	p := make(dynamo.State, len(l.counts))
	if l.total == 0 {
		return p
	}
	for i, c := range l.counts {
		p[i] = float64(c) / float64(l.total)
	}
	return p
}

// Place returns z walker positions on a ring of n sites.
// width is the standard deviation in sites for InitGaussian and is ignored
// otherwise.
func Place(z, n int, init dynamo.Init, width float64, src dynamo.NormalSource) ([]int, error) {
	if err := checkRing(n); err != nil {
		return nil, err
	}
	if z < 0 {
		return nil, fmt.Errorf("walk: negative walker count %d: %w", z, dynamo.ErrParameterBounds)
	}

	positions := make([]int, z)
	center := n / 2
	switch init {
	case dynamo.InitCenter:
		for i := range positions {
			positions[i] = center
		}
	case dynamo.InitUniform:
		for i := range positions {
			positions[i] = min(int(src.Float64()*float64(n)), n-1)
		}
	case dynamo.InitGaussian:
		if width <= 0 {
			return nil, fmt.Errorf("walk: gaussian width must be positive, got %v: %w", width, dynamo.ErrParameterBounds)
		}
		for i := range positions {
			positions[i] = dynamo.Wrap(center+int(math.Round(src.NormFloat64()*width)), n)
		}
	default:
		return nil, fmt.Errorf("walk: unknown init %q: %w", init, dynamo.ErrParameterBounds)
	}
	return positions, nil
}
