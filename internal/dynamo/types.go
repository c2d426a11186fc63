package dynamo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// State holds one value per ring site.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) Sum() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Sum(s)
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// InUnitInterval reports whether every entry lies in [0, 1].
func (s State) InUnitInterval() bool {
	for _, v := range s {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, 2)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Wrap maps any integer index onto [0, n).
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Source is a uniform random source over [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NormalSource adds standard normal draws to Source.
type NormalSource interface {
	Source
	NormFloat64() float64
}

// System is a model on a ring that can be advanced one time step.
type System interface {
	Name() string
	Sites() int
	Advance() error
	// Density returns the per-site mass, normalized to the initial total.
	Density() State
}

type Metric interface {
	Name() string
	Observe(p State, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(p State, t float64)
}
