package metrics

import (
	"math"

	"github.com/san-kum/ringsim/internal/dynamo"
)

// MassDrift tracks the largest relative change of total mass since the first
// observation.
type MassDrift struct {
	name        string
	initialMass float64
	maxDrift    float64
	samples     int
}

func NewMassDrift() *MassDrift {
	return &MassDrift{
		name: "mass_drift",
	}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(p dynamo.State, t float64) {
	mass := p.Sum()

	if m.samples == 0 {
		m.initialMass = mass
	}

	m.samples++

	if m.initialMass != 0 {
		drift := math.Abs(mass-m.initialMass) / math.Abs(m.initialMass)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MassDrift) Value() float64 {
	return m.maxDrift
}

func (m *MassDrift) Reset() {
	m.initialMass = 0
	m.maxDrift = 0
	m.samples = 0
}
