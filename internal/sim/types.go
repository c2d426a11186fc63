package sim

import "github.com/san-kum/ringsim/internal/dynamo"

type Config struct {
	// Steps is the number of time steps to take.
	Steps int
	// Every is the number of steps between snapshots. Zero keeps only the
	// first and last density.
	Every int
	// Dt is the physical time per step, used only to label snapshots.
	Dt            float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Steps:         1000,
		Every:         100,
		Dt:            0.01,
		ValidateState: true,
	}
}

type Result struct {
	System     string
	Sites      int
	Times      []float64
	Densities  []dynamo.State
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Final returns the last recorded density, or nil for an empty result.
func (r *Result) Final() dynamo.State {
	if len(r.Densities) == 0 {
		return nil
	}
	return r.Densities[len(r.Densities)-1]
}
