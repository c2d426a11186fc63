// Package walk implements the discrete random walk of particles on a ring.
//
// Each walker independently jumps one site left with probability prob, one
// site right with probability prob, and stays with probability 1-2*prob.
// Two equivalent representations are provided: per-walker positions ([Step])
// and per-site occupation counts ([StepOccupancy]). Both draw one continuous
// uniform value per walker from a caller-owned [dynamo.Source].
package walk

import (
	"fmt"

	"github.com/san-kum/ringsim/internal/dynamo"
)

// CheckProb validates a per-direction jump probability: 0 <= prob and 2*prob <= 1.
func CheckProb(prob float64) error {
	if !(prob >= 0 && 2*prob <= 1) {
		return fmt.Errorf("walk: jump probability %v outside [0, 0.5]: %w", prob, dynamo.ErrParameterBounds)
	}
	return nil
}

func checkRing(n int) error {
	if n < 2 {
		return fmt.Errorf("walk: need at least 2 sites, got %d: %w", n, dynamo.ErrRingTooSmall)
	}
	return nil
}

// jump maps one uniform draw to a displacement of -1, 0 or +1.
func jump(r, prob float64) int {
	switch {
	case r < prob:
		return -1
	case r < 2*prob:
		return 1
	}
	return 0
}

// Step advances every walker in positions by one time step, in place.
// All positions must lie in [0, n). The walker count never changes.
func Step(positions []int, n int, prob float64, src dynamo.Source) error {
	if err := checkRing(n); err != nil {
		return err
	}
	if err := CheckProb(prob); err != nil {
		return err
	}
	for i, p := range positions {
		if p < 0 || p >= n {
			return fmt.Errorf("walk: walker %d at %d outside [0, %d): %w", i, p, n, dynamo.ErrInvalidState)
		}
	}

	for i := range positions {
		switch jump(src.Float64(), prob) {
		case -1:
			if positions[i] == 0 {
				positions[i] = n - 1
			} else {
				positions[i]--
			}
		case 1:
			if positions[i] == n-1 {
				positions[i] = 0
			} else {
				positions[i]++
			}
		}
	}
	return nil
}

// StepOccupancy advances the occupation counts by one time step, in place.
// counts[i] is the number of walkers at site i; the ring size is len(counts).
// The old counts are snapshotted, the live array zeroed, and every walker of
// the snapshot redistributed into it.
func StepOccupancy(counts []int, prob float64, src dynamo.Source) error {
	n := len(counts)
	if err := checkRing(n); err != nil {
		return err
	}
	if err := CheckProb(prob); err != nil {
		return err
	}
	for i, c := range counts {
		if c < 0 {
			return fmt.Errorf("walk: site %d has negative count %d: %w", i, c, dynamo.ErrInvalidState)
		}
	}

	old := make([]int, n)
	copy(old, counts)
	clear(counts)

	for i, c := range old {
		for k := 0; k < c; k++ {
			counts[dynamo.Wrap(i+jump(src.Float64(), prob), n)]++
		}
	}
	return nil
}

// Occupancy returns how many walkers sit on each of the n sites.
func Occupancy(positions []int, n int) ([]int, error) {
	if err := checkRing(n); err != nil {
		return nil, err
	}
	counts := make([]int, n)
	for i, p := range positions {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("walk: walker %d at %d outside [0, %d): %w", i, p, n, dynamo.ErrInvalidState)
		}
		counts[p]++
	}
	return counts, nil
}
