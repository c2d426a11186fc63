// Package dynamo provides core primitives for simulations on a ring.
//
// A ring is a 1-D periodic index space of N sites: index N wraps to 0 and
// index -1 wraps to N-1. The package defines the types every model shares:
//
//   - [State]: per-site density vector
//   - [System]: a model that can be advanced one time step
//   - [Source]: a caller-owned uniform random source over [0, 1)
//
// # Example
//
//	src := rng.New(4)
//	sys, _ := walk.NewEnsemble(positions, n, prob, src)
//	s := sim.New(sys)
//	result, _ := s.Run(ctx, sim.Config{Steps: 1000, Every: 100, Dt: dt})
//
// # Thread Safety
//
// Systems and sources are NOT thread-safe. Kernels hold no state of their
// own; all mutable state is owned by the caller and passed in.
package dynamo
