package experiment

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/ringsim/internal/config"
	"github.com/san-kum/ringsim/internal/metrics"
	"github.com/san-kum/ringsim/internal/rng"
	"github.com/san-kum/ringsim/internal/sim"
)

type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
}

// New validates cfg and builds the model it names with the default metrics
// attached. The random source is seeded from cfg.Seed and owned by the
// system it drives.
func New(registry *Registry, cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	system, err := registry.GetModel(cfg.Model, cfg, rng.New(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", cfg.Model, err)
	}

	s := sim.New(system)
	for _, m := range metrics.Default() {
		s.AddMetric(m)
	}

	logrus.Infof("%s: %d sites, %d steps, alpha=%.4f, seed=%d", cfg.Model, cfg.Sites(), cfg.Steps(), cfg.Alpha(), cfg.Seed)
	return &Experiment{cfg: cfg, simulator: s}, nil
}

func (e *Experiment) SimConfig() sim.Config {
	return sim.Config{
		Steps:         e.cfg.Steps(),
		Every:         e.cfg.Every,
		Dt:            e.cfg.Dt,
		ValidateState: true,
	}
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.SimConfig())
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Config() *config.Config {
	return e.cfg
}
