package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/ringsim/internal/dynamo"
)

type Simulator struct {
	system    dynamo.System
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(system dynamo.System) *Simulator {
	return &Simulator{
		system:    system,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// System returns the model being driven.
func (s *Simulator) System() dynamo.System { return s.system }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	snapshots := 2
	if cfg.Every > 0 {
		snapshots += cfg.Steps / cfg.Every
	}
	result := &Result{
		System:    s.system.Name(),
		Sites:     s.system.Sites(),
		Times:     make([]float64, 0, snapshots),
		Densities: make([]dynamo.State, 0, snapshots),
		Metrics:   make(map[string]float64),
		Errors:    make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	p := s.system.Density()
	s.observe(p, 0)
	result.Densities = append(result.Densities, p)
	result.Times = append(result.Times, 0)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i+1) * cfg.Dt
		if err := s.system.Advance(); err != nil {
			return result, &dynamo.SimulationError{Step: i, Time: t, Wrapped: err}
		}
		result.StepsTaken++

		p = s.system.Density()
		if cfg.ValidateState && !p.IsValid() {
			result.Errors = append(result.Errors, dynamo.SimError{Time: t, Step: i, Message: "invalid state (NaN/Inf)"})
			break
		}
		s.observe(p, t)

		last := i == cfg.Steps-1
		if last || (cfg.Every > 0 && (i+1)%cfg.Every == 0) {
			result.Densities = append(result.Densities, p)
			result.Times = append(result.Times, t)
			logrus.Debugf("%s: snapshot at step %d (t=%.4f), mass %.6f", result.System, i+1, t, p.Sum())
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) observe(p dynamo.State, t float64) {
	for _, m := range s.metrics {
		m.Observe(p, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(p, t)
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if s.system == nil {
		return fmt.Errorf("no system to simulate: %w", dynamo.ErrParameterBounds)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d: %w", cfg.Steps, dynamo.ErrParameterBounds)
	}
	if cfg.Every < 0 {
		return fmt.Errorf("snapshot interval must be non-negative, got %d: %w", cfg.Every, dynamo.ErrParameterBounds)
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f: %w", cfg.Dt, dynamo.ErrParameterBounds)
	}
	return nil
}
