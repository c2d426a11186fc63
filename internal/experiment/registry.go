package experiment

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/ringsim/internal/config"
	"github.com/san-kum/ringsim/internal/diffusion"
	"github.com/san-kum/ringsim/internal/dynamo"
	"github.com/san-kum/ringsim/internal/walk"
)

// Factory builds a system from a validated config. src is the run's random
// source; deterministic models ignore it.
type Factory func(cfg *config.Config, src dynamo.NormalSource) (dynamo.System, error)

type Registry struct {
	models map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]Factory),
	}

	r.models["walk"] = newEnsemble
	r.models["lattice"] = newLattice
	r.models["diffusion"] = newField

	return r
}

// Register adds or replaces a model factory.
func (r *Registry) Register(name string, f Factory) {
	r.models[name] = f
}

func (r *Registry) GetModel(name string, cfg *config.Config, src dynamo.NormalSource) (dynamo.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (available: %v)", name, r.ListModels())
	}
	return fn(cfg, src)
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newEnsemble(cfg *config.Config, src dynamo.NormalSource) (dynamo.System, error) {
	n, prob := cfg.Sites(), cfg.Alpha()
	if err := walk.CheckProb(prob); err != nil {
		return nil, fmt.Errorf("alpha=D*dt/dx^2 is the jump probability: %w", err)
	}
	kind, err := cfg.InitKind()
	if err != nil {
		return nil, err
	}
	positions, err := walk.Place(cfg.Walkers, n, kind, cfg.Width, src)
	if err != nil {
		return nil, err
	}
	return walk.NewEnsemble(positions, n, prob, src)
}

func newLattice(cfg *config.Config, src dynamo.NormalSource) (dynamo.System, error) {
	n, prob := cfg.Sites(), cfg.Alpha()
	if err := walk.CheckProb(prob); err != nil {
		return nil, fmt.Errorf("alpha=D*dt/dx^2 is the jump probability: %w", err)
	}
	kind, err := cfg.InitKind()
	if err != nil {
		return nil, err
	}
	positions, err := walk.Place(cfg.Walkers, n, kind, cfg.Width, src)
	if err != nil {
		return nil, err
	}
	counts, err := walk.Occupancy(positions, n)
	if err != nil {
		return nil, err
	}
	return walk.NewLattice(counts, prob, src)
}

func newField(cfg *config.Config, _ dynamo.NormalSource) (dynamo.System, error) {
	n, alpha := cfg.Sites(), cfg.Alpha()
	if !diffusion.Stable(alpha) {
		logrus.Warnf("alpha=%.4f exceeds 0.5: explicit diffusion is unstable and densities will leave [0,1]", alpha)
	}
	f, err := diffusion.NewMatrix(n, cfg.Diffusion, cfg.Dt, cfg.Dx)
	if err != nil {
		return nil, err
	}
	kind, err := cfg.InitKind()
	if err != nil {
		return nil, err
	}
	p, err := diffusion.Profile(n, kind, cfg.Width)
	if err != nil {
		return nil, err
	}
	return diffusion.NewField(f, p)
}
