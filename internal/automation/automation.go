package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ringsim/internal/config"
	"github.com/san-kum/ringsim/internal/dynamo"
	"github.com/san-kum/ringsim/internal/experiment"
	"github.com/san-kum/ringsim/internal/sim"
)

// Scenario defines a scripted sequence of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Zero fields fall back to the
// preset (when named) and then to the defaults.
type ScenarioStep struct {
	Label     string  `yaml:"label"`
	Model     string  `yaml:"model"`
	Preset    string  `yaml:"preset"`
	Length    float64 `yaml:"length"`
	Diffusion float64 `yaml:"diffusion"`
	Duration  float64 `yaml:"duration"`
	Dx        float64 `yaml:"dx"`
	Dt        float64 `yaml:"dt"`
	Walkers   int     `yaml:"walkers"`
	Every     int     `yaml:"snapshot_every"`
	Seed      int64   `yaml:"seed"`
	Init      string  `yaml:"init"`
	Width     float64 `yaml:"width"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// Config resolves the step against its preset and the defaults.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Model != "" {
		cfg.Model = s.Model
	}
	if s.Preset != "" {
		p := config.GetPreset(cfg.Model, s.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %s for model %s", s.Preset, cfg.Model)
		}
		cfg = p
	}

	if s.Length != 0 {
		cfg.Length = s.Length
	}
	if s.Diffusion != 0 {
		cfg.Diffusion = s.Diffusion
	}
	if s.Duration != 0 {
		cfg.Duration = s.Duration
	}
	if s.Dx != 0 {
		cfg.Dx = s.Dx
	}
	if s.Dt != 0 {
		cfg.Dt = s.Dt
	}
	if s.Walkers != 0 {
		cfg.Walkers = s.Walkers
	}
	if s.Every != 0 {
		cfg.Every = s.Every
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.Init != "" {
		cfg.Init = s.Init
	}
	if s.Width != 0 {
		cfg.Width = s.Width
	}
	return cfg, nil
}

// StepResult pairs a scenario step with its outcome.
type StepResult struct {
	Label  string
	Config *config.Config
	Result *sim.Result
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		label := step.Label
		if label == "" {
			label = fmt.Sprintf("%d:%s", i+1, cfg.Model)
		}
		logrus.Infof("running step %d/%d: %s", i+1, len(scenario.Steps), label)

		exp, err := experiment.New(registry, cfg)
		if err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Label: label, Config: cfg, Result: result})
	}

	return results, nil
}

// ParameterSweep runs one model across evenly spaced values of a config field.
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue float64
	Alpha      float64
	Metrics    map[string]float64
	FinalState dynamo.State
}

// SetParam sets a numeric config field by its YAML name.
func SetParam(cfg *config.Config, name string, value float64) error {
	switch name {
	case "length":
		cfg.Length = value
	case "diffusion":
		cfg.Diffusion = value
	case "duration":
		cfg.Duration = value
	case "dx":
		cfg.Dx = value
	case "dt":
		cfg.Dt = value
	case "walkers":
		cfg.Walkers = int(value)
	case "width":
		cfg.Width = value
	default:
		return fmt.Errorf("unknown sweep parameter %q: %w", name, dynamo.ErrParameterBounds)
	}
	return nil
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d: %w", sweep.NumSteps, dynamo.ErrParameterBounds)
	}
	results := make([]SweepResult, 0, sweep.NumSteps)

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := *sweep.Base
		if err := SetParam(&cfg, sweep.ParamName, paramVal); err != nil {
			return nil, err
		}

		exp, err := experiment.New(registry, &cfg)
		if err != nil {
			return results, fmt.Errorf("sweep %s=%.4g: %w", sweep.ParamName, paramVal, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, err
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Alpha:      cfg.Alpha(),
			Metrics:    result.Metrics,
			FinalState: result.Final(),
		})

		logrus.Debugf("sweep %d/%d: %s=%.4f", i+1, sweep.NumSteps, sweep.ParamName, paramVal)
	}

	return results, nil
}

// SweepStats counts sweep points whose densities stayed inside [0, 1].
func SweepStats(results []SweepResult) (boundedCount int, unboundedCount int) {
	for _, r := range results {
		if r.Metrics["boundedness"] == 1 {
			boundedCount++
		} else {
			unboundedCount++
		}
	}
	return
}
