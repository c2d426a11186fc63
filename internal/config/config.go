package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ringsim/internal/diffusion"
	"github.com/san-kum/ringsim/internal/dynamo"
)

const (
	DefaultModel     = "walk"
	DefaultLength    = 20.0
	DefaultDiffusion = 1.0
	DefaultDuration  = 4.0
	DefaultDx        = 0.1
	DefaultDt        = 0.001
	DefaultWalkers   = 10000
	DefaultEvery     = 400
	DefaultSeed      = 4
	DefaultWidth     = 5.0
)

type Config struct {
	Model     string  `yaml:"model"`
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

func DefaultConfig() *Config {
	return &Config{
		Model:     DefaultModel,
		Length:    DefaultLength,
		Diffusion: DefaultDiffusion,
		Duration:  DefaultDuration,
		Dx:        DefaultDx,
		Dt:        DefaultDt,
		Walkers:   DefaultWalkers,
		Every:     DefaultEvery,
		Seed:      DefaultSeed,
		Init:      string(dynamo.InitCenter),
		Width:     DefaultWidth,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sites is the number of ring sites, L/dx rounded to the nearest integer.
func (c *Config) Sites() int {
	if c.Dx == 0 {
		return 0
	}
	return int(math.Round(c.Length / c.Dx))
}

// Steps is the number of time steps, T/dt rounded to the nearest integer.
func (c *Config) Steps() int {
	if c.Dt == 0 {
		return 0
	}
	return int(math.Round(c.Duration / c.Dt))
}

// Alpha is D·dt/dx². It is also the per-direction jump probability of the
// walk models.
func (c *Config) Alpha() float64 {
	return diffusion.Alpha(c.Diffusion, c.Dt, c.Dx)
}

func (c *Config) InitKind() (dynamo.Init, error) {
	return dynamo.ParseInit(c.Init)
}

func (c *Config) Validate() error {
	switch {
	case c.Length <= 0:
		return fmt.Errorf("length must be positive, got %v: %w", c.Length, dynamo.ErrParameterBounds)
	case c.Diffusion < 0:
		return fmt.Errorf("diffusion must be non-negative, got %v: %w", c.Diffusion, dynamo.ErrParameterBounds)
	case c.Duration < 0:
		return fmt.Errorf("duration must be non-negative, got %v: %w", c.Duration, dynamo.ErrParameterBounds)
	case c.Dx <= 0:
		return fmt.Errorf("dx must be positive, got %v: %w", c.Dx, dynamo.ErrParameterBounds)
	case c.Dt <= 0:
		return fmt.Errorf("dt must be positive, got %v: %w", c.Dt, dynamo.ErrParameterBounds)
	case c.Every < 0:
		return fmt.Errorf("snapshot_every must be non-negative, got %d: %w", c.Every, dynamo.ErrParameterBounds)
	}
	if n := c.Sites(); n < 3 {
		return fmt.Errorf("length/dx gives %d sites, need at least 3: %w", n, dynamo.ErrRingTooSmall)
	}
	if c.Model != "diffusion" && c.Walkers < 0 {
		return fmt.Errorf("walkers must be non-negative, got %d: %w", c.Walkers, dynamo.ErrParameterBounds)
	}
	kind, err := c.InitKind()
	if err != nil {
		return err
	}
	if kind == dynamo.InitGaussian && c.Width <= 0 {
		return fmt.Errorf("gaussian width must be positive, got %v: %w", c.Width, dynamo.ErrParameterBounds)
	}
	return nil
}
