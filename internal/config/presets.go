package config

var Presets = map[string]map[string]*Config{
	"walk": {
		"small": {
			Model: "walk", Length: 10, Diffusion: 1, Duration: 1, Dx: 0.5, Dt: 0.05,
			Walkers: 1000, Every: 4, Seed: 4, Init: "center",
		},
		"classic": {
			Model: "walk", Length: 20, Diffusion: 1, Duration: 4, Dx: 0.1, Dt: 0.001,
			Walkers: 10000, Every: 400, Seed: 4, Init: "center",
		},
		"mixing": {
			Model: "walk", Length: 20, Diffusion: 2, Duration: 10, Dx: 0.2, Dt: 0.005,
			Walkers: 5000, Every: 200, Seed: 4, Init: "gaussian", Width: 3,
		},
	},
	"lattice": {
		"small": {
			Model: "lattice", Length: 10, Diffusion: 1, Duration: 1, Dx: 0.5, Dt: 0.05,
			Walkers: 1000, Every: 4, Seed: 4, Init: "center",
		},
		"classic": {
			Model: "lattice", Length: 20, Diffusion: 1, Duration: 4, Dx: 0.1, Dt: 0.001,
			Walkers: 10000, Every: 400, Seed: 4, Init: "center",
		},
	},
	"diffusion": {
		"small": {
			Model: "diffusion", Length: 10, Diffusion: 1, Duration: 1, Dx: 0.5, Dt: 0.05,
			Every: 4, Init: "center",
		},
		"classic": {
			Model: "diffusion", Length: 20, Diffusion: 1, Duration: 4, Dx: 0.1, Dt: 0.001,
			Every: 400, Init: "center",
		},
		"unstable": {
			Model: "diffusion", Length: 5, Diffusion: 1, Duration: 0.5, Dx: 0.25, Dt: 0.05,
			Every: 2, Init: "center",
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
