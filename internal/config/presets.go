package config

var Presets = map[string]map[string]*Config{
	"doublewell": {
		"flood": {
			Potential: "doublewell", Sampler: "langevin", Steps: 50000, Start: -1.0,
			Bias:          BiasConfig{Enabled: true, Amplitude: 0.2, Sigma: 0.15, Trigger: 50, GridMin: -2, GridMax: 2, Bins: 120},
			SamplerParams: SamplerConfig{Dt: 0.01, Gamma: 1.0, Temperature: 0.3},
		},
		"unbiased": {
			Potential: "doublewell", Sampler: "langevin", Steps: 50000, Start: -1.0,
			Bias:          BiasConfig{Enabled: false},
			SamplerParams: SamplerConfig{Dt: 0.01, Gamma: 1.0, Temperature: 0.3},
		},
		"montecarlo": {
			Potential: "doublewell", Sampler: "metropolis", Steps: 100000, Start: -1.0,
			Bias:          BiasConfig{Enabled: true, Amplitude: 0.1, Sigma: 0.15, Trigger: 100, GridMin: -2, GridMax: 2, Bins: 120},
			SamplerParams: SamplerConfig{Temperature: 0.3, StepSize: 0.2},
		},
	},
	"harmonic": {
		"flood": {
			Potential: "harmonic", Sampler: "langevin", Steps: 20000, Start: 5.0,
			Bias:          BiasConfig{Enabled: true, Amplitude: 0.1, Sigma: 0.1, Trigger: 100, GridMin: 0, GridMax: 10, Bins: 100},
			SamplerParams: SamplerConfig{Dt: 0.01, Gamma: 1.0, Temperature: 1.0},
		},
	},
	"wave": {
		"diffusion": {
			Potential: "wave", Sampler: "langevin", Steps: 100000, Start: 0.0,
			Bias:          BiasConfig{Enabled: true, Amplitude: 0.15, Sigma: 0.3, Trigger: 200, GridMin: -10, GridMax: 10, Bins: 200},
			SamplerParams: SamplerConfig{Dt: 0.005, Gamma: 1.0, Temperature: 0.5},
		},
	},
}

func GetPreset(potential, preset string) *Config {
	potPresets, ok := Presets[potential]
	if !ok {
		return nil
	}
	cfg, ok := potPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(potential string) []string {
	potPresets, ok := Presets[potential]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(potPresets))
	for name := range potPresets {
		names = append(names, name)
	}
	return names
}
