package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avasil/metadyn/internal/bias"
)

const (
	DefaultSteps       = 10000
	DefaultStart       = 5.0
	DefaultTemperature = 1.0
	DefaultDt          = 0.01
	DefaultGamma       = 1.0
	DefaultStepSize    = 0.5
	DefaultAmplitude   = 0.1
	DefaultSigma       = 0.1
	DefaultTrigger     = 100
	DefaultGridMin     = 0.0
	DefaultGridMax     = 10.0
	DefaultBins        = 100
)

type Config struct {
	Potential     string        `yaml:"potential"`
	Sampler       string        `yaml:"sampler"`
	Steps         int           `yaml:"steps"`
	Seed          int64         `yaml:"seed"`
	Start         float64       `yaml:"start"`
	Bias          BiasConfig    `yaml:"bias"`
	SamplerParams SamplerConfig `yaml:"sampler_params"`
}

type BiasConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Amplitude float64 `yaml:"amplitude"`
	Sigma     float64 `yaml:"sigma"`
	Trigger   int     `yaml:"trigger"`
	GridMin   float64 `yaml:"grid_min"`
	GridMax   float64 `yaml:"grid_max"`
	Bins      int     `yaml:"bins"`
}

type SamplerConfig struct {
	Dt          float64 `yaml:"dt"`
	Gamma       float64 `yaml:"gamma"`
	Temperature float64 `yaml:"temperature"`
	StepSize    float64 `yaml:"step_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: "doublewell",
		Sampler:   "langevin",
		Steps:     DefaultSteps,
		Start:     DefaultStart,
		Bias: BiasConfig{
			Enabled:   true,
			Amplitude: DefaultAmplitude,
			Sigma:     DefaultSigma,
			Trigger:   DefaultTrigger,
			GridMin:   DefaultGridMin,
			GridMax:   DefaultGridMax,
			Bins:      DefaultBins,
		},
		SamplerParams: SamplerConfig{
			Dt:          DefaultDt,
			Gamma:       DefaultGamma,
			Temperature: DefaultTemperature,
			StepSize:    DefaultStepSize,
		},
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

// BiasOptions translates the bias section into engine options.
func (c *Config) BiasOptions() bias.Options {
	return bias.Options{
		Amplitude: c.Bias.Amplitude,
		Sigma:     c.Bias.Sigma,
		Trigger:   c.Bias.Trigger,
		GridMin:   c.Bias.GridMin,
		GridMax:   c.Bias.GridMax,
		Bins:      c.Bias.Bins,
	}
}

func (c *Config) GetSamplerParams() map[string]float64 {
	return map[string]float64{
		"dt":          c.SamplerParams.Dt,
		"gamma":       c.SamplerParams.Gamma,
		"temperature": c.SamplerParams.Temperature,
		"step_size":   c.SamplerParams.StepSize,
	}
}
