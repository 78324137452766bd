package experiment

import (
	"context"
	"fmt"

	"github.com/avasil/metadyn/internal/landscape"
	"github.com/avasil/metadyn/internal/sampler"
	"github.com/avasil/metadyn/internal/sim"
)

type Config struct {
	Potential string
	Sampler   string
	Start     float64
	Steps     int
	Seed      int64
	Params    map[string]float64
}

type Experiment struct {
	cfg       Config
	simulator *sim.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(pot landscape.Potential, smp sampler.Sampler, metrics []sim.Metric) error {
	e.simulator = sim.New(pot, smp)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	simCfg := sim.Config{
		Steps: e.cfg.Steps,
		Seed:  e.cfg.Seed,
	}

	return e.simulator.Run(ctx, e.cfg.Start, simCfg)
}

// Simulator returns the underlying simulator for adding observers.
func (e *Experiment) Simulator() *sim.Simulator {
	return e.simulator
}
