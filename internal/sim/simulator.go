package sim

import (
	"context"
	"fmt"

	"github.com/avasil/metadyn/internal/landscape"
	"github.com/avasil/metadyn/internal/sampler"
)

// Adaptive is implemented by potentials that react to visited positions,
// such as the metadynamics engine. The loop notifies it once per step, in
// step order, with the position just visited.
type Adaptive interface {
	NotifyStep(x float64)
	Updates() int
}

type Metric interface {
	Name() string
	Observe(x, energy float64, step int)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x, energy float64, step int)
}

type Config struct {
	Steps int
	Seed  int64
}

type Result struct {
	Positions []float64
	Energies  []float64
	Metrics   map[string]float64
	Steps     int
	Deposits  int
}

// Simulator drives one sampler over one potential. The loop is synchronous
// and single-threaded: sample, notify the adaptive bias, observe. One
// simulator per walker; nothing here is safe for concurrent use.
type Simulator struct {
	pot       landscape.Potential
	smp       sampler.Sampler
	metrics   []Metric
	observers []Observer
}

func New(pot landscape.Potential, smp sampler.Sampler) *Simulator {
	return &Simulator{
		pot:       pot,
		smp:       smp,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, x0 float64, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Positions: make([]float64, 0, cfg.Steps+1),
		Energies:  make([]float64, 0, cfg.Steps+1),
		Metrics:   make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	adaptive, isAdaptive := s.pot.(Adaptive)

	x := x0
	result.Positions = append(result.Positions, x)
	result.Energies = append(result.Energies, s.pot.Energy(x))

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		x = s.smp.Step(s.pot, x)
		if isAdaptive {
			adaptive.NotifyStep(x)
		}
		e := s.pot.Energy(x)

		for _, m := range s.metrics {
			m.Observe(x, e, i)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, e, i)
		}

		result.Positions = append(result.Positions, x)
		result.Energies = append(result.Energies, e)
		result.Steps++
	}

	if isAdaptive {
		result.Deposits = adaptive.Updates()
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps the simulation until the callback returns false,
// for callers that stream rather than collect.
func (s *Simulator) RunWithCallback(ctx context.Context, x0 float64, cfg Config, callback func(x, energy float64, step int) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	adaptive, isAdaptive := s.pot.(Adaptive)

	x := x0
	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		x = s.smp.Step(s.pot, x)
		if isAdaptive {
			adaptive.NotifyStep(x)
		}
		if !callback(x, s.pot.Energy(x), i) {
			return nil
		}
	}

	return nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	return nil
}
