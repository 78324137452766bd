package experiment

import (
	"fmt"
	"sort"

	"github.com/avasil/metadyn/internal/landscape"
	"github.com/avasil/metadyn/internal/metrics"
	"github.com/avasil/metadyn/internal/sampler"
	"github.com/avasil/metadyn/internal/sim"
)

type Registry struct {
	potentials map[string]func() landscape.Potential
	samplers   map[string]func(params map[string]float64, seed int64) sampler.Sampler
}

func NewRegistry() *Registry {
	r := &Registry{
		potentials: make(map[string]func() landscape.Potential),
		samplers:   make(map[string]func(map[string]float64, int64) sampler.Sampler),
	}

	r.potentials["harmonic"] = func() landscape.Potential { return landscape.NewHarmonic(1.0, 5.0) }
	r.potentials["doublewell"] = func() landscape.Potential { return landscape.NewDoubleWell() }
	r.potentials["wave"] = func() landscape.Potential { return landscape.NewWave(1.0, 1.0, 0.0) }

	r.samplers["langevin"] = func(params map[string]float64, seed int64) sampler.Sampler {
		return sampler.NewLangevin(params["dt"], params["gamma"], params["temperature"], seed)
	}
	r.samplers["metropolis"] = func(params map[string]float64, seed int64) sampler.Sampler {
		return sampler.NewMetropolis(params["step_size"], params["temperature"], seed)
	}

	return r
}

func (r *Registry) GetPotential(name string) (landscape.Potential, error) {
	fn, ok := r.potentials[name]
	if !ok {
		return nil, fmt.Errorf("unknown potential: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetSampler(name string, params map[string]float64, seed int64) (sampler.Sampler, error) {
	fn, ok := r.samplers[name]
	if !ok {
		return nil, fmt.Errorf("unknown sampler: %s", name)
	}
	return fn(params, seed), nil
}

func (r *Registry) ListPotentials() []string {
	names := make([]string, 0, len(r.potentials))
	for name := range r.potentials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListSamplers() []string {
	names := make([]string, 0, len(r.samplers))
	for name := range r.samplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns the diagnostics attached to every run; barrier is
// the coordinate separating the wells being flooded.
func (r *Registry) DefaultMetrics(barrier float64) []sim.Metric {
	return []sim.Metric{
		metrics.NewWellCrossings(barrier),
		metrics.NewVisitedRange(),
		metrics.NewMeanEnergy(),
	}
}
