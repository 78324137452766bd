package bias

import (
	"fmt"
	"math"

	"github.com/avasil/metadyn/internal/landscape"
)

// Options configure the metadynamics engine.
type Options struct {
	Amplitude float64 // kernel height
	Sigma     float64 // kernel standard deviation
	Trigger   int     // steps between depositions
	GridMin   float64
	GridMax   float64
	Bins      int
}

func DefaultOptions() Options {
	return Options{
		Amplitude: 0.1,
		Sigma:     0.1,
		Trigger:   100,
		GridMin:   0,
		GridMax:   10,
		Bins:      100,
	}
}

// Metadynamics deposits a repulsive Gaussian at the current position every
// n-th step, progressively flooding the wells of the base potential so the
// walker crosses barriers it would otherwise stay behind. The accumulated
// bias lives on a fixed Grid, so query cost stays constant no matter how
// many kernels have been deposited.
//
// NotifyStep reads then writes the trigger counter and conditionally mutates
// the grid; it is not safe for concurrent use. Exactly one sampling loop
// must own each instance. Reads (Energy, Gradient) do not mutate state.
type Metadynamics struct {
	base       landscape.Potential
	grid       *Grid
	amplitude  float64
	sigma      float64
	trigger    int
	stepsSince int
	updates    int
}

// NewMetadynamics validates all parameters eagerly; no partially constructed
// engine is ever returned.
func NewMetadynamics(base landscape.Potential, opts Options) (*Metadynamics, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: base potential is required", ErrInvalidConfig)
	}
	if opts.Trigger <= 0 {
		return nil, fmt.Errorf("%w: trigger interval must be positive, got %d", ErrInvalidConfig, opts.Trigger)
	}
	if opts.Sigma <= 0 {
		return nil, fmt.Errorf("%w: kernel sigma must be positive, got %g", ErrInvalidConfig, opts.Sigma)
	}
	if math.IsNaN(opts.Amplitude) || math.IsInf(opts.Amplitude, 0) {
		return nil, fmt.Errorf("%w: kernel amplitude must be finite, got %g", ErrInvalidConfig, opts.Amplitude)
	}

	grid, err := NewGrid(opts.GridMin, opts.GridMax, opts.Bins)
	if err != nil {
		return nil, err
	}

	return &Metadynamics{
		base:       base,
		grid:       grid,
		amplitude:  opts.Amplitude,
		sigma:      opts.Sigma,
		trigger:    opts.Trigger,
		stepsSince: 1,
	}, nil
}

func (m *Metadynamics) Name() string { return "metadynamics(" + m.base.Name() + ")" }

func (m *Metadynamics) Energy(x float64) float64 {
	return m.base.Energy(x) + m.grid.EnergyAt(x)
}

func (m *Metadynamics) Gradient(x float64) float64 {
	return m.base.Gradient(x) + m.grid.ForceAt(x)
}

// NotifyStep records one simulation step at position x. Every trigger-th
// call deposits a fresh kernel centered at x; every other call only
// advances the counter. The counter is 1-indexed, so with trigger interval
// n the depositions land on calls n, 2n, 3n, ...
func (m *Metadynamics) NotifyStep(x float64) {
	if m.stepsSince != m.trigger {
		m.stepsSince++
		return
	}
	m.grid.Deposit(&landscape.Gaussian{A: m.amplitude, Mu: x, Sigma: m.sigma})
	m.updates++
	m.stepsSince = 1
}

// Updates reports how many kernels have been deposited.
func (m *Metadynamics) Updates() int { return m.updates }

// StepsSinceDeposit reports the trigger counter, always in [1, trigger].
func (m *Metadynamics) StepsSinceDeposit() int { return m.stepsSince }

// Grid exposes the accumulated bias for diagnostics and free-energy
// estimates. The returned grid must not be deposited onto by callers.
func (m *Metadynamics) Grid() *Grid { return m.grid }

// Base returns the unbiased potential.
func (m *Metadynamics) Base() landscape.Potential { return m.base }
