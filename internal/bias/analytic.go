package bias

import (
	"fmt"
	"math"

	"github.com/avasil/metadyn/internal/landscape"
)

// AnalyticMetadynamics is the legacy accumulation mode: every deposition
// appends a kernel to a running closed-form sum, and every query re-sums
// all of them. Trigger semantics are identical to the grid mode but query
// cost grows linearly with the deposit count, so this type serves as a
// reference implementation and test oracle rather than a production path.
type AnalyticMetadynamics struct {
	base       landscape.Potential
	kernels    []landscape.Gaussian
	amplitude  float64
	sigma      float64
	trigger    int
	stepsSince int
}

func NewAnalyticMetadynamics(base landscape.Potential, amplitude, sigma float64, trigger int) (*AnalyticMetadynamics, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: base potential is required", ErrInvalidConfig)
	}
	if trigger <= 0 {
		return nil, fmt.Errorf("%w: trigger interval must be positive, got %d", ErrInvalidConfig, trigger)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: kernel sigma must be positive, got %g", ErrInvalidConfig, sigma)
	}
	if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("%w: kernel amplitude must be finite, got %g", ErrInvalidConfig, amplitude)
	}

	return &AnalyticMetadynamics{
		base:       base,
		amplitude:  amplitude,
		sigma:      sigma,
		trigger:    trigger,
		stepsSince: 1,
	}, nil
}

func (a *AnalyticMetadynamics) Name() string {
	return "metadynamics-analytic(" + a.base.Name() + ")"
}

func (a *AnalyticMetadynamics) Energy(x float64) float64 {
	e := a.base.Energy(x)
	for i := range a.kernels {
		e += a.kernels[i].Energy(x)
	}
	return e
}

func (a *AnalyticMetadynamics) Gradient(x float64) float64 {
	g := a.base.Gradient(x)
	for i := range a.kernels {
		g += a.kernels[i].Gradient(x)
	}
	return g
}

// BiasEnergy evaluates only the accumulated kernels, without the base term.
func (a *AnalyticMetadynamics) BiasEnergy(x float64) float64 {
	e := 0.0
	for i := range a.kernels {
		e += a.kernels[i].Energy(x)
	}
	return e
}

// NotifyStep has the same cadence as the grid mode; deposit here means
// appending to the kernel list.
func (a *AnalyticMetadynamics) NotifyStep(x float64) {
	if a.stepsSince != a.trigger {
		a.stepsSince++
		return
	}
	a.kernels = append(a.kernels, landscape.Gaussian{A: a.amplitude, Mu: x, Sigma: a.sigma})
	a.stepsSince = 1
}

func (a *AnalyticMetadynamics) Updates() int { return len(a.kernels) }

func (a *AnalyticMetadynamics) StepsSinceDeposit() int { return a.stepsSince }
