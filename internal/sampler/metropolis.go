package sampler

import (
	"math"
	"math/rand"

	"github.com/avasil/metadyn/internal/landscape"
)

// Metropolis performs Metropolis Monte Carlo moves: a uniform displacement
// in [-StepSize, StepSize] accepted with probability min(1, exp(-dE/kT)).
// Rejected moves keep the walker in place, which still counts as a step for
// the adaptive bias.
type Metropolis struct {
	StepSize    float64
	Temperature float64
	rng         *rand.Rand
	accepted    int
	proposed    int
}

func NewMetropolis(stepSize, temperature float64, seed int64) *Metropolis {
	return &Metropolis{
		StepSize:    stepSize,
		Temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (m *Metropolis) Name() string { return "metropolis" }

func (m *Metropolis) Step(p landscape.Potential, x float64) float64 {
	m.proposed++
	candidate := x + (2*m.rng.Float64()-1)*m.StepSize

	dE := p.Energy(candidate) - p.Energy(x)
	if dE <= 0 {
		m.accepted++
		return candidate
	}
	if m.Temperature > 0 && m.rng.Float64() < math.Exp(-dE/m.Temperature) {
		m.accepted++
		return candidate
	}
	return x
}

// AcceptanceRatio reports the fraction of proposals accepted so far.
func (m *Metropolis) AcceptanceRatio() float64 {
	if m.proposed == 0 {
		return 0
	}
	return float64(m.accepted) / float64(m.proposed)
}
