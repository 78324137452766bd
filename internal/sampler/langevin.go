package sampler

import (
	"math"
	"math/rand"

	"github.com/avasil/metadyn/internal/landscape"
)

// Langevin integrates overdamped Langevin dynamics with the Euler-Maruyama
// scheme:
//
//	dx = -dV/dx * dt/gamma + sqrt(2*kT*dt/gamma) * dW
//
// At zero temperature it degenerates to plain gradient descent.
type Langevin struct {
	Dt          float64
	Gamma       float64
	Temperature float64
	rng         *rand.Rand
}

func NewLangevin(dt, gamma, temperature float64, seed int64) *Langevin {
	return &Langevin{
		Dt:          dt,
		Gamma:       gamma,
		Temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (l *Langevin) Name() string { return "langevin" }

func (l *Langevin) Step(p landscape.Potential, x float64) float64 {
	drift := -p.Gradient(x) * l.Dt / l.Gamma
	noise := math.Sqrt(2*l.Temperature*l.Dt/l.Gamma) * l.rng.NormFloat64()
	return x + drift + noise
}
