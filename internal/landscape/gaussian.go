package landscape

import (
	"fmt"
	"math"
)

// Gaussian is a localized bump A*exp(-(x-Mu)^2/(2*Sigma^2)). With positive
// amplitude it is the repulsive kernel deposited by metadynamics; with
// negative amplitude it is an attractive well in its own right.
type Gaussian struct {
	A, Mu, Sigma float64
}

// NewGaussian validates Sigma eagerly; the deposition hot path constructs
// kernels by literal instead and relies on this check having run once.
func NewGaussian(a, mu, sigma float64) (*Gaussian, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("landscape: gaussian sigma must be positive, got %g", sigma)
	}
	return &Gaussian{A: a, Mu: mu, Sigma: sigma}, nil
}

func (g *Gaussian) Name() string { return "gaussian" }

func (g *Gaussian) Energy(x float64) float64 {
	d := x - g.Mu
	return g.A * math.Exp(-d*d/(2*g.Sigma*g.Sigma))
}

func (g *Gaussian) Gradient(x float64) float64 {
	d := x - g.Mu
	return -g.A * d / (g.Sigma * g.Sigma) * math.Exp(-d*d/(2*g.Sigma*g.Sigma))
}

func (g *Gaussian) GetParams() map[string]float64 {
	return map[string]float64{"A": g.A, "mu": g.Mu, "sigma": g.Sigma}
}

func (g *Gaussian) SetParam(n string, v float64) error {
	switch n {
	case "A":
		g.A = v
	case "mu":
		g.Mu = v
	case "sigma":
		if v <= 0 {
			return fmt.Errorf("landscape: gaussian sigma must be positive, got %g", v)
		}
		g.Sigma = v
	}
	return nil
}
