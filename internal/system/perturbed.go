// Package system couples potentials into simulated systems. The only
// resident today is the lambda-perturbed alchemical system used for
// thermodynamic-integration bookkeeping.
package system

import (
	"fmt"

	"github.com/avasil/metadyn/internal/landscape"
)

// Perturbed interpolates between two end-state potentials through the
// coupling parameter lambda:
//
//	H(x) = (1-lambda)*A(x) + lambda*B(x)
//
// It satisfies the same Potential contract as its end states, so any
// sampler or bias can drive it. DHDLambda supplies the
// thermodynamic-integration integrand.
type Perturbed struct {
	a, b   landscape.Potential
	lambda float64
}

func NewPerturbed(a, b landscape.Potential, lambda float64) (*Perturbed, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("system: perturbed system requires two end-state potentials")
	}
	p := &Perturbed{a: a, b: b}
	if err := p.SetLambda(lambda); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Perturbed) Name() string {
	return fmt.Sprintf("perturbed(%s,%s)", p.a.Name(), p.b.Name())
}

func (p *Perturbed) Energy(x float64) float64 {
	return (1-p.lambda)*p.a.Energy(x) + p.lambda*p.b.Energy(x)
}

func (p *Perturbed) Gradient(x float64) float64 {
	return (1-p.lambda)*p.a.Gradient(x) + p.lambda*p.b.Gradient(x)
}

func (p *Perturbed) Lambda() float64 { return p.lambda }

func (p *Perturbed) SetLambda(lambda float64) error {
	if lambda < 0 || lambda > 1 {
		return fmt.Errorf("system: lambda must be in [0,1], got %g", lambda)
	}
	p.lambda = lambda
	return nil
}

// DHDLambda is the derivative of the coupled Hamiltonian with respect to
// lambda, B(x) - A(x), recorded per step by thermodynamic integration.
func (p *Perturbed) DHDLambda(x float64) float64 {
	return p.b.Energy(x) - p.a.Energy(x)
}
