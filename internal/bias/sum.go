package bias

import (
	"fmt"

	"github.com/avasil/metadyn/internal/landscape"
)

// Sum statically combines two potentials. It holds no state beyond the two
// references, which is the right shape for umbrella-style biasing where the
// bias is fixed for the whole run.
type Sum struct {
	a, b landscape.Potential
}

func NewSum(a, b landscape.Potential) (*Sum, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: sum requires two potentials", ErrInvalidConfig)
	}
	return &Sum{a: a, b: b}, nil
}

func (s *Sum) Name() string { return s.a.Name() + "+" + s.b.Name() }

func (s *Sum) Energy(x float64) float64 {
	return s.a.Energy(x) + s.b.Energy(x)
}

func (s *Sum) Gradient(x float64) float64 {
	return s.a.Gradient(x) + s.b.Gradient(x)
}
