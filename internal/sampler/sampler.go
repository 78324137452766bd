package sampler

import "github.com/avasil/metadyn/internal/landscape"

// Sampler proposes the next position of a walker on a potential surface.
type Sampler interface {
	Name() string
	Step(p landscape.Potential, x float64) float64
}
