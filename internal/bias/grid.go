package bias

import (
	"fmt"
	"math"

	"github.com/avasil/metadyn/internal/landscape"
)

// Grid is a fixed-resolution discretization of a coordinate range that
// accumulates deposited bias at its bin centers. Centers sit half a bin
// width inside the bounds and never move; only the energy and force
// accumulators mutate, and only through Deposit.
type Grid struct {
	lower, upper float64
	width        float64
	centers      []float64
	energy       []float64
	force        []float64
}

func NewGrid(lower, upper float64, bins int) (*Grid, error) {
	if upper <= lower {
		return nil, fmt.Errorf("%w: upper bound %g must exceed lower bound %g", ErrInvalidRange, upper, lower)
	}
	if bins <= 0 {
		return nil, fmt.Errorf("%w: bin count must be positive, got %d", ErrInvalidRange, bins)
	}

	w := (upper - lower) / float64(bins)
	g := &Grid{
		lower:   lower,
		upper:   upper,
		width:   w,
		centers: make([]float64, bins),
		energy:  make([]float64, bins),
		force:   make([]float64, bins),
	}
	for i := range g.centers {
		g.centers[i] = lower + w*(float64(i)+0.5)
	}
	return g, nil
}

func (g *Grid) Bins() int { return len(g.centers) }

func (g *Grid) Bounds() (lower, upper float64) { return g.lower, g.upper }

// Centers returns a copy of the bin centers.
func (g *Grid) Centers() []float64 { return copyOf(g.centers) }

// Energy returns a copy of the per-bin accumulated bias energy.
func (g *Grid) Energy() []float64 { return copyOf(g.energy) }

// Force returns a copy of the per-bin accumulated bias derivative.
func (g *Grid) Force() []float64 { return copyOf(g.force) }

// copyOf keeps Deposit the only write path into the accumulators.
func copyOf(vals []float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}

// NearestBin returns the index of the bin center closest to x. An exact
// midpoint between two centers resolves to the lower index. Positions
// outside the grid clamp to the edge bins rather than erroring, so
// transient excursions never abort a run.
func (g *Grid) NearestBin(x float64) int {
	// Clamp against the bounds before any float-to-int conversion: a huge
	// quotient (diverged walker, +-Inf) would saturate the conversion and
	// the -1 below would wrap a far-left query onto the right edge.
	if x <= g.lower {
		return 0
	}
	if x >= g.upper {
		return len(g.centers) - 1
	}
	// Centers are uniform, so the nearest one follows from index arithmetic
	// instead of a search; ceil-1 sends exact bin boundaries to the lower bin.
	idx := int(math.Ceil((x-g.lower)/g.width)) - 1
	if idx < 0 {
		return 0
	}
	if idx >= len(g.centers) {
		return len(g.centers) - 1
	}
	return idx
}

// Deposit evaluates k's energy and gradient at every bin center and adds
// them into the accumulators. Deposits are strictly additive; the grid is a
// running sum over the whole trajectory.
func (g *Grid) Deposit(k landscape.Potential) {
	for i, c := range g.centers {
		g.energy[i] += k.Energy(c)
		g.force[i] += k.Gradient(c)
	}
}

func (g *Grid) EnergyAt(x float64) float64 { return g.energy[g.NearestBin(x)] }

func (g *Grid) ForceAt(x float64) float64 { return g.force[g.NearestBin(x)] }

// EnergiesAt looks up the bias energy for each position.
func (g *Grid) EnergiesAt(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = g.EnergyAt(x)
	}
	return out
}

// ForcesAt looks up the bias derivative for each position.
func (g *Grid) ForcesAt(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = g.ForceAt(x)
	}
	return out
}
