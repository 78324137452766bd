package analysis

import "github.com/avasil/metadyn/internal/bias"

// FreeEnergy estimates the free-energy profile from an accumulated bias
// grid. In the long-time limit the deposited bias compensates the
// underlying wells, so F(x) = -V_bias(x) up to a constant; the profile is
// shifted so its minimum is zero.
func FreeEnergy(g *bias.Grid) []float64 {
	out := make([]float64, g.Bins())
	min := 0.0
	for i, e := range g.Energy() {
		out[i] = -e
		if i == 0 || out[i] < min {
			min = out[i]
		}
	}
	for i := range out {
		out[i] -= min
	}
	return out
}
