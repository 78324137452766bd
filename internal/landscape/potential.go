package landscape

// Potential is the capability contract shared by every energy surface: an
// energy function and its analytic derivative with respect to position.
// Implementations must keep the two consistent at every point.
type Potential interface {
	Name() string
	Energy(x float64) float64
	Gradient(x float64) float64
}

// Configurable allows runtime parameter adjustment.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Energies evaluates p elementwise over xs.
func Energies(p Potential, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Energy(x)
	}
	return out
}

// Gradients evaluates the derivative of p elementwise over xs.
func Gradients(p Potential, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Gradient(x)
	}
	return out
}
