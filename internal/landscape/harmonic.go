package landscape

// Harmonic is a quadratic well 0.5*K*(x-X0)^2.
type Harmonic struct {
	K, X0 float64
}

func NewHarmonic(k, x0 float64) *Harmonic {
	return &Harmonic{K: k, X0: x0}
}

func (h *Harmonic) Name() string { return "harmonic" }

func (h *Harmonic) Energy(x float64) float64 {
	d := x - h.X0
	return 0.5 * h.K * d * d
}

func (h *Harmonic) Gradient(x float64) float64 {
	return h.K * (x - h.X0)
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"k": h.K, "x0": h.X0}
}

func (h *Harmonic) SetParam(n string, v float64) error {
	switch n {
	case "k":
		h.K = v
	case "x0":
		h.X0 = v
	}
	return nil
}
