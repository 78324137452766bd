package landscape

import "math"

// Wave is the periodic surface A*cos(M*(x-Phase)), a chain of identical
// wells useful for diffusion-over-barriers studies.
type Wave struct {
	A, M, Phase float64
}

func NewWave(a, multiplicity, phase float64) *Wave {
	return &Wave{A: a, M: multiplicity, Phase: phase}
}

func (w *Wave) Name() string { return "wave" }

func (w *Wave) Energy(x float64) float64 {
	return w.A * math.Cos(w.M*(x-w.Phase))
}

func (w *Wave) Gradient(x float64) float64 {
	return -w.A * w.M * math.Sin(w.M*(x-w.Phase))
}

func (w *Wave) GetParams() map[string]float64 {
	return map[string]float64{"A": w.A, "multiplicity": w.M, "phase": w.Phase}
}

func (w *Wave) SetParam(n string, v float64) error {
	switch n {
	case "A":
		w.A = v
	case "multiplicity":
		w.M = v
	case "phase":
		w.Phase = v
	}
	return nil
}
