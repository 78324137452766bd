package metrics

// MeanEnergy averages the (biased) potential energy over the trajectory.
type MeanEnergy struct {
	sum     float64
	samples int
}

func NewMeanEnergy() *MeanEnergy {
	return &MeanEnergy{}
}

func (m *MeanEnergy) Name() string { return "mean_energy" }

func (m *MeanEnergy) Observe(x, energy float64, step int) {
	m.sum += energy
	m.samples++
}

func (m *MeanEnergy) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanEnergy) Reset() {
	m.sum = 0
	m.samples = 0
}
