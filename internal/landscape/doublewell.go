package landscape

// DoubleWell is the bistable surface A*(x^2-B)^2 with minima at +-sqrt(B)
// separated by a barrier of height A*B^2 at the origin. The standard test
// bed for barrier-crossing methods.
type DoubleWell struct {
	A, B float64
}

func NewDoubleWell() *DoubleWell {
	return &DoubleWell{1.0, 1.0}
}

func (d *DoubleWell) Name() string { return "doublewell" }

func (d *DoubleWell) Energy(x float64) float64 {
	q := x*x - d.B
	return d.A * q * q
}

func (d *DoubleWell) Gradient(x float64) float64 {
	return 4 * d.A * x * (x*x - d.B)
}

func (d *DoubleWell) GetParams() map[string]float64 {
	return map[string]float64{"A": d.A, "B": d.B}
}

func (d *DoubleWell) SetParam(n string, v float64) error {
	switch n {
	case "A":
		d.A = v
	case "B":
		d.B = v
	}
	return nil
}
