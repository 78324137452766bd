package metrics

// DepositCounter is satisfied by adaptive potentials that track how many
// kernels they have deposited.
type DepositCounter interface {
	Updates() int
}

// DepositionCount reports the deposit total of an adaptive potential as a
// run metric. The counter lives in the bias layer; this metric only reads it.
type DepositionCount struct {
	counter DepositCounter
}

func NewDepositionCount(c DepositCounter) *DepositionCount {
	return &DepositionCount{counter: c}
}

func (d *DepositionCount) Name() string { return "deposition_count" }

func (d *DepositionCount) Observe(x, energy float64, step int) {}

func (d *DepositionCount) Value() float64 { return float64(d.counter.Updates()) }

func (d *DepositionCount) Reset() {}
