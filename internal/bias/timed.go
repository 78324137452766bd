package bias

import (
	"fmt"

	"github.com/avasil/metadyn/internal/landscape"
)

// TimedBias re-adds a fixed, user-defined potential to the running sum on
// every trigger-th step. Unlike Metadynamics the deposit is not centered on
// the walker; the same bump lands in the same place each time, so after k
// triggers the surface reads base + k*add. The closed forms are cheap to
// re-sum, so no grid is involved.
type TimedBias struct {
	base       landscape.Potential
	add        landscape.Potential
	trigger    int
	stepsSince int
	updates    int
}

func NewTimedBias(base, add landscape.Potential, trigger int) (*TimedBias, error) {
	if base == nil || add == nil {
		return nil, fmt.Errorf("%w: timed bias requires a base and an added potential", ErrInvalidConfig)
	}
	if trigger <= 0 {
		return nil, fmt.Errorf("%w: trigger interval must be positive, got %d", ErrInvalidConfig, trigger)
	}
	return &TimedBias{
		base:       base,
		add:        add,
		trigger:    trigger,
		stepsSince: 1,
	}, nil
}

func (t *TimedBias) Name() string {
	return "timedbias(" + t.base.Name() + "+" + t.add.Name() + ")"
}

func (t *TimedBias) Energy(x float64) float64 {
	return t.base.Energy(x) + float64(t.updates)*t.add.Energy(x)
}

func (t *TimedBias) Gradient(x float64) float64 {
	return t.base.Gradient(x) + float64(t.updates)*t.add.Gradient(x)
}

// NotifyStep has the same cadence as the other deposition modes; the
// position is ignored because the added potential is fixed.
func (t *TimedBias) NotifyStep(x float64) {
	if t.stepsSince != t.trigger {
		t.stepsSince++
		return
	}
	t.updates++
	t.stepsSince = 1
}

func (t *TimedBias) Updates() int { return t.updates }

func (t *TimedBias) StepsSinceDeposit() int { return t.stepsSince }
