package bias

import (
	"errors"
	"math"
	"testing"

	"github.com/avasil/metadyn/internal/landscape"
)

func TestNewTimedBiasValidation(t *testing.T) {
	base := landscape.NewHarmonic(1.0, 5.0)
	add := &landscape.Gaussian{A: 0.1, Mu: 5.0, Sigma: 0.5}

	tests := []struct {
		name      string
		base, add landscape.Potential
		trigger   int
	}{
		{"nil base", nil, add, 10},
		{"nil add", base, nil, 10},
		{"zero trigger", base, add, 0},
		{"negative trigger", base, add, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimedBias(tt.base, tt.add, tt.trigger)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestTimedBiasCadence(t *testing.T) {
	base := landscape.NewHarmonic(1.0, 5.0)
	add := &landscape.Gaussian{A: 0.1, Mu: 5.0, Sigma: 0.5}

	tb, err := NewTimedBias(base, add, 3)
	if err != nil {
		t.Fatalf("new timed bias: %v", err)
	}

	// six steps at trigger 3 add the fixed potential twice
	for i := 0; i < 6; i++ {
		tb.NotifyStep(float64(i))
	}
	if tb.Updates() != 2 {
		t.Errorf("updates = %d, want 2", tb.Updates())
	}
	if s := tb.StepsSinceDeposit(); s < 1 || s > 3 {
		t.Errorf("counter = %d, want in [1,3]", s)
	}
}

func TestTimedBiasAccumulatesFixedPotential(t *testing.T) {
	base := landscape.NewHarmonic(1.0, 5.0)
	add := &landscape.Gaussian{A: 0.1, Mu: 5.0, Sigma: 0.5}

	tb, err := NewTimedBias(base, add, 1)
	if err != nil {
		t.Fatalf("new timed bias: %v", err)
	}

	// the deposit is position independent: stepping at x=2 raises x=5
	tb.NotifyStep(2.0)
	tb.NotifyStep(2.0)
	tb.NotifyStep(2.0)

	for _, x := range []float64{2.0, 5.0, 7.5} {
		wantE := base.Energy(x) + 3*add.Energy(x)
		if got := tb.Energy(x); math.Abs(got-wantE) > 1e-15 {
			t.Errorf("Energy(%g) = %g, want %g", x, got, wantE)
		}
		wantG := base.Gradient(x) + 3*add.Gradient(x)
		if got := tb.Gradient(x); math.Abs(got-wantG) > 1e-15 {
			t.Errorf("Gradient(%g) = %g, want %g", x, got, wantG)
		}
	}
}

func TestTimedBiasReadsAreIdempotent(t *testing.T) {
	base := landscape.NewDoubleWell()
	add := &landscape.Gaussian{A: 0.2, Mu: 0.0, Sigma: 0.3}

	tb, err := NewTimedBias(base, add, 2)
	if err != nil {
		t.Fatalf("new timed bias: %v", err)
	}
	tb.NotifyStep(0.5)
	tb.NotifyStep(0.5)

	first := tb.Energy(0.5)
	for i := 0; i < 10; i++ {
		if tb.Energy(0.5) != first {
			t.Fatal("repeated reads changed the value")
		}
	}
	if tb.Updates() != 1 {
		t.Errorf("updates = %d, want 1", tb.Updates())
	}
}
