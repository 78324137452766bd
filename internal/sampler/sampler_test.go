package sampler

import (
	"math"
	"testing"

	"github.com/avasil/metadyn/internal/landscape"
)

func TestLangevinZeroTemperatureDescends(t *testing.T) {
	p := landscape.NewHarmonic(1.0, 5.0)
	l := NewLangevin(0.1, 1.0, 0.0, 42)

	x := 9.0
	for i := 0; i < 200; i++ {
		x = l.Step(p, x)
	}
	if math.Abs(x-5.0) > 1e-6 {
		t.Errorf("zero-temperature walker ended at %f, want the minimum 5.0", x)
	}
}

func TestLangevinDeterministicFromSeed(t *testing.T) {
	p := landscape.NewDoubleWell()

	a := NewLangevin(0.01, 1.0, 0.5, 7)
	b := NewLangevin(0.01, 1.0, 0.5, 7)

	xa, xb := 1.0, 1.0
	for i := 0; i < 500; i++ {
		xa = a.Step(p, xa)
		xb = b.Step(p, xb)
	}
	if xa != xb {
		t.Errorf("same seed diverged: %f vs %f", xa, xb)
	}
}

func TestMetropolisNeverClimbsAtZeroTemperature(t *testing.T) {
	p := landscape.NewHarmonic(2.0, 0.0)
	m := NewMetropolis(0.5, 0.0, 13)

	x := 3.0
	e := p.Energy(x)
	for i := 0; i < 500; i++ {
		x = m.Step(p, x)
		next := p.Energy(x)
		if next > e {
			t.Fatalf("step %d increased energy from %f to %f at T=0", i, e, next)
		}
		e = next
	}
}

func TestMetropolisExploresAtHighTemperature(t *testing.T) {
	p := landscape.NewDoubleWell()
	m := NewMetropolis(0.4, 5.0, 99)

	x := -1.0
	crossed := false
	for i := 0; i < 5000; i++ {
		x = m.Step(p, x)
		if x > 1.0 {
			crossed = true
			break
		}
	}
	if !crossed {
		t.Error("hot walker never crossed the barrier in 5000 steps")
	}
	if r := m.AcceptanceRatio(); r <= 0 || r > 1 {
		t.Errorf("acceptance ratio = %f, want in (0,1]", r)
	}
}
