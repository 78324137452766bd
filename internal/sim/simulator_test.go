package sim

import (
	"context"
	"testing"

	"github.com/avasil/metadyn/internal/bias"
	"github.com/avasil/metadyn/internal/landscape"
)

type testSampler struct{ dx float64 }

func (t *testSampler) Name() string { return "test" }
func (t *testSampler) Step(p landscape.Potential, x float64) float64 {
	return x + t.dx
}

type testMetric struct {
	count int
	sum   float64
}

func (t *testMetric) Name() string { return "test" }
func (t *testMetric) Observe(x, e float64, step int) {
	t.count++
	t.sum += x
}
func (t *testMetric) Value() float64 {
	if t.count == 0 {
		return 0
	}
	return t.sum / float64(t.count)
}
func (t *testMetric) Reset() {
	t.count = 0
	t.sum = 0
}

func TestSimulatorRun(t *testing.T) {
	pot := landscape.NewHarmonic(1.0, 5.0)
	smp := &testSampler{dx: 0.1}

	s := New(pot, smp)
	result, err := s.Run(context.Background(), 0.0, Config{Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Positions) != 11 {
		t.Errorf("expected 11 positions, got %d", len(result.Positions))
	}
	if len(result.Energies) != 11 {
		t.Errorf("expected 11 energies, got %d", len(result.Energies))
	}
	if result.Steps != 10 {
		t.Errorf("steps = %d, want 10", result.Steps)
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	s := New(landscape.NewHarmonic(1.0, 0.0), &testSampler{})

	for _, steps := range []int{0, -5} {
		if _, err := s.Run(context.Background(), 0, Config{Steps: steps}); err == nil {
			t.Errorf("steps=%d: expected error, got nil", steps)
		}
	}
}

func TestSimulatorNotifiesAdaptivePotential(t *testing.T) {
	meta, err := bias.NewMetadynamics(landscape.NewHarmonic(1.0, 5.0), bias.Options{
		Amplitude: 0.1, Sigma: 0.1, Trigger: 3, GridMin: 0, GridMax: 10, Bins: 100,
	})
	if err != nil {
		t.Fatalf("metadynamics: %v", err)
	}

	s := New(meta, &testSampler{dx: 0.01})
	result, err := s.Run(context.Background(), 5.0, Config{Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// 10 notifications with trigger 3: deposits after steps 3, 6, 9
	if result.Deposits != 3 {
		t.Errorf("deposits = %d, want 3", result.Deposits)
	}
	if meta.Updates() != 3 {
		t.Errorf("updates = %d, want 3", meta.Updates())
	}
}

func TestSimulatorMetrics(t *testing.T) {
	s := New(landscape.NewHarmonic(1.0, 0.0), &testSampler{dx: 0.1})

	metric := &testMetric{}
	s.AddMetric(metric)

	result, err := s.Run(context.Background(), 0, Config{Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["test"]; !ok {
		t.Error("metric not found in result")
	}
	if metric.count != 10 {
		t.Errorf("expected 10 observations, got %d", metric.count)
	}
}

func TestSimulatorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(landscape.NewHarmonic(1.0, 0.0), &testSampler{dx: 0.1})
	if _, err := s.Run(ctx, 0, Config{Steps: 100}); err == nil {
		t.Error("expected context error, got nil")
	}
}

func TestRunWithCallbackStopsEarly(t *testing.T) {
	s := New(landscape.NewHarmonic(1.0, 0.0), &testSampler{dx: 0.1})

	calls := 0
	err := s.RunWithCallback(context.Background(), 0, Config{Steps: 100}, func(x, e float64, step int) bool {
		calls++
		return calls < 5
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls != 5 {
		t.Errorf("callback called %d times, want 5", calls)
	}
}
