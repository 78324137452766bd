package metrics

import "testing"

type fakeCounter struct{ n int }

func (f *fakeCounter) Updates() int { return f.n }

func TestDepositionCount(t *testing.T) {
	c := &fakeCounter{}
	m := NewDepositionCount(c)

	if m.Value() != 0 {
		t.Errorf("value = %f, want 0", m.Value())
	}

	c.n = 7
	m.Observe(1.0, 0.5, 3)
	if m.Value() != 7 {
		t.Errorf("value = %f, want 7", m.Value())
	}

	if m.Name() != "deposition_count" {
		t.Errorf("name = %s", m.Name())
	}
}
