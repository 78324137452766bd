package metrics

// VisitedRange tracks the span of coordinate space the walker explored.
type VisitedRange struct {
	min, max float64
	seen     bool
}

func NewVisitedRange() *VisitedRange {
	return &VisitedRange{}
}

func (v *VisitedRange) Name() string { return "visited_range" }

func (v *VisitedRange) Observe(x, energy float64, step int) {
	if !v.seen {
		v.min, v.max = x, x
		v.seen = true
		return
	}
	if x < v.min {
		v.min = x
	}
	if x > v.max {
		v.max = x
	}
}

func (v *VisitedRange) Value() float64 {
	if !v.seen {
		return 0
	}
	return v.max - v.min
}

func (v *VisitedRange) Reset() {
	v.min, v.max = 0, 0
	v.seen = false
}
