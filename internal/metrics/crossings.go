package metrics

// WellCrossings counts transitions across a barrier position. For a
// double-well surface the barrier sits at the origin; the count measures how
// effectively the bias floods the wells.
type WellCrossings struct {
	barrier float64
	side    int // -1 left, 1 right, 0 unseen
	count   int
}

func NewWellCrossings(barrier float64) *WellCrossings {
	return &WellCrossings{barrier: barrier}
}

func (w *WellCrossings) Name() string { return "well_crossings" }

func (w *WellCrossings) Observe(x, energy float64, step int) {
	side := 1
	if x < w.barrier {
		side = -1
	}
	if w.side != 0 && side != w.side {
		w.count++
	}
	w.side = side
}

func (w *WellCrossings) Value() float64 { return float64(w.count) }

func (w *WellCrossings) Reset() {
	w.side = 0
	w.count = 0
}
