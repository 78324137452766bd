package analysis

// Histogram bins the positions over [lower, upper). Samples outside the
// range are dropped; they belong to excursions the caller chose not to
// resolve.
func Histogram(positions []float64, bins int, lower, upper float64) []float64 {
	if bins <= 0 || upper <= lower {
		return nil
	}

	counts := make([]float64, bins)
	width := (upper - lower) / float64(bins)
	for _, x := range positions {
		if x < lower || x >= upper {
			continue
		}
		idx := int((x - lower) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}

// Occupancy reports the fraction of samples on each side of the split
// position. Useful for checking that flooding equalizes the wells.
func Occupancy(positions []float64, split float64) (left, right float64) {
	if len(positions) == 0 {
		return 0, 0
	}
	n := 0
	for _, x := range positions {
		if x < split {
			n++
		}
	}
	left = float64(n) / float64(len(positions))
	return left, 1 - left
}
