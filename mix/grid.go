package mix

import (
	"math"

	"github.com/katalvlaran/paintmix/color"
)

// gridSlots returns S = ⌊1/step⌋, the number of step units available to the
// first k−1 coefficients. The small epsilon keeps 1/0.05 from landing on 19.
func gridSlots(step float64) int {
	return int(math.Floor(1/step + 1e-9))
}

// gridPoints is the number of grid points scanned per k-subset:
// the count of (x₁..x_{k−1}) ≥ 0 with Σx ≤ S, i.e. C(S+k−1, k−1).
func gridPoints(k int, step float64) float64 {
	if k <= 1 {
		return 1
	}

	return binomial(gridSlots(step)+k-1, k-1)
}

// gridRatios is the grid-search K-paint mixer for one subset.
//
// Algorithm:
//  1. The first k−1 coefficients take the values x·step for integers x ≥ 0
//     with Σx ≤ S; the last coefficient is the remainder 1 − step·Σx.
//  2. Every point is mixed and scored; the strictly smallest error wins, so
//     the first point in enumeration order keeps ties.
//
// Integer enumeration avoids accumulating floating-point drift in the
// coefficient sums.
//
// Complexity: O(C(S+k−1, k−1)) metric evaluations.
func gridRatios(target color.Color, cols []color.Color, step float64, metric color.Metric) ([]float64, SkipReason) {
	if hasIdenticalColors(cols) {
		return nil, SkipIdenticalColors
	}

	var (
		k       = len(cols)
		slots   = gridSlots(step)
		units   = make([]int, k-1) // current integer coefficients
		ratios  = make([]float64, k)
		best    = make([]float64, k)
		bestErr = math.Inf(1)
	)

	var walk func(slot, left int)
	walk = func(slot, left int) {
		if slot == k-1 {
			var (
				used  int
				mixed color.Color
				i     int
			)
			for i = 0; i < k-1; i++ {
				ratios[i] = float64(units[i]) * step
				used += units[i]
			}
			ratios[k-1] = math.Max(0, 1-float64(used)*step)
			for i = 0; i < k; i++ {
				mixed = mixed.Add(cols[i].Scale(ratios[i]))
			}
			if e := metric.Distance(target, mixed); e < bestErr {
				bestErr = e
				copy(best, ratios)
			}
			return
		}
		for x := 0; x <= left; x++ {
			units[slot] = x
			walk(slot+1, left-x)
		}
	}
	walk(0, slots)

	if math.IsInf(bestErr, 1) {
		return nil, SkipNonFinite
	}

	return best, SkipNone
}
