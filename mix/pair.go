package mix

import (
	"math"

	"github.com/katalvlaran/paintmix/color"
)

// ProjectPair returns the exact minimizer of ‖alpha·a + (1−alpha)·b − target‖²
// over alpha ∈ [0,1], together with the mixed color.
//
// Algorithm:
//
//	alpha = dot(target − b, a − b) / ‖a − b‖², clamped to [0,1].
//
// The unconstrained optimum is the orthogonal projection of target onto the
// line through a and b; clamping moves it to the nearest segment end, which
// is optimal because the squared distance is convex in alpha.
//
// ok is false when a == b (zero-length segment) or the result is not finite.
//
// Complexity: O(1).
func ProjectPair(target, a, b color.Color) (alpha float64, mixed color.Color, ok bool) {
	var (
		ab  = a.Sub(b)
		den = ab.Norm2()
	)
	if den == 0 {
		return 0, color.Color{}, false
	}
	alpha = target.Sub(b).Dot(ab) / den
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, color.Color{}, false
	}
	alpha = math.Max(0, math.Min(1, alpha))
	mixed = a.Scale(alpha).Add(b.Scale(1 - alpha))

	return alpha, mixed, mixed.IsFinite()
}

// pairRatios is the two-paint analytical mixer.
func pairRatios(target color.Color, cols []color.Color) ([]float64, SkipReason) {
	if cols[0] == cols[1] {
		return nil, SkipIdenticalColors
	}
	alpha, _, ok := ProjectPair(target, cols[0], cols[1])
	if !ok {
		return nil, SkipNonFinite
	}

	return []float64{alpha, 1 - alpha}, SkipNone
}
