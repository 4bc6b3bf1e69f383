package mix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/paintmix/color"
)

// lsqRatios is the constrained least-squares K-paint mixer for one subset.
//
// Algorithm:
//  1. Build the 3×k matrix A whose column j is member j's (R,G,B).
//  2. Solve min‖A·x − target‖ without constraints. gonum picks LU for
//     k == 3, QR for k < 3 and the minimum-norm LQ solution for k > 3.
//  3. Clip negative weights to zero and renormalize to Σ = 1.
//
// The caller recomputes the mixed color and error from the returned
// ratios; the solver's own residual describes the unclipped x and is never
// reported.
//
// Errors map to skip reasons: identical columns → SkipIdenticalColors,
// solver failure or ill-conditioning → SkipSingular, everything clipped →
// SkipZeroWeightSum.
//
// Complexity: O(k³).
func lsqRatios(target color.Color, cols []color.Color) ([]float64, SkipReason) {
	if hasIdenticalColors(cols) {
		return nil, SkipIdenticalColors
	}

	var (
		k = len(cols)
		a = mat.NewDense(3, k, nil)
		b = mat.NewVecDense(3, target.Vec())
		x mat.VecDense
		j int
	)
	for j = 0; j < k; j++ {
		a.Set(0, j, cols[j].R)
		a.Set(1, j, cols[j].G)
		a.Set(2, j, cols[j].B)
	}
	if err := x.SolveVec(a, b); err != nil {
		// Includes mat.Condition: the fit exists but is numerically unreliable.
		return nil, SkipSingular
	}

	w := make([]float64, k)
	for j = 0; j < k; j++ {
		v := x.AtVec(j)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, SkipNonFinite
		}
		w[j] = math.Max(0, v)
	}
	sum := floats.Sum(w)
	if sum <= ratioEpsilon {
		return nil, SkipZeroWeightSum
	}
	floats.Scale(1/sum, w)

	return w, SkipNone
}
