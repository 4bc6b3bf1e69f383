package mix

import (
	"github.com/katalvlaran/paintmix/catalog"
)

// densityRatios is the density-weighted mixing policy:
// ratio_i = weight_i / Σweight. Paints without a weight contribute 0.
// A zero total is SkipZeroWeightSum.
//
// No optimisation happens here: the ratios depend only on the members, not
// on the target.
func densityRatios(paints []catalog.Paint) ([]float64, SkipReason) {
	var (
		w   = make([]float64, len(paints))
		sum float64
		i   int
	)
	for i = 0; i < len(paints); i++ {
		w[i] = paints[i].Weight
		sum += w[i]
	}
	if sum <= 0 {
		return nil, SkipZeroWeightSum
	}
	for i = 0; i < len(w); i++ {
		w[i] /= sum
	}

	return w, SkipNone
}
