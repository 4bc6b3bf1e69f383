// Package mix finds paint recipes: the single catalog paint, or the blend of
// up to K paints with mixing ratios, whose color is closest to a target.
//
// 🚀 How does a query run?
//
//	Solve generates candidates cardinality by cardinality, scores each one
//	against the target with a pluggable color.Metric, and hands every
//	outcome (success or typed skip reason) to the ranker:
//
//	  k = 1   every paint on its own (ratio 1)
//	  k = 2   every pair, closed-form projection onto the segment A–B
//	  k ≥ 3   GridSearch       – all k-subsets, barycentric grid with step s
//	          LeastSquares     – k-subsets of the m nearest paints,
//	                             unconstrained fit, clip < 0, renormalize
//
//	In DensityWeighted mode every combination of k ≥ 2 skips optimisation
//	and mixes by ratio_i = weight_i / Σweight.
//
// ✨ Key features:
//   - deterministic ranking: ascending error, exact ties by generation order
//     (lower cardinality first, then catalog-driven enumeration order)
//   - duplicates removed: two candidates with the same effective paints and
//     ratios are reported once
//   - degenerate candidates (identical colors, singular fits, zero weight sum,
//     non-finite values) are skipped and counted, never fatal
//   - bounded cost: GridStep, ShortlistSize and MaxEvaluations cap the search;
//     EstimateEvaluations predicts the work before it starts
//   - exact-match short circuit: once ResultCount zero-error candidates exist,
//     nothing later can outrank them, so the search stops
//
// ⚙️ Usage:
//
//	res, err := mix.Solve(target, cat,
//	  mix.WithMaxCardinality(3),
//	  mix.WithStrategy(mix.GridSearch),
//	  mix.WithGridStep(0.05),
//	)
//	if err != nil {
//	  // catalog.ErrEmptyCatalog, color.ErrInvalidColor, ErrSearchTooLarge …
//	}
//	if res.NoValidRecipe {
//	  // relax WithErrorThreshold and retry
//	}
//	for _, r := range res.Recipes {
//	  fmt.Println(r)
//	}
//
// Performance (n paints, K cardinality, s grid step, m shortlist):
//
//   - singles O(n), pairs O(n²)
//   - GridSearch   O(C(n,k)·(1/s)^(k−1)) per k
//   - LeastSquares O(C(m,k)·k³) per k
//
// The package holds no global state. A Catalog is read-only, so concurrent
// Solve calls against the same Catalog are safe.
package mix
