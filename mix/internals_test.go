// White-box tests for the enumeration, mixer and ranking kernels.
package mix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
)

// ------------------------------------------------------------------------
// combin.go
// ------------------------------------------------------------------------

func TestForEachCombination_Lexicographic(t *testing.T) {
	var got [][]int
	forEachCombination([]int{0, 1, 2, 3}, 2, func(m []int) bool {
		got = append(got, append([]int(nil), m...))
		return true
	})
	require.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)
}

func TestForEachCombination_PoolValuesAndStop(t *testing.T) {
	var got [][]int
	forEachCombination([]int{2, 5, 9}, 2, func(m []int) bool {
		got = append(got, append([]int(nil), m...))
		return len(got) < 2
	})
	require.Equal(t, [][]int{{2, 5}, {2, 9}}, got)
}

func TestForEachCombination_Degenerate(t *testing.T) {
	calls := 0
	fn := func([]int) bool { calls++; return true }
	forEachCombination([]int{1, 2}, 3, fn)
	forEachCombination([]int{1, 2}, 0, fn)
	forEachCombination(nil, 1, fn)
	require.Zero(t, calls)

	forEachCombination([]int{4, 5, 6}, 3, fn)
	require.Equal(t, 1, calls)
}

func TestBinomial(t *testing.T) {
	cases := []struct {
		n, k int
		want float64
	}{
		{5, 0, 1}, {5, 5, 1}, {5, 2, 10}, {10, 3, 120}, {22, 2, 231}, {3, 4, 0}, {3, -1, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, binomial(c.n, c.k), "C(%d,%d)", c.n, c.k)
	}
}

// ------------------------------------------------------------------------
// grid.go
// ------------------------------------------------------------------------

func TestGridSlotsAndPoints(t *testing.T) {
	require.Equal(t, 20, gridSlots(0.05))
	require.Equal(t, 10, gridSlots(0.1))
	require.Equal(t, 2, gridSlots(0.5))
	require.Equal(t, 1, gridSlots(1))
	require.Equal(t, 3, gridSlots(0.3)) // last coefficient absorbs the 0.1 gap

	require.Equal(t, 231.0, gridPoints(3, 0.05))
	require.Equal(t, 6.0, gridPoints(3, 0.5))
	require.Equal(t, 1.0, gridPoints(1, 0.05))
}

func TestGridRatios_FindsVertexAndInterior(t *testing.T) {
	cols := []color.Color{color.RGB(255, 0, 0), color.RGB(0, 255, 0), color.RGB(0, 0, 255)}

	r, reason := gridRatios(color.RGB(0, 255, 0), cols, 0.5, color.Euclidean{})
	require.Equal(t, SkipNone, reason)
	require.Equal(t, []float64{0, 1, 0}, r)

	r, reason = gridRatios(color.Color{R: 127.5, B: 127.5}, cols, 0.5, color.Euclidean{})
	require.Equal(t, SkipNone, reason)
	require.Equal(t, []float64{0.5, 0, 0.5}, r)
}

func TestGridRatios_IdenticalColors(t *testing.T) {
	cols := []color.Color{color.RGB(1, 2, 3), color.RGB(9, 9, 9), color.RGB(1, 2, 3)}
	_, reason := gridRatios(color.RGB(0, 0, 0), cols, 0.1, color.Euclidean{})
	require.Equal(t, SkipIdenticalColors, reason)
}

// ------------------------------------------------------------------------
// lsq.go
// ------------------------------------------------------------------------

func TestLSQRatios_Exact(t *testing.T) {
	cols := []color.Color{color.RGB(255, 0, 0), color.RGB(0, 255, 0), color.RGB(0, 0, 255)}
	r, reason := lsqRatios(color.Color{R: 51, G: 76.5, B: 127.5}, cols)
	require.Equal(t, SkipNone, reason)
	require.InDeltaSlice(t, []float64{0.2, 0.3, 0.5}, r, 1e-12)
}

func TestLSQRatios_ClipsNegative(t *testing.T) {
	cols := []color.Color{color.RGB(255, 0, 0), color.RGB(0, 255, 0), color.RGB(0, 0, 255)}
	// Unconstrained fit is (1.2, -0.2, 0) before clipping.
	r, reason := lsqRatios(color.Color{R: 306, G: -51}, cols)
	require.Equal(t, SkipNone, reason)
	require.InDelta(t, 1.0, r[0], 1e-12)
	require.InDelta(t, 0.0, r[1], 1e-12)
	require.InDelta(t, 0.0, r[2], 1e-12)
}

func TestLSQRatios_Singular(t *testing.T) {
	cols := []color.Color{color.RGB(255, 0, 0), color.RGB(0, 255, 0), color.RGB(0, 0, 0)}
	_, reason := lsqRatios(color.RGB(10, 10, 10), cols)
	require.Equal(t, SkipSingular, reason)

	// Collinear columns.
	cols = []color.Color{color.RGB(16, 32, 64), color.RGB(32, 64, 128), color.RGB(255, 0, 0)}
	_, reason = lsqRatios(color.RGB(10, 10, 10), cols)
	require.Equal(t, SkipSingular, reason)
}

func TestLSQRatios_AllClipped(t *testing.T) {
	cols := []color.Color{color.RGB(255, 0, 0), color.RGB(0, 255, 0), color.RGB(0, 0, 255)}
	// Every unconstrained weight is negative.
	_, reason := lsqRatios(color.Color{R: -10, G: -10, B: -10}, cols)
	require.Equal(t, SkipZeroWeightSum, reason)
}

func TestLSQRatios_IdenticalColors(t *testing.T) {
	cols := []color.Color{color.RGB(1, 2, 3), color.RGB(1, 2, 3), color.RGB(0, 0, 255)}
	_, reason := lsqRatios(color.RGB(0, 0, 0), cols)
	require.Equal(t, SkipIdenticalColors, reason)
}

// ------------------------------------------------------------------------
// density.go
// ------------------------------------------------------------------------

func TestDensityRatios(t *testing.T) {
	r, reason := densityRatios([]catalog.Paint{{Weight: 1}, {Weight: 3}})
	require.Equal(t, SkipNone, reason)
	require.Equal(t, []float64{0.25, 0.75}, r)

	_, reason = densityRatios([]catalog.Paint{{}, {}})
	require.Equal(t, SkipZeroWeightSum, reason)
}

// ------------------------------------------------------------------------
// candidate.go
// ------------------------------------------------------------------------

func twoPaintCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.MustNew(
		catalog.Paint{Name: "Red", Color: color.RGB(255, 0, 0)},
		catalog.Paint{Name: "Blue", Color: color.RGB(0, 0, 255)},
	)
}

func TestEvaluate_NormalizesAndPrunes(t *testing.T) {
	cat := twoPaintCatalog(t)

	o := evaluate(color.RGB(0, 0, 0), cat, color.Euclidean{}, []int{0, 1}, []float64{2, 2})
	require.Equal(t, SkipNone, o.Reason)
	require.Equal(t, []float64{0.5, 0.5}, o.Candidate.Ratios)
	require.Equal(t, color.Color{R: 127.5, B: 127.5}, o.Candidate.Mixed)

	o = evaluate(color.RGB(0, 0, 0), cat, color.Euclidean{}, []int{0, 1}, []float64{0, 3})
	require.Equal(t, SkipNone, o.Reason)
	require.Equal(t, []int{1}, o.Candidate.Indices)
	require.Equal(t, []float64{1}, o.Candidate.Ratios)
	require.Equal(t, "Blue", o.Candidate.Paints[0].Name)
}

func TestEvaluate_Rejects(t *testing.T) {
	cat := twoPaintCatalog(t)
	members := []int{0, 1}

	cases := []struct {
		name string
		raw  []float64
		want SkipReason
	}{
		{"nan", []float64{math.NaN(), 1}, SkipNonFinite},
		{"inf", []float64{math.Inf(1), 1}, SkipNonFinite},
		{"negative", []float64{-0.1, 1.1}, SkipNonFinite},
		{"zero sum", []float64{0, 0}, SkipZeroWeightSum},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := evaluate(color.RGB(0, 0, 0), cat, color.Euclidean{}, members, c.raw)
			require.Equal(t, c.want, o.Reason)
		})
	}

	bad := color.MetricFunc(func(a, b color.Color) float64 { return math.NaN() })
	o := evaluate(color.RGB(0, 0, 0), cat, bad, members, []float64{1, 1})
	require.Equal(t, SkipNonFinite, o.Reason)
}

func TestCandidateKey_RoundsRatios(t *testing.T) {
	a := Candidate{Indices: []int{0, 3}, Ratios: []float64{0.25, 0.75}}
	b := Candidate{Indices: []int{0, 3}, Ratios: []float64{0.25 + 1e-13, 0.75 - 1e-13}}
	c := Candidate{Indices: []int{0, 2}, Ratios: []float64{0.25, 0.75}}
	require.Equal(t, a.key(), b.key())
	require.NotEqual(t, a.key(), c.key())
}

// ------------------------------------------------------------------------
// rank.go
// ------------------------------------------------------------------------

func cand(idx int, e float64) Outcome {
	return Outcome{Candidate: Candidate{Indices: []int{idx}, Ratios: []float64{1}, Error: e}}
}

func TestRanker_OrderDedupThreshold(t *testing.T) {
	r := newRanker(3, 5)

	require.Equal(t, SkipNone, r.add(cand(0, 4)))
	require.Equal(t, SkipNone, r.add(cand(1, 1)))
	require.Equal(t, SkipDuplicate, r.add(cand(1, 1)))
	require.Equal(t, SkipAboveThreshold, r.add(cand(2, 6)))
	require.Equal(t, SkipSingular, r.add(Outcome{Reason: SkipSingular}))
	require.Equal(t, SkipNone, r.add(cand(3, 1)))
	require.Equal(t, SkipNone, r.add(cand(4, 0.5)))

	top := r.top()
	require.Len(t, top, 3)
	require.Equal(t, []int{4}, top[0].Indices)
	require.Equal(t, []int{1}, top[1].Indices) // tie on 1: earlier Seq first
	require.Equal(t, []int{3}, top[2].Indices)

	require.Equal(t, 7, r.evaluated)
	require.Equal(t, map[SkipReason]int{SkipDuplicate: 1, SkipAboveThreshold: 1, SkipSingular: 1}, r.skipped)
}

func TestRanker_Saturated(t *testing.T) {
	r := newRanker(2, math.Inf(1))
	r.add(cand(0, 0))
	require.False(t, r.saturated())
	r.add(cand(1, 0.1))
	require.False(t, r.saturated())
	r.add(cand(2, 0))
	require.True(t, r.saturated())
}

// ------------------------------------------------------------------------
// options.go
// ------------------------------------------------------------------------

func TestValidateOptions(t *testing.T) {
	o, err := validateOptions(DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, o.Logger)
	require.NotNil(t, o.Metric)

	mutate := []func(*Options){
		func(o *Options) { o.MaxCardinality = 0 },
		func(o *Options) { o.ResultCount = 0 },
		func(o *Options) { o.ShortlistSize = 0 },
		func(o *Options) { o.MaxEvaluations = -1 },
		func(o *Options) { o.GridStep = 0 },
		func(o *Options) { o.GridStep = 1.5 },
		func(o *Options) { o.GridStep = math.NaN() },
		func(o *Options) { o.GridStep = MinGridStep / 2 },
		func(o *Options) { o.ErrorThreshold = -1 },
		func(o *Options) { o.ErrorThreshold = math.NaN() },
		func(o *Options) { o.Mode = Mode(7) },
		func(o *Options) { o.Strategy = Strategy(-1) },
	}
	for i, m := range mutate {
		bad := DefaultOptions()
		m(&bad)
		_, err = validateOptions(bad)
		require.ErrorIs(t, err, ErrInvalidOptions, "case %d", i)
	}

	o, err = validateOptions(Options{MaxCardinality: 1, ResultCount: 1, ShortlistSize: 1, GridStep: 1})
	require.NoError(t, err)
	require.Equal(t, color.Euclidean{}, o.Metric)
}
