package mix

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
)

// ratioEpsilon is the largest ratio treated as "paint not used". Members at
// or below it are pruned before a candidate reaches the ranker.
const ratioEpsilon = 1e-12

// keyScale rounds ratios to 1e-9 when deduplicating candidates.
const keyScale = 1e9

// Candidate is one evaluated blend: a subset of catalog paints, the ratio of
// each, the resulting color, and its error against the target.
//
// Indices, Paints and Ratios share one order (ascending catalog index).
// Ratios are non-negative and sum to 1. Members whose ratio was pruned to
// zero are not listed, so len(Indices) may be smaller than the size of the
// combination that produced the candidate.
type Candidate struct {
	Indices []int
	Paints  []catalog.Paint
	Ratios  []float64
	Mixed   color.Color
	Error   float64

	// Seq is the generation order of the candidate within its query.
	// It is the tie-break for equal errors.
	Seq int
}

// Cardinality is the number of paints actually used.
func (c Candidate) Cardinality() int { return len(c.Indices) }

// Recipe converts the candidate into its display form.
func (c Candidate) Recipe() Recipe {
	return newRecipe(c.Paints, c.Ratios, c.Mixed, c.Error)
}

// key identifies the effective blend: same paints with the same ratios
// (rounded to 1e-9) are the same recipe.
func (c Candidate) key() string {
	var b strings.Builder
	for i, idx := range c.Indices {
		b.WriteString(strconv.Itoa(idx))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(math.Round(c.Ratios[i]*keyScale), 'f', 0, 64))
		b.WriteByte(';')
	}

	return b.String()
}

// Outcome is the explicit per-candidate result consumed by the ranker:
// Reason == SkipNone means Candidate is valid, anything else means it was
// discarded for that reason.
type Outcome struct {
	Candidate Candidate
	Reason    SkipReason
}

// skip is shorthand for a discarded outcome.
func skip(r SkipReason) Outcome { return Outcome{Reason: r} }

// evaluate turns raw ratios for the given members into an Outcome.
//
// Implementation:
//   - Stage 1: reject non-finite or negative ratios, zero sums.
//   - Stage 2: normalize to sum 1 and prune members at ≤ ratioEpsilon.
//   - Stage 3: mix, score with metric, reject non-finite results.
//
// members are catalog indices; raw is not modified.
func evaluate(target color.Color, cat *catalog.Catalog, metric color.Metric, members []int, raw []float64) Outcome {
	// Stage 1: sanity of the raw ratios.
	var (
		i   int
		sum float64
	)
	for i = 0; i < len(raw); i++ {
		if math.IsNaN(raw[i]) || math.IsInf(raw[i], 0) {
			return skip(SkipNonFinite)
		}
		if raw[i] < 0 {
			return skip(SkipNonFinite)
		}
	}
	sum = floats.Sum(raw)
	if math.IsInf(sum, 0) {
		return skip(SkipNonFinite)
	}
	if sum <= ratioEpsilon {
		return skip(SkipZeroWeightSum)
	}

	// Stage 2: normalize, prune, renormalize.
	var (
		idx    = make([]int, 0, len(members))
		ratios = make([]float64, 0, len(members))
		r      float64
	)
	for i = 0; i < len(raw); i++ {
		r = raw[i] / sum
		if r <= ratioEpsilon {
			continue
		}
		idx = append(idx, members[i])
		ratios = append(ratios, r)
	}
	floats.Scale(1/floats.Sum(ratios), ratios)

	// Stage 3: mixed color and error.
	var (
		paints = make([]catalog.Paint, len(idx))
		mixed  color.Color
	)
	for i = 0; i < len(idx); i++ {
		paints[i] = cat.At(idx[i])
		mixed = mixed.Add(paints[i].Color.Scale(ratios[i]))
	}
	if !mixed.IsFinite() {
		return skip(SkipNonFinite)
	}
	e := metric.Distance(target, mixed)
	if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		return skip(SkipNonFinite)
	}

	return Outcome{Candidate: Candidate{
		Indices: idx,
		Paints:  paints,
		Ratios:  ratios,
		Mixed:   mixed,
		Error:   e,
	}}
}

// hasIdenticalColors reports whether any two colors are exactly equal.
func hasIdenticalColors(cols []color.Color) bool {
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			if cols[i] == cols[j] {
				return true
			}
		}
	}

	return false
}
