// Package mix - unified dispatcher for recipe queries.
//
// This file provides the canonical entry points:
//
//   - Solve: apply functional options on top of DefaultOptions and delegate.
//   - SolveWithOptions: validate options, target and catalog, check the
//     evaluation budget, then run the cardinality stages in order.
//
// Design principles:
//   - Deterministic: generation order is fixed by catalog order; no
//     heuristic early exit, only the exact-match short circuit.
//   - Strict sentinels: errors from types.go (and aliased catalog/color ones).
//   - Per-candidate outcomes: a bad candidate is a SkipReason, never an error.
package mix

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
)

// Result is the answer to one query.
type Result struct {
	// Recipes holds at most ResultCount recipes, best first.
	Recipes []Recipe

	// Candidates are the same entries as Recipes in raw form.
	Candidates []Candidate

	// NoValidRecipe is true when the search completed but nothing met
	// ErrorThreshold (or every candidate was degenerate).
	NoValidRecipe bool

	// Evaluated counts candidate outcomes handed to the ranker.
	Evaluated int

	// Skipped counts discarded outcomes by reason.
	Skipped map[SkipReason]int

	// ShortCircuited is true when the search stopped after collecting
	// ResultCount exact matches.
	ShortCircuited bool
}

// Err returns ErrNoValidRecipe when NoValidRecipe is set, nil otherwise.
func (r Result) Err() error {
	if r.NoValidRecipe {
		return ErrNoValidRecipe
	}

	return nil
}

// Best returns the top recipe, if any.
func (r Result) Best() (Recipe, bool) {
	if len(r.Recipes) == 0 {
		return Recipe{}, false
	}

	return r.Recipes[0], true
}

// Solve finds the best recipes for target from cat.
//
// Errors:
//   - color.ErrInvalidColor    target channel out of range.
//   - catalog.ErrEmptyCatalog  cat is nil or empty.
//   - ErrSearchTooLarge        estimated work exceeds MaxEvaluations.
//
// On error the Result is empty; no partial results are returned.
func Solve(target color.Color, cat *catalog.Catalog, opts ...Option) (Result, error) {
	return SolveWithOptions(target, cat, NewOptions(opts...))
}

// SolveWithOptions is Solve with an explicit Options value, which is
// validated (ErrInvalidOptions) rather than trusted.
//
// Stages:
//  1. options, target, catalog validation.
//  2. budget check via EstimateEvaluations.
//  3. k = 1: every paint.
//  4. k = 2: every pair (closed form, or density ratios).
//  5. k = 3..K: strategy-specific pool and mixer.
//  6. rank, truncate, format.
func SolveWithOptions(target color.Color, cat *catalog.Catalog, opts Options) (Result, error) {
	// Stage 1: validation.
	o, err := validateOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = target.Validate(); err != nil {
		return Result{}, fmt.Errorf("target: %w", err)
	}
	if cat.Len() == 0 {
		return Result{}, ErrEmptyCatalog
	}

	// Stage 2: budget.
	if o.MaxEvaluations > 0 {
		if est := EstimateEvaluations(cat.Len(), o); est > o.MaxEvaluations {
			return Result{}, fmt.Errorf("%w: estimated %d > budget %d", ErrSearchTooLarge, est, o.MaxEvaluations)
		}
	}

	// Stages 3-5: generation.
	s := &search{
		target: target,
		cat:    cat,
		opts:   o,
		rank:   newRanker(o.ResultCount, o.ErrorThreshold),
		debug:  o.Logger.Enabled(context.Background(), slog.LevelDebug),
	}
	stopped := !s.singles() || !s.pairs() || !s.higher()

	// Stage 6: ranking.
	top := s.rank.top()
	res := Result{
		Candidates:     top,
		Recipes:        make([]Recipe, len(top)),
		NoValidRecipe:  len(top) == 0,
		Evaluated:      s.rank.evaluated,
		Skipped:        s.rank.skipped,
		ShortCircuited: stopped,
	}
	for i := range top {
		res.Recipes[i] = top[i].Recipe()
	}

	o.Logger.Debug("mix.solve",
		"paints", cat.Len(),
		"mode", o.Mode.String(),
		"strategy", o.Strategy.String(),
		"evaluated", res.Evaluated,
		"returned", len(res.Recipes),
		"short_circuit", stopped,
	)

	return res, nil
}

// search carries the state of one query. Each stage returns false once the
// ranker is saturated with exact matches.
type search struct {
	target color.Color
	cat    *catalog.Catalog
	opts   Options
	rank   *ranker
	debug  bool
}

func (s *search) singles() bool {
	for i := 0; i < s.cat.Len(); i++ {
		if !s.submit([]int{i}, []float64{1}) {
			return false
		}
	}

	return true
}

func (s *search) pairs() bool {
	if s.opts.MaxCardinality < 2 {
		return true
	}
	cont := true
	forEachCombination(s.allIndices(), 2, func(members []int) bool {
		cont = s.combination(members, func(cols []color.Color, _ []catalog.Paint) ([]float64, SkipReason) {
			return pairRatios(s.target, cols)
		})
		return cont
	})

	return cont
}

func (s *search) higher() bool {
	if s.opts.MaxCardinality < 3 {
		return true
	}
	var (
		pool  = s.pool()
		mixer = s.kMixer()
		cont  = true
	)
	for k := 3; k <= s.opts.MaxCardinality && k <= len(pool) && cont; k++ {
		forEachCombination(pool, k, func(members []int) bool {
			cont = s.combination(members, mixer)
			return cont
		})
	}

	return cont
}

// ratioFunc produces raw ratios for one combination.
type ratioFunc func(cols []color.Color, paints []catalog.Paint) ([]float64, SkipReason)

// kMixer selects the k ≥ 3 mixer from Strategy.
func (s *search) kMixer() ratioFunc {
	if s.opts.Strategy == GridSearch {
		return func(cols []color.Color, _ []catalog.Paint) ([]float64, SkipReason) {
			return gridRatios(s.target, cols, s.opts.GridStep, s.opts.Metric)
		}
	}

	return func(cols []color.Color, _ []catalog.Paint) ([]float64, SkipReason) {
		return lsqRatios(s.target, cols)
	}
}

// combination evaluates one subset: density ratios in DensityWeighted mode,
// otherwise the given optimizing mixer.
func (s *search) combination(members []int, optimize ratioFunc) bool {
	var (
		paints = make([]catalog.Paint, len(members))
		cols   = make([]color.Color, len(members))
	)
	for i, idx := range members {
		paints[i] = s.cat.At(idx)
		cols[i] = paints[i].Color
	}

	var (
		ratios []float64
		reason SkipReason
	)
	if s.opts.Mode == DensityWeighted {
		ratios, reason = densityRatios(paints)
	} else {
		ratios, reason = optimize(cols, paints)
	}
	if reason != SkipNone {
		s.record(members, Outcome{Reason: reason})
		return true
	}

	return s.submit(members, ratios)
}

// submit evaluates ratios for members and hands the outcome to the ranker.
func (s *search) submit(members []int, ratios []float64) bool {
	s.record(members, evaluate(s.target, s.cat, s.opts.Metric, members, ratios))

	return !s.rank.saturated()
}

func (s *search) record(members []int, o Outcome) {
	reason := s.rank.add(o)
	if reason != SkipNone && s.debug {
		names := make([]string, len(members))
		for i, idx := range members {
			names[i] = s.cat.At(idx).Name
		}
		s.opts.Logger.Debug("mix.skip", "paints", names, "reason", reason.String())
	}
}

// pool returns the catalog indices that k ≥ 3 subsets are drawn from, in
// ascending catalog order.
func (s *search) pool() []int {
	if s.opts.Strategy == GridSearch && !s.opts.GridShortlist {
		return s.allIndices()
	}
	short := s.cat.Shortlist(s.target, s.opts.ShortlistSize, s.opts.Metric)
	sort.Ints(short)

	return short
}

func (s *search) allIndices() []int {
	idx := make([]int, s.cat.Len())
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// EstimateEvaluations returns the number of metric evaluations and solves a
// query over n paints will perform with opts, assuming no short circuit.
// The result saturates at math.MaxInt.
//
// Count:
//
//	n                              singles
//	+ C(n,2)                       pairs (K ≥ 2)
//	+ Σ_{k=3..K} C(p,k)·g(k)       p = pool size, g = grid points per
//	                               subset (GridSearch, Optimized) else 1
func EstimateEvaluations(n int, opts Options) int {
	if n <= 0 {
		return 0
	}
	total := float64(n)
	if opts.MaxCardinality >= 2 {
		total += binomial(n, 2)
	}

	pool := n
	if opts.Strategy != GridSearch || opts.GridShortlist {
		pool = min(n, opts.ShortlistSize)
	}
	for k := 3; k <= opts.MaxCardinality && k <= pool; k++ {
		per := 1.0
		if opts.Strategy == GridSearch && opts.Mode == Optimized && validStep(opts.GridStep) {
			per = gridPoints(k, opts.GridStep)
		}
		total += binomial(pool, k) * per
	}
	if total >= math.MaxInt {
		return math.MaxInt
	}

	return int(total)
}
