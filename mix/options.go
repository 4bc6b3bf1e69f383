// SPDX-License-Identifier: MIT

// Package mix: functional configuration for recipe queries. This file defines:
//   - Options (exported fields, usable directly with SolveWithOptions),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors that panic on nonsensical values,
//   - validateOptions, the staged check applied to every query.
//
// Design goals:
//   - Deterministic behavior: no global state, no randomness, no time budget.
//   - No dead switches: every field changes the search and is covered by tests.
//   - Safe by construction: setters panic only on programmer error; a
//     hand-built Options is validated and rejected with ErrInvalidOptions.
package mix

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/paintmix/color"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxCardinality is the largest number of paints in one recipe.
	DefaultMaxCardinality = 3

	// DefaultResultCount is how many recipes a query returns at most.
	DefaultResultCount = 3

	// DefaultGridStep is the barycentric grid spacing for GridSearch.
	// 0.05 gives 231 grid points per 3-subset.
	DefaultGridStep = 0.05

	// DefaultShortlistSize is m, the number of nearest paints LeastSquares
	// draws its k-subsets from.
	DefaultShortlistSize = 5

	// DefaultMaxEvaluations of 0 means "no budget".
	DefaultMaxEvaluations = 0

	// DefaultMode is Optimized.
	DefaultMode = Optimized

	// DefaultStrategy is LeastSquares; its cost is bounded by the shortlist.
	DefaultStrategy = LeastSquares
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCardinalityInvalid = "mix: WithMaxCardinality: k must be ≥ 1"
	panicResultCountInvalid = "mix: WithResultCount: n must be ≥ 1"
	panicGridStepInvalid    = "mix: WithGridStep: step must be in [MinGridStep,1]"
	panicShortlistInvalid   = "mix: WithShortlistSize: m must be ≥ 1"
	panicThresholdInvalid   = "mix: WithErrorThreshold: threshold must be non-negative and not NaN"
	panicModeInvalid        = "mix: WithMode: unknown mode"
	panicStrategyInvalid    = "mix: WithStrategy: unknown strategy"
	panicBudgetInvalid      = "mix: WithMaxEvaluations: budget must be ≥ 0"
)

// Options configures one recipe query.
//
//   - MaxCardinality – largest recipe size K (≥1).
//   - ResultCount    – top N recipes returned (≥1).
//   - GridStep       – barycentric grid spacing s ∈ (0,1]; GridSearch only.
//   - ShortlistSize  – m nearest paints; LeastSquares always, GridSearch
//     only when GridShortlist is set.
//   - GridShortlist  – restrict GridSearch k≥3 subsets to the shortlist.
//   - ErrorThreshold – candidates with larger error are discarded;
//     +Inf (default) disables the filter.
//   - Mode           – Optimized or DensityWeighted.
//   - Strategy       – LeastSquares or GridSearch for k ≥ 3.
//   - Metric         – error function; nil means color.Euclidean.
//   - MaxEvaluations – refuse queries whose estimated work is larger; 0 = unlimited.
//   - Logger         – debug diagnostics; nil discards.
type Options struct {
	MaxCardinality int
	ResultCount    int
	GridStep       float64
	ShortlistSize  int
	GridShortlist  bool
	ErrorThreshold float64
	Mode           Mode
	Strategy       Strategy
	Metric         color.Metric
	MaxEvaluations int
	Logger         *slog.Logger
}

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// DefaultOptions returns the documented defaults.
//
// Defaults:
//   - MaxCardinality: 3, ResultCount: 3
//   - GridStep: 0.05, ShortlistSize: 5, GridShortlist: false
//   - ErrorThreshold: +Inf (no filter)
//   - Mode: Optimized, Strategy: LeastSquares
//   - Metric: color.Euclidean, MaxEvaluations: 0, Logger: nil
func DefaultOptions() Options {
	return Options{
		MaxCardinality: DefaultMaxCardinality,
		ResultCount:    DefaultResultCount,
		GridStep:       DefaultGridStep,
		ShortlistSize:  DefaultShortlistSize,
		ErrorThreshold: math.Inf(1),
		Mode:           DefaultMode,
		Strategy:       DefaultStrategy,
		Metric:         color.Euclidean{},
		MaxEvaluations: DefaultMaxEvaluations,
	}
}

// NewOptions applies opts on top of DefaultOptions, left to right.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithMaxCardinality sets K, the largest number of paints in a recipe.
func WithMaxCardinality(k int) Option {
	if k < 1 {
		panic(panicCardinalityInvalid)
	}

	return func(o *Options) { o.MaxCardinality = k }
}

// WithResultCount sets N, the number of recipes returned.
func WithResultCount(n int) Option {
	if n < 1 {
		panic(panicResultCountInvalid)
	}

	return func(o *Options) { o.ResultCount = n }
}

// WithGridStep sets the GridSearch spacing. Smaller steps are more accurate
// and cost O((1/s)^(k−1)) per subset.
func WithGridStep(step float64) Option {
	if !validStep(step) {
		panic(panicGridStepInvalid)
	}

	return func(o *Options) { o.GridStep = step }
}

// WithShortlistSize sets m for the nearest-paint shortlist.
func WithShortlistSize(m int) Option {
	if m < 1 {
		panic(panicShortlistInvalid)
	}

	return func(o *Options) { o.ShortlistSize = m }
}

// WithGridShortlist restricts GridSearch k-subsets (k ≥ 3) to the shortlist.
func WithGridShortlist() Option {
	return func(o *Options) { o.GridShortlist = true }
}

// WithErrorThreshold discards candidates whose error exceeds threshold.
// When nothing survives, Result.NoValidRecipe is set.
func WithErrorThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || threshold < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.ErrorThreshold = threshold }
}

// WithMode selects Optimized or DensityWeighted ratios.
func WithMode(m Mode) Option {
	if m != Optimized && m != DensityWeighted {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.Mode = m }
}

// WithStrategy selects the K-paint mixer for k ≥ 3.
func WithStrategy(s Strategy) Option {
	if s != LeastSquares && s != GridSearch {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.Strategy = s }
}

// WithMetric swaps the error function. nil restores color.Euclidean.
func WithMetric(m color.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithMaxEvaluations caps the estimated number of candidate evaluations.
// 0 removes the cap.
func WithMaxEvaluations(n int) Option {
	if n < 0 {
		panic(panicBudgetInvalid)
	}

	return func(o *Options) { o.MaxEvaluations = n }
}

// WithLogger routes debug diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// validateOptions checks a possibly hand-built Options and fills nil
// collaborators. It returns the normalized copy.
//
// Complexity: O(1).
func validateOptions(o Options) (Options, error) {
	// Stage 1: search bounds.
	if o.MaxCardinality < 1 {
		return o, fmt.Errorf("%w: MaxCardinality=%d", ErrInvalidOptions, o.MaxCardinality)
	}
	if o.ResultCount < 1 {
		return o, fmt.Errorf("%w: ResultCount=%d", ErrInvalidOptions, o.ResultCount)
	}
	if o.ShortlistSize < 1 {
		return o, fmt.Errorf("%w: ShortlistSize=%d", ErrInvalidOptions, o.ShortlistSize)
	}
	if o.MaxEvaluations < 0 {
		return o, fmt.Errorf("%w: MaxEvaluations=%d", ErrInvalidOptions, o.MaxEvaluations)
	}

	// Stage 2: numeric knobs. GridStep only matters for GridSearch, but a
	// nonsensical value is rejected regardless.
	if !validStep(o.GridStep) {
		return o, fmt.Errorf("%w: GridStep=%v", ErrInvalidOptions, o.GridStep)
	}
	if math.IsNaN(o.ErrorThreshold) || o.ErrorThreshold < 0 {
		return o, fmt.Errorf("%w: ErrorThreshold=%v", ErrInvalidOptions, o.ErrorThreshold)
	}

	// Stage 3: enums.
	if o.Mode != Optimized && o.Mode != DensityWeighted {
		return o, fmt.Errorf("%w: Mode=%d", ErrInvalidOptions, o.Mode)
	}
	if o.Strategy != LeastSquares && o.Strategy != GridSearch {
		return o, fmt.Errorf("%w: Strategy=%d", ErrInvalidOptions, o.Strategy)
	}

	// Stage 4: collaborators.
	if o.Metric == nil {
		o.Metric = color.Euclidean{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o, nil
}

// MinGridStep bounds the grid resolution so ⌊1/step⌋ stays a usable int.
const MinGridStep = 1e-6

func validStep(s float64) bool {
	return !math.IsNaN(s) && s >= MinGridStep && s <= 1
}
