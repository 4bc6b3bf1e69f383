// SPDX-License-Identifier: MIT

package mix

import (
	"errors"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
)

// Sentinel errors returned by the mix package. Every message is prefixed
// with "mix: ..."; match them with errors.Is.
var (
	// ErrInvalidOptions indicates a hand-built Options value failed validation.
	ErrInvalidOptions = errors.New("mix: invalid options")

	// ErrSearchTooLarge indicates that EstimateEvaluations exceeds MaxEvaluations.
	// Nothing is searched when this is returned.
	ErrSearchTooLarge = errors.New("mix: search exceeds evaluation budget")

	// ErrNoValidRecipe is reported by Result.Err when no candidate met the
	// error threshold. Solve itself never returns it.
	ErrNoValidRecipe = errors.New("mix: no candidate within error threshold")

	// ErrLengthMismatch indicates paints and parts of different lengths.
	ErrLengthMismatch = errors.New("mix: paints and parts length mismatch")

	// ErrNegativeRatio indicates a negative or non-finite mixing part.
	ErrNegativeRatio = errors.New("mix: mixing part must be finite and non-negative")

	// ErrZeroRatioSum indicates that all mixing parts are zero.
	ErrZeroRatioSum = errors.New("mix: total of mixing parts is zero")
)

// ErrEmptyCatalog aliases catalog.ErrEmptyCatalog so callers of this package
// can match it without importing catalog.
var ErrEmptyCatalog = catalog.ErrEmptyCatalog

// ErrInvalidColor aliases color.ErrInvalidColor.
var ErrInvalidColor = color.ErrInvalidColor

// Mode selects how mixing ratios are obtained for combinations of k ≥ 2.
type Mode int

const (
	// Optimized solves for the ratios that minimise error (default).
	Optimized Mode = iota

	// DensityWeighted sets ratio_i = weight_i / Σweight; no optimisation.
	DensityWeighted
)

// String returns "optimized" or "density".
func (m Mode) String() string {
	switch m {
	case Optimized:
		return "optimized"
	case DensityWeighted:
		return "density"
	default:
		return "unknown"
	}
}

// Strategy selects the K-paint mixer used for combinations of k ≥ 3.
// Pairs always use the closed-form projection; singles need no solver.
type Strategy int

const (
	// LeastSquares shortlists the m nearest paints and fits each k-subset
	// by unconstrained least squares, then clips and renormalizes (default).
	LeastSquares Strategy = iota

	// GridSearch enumerates all k-subsets of the catalog and scans a
	// barycentric grid with step GridStep.
	GridSearch
)

// String returns "lsq" or "grid".
func (s Strategy) String() string {
	switch s {
	case LeastSquares:
		return "lsq"
	case GridSearch:
		return "grid"
	default:
		return "unknown"
	}
}

// SkipReason explains why a candidate was discarded. SkipNone marks success.
type SkipReason int

const (
	// SkipNone means the candidate was evaluated successfully.
	SkipNone SkipReason = iota

	// SkipIdenticalColors means two members share a color (zero-length
	// segment, or a repeated column in the fit).
	SkipIdenticalColors

	// SkipSingular means the least-squares system was singular or
	// ill-conditioned.
	SkipSingular

	// SkipZeroWeightSum means the ratios summed to zero (all weights absent
	// in density mode, or every fitted weight clipped away).
	SkipZeroWeightSum

	// SkipNonFinite means a NaN or ±Inf appeared while evaluating.
	SkipNonFinite

	// SkipAboveThreshold means the error exceeded Options.ErrorThreshold.
	SkipAboveThreshold

	// SkipDuplicate means an earlier candidate had the same effective
	// paints and ratios.
	SkipDuplicate
)

var skipNames = [...]string{
	SkipNone:            "none",
	SkipIdenticalColors: "identical-colors",
	SkipSingular:        "singular",
	SkipZeroWeightSum:   "zero-weight-sum",
	SkipNonFinite:       "non-finite",
	SkipAboveThreshold:  "above-threshold",
	SkipDuplicate:       "duplicate",
}

// String returns a stable kebab-case name for logs and CLI output.
func (r SkipReason) String() string {
	if r < 0 || int(r) >= len(skipNames) {
		return "unknown"
	}

	return skipNames[r]
}
