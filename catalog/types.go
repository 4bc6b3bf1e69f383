// Package catalog defines the Paint record and the ordered, immutable
// Catalog of base paints that every mixing query searches.
//
// A Catalog is built once by the caller (usually from a file loader) and then
// shared read-only: no method mutates it, so any number of goroutines may
// query it concurrently without locks.
//
// Enumeration order is significant. Index i is stable for the lifetime of the
// Catalog and drives every deterministic tie-break in the mixing engine.
//
// Errors:
//
//	ErrEmptyCatalog   - a query needs at least one paint.
//	ErrEmptyName      - a paint has an empty name.
//	ErrDuplicateName  - two paints share a name.
//	ErrInvalidWeight  - weight is negative, NaN or ±Inf.
//	ErrUnknownPaint   - lookup by name failed.
package catalog

import (
	"errors"

	"github.com/katalvlaran/paintmix/color"
)

// Sentinel errors for catalog construction and queries.
var (
	// ErrEmptyCatalog indicates that the catalog holds zero paints.
	ErrEmptyCatalog = errors.New("catalog: catalog is empty")

	// ErrEmptyName indicates that a Paint has an empty Name.
	ErrEmptyName = errors.New("catalog: paint name is empty")

	// ErrDuplicateName indicates that two paints share the same Name.
	ErrDuplicateName = errors.New("catalog: duplicate paint name")

	// ErrInvalidWeight indicates a negative or non-finite Weight.
	ErrInvalidWeight = errors.New("catalog: weight must be finite and non-negative")

	// ErrUnknownPaint indicates that no paint with the requested name exists.
	ErrUnknownPaint = errors.New("catalog: unknown paint")
)

// Paint is an immutable base paint record.
//
// Weight is an optional physical attribute (for example density) used by the
// density-weighted mixing policy. Zero means "not provided".
type Paint struct {
	// Name uniquely identifies the paint within its Catalog.
	Name string

	// Color is the paint's RGB appearance.
	Color color.Color

	// Weight is the optional positive weighting attribute; 0 if absent.
	Weight float64
}

// HasWeight reports whether the paint carries a weighting attribute.
func (p Paint) HasWeight() bool { return p.Weight > 0 }

// Catalog is an ordered, immutable sequence of paints with unique names.
type Catalog struct {
	paints []Paint
	index  map[string]int
}
