package mix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
)

// Blend mixes paints in the given parts and returns the resulting color.
// Parts are relative amounts on any scale (slider values 0–100, grams, …);
// they are divided by their total.
//
// Errors:
//   - ErrLengthMismatch if len(paints) != len(parts) or both are empty.
//   - ErrNegativeRatio  if a part is negative or non-finite.
//   - ErrZeroRatioSum   if all parts are zero.
//
// Complexity: O(k).
func Blend(paints []catalog.Paint, parts []float64) (color.Color, error) {
	if len(paints) != len(parts) || len(paints) == 0 {
		return color.Color{}, fmt.Errorf("%d paints, %d parts: %w", len(paints), len(parts), ErrLengthMismatch)
	}

	var (
		total float64
		mixed color.Color
		i     int
	)
	for i = 0; i < len(parts); i++ {
		if math.IsNaN(parts[i]) || math.IsInf(parts[i], 0) || parts[i] < 0 {
			return color.Color{}, fmt.Errorf("part %d = %v: %w", i, parts[i], ErrNegativeRatio)
		}
		total += parts[i]
	}
	if total == 0 {
		return color.Color{}, ErrZeroRatioSum
	}
	for i = 0; i < len(paints); i++ {
		mixed = mixed.Add(paints[i].Color.Scale(parts[i] / total))
	}

	return mixed, nil
}

// NewRecipe builds a Recipe from a manual blend. When target is non-nil the
// recipe's Error is its distance under metric (Euclidean if nil); otherwise
// Error is 0.
func NewRecipe(paints []catalog.Paint, parts []float64, target *color.Color, metric color.Metric) (Recipe, error) {
	mixed, err := Blend(paints, parts)
	if err != nil {
		return Recipe{}, err
	}
	var e float64
	if target != nil {
		if err = target.Validate(); err != nil {
			return Recipe{}, fmt.Errorf("target: %w", err)
		}
		if metric == nil {
			metric = color.Euclidean{}
		}
		e = metric.Distance(*target, mixed)
	}

	return newRecipe(paints, parts, mixed, e), nil
}
