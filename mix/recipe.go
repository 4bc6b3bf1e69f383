package mix

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
)

// tenthsTotal is 100.0 % expressed in tenths of a percent.
const tenthsTotal = 1000

// Component is one line of a recipe.
type Component struct {
	Paint      string   `json:"paint"`
	Percentage float64  `json:"percentage"` // 0–100, one decimal
	RGB        [3]uint8 `json:"rgb"`
	Hex        string   `json:"hex"`
}

// Recipe is the display form of a candidate: what to mix, in what
// proportions, and how close it gets.
type Recipe struct {
	Components []Component `json:"components"`
	Mixed      [3]uint8    `json:"mixed_rgb"`
	MixedHex   string      `json:"mixed_hex"`
	Error      float64     `json:"error"`
}

// String renders "45.0% Red + 55.0% Blue → #731e8c (err 1.23)".
func (r Recipe) String() string {
	parts := make([]string, len(r.Components))
	for i, c := range r.Components {
		parts[i] = fmt.Sprintf("%.1f%% %s", c.Percentage, c.Paint)
	}

	return fmt.Sprintf("%s → %s (err %.2f)", strings.Join(parts, " + "), r.MixedHex, r.Error)
}

func newRecipe(paints []catalog.Paint, ratios []float64, mixed color.Color, e float64) Recipe {
	var (
		pct   = Percentages(ratios)
		comps = make([]Component, len(paints))
	)
	for i, p := range paints {
		comps[i] = Component{
			Paint:      p.Name,
			Percentage: pct[i],
			RGB:        p.Color.RGB8(),
			Hex:        p.Color.Hex(),
		}
	}

	return Recipe{
		Components: comps,
		Mixed:      mixed.RGB8(),
		MixedHex:   mixed.Hex(),
		Error:      e,
	}
}

// Percentages converts ratios (any non-negative scale) into percentages with
// one decimal that sum to exactly 100.0.
//
// Implementation (largest remainder in tenths of a percent):
//   - Stage 1: scale each ratio to tenths and take the floor.
//   - Stage 2: hand the missing tenths to the largest fractional parts;
//     ties go to the earlier component.
//
// A zero or non-finite total yields all zeros.
//
// Complexity: O(k log k).
func Percentages(ratios []float64) []float64 {
	var (
		k     = len(ratios)
		out   = make([]float64, k)
		sum   float64
		i     int
		whole = make([]int, k)
		frac  = make([]float64, k)
		given int
	)
	for i = 0; i < k; i++ {
		sum += ratios[i]
	}
	if k == 0 || sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return out
	}

	// Stage 1: floors.
	for i = 0; i < k; i++ {
		v := ratios[i] / sum * tenthsTotal
		whole[i] = int(math.Floor(v))
		frac[i] = v - float64(whole[i])
		given += whole[i]
	}

	// Stage 2: distribute the remainder.
	order := make([]int, k)
	for i = 0; i < k; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return frac[order[a]] > frac[order[b]] })
	for i = 0; given < tenthsTotal; i = (i + 1) % k {
		whole[order[i]]++
		given++
	}

	for i = 0; i < k; i++ {
		out[i] = float64(whole[i]) / 10
	}

	return out
}
