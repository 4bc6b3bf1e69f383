package mix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
	"github.com/katalvlaran/paintmix/mix"
)

// pct tolerance for the "sums to 100" property.
const pctTol = 0.1

// fivePaints is R, G, B, White, Black in that order.
func fivePaints(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Paint{
		{Name: "Red", Color: color.RGB(255, 0, 0), Weight: 1.1},
		{Name: "Green", Color: color.RGB(0, 255, 0), Weight: 1.3},
		{Name: "Blue", Color: color.RGB(0, 0, 255), Weight: 0.9},
		{Name: "White", Color: color.RGB(255, 255, 255), Weight: 1.6},
		{Name: "Black", Color: color.RGB(0, 0, 0), Weight: 1.2},
	})
	require.NoError(t, err)
	return c
}

// artistPaints is a small realistic palette.
func artistPaints(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Paint{
		{Name: "Cadmium Red", Color: color.RGB(227, 0, 34), Weight: 1.5},
		{Name: "Cadmium Yellow", Color: color.RGB(255, 246, 0), Weight: 1.4},
		{Name: "Ultramarine", Color: color.RGB(18, 10, 143), Weight: 1.1},
		{Name: "Phthalo Green", Color: color.RGB(18, 53, 36), Weight: 1.0},
		{Name: "Titanium White", Color: color.RGB(245, 245, 245), Weight: 1.7},
		{Name: "Burnt Umber", Color: color.RGB(138, 51, 36), Weight: 1.3},
		{Name: "Yellow Ochre", Color: color.RGB(203, 157, 6), Weight: 1.2},
	})
	require.NoError(t, err)
	return c
}

// simplexTarget is 0.2·Red + 0.3·Green + 0.5·Blue.
var simplexTarget = color.Color{R: 51, G: 76.5, B: 127.5}

// requirePercentSums checks every recipe's percentages add up to 100.
func requirePercentSums(t *testing.T, res mix.Result) {
	t.Helper()
	for _, r := range res.Recipes {
		var sum float64
		for _, c := range r.Components {
			require.GreaterOrEqual(t, c.Percentage, 0.0)
			require.LessOrEqual(t, c.Percentage, 100.0)
			sum += c.Percentage
		}
		require.InDelta(t, 100.0, sum, pctTol, "recipe %s", r)
	}
}

// componentNames lists the paint names of a recipe.
func componentNames(r mix.Recipe) []string {
	out := make([]string, len(r.Components))
	for i, c := range r.Components {
		out[i] = c.Paint
	}
	return out
}
