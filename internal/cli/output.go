package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
	"github.com/katalvlaran/paintmix/mix"
)

type colorJSON struct {
	RGB [3]uint8 `json:"rgb"`
	Hex string   `json:"hex"`
}

func toColorJSON(c color.Color) colorJSON {
	return colorJSON{RGB: c.RGB8(), Hex: c.Hex()}
}

type matchJSON struct {
	Target         colorJSON      `json:"target"`
	Recipes        []mix.Recipe   `json:"recipes"`
	NoValidRecipe  bool           `json:"no_valid_recipe"`
	Evaluated      int            `json:"evaluated"`
	Skipped        map[string]int `json:"skipped,omitempty"`
	ShortCircuited bool           `json:"short_circuited"`
}

type paintJSON struct {
	Name    string   `json:"name"`
	RGB     [3]uint8 `json:"rgb"`
	Hex     string   `json:"hex"`
	Density float64  `json:"density,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func printMatch(w io.Writer, target color.Color, res mix.Result, asJSON bool) error {
	if asJSON {
		out := matchJSON{
			Target:         toColorJSON(target),
			Recipes:        res.Recipes,
			NoValidRecipe:  res.NoValidRecipe,
			Evaluated:      res.Evaluated,
			ShortCircuited: res.ShortCircuited,
		}
		if out.Recipes == nil {
			out.Recipes = []mix.Recipe{}
		}
		if len(res.Skipped) > 0 {
			out.Skipped = make(map[string]int, len(res.Skipped))
			for r, n := range res.Skipped {
				out.Skipped[r.String()] = n
			}
		}
		return writeJSON(w, out)
	}

	fmt.Fprintf(w, "target %s %s\n", target, target.Hex())
	if res.NoValidRecipe {
		_, err := fmt.Fprintln(w, "no recipe within the error threshold")
		return err
	}
	for i, r := range res.Recipes {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, r); err != nil {
			return err
		}
	}

	return nil
}

func printBlend(w io.Writer, r mix.Recipe, scored, asJSON bool) error {
	if asJSON {
		return writeJSON(w, r)
	}
	if scored {
		_, err := fmt.Fprintln(w, r)
		return err
	}
	for _, c := range r.Components {
		fmt.Fprintf(w, "%5.1f%% %s\n", c.Percentage, c.Paint)
	}
	_, err := fmt.Fprintf(w, "→ %s\n", r.MixedHex)

	return err
}

func printCatalog(w io.Writer, cat *catalog.Catalog, asJSON bool) error {
	if asJSON {
		out := make([]paintJSON, 0, cat.Len())
		for _, p := range cat.Paints() {
			out = append(out, paintJSON{Name: p.Name, RGB: p.Color.RGB8(), Hex: p.Color.Hex(), Density: p.Weight})
		}
		return writeJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tHEX\tRGB\tDENSITY")
	for _, p := range cat.Paints() {
		density := "-"
		if p.HasWeight() {
			density = fmt.Sprintf("%g", p.Weight)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Color.Hex(), p.Color, density)
	}

	return tw.Flush()
}
