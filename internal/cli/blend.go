package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/color"
	"github.com/katalvlaran/paintmix/mix"
)

func blendCmd(a *app) *cobra.Command {
	var (
		catPath string
		target  string
		jsonOut bool
	)

	c := &cobra.Command{
		Use:   "blend NAME=PARTS...",
		Short: "Preview the color of a manual mix",
		Example: `  paintmix blend --catalog paints.yaml "Cadmium Red=2" Ultramarine=1
  paintmix blend "Titanium White=5" "Burnt Umber=1" --target "#d2b48c"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(catPath)
			if err != nil {
				return err
			}
			paints, parts, err := parseParts(cat, args)
			if err != nil {
				return err
			}

			var tgt *color.Color
			if target != "" {
				tc, perr := color.Parse(target)
				if perr != nil {
					return fmt.Errorf("--target: %w", perr)
				}
				tgt = &tc
			}

			r, err := mix.NewRecipe(paints, parts, tgt, nil)
			if err != nil {
				return err
			}
			a.log.Debug("blend", "paints", len(paints), "mixed", r.MixedHex)

			return printBlend(cmd.OutOrStdout(), r, tgt != nil, jsonOut)
		},
	}

	c.Flags().StringVarP(&catPath, "catalog", "c", defaultCatalog(), "catalog file (.yaml, .yml or .json)")
	c.Flags().StringVarP(&target, "target", "t", "", "optional target color to score the blend against")
	c.Flags().BoolVar(&jsonOut, "json", false, "print JSON instead of text")

	return c
}

// parseParts resolves "NAME=PARTS" arguments against cat. The last '=' splits
// name from amount, so names may contain '='.
func parseParts(cat *catalog.Catalog, args []string) ([]catalog.Paint, []float64, error) {
	var (
		paints = make([]catalog.Paint, 0, len(args))
		parts  = make([]float64, 0, len(args))
	)
	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return nil, nil, fmt.Errorf("%q: want NAME=PARTS", arg)
		}
		name := strings.TrimSpace(arg[:i])
		v, err := strconv.ParseFloat(strings.TrimSpace(arg[i+1:]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%q: parts: %w", arg, err)
		}
		p, _, err := cat.Resolve(name)
		if err != nil {
			return nil, nil, err
		}
		paints = append(paints, p)
		parts = append(parts, v)
	}

	return paints, parts, nil
}
