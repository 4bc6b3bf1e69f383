package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paintmix/color"
	"github.com/katalvlaran/paintmix/mix"
)

type matchFlags struct {
	catalog   string
	target    string
	k         int
	n         int
	step      float64
	shortlist int
	gridShort bool
	strategy  string
	mode      string
	threshold float64
	maxEvals  int
	jsonOut   bool
}

func matchCmd(a *app) *cobra.Command {
	var f matchFlags

	c := &cobra.Command{
		Use:   "match",
		Short: "Find the best single paints and blends for a target color",
		Example: `  paintmix match --catalog paints.yaml --target "#6b8e23"
  paintmix match --target "120, 90, 60" -k 3 --strategy grid --step 0.05 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := color.Parse(f.target)
			if err != nil {
				return fmt.Errorf("--target: %w", err)
			}
			opts, err := f.options(cmd, a)
			if err != nil {
				return err
			}
			cat, err := a.loadCatalog(f.catalog)
			if err != nil {
				return err
			}

			res, err := mix.SolveWithOptions(target, cat, opts)
			if err != nil {
				return err
			}
			a.log.Info("match.done",
				"target", target.Hex(),
				"evaluated", res.Evaluated,
				"returned", len(res.Recipes),
			)

			if err = printMatch(cmd.OutOrStdout(), target, res, f.jsonOut); err != nil {
				return err
			}

			return res.Err()
		},
	}

	c.Flags().StringVarP(&f.catalog, "catalog", "c", defaultCatalog(), "catalog file (.yaml, .yml or .json)")
	c.Flags().StringVarP(&f.target, "target", "t", "", `target color: "#rrggbb", "r,g,b" or a color name (required)`)
	c.Flags().IntVarP(&f.k, "max-paints", "k", mix.DefaultMaxCardinality, "largest number of paints in one recipe")
	c.Flags().IntVarP(&f.n, "results", "n", mix.DefaultResultCount, "number of recipes to print")
	c.Flags().Float64Var(&f.step, "step", mix.DefaultGridStep, "grid step for --strategy grid")
	c.Flags().IntVar(&f.shortlist, "shortlist", mix.DefaultShortlistSize, "nearest paints considered by --strategy lsq")
	c.Flags().BoolVar(&f.gridShort, "grid-shortlist", false, "restrict --strategy grid to the shortlist")
	c.Flags().StringVar(&f.strategy, "strategy", mix.DefaultStrategy.String(), "mixer for 3+ paints: lsq|grid")
	c.Flags().StringVar(&f.mode, "mode", mix.DefaultMode.String(), "ratio policy: optimized|density")
	c.Flags().Float64Var(&f.threshold, "threshold", math.Inf(1), "discard recipes with a larger error")
	c.Flags().IntVar(&f.maxEvals, "max-evals", mix.DefaultMaxEvaluations, "refuse searches estimated above this many evaluations (0 = no limit)")
	c.Flags().BoolVar(&f.jsonOut, "json", false, "print JSON instead of text")

	_ = c.MarkFlagRequired("target")
	return c
}

// options maps flags onto mix.Options. Range checks are left to
// mix.SolveWithOptions so the CLI and library reject the same values.
func (f matchFlags) options(cmd *cobra.Command, a *app) (mix.Options, error) {
	strategy, err := parseStrategy(f.strategy)
	if err != nil {
		return mix.Options{}, err
	}
	mode, err := parseMode(f.mode)
	if err != nil {
		return mix.Options{}, err
	}

	o := mix.DefaultOptions()
	o.MaxCardinality = f.k
	o.ResultCount = f.n
	o.GridStep = f.step
	o.ShortlistSize = f.shortlist
	o.GridShortlist = f.gridShort
	o.Strategy = strategy
	o.Mode = mode
	o.MaxEvaluations = f.maxEvals
	o.Logger = a.log
	if cmd.Flags().Changed("threshold") {
		o.ErrorThreshold = f.threshold
	}

	return o, nil
}

func parseStrategy(s string) (mix.Strategy, error) {
	switch s {
	case mix.LeastSquares.String():
		return mix.LeastSquares, nil
	case mix.GridSearch.String():
		return mix.GridSearch, nil
	default:
		return 0, fmt.Errorf("--strategy %q: want lsq or grid", s)
	}
}

func parseMode(s string) (mix.Mode, error) {
	switch s {
	case mix.Optimized.String():
		return mix.Optimized, nil
	case mix.DensityWeighted.String():
		return mix.DensityWeighted, nil
	default:
		return 0, fmt.Errorf("--mode %q: want optimized or density", s)
	}
}
