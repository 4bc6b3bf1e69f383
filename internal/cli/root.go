// Package cli wires the paintmix command tree: match, blend and catalog.
package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/catalogfile"
	"github.com/katalvlaran/paintmix/internal/logger"
	"github.com/katalvlaran/paintmix/mix"
)

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	return execute(newRootCmd())
}

// execute reports a failure once on stderr. ErrNoValidRecipe only sets the
// exit code; the command output already says so.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, mix.ErrNoValidRecipe) {
		cmd.PrintErrln("Error:", err)
	}

	return 1
}

// app is the state shared by subcommands, filled in by PersistentPreRunE.
type app struct {
	debug   bool
	logJSON bool
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:          "paintmix",
		Short:        "Find paint recipes that match a target color",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.log = logger.New(logger.Config{
				Out:   cmd.ErrOrStderr(),
				Debug: a.debug,
				JSON:  a.logJSON,
			})
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging (search diagnostics) on stderr")
	cmd.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "write logs as JSON instead of console text")

	cmd.AddCommand(matchCmd(a))
	cmd.AddCommand(blendCmd(a))
	cmd.AddCommand(catalogCmd(a))

	return cmd
}

// loadCatalog reads path and logs the outcome.
func (a *app) loadCatalog(path string) (*catalog.Catalog, error) {
	cat, err := catalogfile.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("catalog.loaded", "path", path, "paints", cat.Len())

	return cat, nil
}

// defaultCatalog is the --catalog default, overridable by PAINTMIX_CATALOG.
func defaultCatalog() string {
	if p := os.Getenv("PAINTMIX_CATALOG"); p != "" {
		return p
	}

	return "paints.yaml"
}
