package cli

import (
	"github.com/spf13/cobra"
)

func catalogCmd(a *app) *cobra.Command {
	var (
		catPath string
		jsonOut bool
	)

	c := &cobra.Command{
		Use:   "catalog",
		Short: "List the paints in a catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.loadCatalog(catPath)
			if err != nil {
				return err
			}

			return printCatalog(cmd.OutOrStdout(), cat, jsonOut)
		},
	}

	c.Flags().StringVarP(&catPath, "catalog", "c", defaultCatalog(), "catalog file (.yaml, .yml or .json)")
	c.Flags().BoolVar(&jsonOut, "json", false, "print JSON instead of text")

	return c
}
