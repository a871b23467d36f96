// Package cmd - catalog command
package cmd

import (
	"github.com/spf13/cobra"

	"printquote/core/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the option keys every product accepts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formatter()
		if err != nil {
			return err
		}
		return f.RenderCatalog(cmd.OutOrStdout(), catalog.Default())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
