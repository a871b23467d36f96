// Package cmd - config file management
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"printquote/core/ui"
	"printquote/internal/config"
	"printquote/internal/errors"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the printquote config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Long: `Write the effective configuration, defaults plus environment overrides,
to --config or $HOME/.printquote.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return errors.Newf(errors.TypeConfig, "config file %s already exists (use --force to overwrite)", path)
		}

		cfg := config.Get()
		if err := cfg.Save(path); err != nil {
			return errors.Config("cannot write config file "+path, err)
		}
		ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor).Success("config written to %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
}
