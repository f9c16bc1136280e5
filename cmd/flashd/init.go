package main

import (
	"os"

	"flashd/cmd/flashd/cli"
	"flashd/internal/config"
	"flashd/internal/errors"

	"github.com/spf13/cobra"
)

// initCmd writes the resolved configuration to a file so it can be edited
func initCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Long:  `Write the configuration in effect (defaults, .env and flags applied) to --config, or to ~/.config/flashd/config.yaml.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf("%s already exists; use --force to overwrite", path)
			}
			if err := config.SaveConfig(opts.cfg, path); err != nil {
				return err
			}
			cli.PrintSuccess(cmd.OutOrStdout(), "Wrote "+path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}
