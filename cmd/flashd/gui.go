package main

import (
	"flashd/internal/config"
	"flashd/internal/errors"
	"flashd/internal/gui"
	"flashd/internal/log"

	"github.com/spf13/cobra"
)

// runGUI opens the desktop window and blocks until it is closed
func runGUI(cfg *config.Config) error {
	if !gui.IsGUIAvailable() {
		return errors.New("this build has no GUI support; use 'flashd tui'")
	}

	d, err := loadDeck(cfg)
	if err != nil {
		return err
	}

	log.Infof("Opening window with %d cards", d.Len())
	return gui.Launch(cfg, d)
}

// guiCmd creates the GUI command for the CLI
func guiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the flashcard window",
		Long:  `Open the desktop flashcard window. This is the default when no command is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts.cfg)
		},
	}
}
