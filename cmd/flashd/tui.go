package main

import (
	"os"

	"flashd/internal/errors"
	"flashd/internal/log"
	"flashd/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// tuiCmd creates the terminal viewer command
func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Study in the terminal",
		Long:  `Show the deck in the terminal. Images are drawn with half-block characters.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("tui needs an interactive terminal")
			}

			d, err := loadDeck(opts.cfg)
			if err != nil {
				return err
			}

			log.Debugf("Starting terminal viewer with %d cards", d.Len())
			return tui.Run(opts.cfg, d)
		},
	}
}
