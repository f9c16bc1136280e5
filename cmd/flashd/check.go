package main

import (
	"fmt"
	"io"

	"flashd/cmd/flashd/cli"
	"flashd/internal/deck"
	"flashd/internal/display"
	"flashd/internal/errors"
	"flashd/internal/render"
	"flashd/pkg/types"

	"github.com/spf13/cobra"
)

// checkCmd reports how every card side would be shown
func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Classify every card side and test-load images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(opts.cfg)
			if err != nil {
				return err
			}
			return checkDeck(cmd.OutOrStdout(), d, opts.cfg.Display.Width, opts.cfg.Display.Height)
		},
	}
}

// checkDeck prints one line per side and fails if any image side does not
// decode.
func checkDeck(w io.Writer, d *deck.Deck, width, height int) error {
	failed := 0
	for i, c := range d.Cards() {
		for _, side := range []types.Side{types.Question, types.Answer} {
			inst := display.Resolve(c.Side(side))
			line := fmt.Sprintf("card %d %-8s %-5s %s", i+1, side, inst.Kind, inst.Value)

			if inst.Kind != display.Image {
				cli.PrintInfo(w, line)
				continue
			}
			if _, err := render.LoadImage(inst.Value, width, height); err != nil {
				failed++
				cli.PrintError(w, line+" ("+render.ErrorText(err)+")")
				continue
			}
			info, err := render.Inspect(inst.Value)
			if err != nil {
				failed++
				cli.PrintError(w, line+" ("+render.ErrorText(err)+")")
				continue
			}
			details := fmt.Sprintf("ok, %s, %s", info.MIME, info.Size)
			if info.Orientation != 1 {
				details += fmt.Sprintf(", exif orientation %d", info.Orientation)
			}
			cli.PrintSuccess(w, line+" ("+details+")")
		}
	}

	if failed > 0 {
		return errors.Newf("%d image side(s) failed to load", failed)
	}
	return nil
}
