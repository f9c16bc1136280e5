package main

import (
	"os"

	"flashd/cmd/flashd/cli"
	"flashd/internal/errors"
	"flashd/internal/log"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	err := NewRootCmd().Execute()
	_ = log.Close()
	if err != nil {
		if errors.IsEmptyDeck(err) {
			log.LogWithError(err).Error("Refusing to start without cards")
		}
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
