package gui

import (
	"flashd/internal/config"
	"flashd/internal/deck"
)

// Interface defines the contract for GUI front ends
type Interface interface {
	Run() error
}

// Factory creates GUI instances
type Factory struct {
	config *config.Config
	deck   *deck.Deck
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config, d *deck.Deck) *Factory {
	return &Factory{
		config: cfg,
		deck:   d,
	}
}
