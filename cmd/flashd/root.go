package main

import (
	"flashd/internal/config"
	"flashd/internal/deck"
	"flashd/internal/log"

	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags and the configuration they
// resolve to before any subcommand runs.
type rootOptions struct {
	cfgFile  string
	deckPath string
	debug    bool
	cfg      *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// desktop window.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "flashd",
		Short:   "A flashcard viewer",
		Long:    `Flashd shows a deck of question/answer cards, one side at a time. A side naming an existing image file is drawn as the picture.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts.cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.config/flashd/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.deckPath, "deck", "", "deck file (YAML or JSON); the built-in deck is used when empty")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(guiCmd(opts))
	rootCmd.AddCommand(tuiCmd(opts))
	rootCmd.AddCommand(checkCmd(opts))
	rootCmd.AddCommand(initCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// load resolves configuration: file, then .env and environment, then flags
func (o *rootOptions) load(cmd *cobra.Command) error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	if err := o.cfg.ApplyEnv(); err != nil {
		return err
	}
	if cmd.Flags().Changed("deck") {
		o.cfg.Deck.Path = o.deckPath
	}
	if cmd.Flags().Changed("debug") {
		o.cfg.Debug = o.debug
	}

	log.SetDebug(o.cfg.Debug)
	configureLogging(o.cfg)
	log.LogWithFields(log.F("deck", o.cfg.Deck.Path), log.F("watch", o.cfg.Watch.Enabled)).Debug("Configuration loaded")
	return nil
}

// configureLogging applies the log section; the default stderr text logger
// is kept when it is empty.
func configureLogging(cfg *config.Config) {
	var logOpts []log.Option
	if cfg.Log.JSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	if cfg.Log.File != "" {
		logOpts = append(logOpts, log.WithFile(cfg.Log.File))
	}
	if len(logOpts) > 0 {
		log.Configure(logOpts...)
	}
}

// loadDeck builds the deck named by cfg, or the built-in one
func loadDeck(cfg *config.Config) (*deck.Deck, error) {
	if cfg.Deck.Path == "" {
		return deck.New(deck.Default())
	}
	return deck.LoadFile(cfg.Deck.Path, deck.LoadOptions{
		BaseDir:     cfg.Deck.BaseDir,
		StripMarkup: cfg.Deck.StripMarkup,
	})
}

// versionCmd prints the build version
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("flashd " + version)
		},
	}
}
