package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"flashd/internal/errors"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings
const (
	EnvDeck  = "FLASHD_DECK"
	EnvDebug = "FLASHD_DEBUG"
)

// Config represents the application configuration structure.
type Config struct {
	Deck struct {
		Path        string `yaml:"path"`         // Deck file; empty uses the built-in deck
		BaseDir     string `yaml:"base_dir"`     // Re-root relative image paths
		StripMarkup bool   `yaml:"strip_markup"` // Remove HTML from text sides
	} `yaml:"deck"`
	Display struct {
		Width    int     `yaml:"width"`     // Image width in pixels
		Height   int     `yaml:"height"`    // Image height in pixels
		FontSize float32 `yaml:"font_size"` // Text size in points
	} `yaml:"display"`
	Window struct {
		Title  string `yaml:"title"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"window"`
	TUI struct {
		Cols  int    `yaml:"cols"`  // Card width in terminal cells
		Rows  int    `yaml:"rows"`  // Card height in terminal cells
		Theme string `yaml:"theme"` // Color theme name
	} `yaml:"tui"`
	Watch struct {
		Enabled bool `yaml:"enabled"` // Re-render when the shown image changes on disk
	} `yaml:"watch"`
	Log struct {
		File string `yaml:"file"` // Also write log output to this file
		JSON bool   `yaml:"json"` // Use the JSON formatter
	} `yaml:"log"`
	Debug bool `yaml:"debug"`
}

// DefaultPath returns ~/.config/flashd/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "flashd", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "error reading config file")
	}

	// Unmarshal over the defaults so unset fields keep their default values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Display.Width = 400
	cfg.Display.Height = 400
	cfg.Display.FontSize = 20

	cfg.Window.Title = "Flashcard Study App"
	cfg.Window.Width = 520
	cfg.Window.Height = 640

	cfg.TUI.Cols = 48
	cfg.TUI.Rows = 16
	cfg.TUI.Theme = "default"

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// ApplyEnv loads a .env file from the working directory, if present, and
// applies FLASHD_* overrides.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.NewConfigError("cannot read .env", ".env", errors.InvalidConfig, err)
	}

	if deck := os.Getenv(EnvDeck); deck != "" {
		c.Deck.Path = deck
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.NewConfigError("invalid value", EnvDebug, errors.InvalidConfig, err)
		}
		c.Debug = debug
	}
	return nil
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	positive := map[string]int{
		"display.width":  c.Display.Width,
		"display.height": c.Display.Height,
		"window.width":   c.Window.Width,
		"window.height":  c.Window.Height,
		"tui.cols":       c.TUI.Cols,
		"tui.rows":       c.TUI.Rows,
	}
	for param, v := range positive {
		if v <= 0 {
			return errors.NewConfigError("must be positive", param, errors.InvalidConfig, nil)
		}
	}

	if c.Display.FontSize <= 0 {
		return errors.NewConfigError("must be positive", "display.font_size", errors.InvalidConfig, nil)
	}

	if !validTheme(c.TUI.Theme) {
		return errors.NewConfigError("unknown theme", "tui.theme", errors.InvalidConfig, fmt.Errorf("%q", c.TUI.Theme))
	}

	return nil
}

// GetTheme returns a predefined theme by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary": "213", // Purple
			"answer":  "114", // Green
			"error":   "196", // Red
			"muted":   "245", // Grey
			"border":  "213", // Purple
		},
		"dark": {
			"primary": "105", // Dark Blue
			"answer":  "78",  // Dark Green
			"error":   "160", // Dark Red
			"muted":   "241", // Medium Grey
			"border":  "105", // Dark Blue
		},
		"light": {
			"primary": "135", // Light Purple
			"answer":  "150", // Light Green
			"error":   "210", // Light Red
			"muted":   "248", // Grey
			"border":  "135", // Light Purple
		},
		"monochrome": {
			"primary": "252", // White
			"answer":  "255", // Bright White
			"error":   "250", // Light Grey
			"muted":   "241", // Medium Grey
			"border":  "245", // Light Grey
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}

func validTheme(name string) bool {
	for _, t := range ListThemes() {
		if t == name {
			return true
		}
	}
	return false
}
