package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"flashd/internal/config"
	"flashd/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

const (
	validYAML = `
deck:
  path: decks/capitals.yaml
  base_dir: decks/media
  strip_markup: true
display:
  width: 300
tui:
  theme: dark
watch:
  enabled: true
log:
  file: flashd.log
  json: true
`
	invalidSyntaxYAML = `
deck:
  path: "unterminated
display: [
`
	invalidValueYAML = `
display:
  height: -5
`
	invalidThemeYAML = `
tui:
  theme: neon
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, "decks/capitals.yaml", cfg.Deck.Path)
		assert.Equal(t, "decks/media", cfg.Deck.BaseDir)
		assert.True(t, cfg.Deck.StripMarkup)
		assert.Equal(t, 300, cfg.Display.Width)
		assert.Equal(t, "dark", cfg.TUI.Theme)
		assert.True(t, cfg.Watch.Enabled)
		assert.Equal(t, "flashd.log", cfg.Log.File)
		assert.True(t, cfg.Log.JSON)

		// Unset fields keep their defaults
		assert.Equal(t, 400, cfg.Display.Height)
		assert.Equal(t, float32(20), cfg.Display.FontSize)
		assert.Equal(t, "Flashcard Study App", cfg.Window.Title)
	})

	t.Run("load non-existent file", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
		require.NoError(t, err, "missing file should give defaults")
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("invalid YAML syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidValueYAML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.True(t, errors.IsInvalidConfig(err))

		var cfgErr *errors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "display.height", cfgErr.Param())
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidThemeYAML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tui.theme")
	})
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.Deck.Path = "my.yaml"
	cfg.TUI.Theme = "light"

	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Run("environment overrides", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(config.EnvDeck, "env-deck.yaml")
		t.Setenv(config.EnvDebug, "true")

		cfg := config.New()
		require.NoError(t, cfg.ApplyEnv())
		assert.Equal(t, "env-deck.yaml", cfg.Deck.Path)
		assert.True(t, cfg.Debug)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv(config.EnvDeck, "")
		require.NoError(t, os.Unsetenv(config.EnvDeck))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FLASHD_DECK=dotenv.yaml\n"), 0644))

		cfg := config.New()
		require.NoError(t, cfg.ApplyEnv())
		assert.Equal(t, "dotenv.yaml", cfg.Deck.Path)
	})

	t.Run("bad debug value", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(config.EnvDebug, "sometimes")

		err := config.New().ApplyEnv()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})
}

func TestValidate(t *testing.T) {
	cfg := config.New()
	require.NoError(t, cfg.Validate())

	cfg.Display.FontSize = 0
	assert.Error(t, cfg.Validate())

	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())
}

func TestGetTheme(t *testing.T) {
	for _, name := range config.ListThemes() {
		theme := config.GetTheme(name)
		assert.NotEmpty(t, theme["primary"], name)
		assert.NotEmpty(t, theme["error"], name)
	}
	assert.Equal(t, config.GetTheme("default"), config.GetTheme("missing"))
}
