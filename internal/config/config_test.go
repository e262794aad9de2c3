package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Picker.DismissAfterChoosing)
	assert.Equal(t, "auto", cfg.Picker.ArrowDirectionHint)
	assert.Equal(t, "none", cfg.Picker.HapticStyleHint)
	assert.Equal(t, 8, cfg.TUI.Columns)
	assert.True(t, cfg.TUI.ShowHeaders)
	assert.True(t, cfg.Recents.Enabled)
	assert.Equal(t, 500, cfg.Recents.MaxEntries)
}

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Picker, cfg.Picker)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := `
picker:
  dismiss_after_choosing: false
  arrow_direction_hint: down
tui:
  columns: 12
recents:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.Picker.DismissAfterChoosing)
	assert.Equal(t, "down", cfg.Picker.ArrowDirectionHint)
	assert.Equal(t, 12, cfg.TUI.Columns)
	assert.False(t, cfg.Recents.Enabled)
	// Untouched sections keep defaults.
	assert.Equal(t, "none", cfg.Picker.HapticStyleHint)
}

func TestLoadFromFileRejectsBadHints(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad arrow", "picker:\n  arrow_direction_hint: sideways"},
		{"bad haptic", "picker:\n  haptic_style_hint: extreme"},
		{"negative height", "picker:\n  height_hint: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.src), 0644))

			_, err := LoadFromFile(path)
			assert.Error(t, err)
		})
	}
}

func TestValidateClampsColumns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TUI.Columns = 1
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.TUI.Columns)

	cfg.TUI.Columns = 99
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 16, cfg.TUI.Columns)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("EMOPICK_CATALOG", "/tmp/custom.yaml")
	t.Setenv("EMOPICK_NO_RECENTS", "1")
	t.Setenv("EMOPICK_COLUMNS", "10")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/tmp/custom.yaml", cfg.Picker.CatalogPath)
	assert.False(t, cfg.Recents.Enabled)
	assert.Equal(t, 10, cfg.TUI.Columns)
}

func TestMissingFileStillValidatesEnvOverrides(t *testing.T) {
	t.Setenv("EMOPICK_COLUMNS", "99")

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.TUI.Columns)
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.TUI.Columns = 10
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.TUI.Columns)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	p := DefaultPaths()
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "emopick", "config.yaml"), p.ConfigFile())
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "emopick", "recents.db"), p.RecentsFile())
}
